package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tinker/pkg/types"
)

type bookFlags struct {
	title    string
	author   string
	isbn     string
	pages    int
	newPages int
}

func newBookCmd(a *app) *cobra.Command {
	var f bookFlags

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Check a library book out and back in",
		Long: `Checks a book out, tries to check it out a second time, returns it
and updates its page count for a new edition.

Example:
  tinker book --title "Dune" --author "Frank Herbert" --pages 412`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(a, f)
		},
	}

	cmd.Flags().StringVar(&f.title, "title", "The Great Gatsby", "book title")
	cmd.Flags().StringVar(&f.author, "author", "F. Scott Fitzgerald", "book author")
	cmd.Flags().StringVar(&f.isbn, "isbn", "978-0-7432-7356-5", "ISBN")
	cmd.Flags().IntVar(&f.pages, "pages", 180, "page count")
	cmd.Flags().IntVar(&f.newPages, "new-pages", 200, "page count of the new edition")

	return cmd
}

func runBook(a *app, f bookFlags) error {
	book, err := types.NewBook(f.title, f.author, f.isbn, f.pages)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	a.out.heading("Initial Book State")
	a.out.block(book)
	a.out.note("Summary: %s", book.Summary())
	a.out.note("Available: %t", book.IsAvailable())

	a.out.heading("Lending")
	a.toggle("check out", book.CheckOut(), "Checked out "+book.Title+".", book.Title+" is already checked out.")
	a.toggle("check out", book.CheckOut(), "Checked out "+book.Title+".", book.Title+" is already checked out.")
	a.out.block(book)

	a.toggle("return", book.Return(), "Returned "+book.Title+".", book.Title+" was not checked out.")
	a.out.note("Available: %t", book.IsAvailable())

	a.out.heading("New Edition")
	err = book.SetPageCount(f.newPages)
	a.step("set page count", err, "New page count: %d", book.PageCount)

	a.out.heading("Final Book State")
	a.out.block(book)
	return a.out.result(book)
}
