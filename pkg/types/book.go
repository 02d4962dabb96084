package types

import (
	"fmt"
	"strings"
)

// Book is a single library copy that can be lent out and returned.
type Book struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	ISBN       string `json:"isbn" yaml:"isbn"`
	PageCount  int    `json:"page_count" yaml:"page_count"`
	CheckedOut bool   `json:"checked_out" yaml:"checked_out"`
}

// NewBook returns an available book.
// Returns ErrInvalidName if title is empty and ErrInvalidPageCount if pages
// is not positive.
func NewBook(title, author, isbn string, pages int) (*Book, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("book title: %w", ErrInvalidName)
	}
	if pages <= 0 {
		return nil, fmt.Errorf("page count %d: %w", pages, ErrInvalidPageCount)
	}
	return &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		PageCount: pages,
	}, nil
}

// CheckOut lends the book. It reports false if the book was already out.
func (b *Book) CheckOut() bool {
	if b.CheckedOut {
		return false
	}
	b.CheckedOut = true
	return true
}

// Return brings the book back. It reports false if the book was not out.
func (b *Book) Return() bool {
	if !b.CheckedOut {
		return false
	}
	b.CheckedOut = false
	return true
}

// IsAvailable reports whether the book can be checked out.
func (b *Book) IsAvailable() bool {
	return !b.CheckedOut
}

// SetPageCount updates the page count, e.g. for a new edition.
// Returns ErrInvalidPageCount if n is not positive.
func (b *Book) SetPageCount(n int) error {
	if n <= 0 {
		return fmt.Errorf("page count %d: %w", n, ErrInvalidPageCount)
	}
	b.PageCount = n
	return nil
}

// Summary returns title, author and ISBN on one line.
func (b *Book) Summary() string {
	return fmt.Sprintf("Title: %s, Author: %s, ISBN: %s", b.Title, b.Author, b.ISBN)
}

func (b *Book) String() string {
	status := "Available"
	if b.CheckedOut {
		status = "Checked Out"
	}
	return fmt.Sprintf("%s by %s (%s) - %d pages - %s", b.Title, b.Author, b.ISBN, b.PageCount, status)
}

// GoString renders the constructor call that rebuilds b.
func (b *Book) GoString() string {
	return fmt.Sprintf("Book(%q, %q, %q, %d)", b.Title, b.Author, b.ISBN, b.PageCount)
}
