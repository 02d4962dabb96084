package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/tinker/pkg/types"
)

type accountFlags struct {
	number  string
	holder  string
	balance float64
	rate    float64
}

func newAccountCmd(a *app) *cobra.Command {
	var f accountFlags

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Deposit, withdraw, earn interest and close a bank account",
		Long: `Opens an account, deposits 500, withdraws 200, applies one period of
interest, closes the account and then shows that a closed account
rejects deposits.

Example:
  tinker account --holder "John Doe" --balance 1000 --rate 0.02
  tinker account --number "" --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccount(a, f)
		},
	}

	cmd.Flags().StringVar(&f.number, "number", "ACC001", "account number (empty generates one)")
	cmd.Flags().StringVar(&f.holder, "holder", "John Doe", "account holder")
	cmd.Flags().Float64Var(&f.balance, "balance", 1000, "opening balance in dollars")
	cmd.Flags().Float64Var(&f.rate, "rate", 0.02, "interest rate per period (0.02 is 2%)")

	return cmd
}

func runAccount(a *app, f accountFlags) error {
	acct, err := types.NewBankAccount(f.number, f.holder, f.balance, f.rate)
	if err != nil {
		return fmt.Errorf("open account: %w", err)
	}
	a.log.Debugw("account opened", "number", acct.Number)

	a.out.heading("Initial Account Information")
	a.out.block(acct)

	a.out.heading("Transactions")
	err = acct.Deposit(500)
	a.step("deposit", err, "Deposited $%.2f. New balance: $%.2f", 500.0, acct.Balance)

	err = acct.Withdraw(200)
	a.step("withdraw", err, "Withdrew $%.2f. New balance: $%.2f", 200.0, acct.Balance)
	a.out.note("Current balance: $%.2f", acct.GetBalance())

	a.out.heading("Interest")
	interest, err := acct.ApplyInterest()
	a.step("interest", err, "Interest calculated: $%.2f. New balance: $%.2f", interest, acct.Balance)

	a.out.heading("Closing")
	a.toggle("close", acct.Close(), "Account "+acct.Number+" has been closed.", "Account "+acct.Number+" was already closed.")

	err = acct.Deposit(100)
	a.step("deposit", err, "Deposited $%.2f. New balance: $%.2f", 100.0, acct.Balance)

	a.out.heading("Final Account Information")
	a.out.block(acct)
	return a.out.result(acct)
}
