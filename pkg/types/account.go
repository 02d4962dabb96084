package types

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// AccountNumberPrefix prefixes generated account numbers.
const AccountNumberPrefix = "ACC-"

// BankAccount holds money for a single holder. Balance is in dollars and
// InterestRate is a fraction (0.02 is 2%). A closed account rejects every
// money movement.
type BankAccount struct {
	Number       string  `json:"number" yaml:"number"`
	Holder       string  `json:"holder" yaml:"holder"`
	Balance      float64 `json:"balance" yaml:"balance"`
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	Active       bool    `json:"active" yaml:"active"`
}

// NewAccountNumber returns a fresh account number built from a UUID v7.
func NewAccountNumber() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to v4 if v7 generation fails.
		return AccountNumberPrefix + uuid.New().String()
	}
	return AccountNumberPrefix + id.String()
}

// NewBankAccount opens an active account. An empty number is replaced by
// NewAccountNumber.
// Returns ErrInvalidName if holder is empty, ErrInvalidAmount if balance is
// negative or not finite, and ErrInvalidRate if rate is negative or not
// finite.
func NewBankAccount(number, holder string, balance, rate float64) (*BankAccount, error) {
	if strings.TrimSpace(holder) == "" {
		return nil, fmt.Errorf("account holder: %w", ErrInvalidName)
	}
	if !finite(balance) || balance < 0 {
		return nil, fmt.Errorf("initial balance %.2f: %w", balance, ErrInvalidAmount)
	}
	if !finite(rate) || rate < 0 {
		return nil, fmt.Errorf("interest rate %.4f: %w", rate, ErrInvalidRate)
	}
	if number == "" {
		number = NewAccountNumber()
	}
	return &BankAccount{
		Number:       number,
		Holder:       holder,
		Balance:      balance,
		InterestRate: rate,
		Active:       true,
	}, nil
}

// Deposit adds amount to the balance.
// Returns ErrAccountClosed on a closed account and ErrInvalidAmount if
// amount is not a positive finite number or would overflow the balance.
func (a *BankAccount) Deposit(amount float64) error {
	if !a.Active {
		return ErrAccountClosed
	}
	if !positive(amount) || math.IsInf(a.Balance+amount, 0) {
		return fmt.Errorf("deposit %.2f: %w", amount, ErrInvalidAmount)
	}
	a.Balance += amount
	return nil
}

// Withdraw removes amount from the balance.
// Returns ErrAccountClosed on a closed account, ErrInvalidAmount if amount is
// not a positive finite number, and ErrInsufficientFunds if amount exceeds the balance.
func (a *BankAccount) Withdraw(amount float64) error {
	if !a.Active {
		return ErrAccountClosed
	}
	if !positive(amount) {
		return fmt.Errorf("withdrawal %.2f: %w", amount, ErrInvalidAmount)
	}
	if amount > a.Balance {
		return fmt.Errorf("withdrawal %.2f exceeds balance %.2f: %w", amount, a.Balance, ErrInsufficientFunds)
	}
	a.Balance -= amount
	return nil
}

// ApplyInterest credits one period of interest and returns the amount added.
// Returns ErrAccountClosed on a closed account.
func (a *BankAccount) ApplyInterest() (float64, error) {
	if !a.Active {
		return 0, ErrAccountClosed
	}
	interest := a.Balance * a.InterestRate
	a.Balance += interest
	return interest, nil
}

// Close deactivates the account. It reports false if the account was already
// closed.
func (a *BankAccount) Close() bool {
	if !a.Active {
		return false
	}
	a.Active = false
	return true
}

// GetBalance returns the current balance.
func (a *BankAccount) GetBalance() float64 {
	return a.Balance
}

func (a *BankAccount) String() string {
	status := "Active"
	if !a.Active {
		status = "Closed"
	}
	return fmt.Sprintf("Account Number: %s\nAccount Holder: %s\nBalance: $%.2f\nInterest Rate: %.2f%%\nStatus: %s",
		a.Number, a.Holder, a.Balance, a.InterestRate*100, status)
}
