// Package client provides the console front end of the ledger: a menu that
// collects form fields, calls the account store and prints status lines.
package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-http-server/ledger/service"
	"github.com/shopspring/decimal"
)

// minAmount is the smallest amount the console sends to Deposit or Withdraw.
var minAmount = decimal.NewFromInt(1)

var menu = []string{
	"Create Account",
	"Deposit Money",
	"Withdraw Money",
	"Show Account Details",
	"Update Details",
	"Delete Account",
}

// Console drives an AccountStore from line based input.
type Console struct {
	store service.AccountStore
	in    *bufio.Scanner
	out   io.Writer
}

// NewConsole creates a console reading answers from in and writing to out.
func NewConsole(store service.AccountStore, in io.Reader, out io.Writer) *Console {
	return &Console{store: store, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the input is exhausted or the user picks exit.
func (c *Console) Run() error {
	for {
		c.printMenu()

		choice, ok := c.prompt("Select option")
		if !ok {
			return c.in.Err()
		}

		var done bool
		switch choice {
		case "1":
			done = !c.createAccount()
		case "2":
			done = !c.deposit()
		case "3":
			done = !c.withdraw()
		case "4":
			done = !c.showDetails()
		case "5":
			done = !c.updateDetails()
		case "6":
			done = !c.deleteAccount()
		case "0", "q", "exit", "quit":
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown option %q\n", choice)
		}

		if done {
			return c.in.Err()
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Bank Management System")
	for i, item := range menu {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, item)
	}
	fmt.Fprintln(c.out, "  0) Exit")
}

// prompt reads one trimmed line. It returns false once the input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// prompts reads the labelled fields in order.
func (c *Console) prompts(labels ...string) ([]string, bool) {
	values := make([]string, len(labels))
	for i, label := range labels {
		value, ok := c.prompt(label)
		if !ok {
			return nil, false
		}
		values[i] = value
	}
	return values, true
}

func (c *Console) createAccount() bool {
	fields, ok := c.prompts("Name", "Age", "Email", "4-Digit PIN")
	if !ok {
		return false
	}

	age, err := strconv.Atoi(fields[1])
	if err != nil {
		c.status("Age must be a whole number.")
		return true
	}

	accountNo, err := c.store.CreateAccount(fields[0], age, fields[2], fields[3])
	if err != nil {
		c.fail(err)
		return true
	}

	c.status("Account created successfully!\nYour Account No: " + accountNo)
	return true
}

func (c *Console) deposit() bool {
	fields, ok := c.prompts("Account Number", "PIN", "Amount")
	if !ok {
		return false
	}

	amount, ok := c.amount(fields[2])
	if !ok {
		return true
	}

	balance, err := c.store.Deposit(fields[0], fields[1], amount)
	if err != nil {
		c.fail(err)
		return true
	}

	c.status(fmt.Sprintf("Deposited %s. New Balance: %s", amount, balance))
	return true
}

func (c *Console) withdraw() bool {
	fields, ok := c.prompts("Account Number", "PIN", "Amount")
	if !ok {
		return false
	}

	amount, ok := c.amount(fields[2])
	if !ok {
		return true
	}

	balance, err := c.store.Withdraw(fields[0], fields[1], amount)
	if err != nil {
		c.fail(err)
		return true
	}

	c.status(fmt.Sprintf("Withdrawn %s. New Balance: %s", amount, balance))
	return true
}

// amount parses a deposit or withdrawal amount. Amounts below minAmount are refused.
func (c *Console) amount(field string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(field)
	if err != nil {
		c.status("Amount must be a number.")
		return decimal.Zero, false
	}
	if amount.LessThan(minAmount) {
		c.status("Amount must be at least 1.")
		return decimal.Zero, false
	}

	return amount, true
}

func (c *Console) showDetails() bool {
	fields, ok := c.prompts("Account Number", "PIN")
	if !ok {
		return false
	}

	acc, err := c.store.ShowDetails(fields[0], fields[1])
	if err != nil {
		c.fail(err)
		return true
	}

	fmt.Fprintf(c.out, "Name:        %s\n", acc.Name)
	fmt.Fprintf(c.out, "Age:         %d\n", acc.Age)
	fmt.Fprintf(c.out, "Email:       %s\n", acc.Email)
	fmt.Fprintf(c.out, "Account No.: %s\n", acc.AccountNo)
	fmt.Fprintf(c.out, "Balance:     %s\n", acc.Balance)
	return true
}

func (c *Console) updateDetails() bool {
	fields, ok := c.prompts("Account Number", "PIN", "New Name (optional)", "New Email (optional)", "New 4-Digit PIN (optional)")
	if !ok {
		return false
	}

	err := c.store.UpdateDetails(fields[0], fields[1], service.AccountUpdate{
		Name:  fields[2],
		Email: fields[3],
		PIN:   fields[4],
	})
	if err != nil {
		c.fail(err)
		return true
	}

	c.status("Details updated successfully!")
	return true
}

func (c *Console) deleteAccount() bool {
	fields, ok := c.prompts("Account Number", "PIN")
	if !ok {
		return false
	}

	err := c.store.DeleteAccount(fields[0], fields[1])
	if err != nil {
		c.fail(err)
		return true
	}

	c.status("Account deleted successfully!")
	return true
}

func (c *Console) status(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) fail(err error) {
	c.status(StatusMessage(err))
}

// StatusMessage turns a store error into the line shown to the user.
func StatusMessage(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, service.ErrUnderage):
		return fmt.Sprintf("You must be at least %d to open an account.", service.MinAge)
	case errors.Is(err, service.ErrInvalidPIN):
		return "PIN must be 4 digits!"
	case errors.Is(err, service.ErrAmountOutOfRange):
		return "Amount must be greater than 0 and at most 10,000!"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid account or PIN!"
	case errors.Is(err, service.ErrInsufficientFunds):
		return "Insufficient funds!"
	default:
		return "Something went wrong: " + err.Error()
	}
}
