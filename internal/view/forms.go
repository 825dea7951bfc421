package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/avolkov/coinfolio/internal/entity"
	"github.com/avolkov/coinfolio/internal/services/auth"
)

// Credentials holds what the login and register forms collect.
type Credentials struct {
	Username string
	Password string
}

// Suggester supplies type-ahead symbol suggestions to the transaction form.
type Suggester interface {
	Suggest(q string) []string
}

// AuthChoiceForm is the entry screen selection.
func AuthChoiceForm() (string, error) {
	var choice string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("coinfolio").
				Description("Personal crypto portfolio tracker").
				Options(
					huh.NewOption("Log in", "login"),
					huh.NewOption("Create an account", "register"),
				).
				Value(&choice),
		),
	).Run()
	return choice, err
}

// LoginForm prompts for credentials.
func LoginForm() (Credentials, error) {
	var c Credentials
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(&c.Username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password),
		),
	).Run()
	return c, err
}

// RegisterForm prompts for new credentials and runs the client-side checks:
// username present, password at least 8 characters, both entries equal.
// Violations surface together, like the original combined alert.
func RegisterForm() (Credentials, error) {
	var c Credentials
	var confirm string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(&c.Username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&c.Password),
			huh.NewInput().Title("Confirm password").EchoMode(huh.EchoModePassword).Value(&confirm),
		),
	).Run()
	if err != nil {
		return Credentials{}, err
	}

	if err := auth.ValidateRegistration(c.Username, c.Password, confirm); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

// TransactionForm collects a new transaction. Defaults mirror the web form:
// today's date, zero amount and value, buy type. The coin input offers
// suggestions filtered from the tradable-symbol universe as the user types.
// The second return value is false when the form was dismissed.
func TransactionForm(symbols Suggester, prefill string) (entity.NewTransaction, bool, error) {
	var (
		coin      = prefill
		amountStr = "0"
		valueStr  = "0"
		txType    = "buy"
		dateStr   = time.Now().Format("2006-01-02")
	)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Coin").
				Description("Ticker, e.g. BTC").
				Value(&coin).
				SuggestionsFunc(func() []string {
					return symbols.Suggest(coin)
				}, &coin).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("coin is required")
					}
					return nil
				}),
			huh.NewInput().Title("Amount").Value(&amountStr).Validate(validateNumber),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Buy", "buy"),
					huh.NewOption("Sell", "sell"),
				).
				Value(&txType),
			huh.NewInput().Title("Value (USD)").Value(&valueStr).Validate(validateNumber),
			huh.NewInput().Title("Date").Description("YYYY-MM-DD").Value(&dateStr).Validate(validateDate),
		),
	).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return entity.NewTransaction{}, false, nil
		}
		return entity.NewTransaction{}, false, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return entity.NewTransaction{}, false, errors.Wrap(err, "parse amount")
	}
	value, err := decimal.NewFromString(valueStr)
	if err != nil {
		return entity.NewTransaction{}, false, errors.Wrap(err, "parse value")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return entity.NewTransaction{}, false, errors.Wrap(err, "parse date")
	}

	return entity.NewTransaction{
		Coin:   strings.ToUpper(strings.TrimSpace(coin)),
		Amount: amount.InexactFloat64(),
		Type:   txType,
		Value:  value.InexactFloat64(),
		Date:   date,
	}, true, nil
}

func validateNumber(s string) error {
	if _, err := decimal.NewFromString(s); err != nil {
		return fmt.Errorf("must be a valid number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("must be YYYY-MM-DD")
	}
	return nil
}
