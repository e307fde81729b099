package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// MinAge is the minimum age of an account holder.
const MinAge = 18

// MaxDeposit is the largest amount accepted by a single deposit.
var MaxDeposit = decimal.NewFromInt(10000)

// PIN is the 4-digit numeric code paired with an account number.
type PIN string

// Valid reports whether the PIN is exactly four ASCII digits.
func (p PIN) Valid() bool {
	if len(p) != 4 {
		return false
	}
	for i := 0; i < len(p); i++ {
		if p[i] < '0' || p[i] > '9' {
			return false
		}
	}
	return true
}

// MarshalJSON writes a valid PIN as a JSON number.
func (p PIN) MarshalJSON() ([]byte, error) {
	if !p.Valid() {
		return json.Marshal(string(p))
	}
	n, err := strconv.Atoi(string(p))
	if err != nil {
		return nil, err
	}
	return []byte(strconv.Itoa(n)), nil
}

// UnmarshalJSON accepts a number or a string. Numbers lose their
// leading zeros on disk, so they are padded back to four digits.
func (p *PIN) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PIN(s)
		return nil
	}

	n, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil {
		return fmt.Errorf("invalid pin %s: %w", data, err)
	}
	*p = PIN(fmt.Sprintf("%04d", n))
	return nil
}

// Account is one customer record of the ledger.
type Account struct {
	Name      string
	Age       int
	Email     string
	PIN       PIN
	AccountNo string
	Balance   decimal.Decimal
}

// Clone creates a copy of the account.
func (acc *Account) Clone() *Account {
	other := *acc
	return &other
}

// matches reports whether the account is addressed by the given credentials.
func (acc *Account) matches(accountNo string, pin PIN) bool {
	return acc.AccountNo == accountNo && acc.PIN == pin
}

// AccountUpdate carries the optional fields of an update. Empty fields are left untouched.
type AccountUpdate struct {
	Name  string
	Email string
	PIN   string
}
