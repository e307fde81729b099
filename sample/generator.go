// Package sample generates random account data for tests and for seeding a fresh ledger.
package sample

import "fmt"

// AccountRequest holds the inputs of a create account call.
type AccountRequest struct {
	Name  string
	Age   int
	Email string
	PIN   string
}

// NewAccountRequest returns a request that passes every creation check.
func NewAccountRequest() AccountRequest {
	first := randomFirstName()
	last := randomLastName()

	return AccountRequest{
		Name:  first + " " + last,
		Age:   randomInt(18, 90),
		Email: randomEmail(first, last),
		PIN:   NewPIN(),
	}
}

// NewUnderageRequest returns a request that is valid except for the age.
func NewUnderageRequest() AccountRequest {
	req := NewAccountRequest()
	req.Age = randomInt(0, 17)
	return req
}

// NewPIN returns a random 4-digit PIN, leading zeros included.
func NewPIN() string {
	return fmt.Sprintf("%04d", randomInt(0, 9999))
}

// NewAmount returns a random whole amount in [min, max].
func NewAmount(min, max int) int64 {
	return int64(randomInt(min, max))
}
