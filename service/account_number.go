package service

import "math/rand/v2"

const (
	accountLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	accountDigits  = "0123456789"

	// AccountSymbols is the set the single symbol of an account number is drawn from.
	AccountSymbols = "!@#$%^&*()_+"
)

// NewAccountNumber returns 3 uppercase letters, 3 digits and 1 symbol in random order.
func NewAccountNumber() string {
	chars := make([]byte, 0, 7)
	chars = appendRandom(chars, accountLetters, 3)
	chars = appendRandom(chars, accountDigits, 3)
	chars = appendRandom(chars, AccountSymbols, 1)

	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}

func appendRandom(dst []byte, set string, n int) []byte {
	for range n {
		dst = append(dst, set[rand.IntN(len(set))])
	}
	return dst
}
