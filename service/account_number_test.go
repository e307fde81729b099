package service_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/go-http-server/ledger/service"
	"github.com/stretchr/testify/require"
)

func TestNewAccountNumber(t *testing.T) {
	t.Parallel()

	for range 1000 {
		accountNo := service.NewAccountNumber()
		require.Len(t, accountNo, 7)

		var letters, digits, symbols int
		for _, r := range accountNo {
			switch {
			case r >= 'A' && r <= 'Z':
				letters++
			case unicode.IsDigit(r):
				digits++
			case strings.ContainsRune(service.AccountSymbols, r):
				symbols++
			default:
				t.Fatalf("unexpected character %q in %q", r, accountNo)
			}
		}

		require.Equal(t, 3, letters, accountNo)
		require.Equal(t, 3, digits, accountNo)
		require.Equal(t, 1, symbols, accountNo)
	}
}

func TestCreatedAccountNumberShape(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	accountNo, err := store.CreateAccount("Ana", 18, "a@x.com", "0000")
	require.NoError(t, err)
	require.Len(t, accountNo, 7)

	symbols := 0
	for _, r := range accountNo {
		if strings.ContainsRune(service.AccountSymbols, r) {
			symbols++
		}
	}
	require.Equal(t, 1, symbols, accountNo)
}
