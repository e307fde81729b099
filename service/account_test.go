package service_test

import (
	"encoding/json"
	"testing"

	"github.com/go-http-server/ledger/service"
	"github.com/stretchr/testify/require"
)

func TestPINValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pin  service.PIN
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"0042", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"-123", false},
		{"", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.pin.Valid(), "pin %q", tt.pin)
	}
}

func TestPINJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(service.PIN("0123"))
	require.NoError(t, err)
	require.Equal(t, "123", string(data))

	var pin service.PIN
	require.NoError(t, json.Unmarshal([]byte("123"), &pin))
	require.Equal(t, service.PIN("0123"), pin)

	require.NoError(t, json.Unmarshal([]byte(`"9876"`), &pin))
	require.Equal(t, service.PIN("9876"), pin)

	require.Error(t, json.Unmarshal([]byte("true"), &pin))
}

func TestAccountClone(t *testing.T) {
	t.Parallel()

	acc := &service.Account{Name: "Ana", PIN: "1234", AccountNo: "A1$B2C3"}
	other := acc.Clone()
	other.Name = "Bo"

	require.Equal(t, "Ana", acc.Name)
	require.Equal(t, "A1$B2C3", other.AccountNo)
}
