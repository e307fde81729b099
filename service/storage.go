package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/go-http-server/ledger/serializer"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Storage loads and saves the whole account collection as one unit.
type Storage interface {
	// Load returns every stored account in insertion order.
	Load() ([]Account, error)

	// Save replaces the stored collection with accounts.
	Save(accounts []Account) error
}

// accountRecord is the on-disk shape of an account. Field order is the file's key order.
type accountRecord struct {
	Name      string      `json:"name"`
	Age       int         `json:"age"`
	Email     string      `json:"email"`
	PIN       PIN         `json:"pin"`
	AccountNo string      `json:"accountNo."`
	Balance   json.Number `json:"balance"`
}

var recordConverters = []copier.TypeConverter{
	{
		SrcType: decimal.Decimal{},
		DstType: json.Number(""),
		Fn: func(src any) (any, error) {
			return json.Number(src.(decimal.Decimal).String()), nil
		},
	},
	{
		SrcType: json.Number(""),
		DstType: decimal.Decimal{},
		Fn: func(src any) (any, error) {
			n := src.(json.Number)
			if n == "" {
				return decimal.Zero, nil
			}
			return decimal.NewFromString(string(n))
		},
	},
}

// JSONFileStorage keeps the collection in a single indented JSON file.
// It holds no account state of its own.
type JSONFileStorage struct {
	path   string
	logger *slog.Logger
}

// NewJSONFileStorage creates a storage backed by the file at path.
func NewJSONFileStorage(path string, logger *slog.Logger) *JSONFileStorage {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONFileStorage{path: path, logger: logger}
}

// Path returns the location of the durable file.
func (store *JSONFileStorage) Path() string {
	return store.path
}

// Load reads the durable file. A missing file and a file with malformed
// content both yield an empty collection; only I/O failures are returned.
func (store *JSONFileStorage) Load() ([]Account, error) {
	var records []accountRecord
	err := serializer.ReadJSONFile(store.path, &records)
	if err != nil {
		var pathErr *fs.PathError
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return []Account{}, nil
		case errors.As(err, &pathErr):
			return nil, fmt.Errorf("cannot read accounts file: %w", err)
		default:
			store.logger.Warn("accounts file is corrupt, starting empty", "path", store.path, "err", err)
			return []Account{}, nil
		}
	}

	accounts := make([]Account, 0, len(records))
	if len(records) == 0 {
		return accounts, nil
	}

	err = copier.CopyWithOption(&accounts, records, copier.Option{Converters: recordConverters})
	if err != nil {
		store.logger.Warn("accounts file is corrupt, starting empty", "path", store.path, "err", err)
		return []Account{}, nil
	}

	return accounts, nil
}

// Save rewrites the durable file with the full collection.
func (store *JSONFileStorage) Save(accounts []Account) error {
	records := make([]accountRecord, 0, len(accounts))
	if len(accounts) > 0 {
		err := copier.CopyWithOption(&records, accounts, copier.Option{Converters: recordConverters})
		if err != nil {
			return fmt.Errorf("cannot convert accounts: %w", err)
		}
	}

	return serializer.WriteJSONFile(records, store.path)
}
