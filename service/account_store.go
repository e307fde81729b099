package service

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// ErrAccountNumberUnavailable is returned when no unused account number was found.
var ErrAccountNumberUnavailable = errors.New("cannot generate an unused account number")

const maxAccountNumberAttempts = 100

type AccountStore interface {
	// CreateAccount registers a new account and returns its generated number.
	CreateAccount(name string, age int, email, pin string) (string, error)

	// FindUser returns every account addressed by the credentials.
	FindUser(accountNo, pin string) []Account

	// Deposit adds amount to the balance and returns the new balance.
	Deposit(accountNo, pin string, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw subtracts amount from the balance and returns the new balance.
	Withdraw(accountNo, pin string, amount decimal.Decimal) (decimal.Decimal, error)

	// ShowDetails returns a copy of the account addressed by the credentials.
	ShowDetails(accountNo, pin string) (*Account, error)

	// UpdateDetails overwrites the non-empty fields of update.
	UpdateDetails(accountNo, pin string, update AccountUpdate) error

	// DeleteAccount removes the account addressed by the credentials.
	DeleteAccount(accountNo, pin string) error
}

// Option configures a FileAccountStore.
type Option func(*FileAccountStore)

// WithLogger sets the logger used by the store.
func WithLogger(logger *slog.Logger) Option {
	return func(store *FileAccountStore) {
		store.logger = logger
	}
}

// WithMeterProvider sets where operation metrics are reported.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(store *FileAccountStore) {
		store.meterProvider = provider
	}
}

// WithAccountNumberGenerator replaces NewAccountNumber.
func WithAccountNumberGenerator(generate func() string) Option {
	return func(store *FileAccountStore) {
		store.newAccountNumber = generate
	}
}

// WithUniqueAccountNumbers makes CreateAccount regenerate numbers that are already in use.
func WithUniqueAccountNumbers(unique bool) Option {
	return func(store *FileAccountStore) {
		store.uniqueNumbers = unique
	}
}

var _ AccountStore = (*FileAccountStore)(nil)

// FileAccountStore keeps the account collection in memory and flushes it
// to its Storage after every mutation.
type FileAccountStore struct {
	mutex    sync.RWMutex
	accounts []Account
	storage  Storage

	logger           *slog.Logger
	meterProvider    metric.MeterProvider
	metrics          *storeMetrics
	newAccountNumber func() string
	uniqueNumbers    bool
}

// NewFileAccountStore creates a store and loads the collection from storage.
func NewFileAccountStore(storage Storage, opts ...Option) (*FileAccountStore, error) {
	store := &FileAccountStore{
		storage:          storage,
		logger:           slog.Default(),
		meterProvider:    otel.GetMeterProvider(),
		newAccountNumber: NewAccountNumber,
	}
	for _, opt := range opts {
		opt(store)
	}

	metrics, err := newStoreMetrics(store.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("cannot create metrics: %w", err)
	}
	store.metrics = metrics

	accounts, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load accounts: %w", err)
	}
	store.accounts = accounts

	store.logger.Info("accounts loaded", "count", len(accounts))
	return store, nil
}

func (store *FileAccountStore) CreateAccount(name string, age int, email, pin string) (accountNo string, err error) {
	defer func() { store.metrics.record("create_account", err) }()

	if age < MinAge {
		return "", ErrUnderage
	}
	if !PIN(pin).Valid() {
		return "", ErrInvalidPIN
	}

	store.mutex.Lock()
	defer store.mutex.Unlock()

	accountNo, err = store.generateAccountNumber()
	if err != nil {
		return "", err
	}

	next := append(slices.Clone(store.accounts), Account{
		Name:      name,
		Age:       age,
		Email:     email,
		PIN:       PIN(pin),
		AccountNo: accountNo,
		Balance:   decimal.Zero,
	})

	err = store.persist(next)
	if err != nil {
		return "", err
	}

	store.logger.Info("account created", "account_no", accountNo)
	return accountNo, nil
}

func (store *FileAccountStore) FindUser(accountNo, pin string) []Account {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	var found []Account
	for i := range store.accounts {
		if store.accounts[i].matches(accountNo, PIN(pin)) {
			found = append(found, store.accounts[i])
		}
	}

	return found
}

func (store *FileAccountStore) Deposit(accountNo, pin string, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	defer func() { store.metrics.record("deposit", err) }()

	store.mutex.Lock()
	defer store.mutex.Unlock()

	i := store.indexOf(accountNo, PIN(pin))
	if i < 0 {
		return decimal.Zero, ErrInvalidCredentials
	}
	if !amount.IsPositive() || amount.GreaterThan(MaxDeposit) {
		return decimal.Zero, ErrAmountOutOfRange
	}

	next := slices.Clone(store.accounts)
	next[i].Balance = next[i].Balance.Add(amount)

	err = store.persist(next)
	if err != nil {
		return decimal.Zero, err
	}

	return next[i].Balance, nil
}

// Withdraw only checks the amount against the balance; unlike Deposit it applies no range limit.
func (store *FileAccountStore) Withdraw(accountNo, pin string, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	defer func() { store.metrics.record("withdraw", err) }()

	store.mutex.Lock()
	defer store.mutex.Unlock()

	i := store.indexOf(accountNo, PIN(pin))
	if i < 0 {
		return decimal.Zero, ErrInvalidCredentials
	}
	if store.accounts[i].Balance.LessThan(amount) {
		return decimal.Zero, ErrInsufficientFunds
	}

	next := slices.Clone(store.accounts)
	next[i].Balance = next[i].Balance.Sub(amount)

	err = store.persist(next)
	if err != nil {
		return decimal.Zero, err
	}

	return next[i].Balance, nil
}

func (store *FileAccountStore) ShowDetails(accountNo, pin string) (acc *Account, err error) {
	defer func() { store.metrics.record("show_details", err) }()

	store.mutex.RLock()
	defer store.mutex.RUnlock()

	i := store.indexOf(accountNo, PIN(pin))
	if i < 0 {
		return nil, ErrInvalidCredentials
	}

	return store.accounts[i].Clone(), nil
}

// UpdateDetails validates the new PIN before touching any field, so a
// rejected update leaves the account unchanged.
func (store *FileAccountStore) UpdateDetails(accountNo, pin string, update AccountUpdate) (err error) {
	defer func() { store.metrics.record("update_details", err) }()

	store.mutex.Lock()
	defer store.mutex.Unlock()

	i := store.indexOf(accountNo, PIN(pin))
	if i < 0 {
		return ErrInvalidCredentials
	}
	if update.PIN != "" && !PIN(update.PIN).Valid() {
		return ErrInvalidPIN
	}

	next := slices.Clone(store.accounts)
	if update.Name != "" {
		next[i].Name = update.Name
	}
	if update.Email != "" {
		next[i].Email = update.Email
	}
	if update.PIN != "" {
		next[i].PIN = PIN(update.PIN)
	}

	return store.persist(next)
}

func (store *FileAccountStore) DeleteAccount(accountNo, pin string) (err error) {
	defer func() { store.metrics.record("delete_account", err) }()

	store.mutex.Lock()
	defer store.mutex.Unlock()

	i := store.indexOf(accountNo, PIN(pin))
	if i < 0 {
		return ErrInvalidCredentials
	}

	next := slices.Delete(slices.Clone(store.accounts), i, i+1)

	err = store.persist(next)
	if err != nil {
		return err
	}

	store.logger.Info("account deleted", "account_no", accountNo)
	return nil
}

// Accounts returns a copy of the whole collection in creation order.
func (store *FileAccountStore) Accounts() []Account {
	store.mutex.RLock()
	defer store.mutex.RUnlock()

	return slices.Clone(store.accounts)
}

// indexOf returns the position of the first account matching the credentials, or -1.
// The caller must hold the mutex.
func (store *FileAccountStore) indexOf(accountNo string, pin PIN) int {
	return slices.IndexFunc(store.accounts, func(acc Account) bool {
		return acc.matches(accountNo, pin)
	})
}

func (store *FileAccountStore) generateAccountNumber() (string, error) {
	if !store.uniqueNumbers {
		return store.newAccountNumber(), nil
	}

	for range maxAccountNumberAttempts {
		accountNo := store.newAccountNumber()
		inUse := slices.ContainsFunc(store.accounts, func(acc Account) bool {
			return acc.AccountNo == accountNo
		})
		if !inUse {
			return accountNo, nil
		}
	}

	return "", ErrAccountNumberUnavailable
}

// persist saves next and, only once that succeeded, makes it the current collection.
func (store *FileAccountStore) persist(next []Account) error {
	err := store.storage.Save(next)
	if err != nil {
		store.logger.Error("cannot save accounts", "err", err)
		return fmt.Errorf("cannot save accounts: %w", err)
	}

	store.accounts = next
	return nil
}
