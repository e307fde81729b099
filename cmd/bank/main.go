package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/go-http-server/ledger/client"
	"github.com/go-http-server/ledger/sample"
	"github.com/go-http-server/ledger/service"
)

func seedAccounts(store *service.FileAccountStore, n int, logger *slog.Logger) error {
	if n <= 0 || len(store.Accounts()) > 0 {
		return nil
	}

	for range n {
		req := sample.NewAccountRequest()
		accountNo, err := store.CreateAccount(req.Name, req.Age, req.Email, req.PIN)
		if err != nil {
			return err
		}
		logger.Debug("seeded account", "account_no", accountNo, "name", req.Name, "pin", req.PIN)
	}

	return nil
}

func main() {
	dataFile := flag.String("data", "data.json", "Path of the accounts file")
	seed := flag.Int("seed", 0, "Number of sample accounts to create when the ledger is empty")
	metricsAddr := flag.String("metrics-addr", "", "Address to serve Prometheus metrics on, empty disables it")
	uniqueNumbers := flag.Bool("unique-numbers", false, "Regenerate account numbers that are already in use")
	logLevel := flag.String("log-level", "warn", "Log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	err := level.UnmarshalText([]byte(*logLevel))
	if err != nil {
		log.Fatalf("invalid log level %q: %s", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithUniqueAccountNumbers(*uniqueNumbers),
	}

	if *metricsAddr != "" {
		provider, err := newMeterProvider(context.Background())
		if err != nil {
			log.Fatalf("cannot create meter provider: %s", err)
		}
		defer provider.Shutdown(context.Background())

		opts = append(opts, service.WithMeterProvider(provider))
		go serveMetrics(*metricsAddr, logger)
	}

	storage := service.NewJSONFileStorage(*dataFile, logger)
	logger.Info("opening ledger", "path", storage.Path())

	store, err := service.NewFileAccountStore(storage, opts...)
	if err != nil {
		log.Fatalf("cannot open ledger %s: %s", storage.Path(), err)
	}

	err = seedAccounts(store, *seed, logger)
	if err != nil {
		log.Fatalf("cannot seed accounts: %s", err)
	}

	err = client.NewConsole(store, os.Stdin, os.Stdout).Run()
	if err != nil {
		log.Fatalf("cannot read input: %s", err)
	}
}
