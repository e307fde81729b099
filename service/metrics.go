package service

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/go-http-server/ledger/service"

// Outcomes recorded on the ledger.operations counter.
const (
	OutcomeOK                 = "ok"
	OutcomeInvalid            = "invalid"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInsufficientFunds  = "insufficient_funds"
	OutcomeError              = "error"
)

type storeMetrics struct {
	operations metric.Int64Counter
}

func newStoreMetrics(provider metric.MeterProvider) (*storeMetrics, error) {
	meter := provider.Meter(meterName)

	operations, err := meter.Int64Counter(
		"ledger.operations",
		metric.WithDescription("Account store operations by outcome."),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	return &storeMetrics{operations: operations}, nil
}

func (m *storeMetrics) record(operation string, err error) {
	m.operations.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcomeOf(err)),
	))
}

func outcomeOf(err error) string {
	var validation *ValidationError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &validation):
		return OutcomeInvalid
	case errors.Is(err, ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	case errors.Is(err, ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	default:
		return OutcomeError
	}
}
