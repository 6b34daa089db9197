package service

import (
	"github.com/SadatRiyad/BB-Vote-Server/pkg/logger"

	"github.com/google/uuid"
)

// PaymentProvider charges the requester before a contact request is opened.
// Charge returns a provider reference for the completed charge.
type PaymentProvider interface {
	Charge(amount int, currency, paymentMethodID string) (string, error)
}

// loggingPaymentProvider approves every charge and records it in the log.
// It stands in wherever no external processor is configured.
type loggingPaymentProvider struct {
	logger *logger.Logger
}

// NewLoggingPaymentProvider creates a payment provider that only logs charges
func NewLoggingPaymentProvider(logger *logger.Logger) PaymentProvider {
	return &loggingPaymentProvider{logger: logger}
}

// Charge approves the charge and returns a generated reference
func (p *loggingPaymentProvider) Charge(amount int, currency, paymentMethodID string) (string, error) {
	reference := uuid.NewString()
	p.logger.Infow("Charge approved", "amount", amount, "currency", currency,
		"payment_method_id", paymentMethodID, "reference", reference)
	return reference, nil
}
