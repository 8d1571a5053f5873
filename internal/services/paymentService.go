package services

import (
	"context"
	"fmt"

	"github.com/arzan03/ThreadHive/internal/models"
)

const activeStatus = "Active"

// IntentCreator is the payment provider.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency, email string) (clientSecret string, err error)
}

type PaymentOptions struct {
	AmountCents int64
	Currency    string
	BadgeURL    string
}

type PaymentService struct {
	provider IntentCreator
	payments DocumentRepository
	users    UserRepository
	opts     PaymentOptions
}

func NewPaymentService(provider IntentCreator, payments DocumentRepository, users UserRepository, opts PaymentOptions) *PaymentService {
	return &PaymentService{provider: provider, payments: payments, users: users, opts: opts}
}

// CreateIntent asks the provider for a membership payment of the fixed price.
func (s *PaymentService) CreateIntent(ctx context.Context, email string) (string, error) {
	secret, err := s.provider.CreateIntent(ctx, s.opts.AmountCents, s.opts.Currency, email)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return secret, nil
}

// RecordPayment logs a completed payment. It does not grant membership; that
// is a separate call with no transaction tying the two together.
func (s *PaymentService) RecordPayment(ctx context.Context, requester string, payment models.Document) (models.InsertResult, error) {
	delete(payment, "_id")
	switch email, _ := payment["email"].(string); email {
	case "":
		payment["email"] = requester
	case requester:
	default:
		return models.InsertResult{}, Errorf(ErrForbidden, "payments can only be recorded for your own account")
	}

	id, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return models.InsertResult{}, err
	}
	return inserted(id), nil
}

// GrantMembership turns the user into a member with the gold badge.
func (s *PaymentService) GrantMembership(ctx context.Context, requester, email string) (models.UpdateResult, error) {
	if requester != email {
		return models.UpdateResult{}, Errorf(ErrForbidden, "forbidden access")
	}
	res, err := s.users.GrantMembership(ctx, email, s.opts.BadgeURL, activeStatus)
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		return res, Errorf(ErrNotFound, "user not found")
	}
	return res, nil
}
