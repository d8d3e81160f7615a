package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"webquote/internal/domain/draft"
	"webquote/internal/domain/entities"
	"webquote/internal/domain/pricing"
	"webquote/internal/usecase/interfaces"
)

var (
	ErrOfferIncomplete      = errors.New("offer has no selected package")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrDepositFailed        = errors.New("deposit payment failed")
)

// AcceptedOffer is the final artifact of accepting an offer: the frozen
// snapshot, its breakdown and, when a deposit was collected, the provider's
// payment reference.
type AcceptedOffer struct {
	SessionID     string
	AcceptedAt    time.Time
	Snapshot      draft.Snapshot
	Breakdown     pricing.Breakdown
	DepositAmount float64
	PaymentID     string
	PaymentStatus string
}

// IAcceptanceUseCase turns a valid in-progress offer into an accepted one.
type IAcceptanceUseCase interface {
	Accept(ctx context.Context, sessionID string, withDeposit bool) (AcceptedOffer, error)
}

type AcceptanceUseCase struct {
	sessions IOfferSessionUseCase
	gateway  interfaces.IPaymentGateway
}

var _ IAcceptanceUseCase = (*AcceptanceUseCase)(nil)

func NewAcceptanceUseCase(sessions IOfferSessionUseCase, gateway interfaces.IPaymentGateway) *AcceptanceUseCase {
	return &AcceptanceUseCase{sessions: sessions, gateway: gateway}
}

// Accept gates on the offer being valid (a package is selected), flushes the
// final draft past the debounce, and optionally collects the schedule's
// deposit share through the payment gateway. A zero-priced accepted artifact
// is never produced.
func (u *AcceptanceUseCase) Accept(ctx context.Context, sessionID string, withDeposit bool) (AcceptedOffer, error) {
	summary, err := u.sessions.GetSummary(ctx, sessionID)
	if err != nil {
		return AcceptedOffer{}, err
	}
	if !summary.IsValid {
		return AcceptedOffer{}, ErrOfferIncomplete
	}

	if err := u.sessions.FlushDraft(ctx, sessionID); err != nil {
		// Memory stays authoritative; acceptance proceeds on the in-memory state.
		log.Printf("[offer][accept] final draft save failed session_id=%s err=%v", sessionID, err)
	}

	accepted := AcceptedOffer{
		SessionID:  summary.SessionID,
		AcceptedAt: time.Now().UTC(),
		Snapshot:   summary.Snapshot,
		Breakdown:  summary.Breakdown,
	}

	if !withDeposit {
		return accepted, nil
	}
	if u.gateway == nil {
		return AcceptedOffer{}, ErrGatewayNotConfigured
	}

	schedule := entities.PaymentSchedule(summary.Snapshot.PaymentSchedule)
	accepted.DepositAmount = math.Round(summary.Breakdown.Total*schedule.DepositFraction()*100) / 100

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": accepted.DepositAmount,
		"description":        fmt.Sprintf("Offer %s deposit", summary.SessionID),
		"external_reference": summary.SessionID,
	})
	if err != nil {
		return AcceptedOffer{}, err
	}

	log.Printf("[offer][accept] collecting deposit session_id=%s amount=%.2f schedule=%s", sessionID, accepted.DepositAmount, schedule)
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[offer][accept] deposit failed session_id=%s err=%v", sessionID, err)
		return AcceptedOffer{}, fmt.Errorf("%w: %v", ErrDepositFailed, err)
	}
	accepted.PaymentID = paymentID
	accepted.PaymentStatus = status
	return accepted, nil
}
