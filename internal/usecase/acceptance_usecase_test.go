package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"webquote/internal/domain/draft"
	"webquote/internal/domain/pricing"
	mock_interfaces "webquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// fakeSessions serves a canned summary; only the methods Accept touches are
// overridden.
type fakeSessions struct {
	IOfferSessionUseCase
	summary    OfferSummary
	summaryErr error
	flushErr   error
	flushed    int
}

func (f *fakeSessions) GetSummary(ctx context.Context, sessionID string) (OfferSummary, error) {
	return f.summary, f.summaryErr
}

func (f *fakeSessions) FlushDraft(ctx context.Context, sessionID string) error {
	f.flushed++
	return f.flushErr
}

func validSummary(schedule string) OfferSummary {
	return OfferSummary{
		SessionID: "session-1",
		IsValid:   true,
		Snapshot: draft.Snapshot{
			SelectedPackage: &draft.PackageRef{ID: "site", Name: "Website", BasePrice: 1000},
			PaymentSchedule: schedule,
		},
		Breakdown: pricing.Breakdown{Total: 1210},
	}
}

func TestAccept_WithoutDeposit(t *testing.T) {
	sessions := &fakeSessions{summary: validSummary("once")}
	u := NewAcceptanceUseCase(sessions, nil)

	accepted, err := u.Accept(context.Background(), "session-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accepted.SessionID != "session-1" || accepted.AcceptedAt.IsZero() {
		t.Fatalf("unexpected accepted offer: %+v", accepted)
	}
	if accepted.DepositAmount != 0 || accepted.PaymentID != "" {
		t.Fatalf("expected no deposit, got %+v", accepted)
	}
	if sessions.flushed != 1 {
		t.Fatalf("expected one final flush, got %d", sessions.flushed)
	}
}

func TestAccept_IncompleteOffer(t *testing.T) {
	sessions := &fakeSessions{summary: OfferSummary{SessionID: "session-1"}}
	u := NewAcceptanceUseCase(sessions, nil)

	if _, err := u.Accept(context.Background(), "session-1", false); !errors.Is(err, ErrOfferIncomplete) {
		t.Fatalf("expected ErrOfferIncomplete, got %v", err)
	}
	if sessions.flushed != 0 {
		t.Fatalf("expected no flush for an incomplete offer")
	}
}

func TestAccept_UnknownSession(t *testing.T) {
	sessions := &fakeSessions{summaryErr: ErrSessionNotFound}
	u := NewAcceptanceUseCase(sessions, nil)

	if _, err := u.Accept(context.Background(), "nope", false); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAccept_FlushFailureTolerated(t *testing.T) {
	sessions := &fakeSessions{summary: validSummary("once"), flushErr: errors.New("table unavailable")}
	u := NewAcceptanceUseCase(sessions, nil)

	if _, err := u.Accept(context.Background(), "session-1", false); err != nil {
		t.Fatalf("expected acceptance despite a failed flush, got %v", err)
	}
}

func TestAccept_DepositAmounts(t *testing.T) {
	tests := []struct {
		schedule string
		want     float64
	}{
		{"once", 1210},
		{"split_2x25", 605},
		{"split_3x33", 411.40},
	}

	for _, tc := range tests {
		t.Run(tc.schedule, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body struct {
						TransactionAmount float64 `json:"transaction_amount"`
						ExternalReference string  `json:"external_reference"`
					}
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if body.TransactionAmount != tc.want {
						t.Fatalf("expected deposit %v, got %v", tc.want, body.TransactionAmount)
					}
					if body.ExternalReference != "session-1" {
						t.Fatalf("unexpected reference: %q", body.ExternalReference)
					}
					return "12345", "approved", json.RawMessage(`{}`), nil
				})

			sessions := &fakeSessions{summary: validSummary(tc.schedule)}
			u := NewAcceptanceUseCase(sessions, gateway)

			accepted, err := u.Accept(context.Background(), "session-1", true)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if accepted.DepositAmount != tc.want {
				t.Fatalf("expected deposit %v, got %v", tc.want, accepted.DepositAmount)
			}
			if accepted.PaymentID != "12345" || accepted.PaymentStatus != "approved" {
				t.Fatalf("unexpected payment result: %+v", accepted)
			}
		})
	}
}

func TestAccept_DepositWithoutGateway(t *testing.T) {
	sessions := &fakeSessions{summary: validSummary("once")}
	u := NewAcceptanceUseCase(sessions, nil)

	if _, err := u.Accept(context.Background(), "session-1", true); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestAccept_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		Return("", "", nil, errors.New("provider rejected"))

	sessions := &fakeSessions{summary: validSummary("once")}
	u := NewAcceptanceUseCase(sessions, gateway)

	if _, err := u.Accept(context.Background(), "session-1", true); !errors.Is(err, ErrDepositFailed) {
		t.Fatalf("expected ErrDepositFailed, got %v", err)
	}
}
