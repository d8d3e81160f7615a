package response

import (
	"time"

	"webquote/internal/domain/draft"
	"webquote/internal/domain/pricing"
	"webquote/internal/usecase"
)

// OfferSummaryResponse is returned by every configuration operation: the
// serialized state plus the breakdown recomputed for this read.
type OfferSummaryResponse struct {
	SessionID string            `json:"session_id"`
	IsValid   bool              `json:"is_valid"`
	Restored  bool              `json:"restored"`
	State     draft.Snapshot    `json:"state"`
	Pricing   pricing.Breakdown `json:"pricing"`
}

func FromOfferSummary(s usecase.OfferSummary) OfferSummaryResponse {
	return OfferSummaryResponse{
		SessionID: s.SessionID,
		IsValid:   s.IsValid,
		Restored:  s.Restored,
		State:     s.Snapshot,
		Pricing:   s.Breakdown,
	}
}

type AcceptedOfferResponse struct {
	SessionID     string            `json:"session_id"`
	AcceptedAt    time.Time         `json:"accepted_at"`
	State         draft.Snapshot    `json:"state"`
	Pricing       pricing.Breakdown `json:"pricing"`
	DepositAmount float64           `json:"deposit_amount,omitempty"`
	PaymentID     string            `json:"payment_id,omitempty"`
	PaymentStatus string            `json:"payment_status,omitempty"`
}

func FromAcceptedOffer(a usecase.AcceptedOffer) AcceptedOfferResponse {
	return AcceptedOfferResponse{
		SessionID:     a.SessionID,
		AcceptedAt:    a.AcceptedAt,
		State:         a.Snapshot,
		Pricing:       a.Breakdown,
		DepositAmount: a.DepositAmount,
		PaymentID:     a.PaymentID,
		PaymentStatus: a.PaymentStatus,
	}
}
