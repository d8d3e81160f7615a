package request

import "strings"

// StartSessionRequest optionally resumes a known draft key; an empty id asks
// the service to mint a fresh one.
type StartSessionRequest struct {
	SessionID string `json:"session_id"`
}

func (r StartSessionRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

// SetPackageRequest selects a base package; an empty id clears the selection.
type SetPackageRequest struct {
	PackageID string `json:"package_id"`
}

type ToggleOptionRequest struct {
	OptionID string `json:"option_id" binding:"required"`
}

type CustomPriceRequest struct {
	OptionID string   `json:"option_id" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"`
}

type OptionNoteRequest struct {
	OptionID string `json:"option_id" binding:"required"`
	Note     string `json:"note"`
}

// QuantitiesRequest updates one or both quantity counters; omitted fields are
// left unchanged.
type QuantitiesRequest struct {
	ExtraPages   *int `json:"extra_pages"`
	ContentPages *int `json:"content_pages"`
}

// MaintenanceRequest picks the maintenance tier; an empty id clears the slot.
type MaintenanceRequest struct {
	OptionID string `json:"option_id"`
}

type LineItemRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

type DiscountRequest struct {
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value"`
}

type PaymentScheduleRequest struct {
	Schedule string `json:"schedule" binding:"required"`
}

// DetailsRequest updates the narrative fields; omitted fields are left unchanged.
type DetailsRequest struct {
	ScopeDescription *string `json:"scope_description"`
	Timeline         *string `json:"timeline"`
}

type AcceptOfferRequest struct {
	WithDeposit bool `json:"with_deposit"`
}
