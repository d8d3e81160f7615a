package draft

// Snapshot is the stored shape of an in-progress offer.
//
// The shape is stable and additive-only: stored snapshots may predate catalog
// or schema changes, so existing fields must never change meaning. It is
// deliberately denormalized: names and resolved prices are written at save
// time so a stored draft stays human-readable even after the catalog moves on.
// Reconstruction ignores the denormalized copies and re-resolves every id
// against the live catalog.
type Snapshot struct {
	SelectedPackage     *PackageRef        `json:"selectedPackage"`
	SelectedOptions     []OptionRef        `json:"selectedOptions"`
	CustomPrices        map[string]float64 `json:"customPrices,omitempty"`
	OptionNotes         map[string]string  `json:"optionNotes,omitempty"`
	SelectedMaintenance *OptionRef         `json:"selectedMaintenance"`
	ExtraPages          int                `json:"extraPages"`
	ContentPages        int                `json:"contentPages"`
	CustomLineItems     []LineItemRef      `json:"customLineItems,omitempty"`
	Discount            DiscountRef        `json:"discount"`
	PaymentSchedule     string             `json:"paymentSchedule"`
	ScopeDescription    string             `json:"scopeDescription"`
	Timeline            string             `json:"timeline"`
}

// PackageRef carries the package id plus the denormalized name/price at save time.
type PackageRef struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

// OptionRef carries the option id plus name and the price as resolved at save
// time (custom price for negotiable options).
type OptionRef struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type LineItemRef struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type DiscountRef struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}
