package entities

import "strings"

// CustomLineItem is an ad hoc charge outside the catalog.
type CustomLineItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OfferConfiguration is the mutable aggregate behind one in-progress proposal.
//
// A single editing session owns the instance; mutation goes through the methods
// below, which keep the aggregate consistent:
//   - every selected option is eligible under the selected package
//   - the two quantity counters and their linked options move together
//     (qty 0 <=> option absent)
//   - at most one maintenance option occupies the maintenance slot
//   - the discount stays within the fixed policy set
//
// Mutators validate locally by clamping or ignoring bad input; none of them
// performs I/O and none can leave the aggregate in an inconsistent state.
type OfferConfiguration struct {
	SelectedPackage     *Package
	SelectedOptions     map[string]Option
	CustomPrices        map[string]float64
	OptionNotes         map[string]string
	SelectedMaintenance *Option
	ExtraPagesQty       int
	ContentPagesQty     int
	CustomLineItems     []CustomLineItem
	Discount            Discount
	PaymentSchedule     PaymentSchedule
	ScopeDescription    string
	Timeline            string
}

// NewOfferConfiguration returns an empty configuration: no package, no
// selections, one-shot payment schedule.
func NewOfferConfiguration() *OfferConfiguration {
	return &OfferConfiguration{
		SelectedOptions: make(map[string]Option),
		CustomPrices:    make(map[string]float64),
		OptionNotes:     make(map[string]string),
		Discount:        Discount{Type: DiscountTypeNone},
		PaymentSchedule: PaymentScheduleOnce,
	}
}

// IsValid reports whether the offer can be priced, saved as final or exported.
func (o *OfferConfiguration) IsValid() bool {
	return o.SelectedPackage != nil
}

// SetPackage replaces the selected package and drops every selected option
// that is no longer eligible, together with its custom price and note. When a
// dropped option is quantity-linked its counter resets; a dropped maintenance
// option empties the maintenance slot.
func (o *OfferConfiguration) SetPackage(pkg *Package) {
	if pkg != nil {
		p := *pkg
		o.SelectedPackage = &p
	} else {
		o.SelectedPackage = nil
	}
	o.filterIneligible()
}

func (o *OfferConfiguration) filterIneligible() {
	for id, opt := range o.SelectedOptions {
		if opt.EligibleFor(o.SelectedPackage) {
			continue
		}
		delete(o.SelectedOptions, id)
		delete(o.CustomPrices, id)
		delete(o.OptionNotes, id)
		o.resetLinkedQuantity(id)
	}
	if o.SelectedMaintenance != nil && o.SelectedPackage != nil && !o.SelectedMaintenance.EligibleFor(o.SelectedPackage) {
		o.SelectedMaintenance = nil
	}
}

func (o *OfferConfiguration) resetLinkedQuantity(optionID string) {
	switch optionID {
	case OptionIDExtraPages:
		o.ExtraPagesQty = 0
	case OptionIDContentPages:
		o.ContentPagesQty = 0
	}
}

// ToggleOption adds opt when absent (and eligible) and removes it when present.
// Removal discards the option's note but keeps any entered custom price, so a
// re-toggle restores the negotiated amount. Toggling a quantity-linked option
// moves its counter between 0 and 1.
func (o *OfferConfiguration) ToggleOption(opt Option) {
	if _, selected := o.SelectedOptions[opt.ID]; selected {
		delete(o.SelectedOptions, opt.ID)
		delete(o.OptionNotes, opt.ID)
		o.resetLinkedQuantity(opt.ID)
		return
	}
	if !opt.EligibleFor(o.SelectedPackage) {
		return
	}
	o.SelectedOptions[opt.ID] = opt
	switch opt.ID {
	case OptionIDExtraPages:
		if o.ExtraPagesQty == 0 {
			o.ExtraPagesQty = 1
		}
	case OptionIDContentPages:
		if o.ContentPagesQty == 0 {
			o.ContentPagesQty = 1
		}
	}
}

// SetCustomPrice records the negotiated amount for a negotiable option. The
// value is kept regardless of whether the option is currently selected.
// Negative amounts are ignored.
func (o *OfferConfiguration) SetCustomPrice(optionID string, amount float64) {
	if amount < 0 {
		return
	}
	o.CustomPrices[optionID] = amount
}

// SetOptionNote stores a free-form clarification for an option. An empty note
// removes the entry.
func (o *OfferConfiguration) SetOptionNote(optionID, note string) {
	if strings.TrimSpace(note) == "" {
		delete(o.OptionNotes, optionID)
		return
	}
	o.OptionNotes[optionID] = note
}

// SetExtraPages sets the extra-pages counter and keeps the linked option in
// sync: qty > 0 selects it, qty 0 deselects it. Negative quantities clamp to 0.
// opt must be the catalog's extra-pages option.
func (o *OfferConfiguration) SetExtraPages(opt Option, qty int) {
	o.ExtraPagesQty = o.setLinkedQuantity(opt, OptionIDExtraPages, qty)
}

// SetContentPages mirrors SetExtraPages for the content-pages option.
func (o *OfferConfiguration) SetContentPages(opt Option, qty int) {
	o.ContentPagesQty = o.setLinkedQuantity(opt, OptionIDContentPages, qty)
}

func (o *OfferConfiguration) setLinkedQuantity(opt Option, wantID string, qty int) int {
	if opt.ID != wantID {
		return o.linkedQuantity(wantID)
	}
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		delete(o.SelectedOptions, opt.ID)
		delete(o.OptionNotes, opt.ID)
		return 0
	}
	if !opt.EligibleFor(o.SelectedPackage) {
		return 0
	}
	o.SelectedOptions[opt.ID] = opt
	return qty
}

func (o *OfferConfiguration) linkedQuantity(optionID string) int {
	if optionID == OptionIDContentPages {
		return o.ContentPagesQty
	}
	return o.ExtraPagesQty
}

// SetMaintenance replaces the single maintenance slot. A nil option clears it;
// anything outside the maintenance category is ignored.
func (o *OfferConfiguration) SetMaintenance(opt *Option) {
	if opt == nil {
		o.SelectedMaintenance = nil
		return
	}
	if opt.Category != OptionCategoryMaintenance {
		return
	}
	m := *opt
	o.SelectedMaintenance = &m
}

// AddCustomLineItem appends an ad hoc charge. It reports false and leaves the
// offer untouched when the name is blank or the price is not strictly positive.
func (o *OfferConfiguration) AddCustomLineItem(item CustomLineItem) bool {
	if strings.TrimSpace(item.Name) == "" || item.Price <= 0 {
		return false
	}
	o.CustomLineItems = append(o.CustomLineItems, item)
	return true
}

// RemoveCustomLineItem deletes the line item with the given id, reporting
// whether anything was removed.
func (o *OfferConfiguration) RemoveCustomLineItem(id string) bool {
	for i, it := range o.CustomLineItems {
		if it.ID == id {
			o.CustomLineItems = append(o.CustomLineItems[:i], o.CustomLineItems[i+1:]...)
			return true
		}
	}
	return false
}

// SetDiscount applies the discount policy:
//   - none forces value 0
//   - percentage values outside the allowed set fall back to no discount
//   - fixed values clamp to >= 0; capping at the subtotal is the calculator's job
func (o *OfferConfiguration) SetDiscount(t DiscountType, value float64) {
	switch t {
	case DiscountTypePercentage:
		if !IsAllowedPercentage(value) {
			o.Discount = Discount{Type: DiscountTypeNone}
			return
		}
		o.Discount = Discount{Type: DiscountTypePercentage, Value: value}
	case DiscountTypeFixed:
		if value < 0 {
			value = 0
		}
		o.Discount = Discount{Type: DiscountTypeFixed, Value: value}
	default:
		o.Discount = Discount{Type: DiscountTypeNone}
	}
}

// SetPaymentSchedule ignores unknown schedules.
func (o *OfferConfiguration) SetPaymentSchedule(s PaymentSchedule) {
	if ValidPaymentSchedule(s) {
		o.PaymentSchedule = s
	}
}

func (o *OfferConfiguration) SetScopeDescription(text string) { o.ScopeDescription = text }

func (o *OfferConfiguration) SetTimeline(text string) { o.Timeline = text }

// LoadState bulk-applies a reconstructed configuration, then re-runs the
// eligibility filter and the quantity/option linkage so that a stale snapshot
// can never leave the aggregate inconsistent with itself.
func (o *OfferConfiguration) LoadState(loaded *OfferConfiguration) {
	if loaded == nil {
		return
	}
	o.SelectedPackage = loaded.SelectedPackage
	o.SelectedOptions = loaded.SelectedOptions
	o.CustomPrices = loaded.CustomPrices
	o.OptionNotes = loaded.OptionNotes
	o.SelectedMaintenance = loaded.SelectedMaintenance
	o.ExtraPagesQty = loaded.ExtraPagesQty
	o.ContentPagesQty = loaded.ContentPagesQty
	o.CustomLineItems = loaded.CustomLineItems
	o.Discount = loaded.Discount
	o.PaymentSchedule = loaded.PaymentSchedule
	o.ScopeDescription = loaded.ScopeDescription
	o.Timeline = loaded.Timeline

	if o.SelectedOptions == nil {
		o.SelectedOptions = make(map[string]Option)
	}
	if o.CustomPrices == nil {
		o.CustomPrices = make(map[string]float64)
	}
	if o.OptionNotes == nil {
		o.OptionNotes = make(map[string]string)
	}

	o.filterIneligible()
	o.relinkQuantities()

	if o.Discount.Type == DiscountTypePercentage && !IsAllowedPercentage(o.Discount.Value) {
		o.Discount = Discount{Type: DiscountTypeNone}
	}
	if o.Discount.Type == DiscountTypeFixed && o.Discount.Value < 0 {
		o.Discount.Value = 0
	}
	if !ValidPaymentSchedule(o.PaymentSchedule) {
		o.PaymentSchedule = PaymentScheduleOnce
	}
}

func (o *OfferConfiguration) relinkQuantities() {
	if o.ExtraPagesQty < 0 {
		o.ExtraPagesQty = 0
	}
	if o.ContentPagesQty < 0 {
		o.ContentPagesQty = 0
	}
	if _, ok := o.SelectedOptions[OptionIDExtraPages]; !ok {
		o.ExtraPagesQty = 0
	} else if o.ExtraPagesQty == 0 {
		o.ExtraPagesQty = 1
	}
	if _, ok := o.SelectedOptions[OptionIDContentPages]; !ok {
		o.ContentPagesQty = 0
	} else if o.ContentPagesQty == 0 {
		o.ContentPagesQty = 1
	}
}
