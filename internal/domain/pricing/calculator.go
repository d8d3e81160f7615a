package pricing

import (
	"math"

	"webquote/internal/domain/entities"
)

// TaxRate is the flat VAT rate applied to every offer.
const TaxRate = 0.21

// Breakdown is the money contract consumed by the summary view, document
// rendering and the acceptance flow. All amounts are kept at full precision;
// only Total is rounded, to the currency's minor unit, so component sums never
// drift from the rounded total by a cent.
type Breakdown struct {
	PackageAmount          float64 `json:"package_amount"`
	OptionsAmount          float64 `json:"options_amount"`
	ExtraPagesAmount       float64 `json:"extra_pages_amount"`
	ContentAmount          float64 `json:"content_amount"`
	CustomLineItemsAmount  float64 `json:"custom_line_items_amount"`
	SubtotalBeforeDiscount float64 `json:"subtotal_before_discount"`
	DiscountAmount         float64 `json:"discount_amount"`
	Subtotal               float64 `json:"subtotal"`
	Tax                    float64 `json:"tax"`
	Total                  float64 `json:"total"`
	RecurringMonthly       float64 `json:"recurring_monthly"`
}

// Calculate derives the full money breakdown from the offer. It is a pure
// function: no I/O, no mutation, safe to call on every read.
func Calculate(o *entities.OfferConfiguration) Breakdown {
	var b Breakdown

	if o.SelectedPackage != nil {
		b.PackageAmount = o.SelectedPackage.BasePrice
	}

	for id, opt := range o.SelectedOptions {
		if opt.QuantityLinked() {
			continue
		}
		b.OptionsAmount += resolvedPrice(o, id, opt)
	}

	if opt, ok := o.SelectedOptions[entities.OptionIDExtraPages]; ok {
		b.ExtraPagesAmount = float64(o.ExtraPagesQty) * opt.Price
	}
	if opt, ok := o.SelectedOptions[entities.OptionIDContentPages]; ok {
		b.ContentAmount = float64(o.ContentPagesQty) * opt.Price
	}

	for _, it := range o.CustomLineItems {
		b.CustomLineItemsAmount += it.Price
	}

	b.SubtotalBeforeDiscount = b.PackageAmount + b.OptionsAmount + b.ExtraPagesAmount + b.ContentAmount + b.CustomLineItemsAmount

	switch o.Discount.Type {
	case entities.DiscountTypePercentage:
		b.DiscountAmount = b.SubtotalBeforeDiscount * o.Discount.Value / 100
	case entities.DiscountTypeFixed:
		b.DiscountAmount = math.Min(o.Discount.Value, b.SubtotalBeforeDiscount)
	}
	if b.DiscountAmount < 0 {
		b.DiscountAmount = 0
	}

	b.Subtotal = b.SubtotalBeforeDiscount - b.DiscountAmount
	b.Tax = b.Subtotal * TaxRate
	b.Total = round2(b.Subtotal + b.Tax)

	if o.SelectedMaintenance != nil {
		b.RecurringMonthly = o.SelectedMaintenance.Price
	}

	return b
}

// resolvedPrice is the effective price of a selected option: the entered
// custom price for negotiable options, the catalog price otherwise.
func resolvedPrice(o *entities.OfferConfiguration, id string, opt entities.Option) float64 {
	if opt.Negotiable {
		return o.CustomPrices[id]
	}
	return opt.Price
}

// round2 rounds half-up to two decimals. Amounts are never negative here, so
// half-away-from-zero and half-up coincide.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
