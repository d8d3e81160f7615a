package entities

// DiscountType selects how a discount value is interpreted by the calculator.
type DiscountType string

const (
	DiscountTypeNone       DiscountType = "none"
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// AllowedDiscountPercentages is the closed set of percentage discounts the
// business hands out. Anything else falls back to no discount.
var AllowedDiscountPercentages = []float64{0, 5, 10, 15}

// Discount is a percentage or fixed-amount reduction on the pre-tax subtotal.
// Fixed amounts are stored unbounded here; the calculator caps them at the
// subtotal.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// IsAllowedPercentage reports whether v is in the fixed percentage policy set.
func IsAllowedPercentage(v float64) bool {
	for _, p := range AllowedDiscountPercentages {
		if p == v {
			return true
		}
	}
	return false
}

// PaymentSchedule describes the invoicing split. It never affects the total.
type PaymentSchedule string

const (
	PaymentScheduleOnce   PaymentSchedule = "once"
	PaymentScheduleSplit2 PaymentSchedule = "split_2x25"
	PaymentScheduleSplit3 PaymentSchedule = "split_3x33"
)

// ValidPaymentSchedule reports whether s is a known schedule.
func ValidPaymentSchedule(s PaymentSchedule) bool {
	switch s {
	case PaymentScheduleOnce, PaymentScheduleSplit2, PaymentScheduleSplit3:
		return true
	}
	return false
}

// DepositFraction is the share of the total invoiced up front under s.
func (s PaymentSchedule) DepositFraction() float64 {
	switch s {
	case PaymentScheduleSplit2:
		return 0.50
	case PaymentScheduleSplit3:
		return 0.34
	default:
		return 1.0
	}
}
