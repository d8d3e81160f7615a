package entities

// OptionCategory groups catalog add-ons by concern.
type OptionCategory string

const (
	OptionCategoryScope       OptionCategory = "scope"
	OptionCategoryComplexity  OptionCategory = "complexity"
	OptionCategoryGrowth      OptionCategory = "growth"
	OptionCategoryMaintenance OptionCategory = "maintenance"
)

// Quantity-linked option ids. These two options are priced per unit and their
// selection state is derived from a numeric quantity on the offer. The ids are
// fixed business policy, not configuration.
const (
	OptionIDExtraPages   = "extra-pages"
	OptionIDContentPages = "content-pages"
)

// Option is a catalog add-on.
//
// Pricing semantics:
//   - Negotiable=false: Price is the flat catalog price (per unit for the two
//     quantity-linked options).
//   - Negotiable=true: the catalog carries no fixed price; the offer stores the
//     user-entered amount in its custom price map. Price is 0 in that case but
//     0 never means "free".
//
// AppliesTo is the eligibility relation: the option may only be selected while
// the chosen package's category is in the set. An empty set means "any package".
type Option struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	Category    OptionCategory    `json:"category"`
	IsRecurring bool              `json:"is_recurring"`
	Negotiable  bool              `json:"negotiable"`
	AppliesTo   []PackageCategory `json:"applies_to,omitempty"`
}

// EligibleFor reports whether the option may be selected under pkg.
// A nil package makes every option ineligible.
func (o Option) EligibleFor(pkg *Package) bool {
	if pkg == nil {
		return false
	}
	if len(o.AppliesTo) == 0 {
		return true
	}
	for _, c := range o.AppliesTo {
		if c == pkg.Category {
			return true
		}
	}
	return false
}

// QuantityLinked reports whether the option is one of the two per-unit priced
// options driven by a quantity counter on the offer.
func (o Option) QuantityLinked() bool {
	return o.ID == OptionIDExtraPages || o.ID == OptionIDContentPages
}
