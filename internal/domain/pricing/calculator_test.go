package pricing

import (
	"math"
	"testing"

	"webquote/internal/domain/entities"
)

var (
	sitePkg = entities.Package{ID: "site", Name: "Website", BasePrice: 700, Category: entities.PackageCategoryWebsite}

	optFlat = entities.Option{ID: "logo", Name: "Logo", Price: 400, Category: entities.OptionCategoryScope}
	optNeg  = entities.Option{ID: "photo", Name: "Photo shoot", Negotiable: true, Category: entities.OptionCategoryScope}
	optPage = entities.Option{ID: entities.OptionIDExtraPages, Name: "Extra page", Price: 125, Category: entities.OptionCategoryScope,
		AppliesTo: []entities.PackageCategory{entities.PackageCategoryWebsite}}
	optMaint = entities.Option{ID: "maint", Name: "Maintenance", Price: 95, IsRecurring: true, Category: entities.OptionCategoryMaintenance}
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	// 700 package + 400 flat option + 2 extra pages at 125, 10% discount, 21% tax.
	o := entities.NewOfferConfiguration()
	o.SetPackage(&sitePkg)
	o.ToggleOption(optFlat)
	o.SetExtraPages(optPage, 2)
	o.SetDiscount(entities.DiscountTypePercentage, 10)

	b := Calculate(o)

	if !almostEqual(b.SubtotalBeforeDiscount, 1350) {
		t.Fatalf("expected subtotal before discount 1350, got %v", b.SubtotalBeforeDiscount)
	}
	if !almostEqual(b.DiscountAmount, 135) {
		t.Fatalf("expected discount 135, got %v", b.DiscountAmount)
	}
	if !almostEqual(b.Subtotal, 1215) {
		t.Fatalf("expected subtotal 1215, got %v", b.Subtotal)
	}
	if !almostEqual(b.Tax, 255.15) {
		t.Fatalf("expected tax 255.15, got %v", b.Tax)
	}
	if b.Total != 1470.15 {
		t.Fatalf("expected total 1470.15, got %v", b.Total)
	}
}

func TestCalculate_EmptyConfiguration(t *testing.T) {
	o := entities.NewOfferConfiguration()
	b := Calculate(o)
	if b.Total != 0 {
		t.Fatalf("expected zero total, got %v", b.Total)
	}
	if o.IsValid() {
		t.Fatalf("expected offer invalid without a package")
	}
}

func TestCalculate_FixedDiscountClampsAtSubtotal(t *testing.T) {
	o := entities.NewOfferConfiguration()
	o.SetPackage(&entities.Package{ID: "p", BasePrice: 1000, Category: entities.PackageCategoryWebsite})
	o.SetDiscount(entities.DiscountTypeFixed, 5000)

	b := Calculate(o)
	if !almostEqual(b.DiscountAmount, 1000) {
		t.Fatalf("expected discount clamped to 1000, got %v", b.DiscountAmount)
	}
	if b.Subtotal != 0 || b.Tax != 0 || b.Total != 0 {
		t.Fatalf("expected zeroed totals, got %+v", b)
	}
}

func TestCalculate_NegotiablePricing(t *testing.T) {
	o := entities.NewOfferConfiguration()
	o.SetPackage(&sitePkg)
	o.ToggleOption(optNeg)

	// No custom price entered yet: contributes 0, which means "not fixed", not free.
	b := Calculate(o)
	if !almostEqual(b.OptionsAmount, 0) {
		t.Fatalf("expected 0 options amount, got %v", b.OptionsAmount)
	}

	o.SetCustomPrice("photo", 850)
	b = Calculate(o)
	if !almostEqual(b.OptionsAmount, 850) {
		t.Fatalf("expected custom price used, got %v", b.OptionsAmount)
	}
}

func TestCalculate_RecurringReportedSeparately(t *testing.T) {
	o := entities.NewOfferConfiguration()
	o.SetPackage(&sitePkg)
	o.SetMaintenance(&optMaint)

	b := Calculate(o)
	if !almostEqual(b.RecurringMonthly, 95) {
		t.Fatalf("expected recurring 95, got %v", b.RecurringMonthly)
	}
	if !almostEqual(b.Total, round2(700*1.21)) {
		t.Fatalf("expected maintenance excluded from total, got %v", b.Total)
	}
}

func TestCalculate_QuantityPricing(t *testing.T) {
	o := entities.NewOfferConfiguration()
	o.SetPackage(&sitePkg)
	o.SetExtraPages(optPage, 4)

	b := Calculate(o)
	if !almostEqual(b.ExtraPagesAmount, 500) {
		t.Fatalf("expected 4*125=500, got %v", b.ExtraPagesAmount)
	}
	if !almostEqual(b.OptionsAmount, 0) {
		t.Fatalf("expected quantity option excluded from flat options amount, got %v", b.OptionsAmount)
	}
}

func TestCalculate_Monotonicity(t *testing.T) {
	o := entities.NewOfferConfiguration()
	o.SetPackage(&sitePkg)
	base := Calculate(o).Total

	o.ToggleOption(optFlat)
	withOpt := Calculate(o).Total
	if withOpt < base {
		t.Fatalf("adding an option lowered the total: %v -> %v", base, withOpt)
	}

	o.AddCustomLineItem(entities.CustomLineItem{ID: "x", Name: "Rush", Price: 150})
	withItem := Calculate(o).Total
	if withItem < withOpt {
		t.Fatalf("adding a line item lowered the total: %v -> %v", withOpt, withItem)
	}

	o.SetDiscount(entities.DiscountTypePercentage, 5)
	d5 := Calculate(o).Total
	o.SetDiscount(entities.DiscountTypePercentage, 15)
	d15 := Calculate(o).Total
	if d15 > d5 {
		t.Fatalf("larger discount raised the total: %v -> %v", d5, d15)
	}
}

func TestCalculate_RoundingOnlyAtTheEnd(t *testing.T) {
	// 3 content-like amounts that would drift if rounded per component.
	o := entities.NewOfferConfiguration()
	o.SetPackage(&entities.Package{ID: "p", BasePrice: 33.335, Category: entities.PackageCategoryWebsite})
	o.AddCustomLineItem(entities.CustomLineItem{ID: "a", Name: "A", Price: 33.335})
	o.AddCustomLineItem(entities.CustomLineItem{ID: "b", Name: "B", Price: 33.335})

	b := Calculate(o)
	want := round2((33.335 * 3) * 1.21)
	if b.Total != want {
		t.Fatalf("expected %v, got %v", want, b.Total)
	}
}
