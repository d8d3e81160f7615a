package entities

import "testing"

func sitePkg() *Package {
	return &Package{ID: "site", Name: "Website", BasePrice: 700, Category: PackageCategoryWebsite}
}

func shopPkg() *Package {
	return &Package{ID: "shop", Name: "Webshop", BasePrice: 2400, Category: PackageCategoryWebshop}
}

func appPkg() *Package {
	return &Package{ID: "app", Name: "Web App", BasePrice: 4800, Category: PackageCategoryWebapp}
}

var (
	optSEO        = Option{ID: "seo", Name: "SEO", Price: 300, Category: OptionCategoryGrowth}
	optShopImport = Option{ID: "import", Name: "Product import", Price: 350, Category: OptionCategoryComplexity,
		AppliesTo: []PackageCategory{PackageCategoryWebshop}}
	optPhoto = Option{ID: "photo", Name: "Photo shoot", Negotiable: true, Category: OptionCategoryScope}
	optPages = Option{ID: OptionIDExtraPages, Name: "Extra page", Price: 125, Category: OptionCategoryScope,
		AppliesTo: []PackageCategory{PackageCategoryWebsite, PackageCategoryWebshop}}
	optContent = Option{ID: OptionIDContentPages, Name: "Content page", Price: 95, Category: OptionCategoryScope,
		AppliesTo: []PackageCategory{PackageCategoryWebsite, PackageCategoryWebshop}}
	optMaint = Option{ID: "maint", Name: "Maintenance", Price: 45, IsRecurring: true, Category: OptionCategoryMaintenance}
)

func TestOfferConfiguration_ToggleOption(t *testing.T) {
	t.Run("requires a package", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.ToggleOption(optSEO)
		if len(o.SelectedOptions) != 0 {
			t.Fatalf("expected no selection without a package")
		}
	})

	t.Run("adds then removes", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.ToggleOption(optSEO)
		if _, ok := o.SelectedOptions["seo"]; !ok {
			t.Fatalf("expected seo selected")
		}
		o.ToggleOption(optSEO)
		if _, ok := o.SelectedOptions["seo"]; ok {
			t.Fatalf("expected seo deselected")
		}
	})

	t.Run("ineligible option is a no-op", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.ToggleOption(optShopImport)
		if len(o.SelectedOptions) != 0 {
			t.Fatalf("expected webshop-only option to be rejected under website package")
		}
	})

	t.Run("removal drops note but keeps custom price", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.ToggleOption(optPhoto)
		o.SetCustomPrice("photo", 850)
		o.SetOptionNote("photo", "full day on site")

		o.ToggleOption(optPhoto)
		if _, ok := o.OptionNotes["photo"]; ok {
			t.Fatalf("expected note discarded on deselect")
		}
		if o.CustomPrices["photo"] != 850 {
			t.Fatalf("expected negotiated price preserved, got %v", o.CustomPrices["photo"])
		}

		o.ToggleOption(optPhoto)
		if o.CustomPrices["photo"] != 850 {
			t.Fatalf("expected re-toggle to restore negotiated price")
		}
	})

	t.Run("quantity option toggles between 0 and 1", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.ToggleOption(optPages)
		if o.ExtraPagesQty != 1 {
			t.Fatalf("expected qty 1 after selecting, got %d", o.ExtraPagesQty)
		}
		o.ToggleOption(optPages)
		if o.ExtraPagesQty != 0 {
			t.Fatalf("expected qty 0 after deselecting, got %d", o.ExtraPagesQty)
		}
	})
}

func TestOfferConfiguration_SetPackage(t *testing.T) {
	t.Run("filters exactly the ineligible options", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(shopPkg())
		o.ToggleOption(optSEO)
		o.ToggleOption(optShopImport)
		o.SetOptionNote("import", "about 400 SKUs")

		o.SetPackage(sitePkg())
		if _, ok := o.SelectedOptions["seo"]; !ok {
			t.Fatalf("expected universally eligible option to survive")
		}
		if _, ok := o.SelectedOptions["import"]; ok {
			t.Fatalf("expected webshop-only option dropped")
		}
		if _, ok := o.OptionNotes["import"]; ok {
			t.Fatalf("expected dropped option's note removed")
		}
	})

	t.Run("dropping a quantity option resets its counter", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.SetExtraPages(optPages, 4)
		if o.ExtraPagesQty != 4 {
			t.Fatalf("expected qty 4, got %d", o.ExtraPagesQty)
		}

		o.SetPackage(appPkg())
		if _, ok := o.SelectedOptions[OptionIDExtraPages]; ok {
			t.Fatalf("expected extra pages dropped under webapp package")
		}
		if o.ExtraPagesQty != 0 {
			t.Fatalf("expected counter reset, got %d", o.ExtraPagesQty)
		}
	})

	t.Run("dropped negotiable option loses its custom price", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(shopPkg())
		custom := Option{ID: "integration", Negotiable: true, Category: OptionCategoryComplexity,
			AppliesTo: []PackageCategory{PackageCategoryWebshop}}
		o.ToggleOption(custom)
		o.SetCustomPrice("integration", 1200)

		o.SetPackage(sitePkg())
		if _, ok := o.CustomPrices["integration"]; ok {
			t.Fatalf("expected custom price dropped with the option")
		}
	})

	t.Run("clearing the package drops all options", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.ToggleOption(optSEO)
		o.SetPackage(nil)
		if len(o.SelectedOptions) != 0 {
			t.Fatalf("expected no selected options without a package")
		}
		if o.IsValid() {
			t.Fatalf("expected invalid offer without a package")
		}
	})
}

func TestOfferConfiguration_QuantityLinkage(t *testing.T) {
	t.Run("setting a positive quantity selects the option", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.SetExtraPages(optPages, 3)
		if _, ok := o.SelectedOptions[OptionIDExtraPages]; !ok {
			t.Fatalf("expected option auto-selected")
		}
		if o.ExtraPagesQty != 3 {
			t.Fatalf("expected qty 3, got %d", o.ExtraPagesQty)
		}
	})

	t.Run("setting zero deselects", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.SetContentPages(optContent, 2)
		o.SetContentPages(optContent, 0)
		if _, ok := o.SelectedOptions[OptionIDContentPages]; ok {
			t.Fatalf("expected option auto-deselected at qty 0")
		}
	})

	t.Run("negative clamps to zero", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.SetExtraPages(optPages, 2)
		o.SetExtraPages(optPages, -5)
		if o.ExtraPagesQty != 0 {
			t.Fatalf("expected clamp to 0, got %d", o.ExtraPagesQty)
		}
		if _, ok := o.SelectedOptions[OptionIDExtraPages]; ok {
			t.Fatalf("expected option deselected")
		}
	})

	t.Run("wrong option id leaves state untouched", func(t *testing.T) {
		o := NewOfferConfiguration()
		o.SetPackage(sitePkg())
		o.SetExtraPages(optSEO, 5)
		if o.ExtraPagesQty != 0 || len(o.SelectedOptions) != 0 {
			t.Fatalf("expected no change for non-linked option")
		}
	})
}

func TestOfferConfiguration_SetMaintenance(t *testing.T) {
	o := NewOfferConfiguration()
	o.SetPackage(sitePkg())

	o.SetMaintenance(&optSEO)
	if o.SelectedMaintenance != nil {
		t.Fatalf("expected non-maintenance option rejected")
	}

	o.SetMaintenance(&optMaint)
	if o.SelectedMaintenance == nil || o.SelectedMaintenance.ID != "maint" {
		t.Fatalf("expected maintenance selected")
	}

	other := Option{ID: "maint-2", Price: 95, IsRecurring: true, Category: OptionCategoryMaintenance}
	o.SetMaintenance(&other)
	if o.SelectedMaintenance.ID != "maint-2" {
		t.Fatalf("expected maintenance slot replaced")
	}

	o.SetMaintenance(nil)
	if o.SelectedMaintenance != nil {
		t.Fatalf("expected maintenance cleared")
	}
}

func TestOfferConfiguration_CustomLineItems(t *testing.T) {
	o := NewOfferConfiguration()

	if o.AddCustomLineItem(CustomLineItem{ID: "a", Name: "  ", Price: 100}) {
		t.Fatalf("expected blank name rejected")
	}
	if o.AddCustomLineItem(CustomLineItem{ID: "b", Name: "Rush fee", Price: 0}) {
		t.Fatalf("expected zero price rejected")
	}
	if !o.AddCustomLineItem(CustomLineItem{ID: "c", Name: "Rush fee", Price: 250}) {
		t.Fatalf("expected valid item accepted")
	}
	if len(o.CustomLineItems) != 1 {
		t.Fatalf("expected one line item, got %d", len(o.CustomLineItems))
	}

	if o.RemoveCustomLineItem("nope") {
		t.Fatalf("expected unknown id to report false")
	}
	if !o.RemoveCustomLineItem("c") {
		t.Fatalf("expected removal to succeed")
	}
	if len(o.CustomLineItems) != 0 {
		t.Fatalf("expected empty line items")
	}
}

func TestOfferConfiguration_SetDiscount(t *testing.T) {
	o := NewOfferConfiguration()

	o.SetDiscount(DiscountTypePercentage, 10)
	if o.Discount.Type != DiscountTypePercentage || o.Discount.Value != 10 {
		t.Fatalf("expected 10%% discount, got %+v", o.Discount)
	}

	o.SetDiscount(DiscountTypePercentage, 7)
	if o.Discount.Type != DiscountTypeNone || o.Discount.Value != 0 {
		t.Fatalf("expected out-of-set percentage to fall back to none, got %+v", o.Discount)
	}

	o.SetDiscount(DiscountTypeFixed, -50)
	if o.Discount.Type != DiscountTypeFixed || o.Discount.Value != 0 {
		t.Fatalf("expected negative fixed clamped to 0, got %+v", o.Discount)
	}

	o.SetDiscount(DiscountTypeFixed, 5000)
	if o.Discount.Value != 5000 {
		t.Fatalf("expected fixed value stored uncapped, got %+v", o.Discount)
	}

	o.SetDiscount(DiscountTypeNone, 99)
	if o.Discount.Type != DiscountTypeNone || o.Discount.Value != 0 {
		t.Fatalf("expected none to force value 0, got %+v", o.Discount)
	}
}

func TestOfferConfiguration_SetPaymentSchedule(t *testing.T) {
	o := NewOfferConfiguration()
	o.SetPaymentSchedule(PaymentScheduleSplit3)
	if o.PaymentSchedule != PaymentScheduleSplit3 {
		t.Fatalf("expected split_3x33, got %s", o.PaymentSchedule)
	}
	o.SetPaymentSchedule("weekly")
	if o.PaymentSchedule != PaymentScheduleSplit3 {
		t.Fatalf("expected unknown schedule ignored, got %s", o.PaymentSchedule)
	}
}

func TestOfferConfiguration_LoadState(t *testing.T) {
	t.Run("re-runs eligibility and linkage", func(t *testing.T) {
		loaded := NewOfferConfiguration()
		p := *appPkg()
		loaded.SelectedPackage = &p
		loaded.SelectedOptions[optPages.ID] = optPages // ineligible under webapp
		loaded.SelectedOptions["seo"] = optSEO
		loaded.ExtraPagesQty = 5
		loaded.ContentPagesQty = -2
		loaded.Discount = Discount{Type: DiscountTypePercentage, Value: 12}
		loaded.PaymentSchedule = "quarterly"

		o := NewOfferConfiguration()
		o.LoadState(loaded)

		if _, ok := o.SelectedOptions[OptionIDExtraPages]; ok {
			t.Fatalf("expected ineligible quantity option dropped")
		}
		if o.ExtraPagesQty != 0 || o.ContentPagesQty != 0 {
			t.Fatalf("expected quantities normalized, got %d/%d", o.ExtraPagesQty, o.ContentPagesQty)
		}
		if o.Discount.Type != DiscountTypeNone {
			t.Fatalf("expected out-of-set percentage discount dropped")
		}
		if o.PaymentSchedule != PaymentScheduleOnce {
			t.Fatalf("expected schedule fallback to once")
		}
	})

	t.Run("selected quantity option with zero qty gets qty 1", func(t *testing.T) {
		loaded := NewOfferConfiguration()
		p := *sitePkg()
		loaded.SelectedPackage = &p
		loaded.SelectedOptions[optPages.ID] = optPages
		loaded.ExtraPagesQty = 0

		o := NewOfferConfiguration()
		o.LoadState(loaded)
		if o.ExtraPagesQty != 1 {
			t.Fatalf("expected qty pulled up to 1, got %d", o.ExtraPagesQty)
		}
	})
}
