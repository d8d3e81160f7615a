package draft

import (
	"sort"

	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
)

// Encode serializes the offer into its denormalized stored shape. Option
// prices are written as resolved at save time: the entered custom price for
// negotiable options, the catalog price otherwise.
func Encode(o *entities.OfferConfiguration) Snapshot {
	s := Snapshot{
		CustomPrices:     copyFloatMap(o.CustomPrices),
		OptionNotes:      copyStringMap(o.OptionNotes),
		ExtraPages:       o.ExtraPagesQty,
		ContentPages:     o.ContentPagesQty,
		Discount:         DiscountRef{Type: string(o.Discount.Type), Value: o.Discount.Value},
		PaymentSchedule:  string(o.PaymentSchedule),
		ScopeDescription: o.ScopeDescription,
		Timeline:         o.Timeline,
	}

	if o.SelectedPackage != nil {
		s.SelectedPackage = &PackageRef{
			ID:        o.SelectedPackage.ID,
			Name:      o.SelectedPackage.Name,
			BasePrice: o.SelectedPackage.BasePrice,
		}
	}

	for id, opt := range o.SelectedOptions {
		price := opt.Price
		if opt.Negotiable {
			price = o.CustomPrices[id]
		}
		s.SelectedOptions = append(s.SelectedOptions, OptionRef{ID: id, Name: opt.Name, Price: price})
	}
	// Deterministic order for stable stored documents.
	sort.Slice(s.SelectedOptions, func(i, j int) bool { return s.SelectedOptions[i].ID < s.SelectedOptions[j].ID })

	if o.SelectedMaintenance != nil {
		s.SelectedMaintenance = &OptionRef{
			ID:    o.SelectedMaintenance.ID,
			Name:  o.SelectedMaintenance.Name,
			Price: o.SelectedMaintenance.Price,
		}
	}

	for _, it := range o.CustomLineItems {
		s.CustomLineItems = append(s.CustomLineItems, LineItemRef(it))
	}

	return s
}

// DecodeReport lists what a decode had to drop or correct. Stale references
// are a recoverable data situation, not an error; the report exists for
// diagnostics only.
type DecodeReport struct {
	DroppedOptionIDs   []string
	DroppedLineItemIDs []string
	DroppedPackageID   string
	CorrectedDiscount  bool
	CorrectedSchedule  bool
}

// Clean reports whether nothing was dropped or corrected.
func (r DecodeReport) Clean() bool {
	return len(r.DroppedOptionIDs) == 0 && len(r.DroppedLineItemIDs) == 0 &&
		r.DroppedPackageID == "" && !r.CorrectedDiscount && !r.CorrectedSchedule
}

// Decode reconstructs an offer from a stored snapshot against the live
// catalog. Every id is re-resolved: found references use the live catalog
// object so current pricing and eligibility apply; retired references are
// dropped silently. The result always satisfies the offer invariants.
func Decode(s Snapshot, cat *catalog.Catalog) (*entities.OfferConfiguration, DecodeReport) {
	var report DecodeReport
	loaded := entities.NewOfferConfiguration()

	if s.SelectedPackage != nil {
		if pkg, ok := cat.GetPackage(s.SelectedPackage.ID); ok {
			loaded.SelectedPackage = &pkg
		} else {
			report.DroppedPackageID = s.SelectedPackage.ID
		}
	}

	for _, ref := range s.SelectedOptions {
		opt, ok := cat.GetOption(ref.ID)
		if !ok {
			report.DroppedOptionIDs = append(report.DroppedOptionIDs, ref.ID)
			continue
		}
		loaded.SelectedOptions[opt.ID] = opt
	}

	for id, v := range s.CustomPrices {
		if v >= 0 {
			loaded.CustomPrices[id] = v
		}
	}
	for id, note := range s.OptionNotes {
		if note != "" {
			loaded.OptionNotes[id] = note
		}
	}

	if s.SelectedMaintenance != nil {
		if opt, ok := cat.GetOption(s.SelectedMaintenance.ID); ok && opt.Category == entities.OptionCategoryMaintenance {
			loaded.SelectedMaintenance = &opt
		} else {
			report.DroppedOptionIDs = append(report.DroppedOptionIDs, s.SelectedMaintenance.ID)
		}
	}

	loaded.ExtraPagesQty = s.ExtraPages
	loaded.ContentPagesQty = s.ContentPages

	loaded.Discount = entities.Discount{Type: entities.DiscountType(s.Discount.Type), Value: s.Discount.Value}
	switch loaded.Discount.Type {
	case entities.DiscountTypeNone, entities.DiscountTypePercentage, entities.DiscountTypeFixed:
	default:
		loaded.Discount = entities.Discount{Type: entities.DiscountTypeNone}
		if s.Discount.Type != "" {
			report.CorrectedDiscount = true
		}
	}
	if loaded.Discount.Type == entities.DiscountTypePercentage && !entities.IsAllowedPercentage(loaded.Discount.Value) {
		loaded.Discount = entities.Discount{Type: entities.DiscountTypeNone}
		report.CorrectedDiscount = true
	}

	loaded.PaymentSchedule = entities.PaymentSchedule(s.PaymentSchedule)
	if !entities.ValidPaymentSchedule(loaded.PaymentSchedule) {
		loaded.PaymentSchedule = entities.PaymentScheduleOnce
		if s.PaymentSchedule != "" {
			report.CorrectedSchedule = true
		}
	}

	for _, it := range s.CustomLineItems {
		if !loaded.AddCustomLineItem(entities.CustomLineItem(it)) {
			report.DroppedLineItemIDs = append(report.DroppedLineItemIDs, it.ID)
		}
	}

	loaded.ScopeDescription = s.ScopeDescription
	loaded.Timeline = s.Timeline

	// LoadState re-runs the eligibility filter and the quantity linkage so a
	// snapshot saved under an older catalog cannot smuggle in an inconsistent
	// selection.
	cfg := entities.NewOfferConfiguration()
	before := len(loaded.SelectedOptions)
	cfg.LoadState(loaded)
	if dropped := before - len(cfg.SelectedOptions); dropped > 0 {
		for _, ref := range s.SelectedOptions {
			if _, ok := cfg.SelectedOptions[ref.ID]; !ok {
				if _, live := cat.GetOption(ref.ID); live && !contains(report.DroppedOptionIDs, ref.ID) {
					report.DroppedOptionIDs = append(report.DroppedOptionIDs, ref.ID)
				}
			}
		}
	}

	return cfg, report
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func copyFloatMap(m map[string]float64) map[string]float64 {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
