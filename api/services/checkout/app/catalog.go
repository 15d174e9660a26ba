package app

// Plan describes a purchasable product variant and its Stripe price.
type Plan struct {
	PriceID string
	Name    string
}

// planCatalog maps storefront plan identifiers to Stripe prices.
// Read-only after startup.
var planCatalog = map[string]Plan{
	"1": {PriceID: "price_1ST2Cg2KiTHorHsUc2nE0SEh", Name: "Starter (1 account)"},
	"2": {PriceID: "price_1ST2Da2KiTHorHsUpkfJ0BJn", Name: "Pro (2 accounts)"},
	"3": {PriceID: "price_1ST2E32KiTHorHsULapHHGRG", Name: "Business (3 accounts)"},
}

// PlanByID returns the catalog entry for a storefront plan id.
func PlanByID(id string) (Plan, bool) {
	plan, ok := planCatalog[id]
	return plan, ok
}

// PlanName returns the display name for a plan id, falling back to the raw id
// for plans no longer in the catalog (old sessions may still reference them).
func PlanName(id string) string {
	if plan, ok := planCatalog[id]; ok {
		return plan.Name
	}
	return id
}
