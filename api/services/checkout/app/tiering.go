package app

// licenseBand grants a license count to any amount at or above its threshold.
type licenseBand struct {
	MinAmount int64
	Licenses  int64
}

// licenseBands is evaluated top-down; the first band whose threshold is met
// wins. Must stay sorted by MinAmount descending.
var licenseBands = []licenseBand{
	{MinAmount: 14900, Licenses: 3},
	{MinAmount: 8900, Licenses: 2},
	{MinAmount: 5900, Licenses: 1},
}

// LicensesForAmount returns how many license activations a paid amount (in
// minor currency units) grants. Amounts below the lowest band still grant one.
func LicensesForAmount(amountMinor int64) int64 {
	for _, band := range licenseBands {
		if amountMinor >= band.MinAmount {
			return band.Licenses
		}
	}
	return 1
}
