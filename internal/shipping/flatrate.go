package shipping

// FlatRateCalculator charges a fixed amount for every non-empty cart.
// Used when threshold rules are disabled and as a simple test double.
type FlatRateCalculator struct {
	costCents int64
}

// NewFlatRateCalculator creates a calculator that always charges costCents.
func NewFlatRateCalculator(costCents int64) *FlatRateCalculator {
	return &FlatRateCalculator{costCents: costCents}
}

// Cost returns the flat charge, or 0 for an empty cart.
func (c *FlatRateCalculator) Cost(params CostParams) int64 {
	if params.ItemCount == 0 {
		return 0
	}
	return c.costCents
}
