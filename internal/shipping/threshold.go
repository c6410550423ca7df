package shipping

// ThresholdCalculator waives the base charge when the cart holds enough
// items or the post-discount subtotal clears the free threshold.
type ThresholdCalculator struct {
	policy PolicyFunc
}

// NewThresholdCalculator creates the standard storefront calculator.
func NewThresholdCalculator(policy PolicyFunc) *ThresholdCalculator {
	return &ThresholdCalculator{policy: policy}
}

// Cost returns 0 for empty carts, 0 when either free-shipping rule is
// met, and the policy's base cost otherwise.
func (c *ThresholdCalculator) Cost(params CostParams) int64 {
	if params.ItemCount == 0 {
		return 0
	}

	p := c.policy()
	if params.ItemCount >= p.FreeItemCount {
		return 0
	}
	if params.SubtotalCents >= p.FreeThresholdCents {
		return 0
	}
	return p.BaseCostCents
}
