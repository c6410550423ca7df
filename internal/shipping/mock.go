package shipping

// MockCalculator is a test double with a configurable cost function.
type MockCalculator struct {
	CostFn func(params CostParams) int64
}

func (m *MockCalculator) Cost(params CostParams) int64 {
	if m.CostFn != nil {
		return m.CostFn(params)
	}
	return 0
}
