package defense

// Meter is the build meter. Rewards fill it and towers spend it.
type Meter struct {
	Value  int // Spendable
	Earned int // Total ever credited
	Cost   int // Price of one tower
}

// Credit adds a reward.
func (m *Meter) Credit(reward int) {
	m.Value += reward
	m.Earned += reward
}

// PlacementMode reports whether a tower can be bought.
func (m Meter) PlacementMode() bool {
	return m.Value >= m.Cost
}

// Spend deducts the cost of one tower. It reports false and leaves the meter
// untouched when placement mode is off.
func (m *Meter) Spend() bool {
	if !m.PlacementMode() {
		return false
	}
	m.Value -= m.Cost
	return true
}
