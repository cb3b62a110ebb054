package domain

import "fmt"

// GramsPerOunce is the fixed conversion used for the oz entry
const GramsPerOunce = 28.35

// PreferredUnitOrder lists the units rendered first, when present
var PreferredUnitOrder = []string{"g", "oz", "cup", "tbsp", "tsp"}

// EquivalentsMap maps canonical unit names to quantities, preserving
// insertion order. The first value stored for a unit wins.
type EquivalentsMap struct {
	keys   []string
	values map[string]float64
}

// NewEquivalentsMap seeds the map with the guaranteed g and oz entries.
func NewEquivalentsMap(grams float64) *EquivalentsMap {
	m := &EquivalentsMap{values: make(map[string]float64)}
	m.Add("g", grams)
	m.Add("oz", grams/GramsPerOunce)
	return m
}

// Add stores amount under unit unless unit is already present.
// It reports whether the value was stored.
func (m *EquivalentsMap) Add(unit string, amount float64) bool {
	if m.values == nil {
		m.values = make(map[string]float64)
	}
	if _, exists := m.values[unit]; exists {
		return false
	}
	m.keys = append(m.keys, unit)
	m.values[unit] = amount
	return true
}

// Get returns the quantity stored for unit
func (m *EquivalentsMap) Get(unit string) (float64, bool) {
	v, ok := m.values[unit]
	return v, ok
}

// Units returns the unit keys in insertion order
func (m *EquivalentsMap) Units() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of units
func (m *EquivalentsMap) Len() int {
	return len(m.keys)
}

// Equivalent is one rendered line of a conversion
type Equivalent struct {
	Unit    string  `json:"unit"`
	Amount  float64 `json:"amount"`
	Display string  `json:"display"`
}

// Ordered returns the equivalents in display order: the preferred units
// first, then every remaining unit in insertion order.
func (m *EquivalentsMap) Ordered() []Equivalent {
	result := make([]Equivalent, 0, len(m.keys))
	shown := make(map[string]bool, len(m.keys))

	for _, unit := range PreferredUnitOrder {
		if amount, ok := m.values[unit]; ok {
			result = append(result, newEquivalent(unit, amount))
			shown[unit] = true
		}
	}
	for _, unit := range m.keys {
		if !shown[unit] {
			result = append(result, newEquivalent(unit, m.values[unit]))
		}
	}
	return result
}

func newEquivalent(unit string, amount float64) Equivalent {
	return Equivalent{
		Unit:    unit,
		Amount:  amount,
		Display: fmt.Sprintf("%.2f %s", amount, unit),
	}
}
