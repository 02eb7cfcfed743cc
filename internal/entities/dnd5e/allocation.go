package dnd5e

// AllocationMethod is an ability score generation method.
type AllocationMethod string

// Allocation methods
const (
	AllocationMethodPointBuy      AllocationMethod = "point_buy"
	AllocationMethodStandardArray AllocationMethod = "standard_array"
	AllocationMethodRoll          AllocationMethod = "roll"
)

// AllocationMethods lists the methods in display order.
var AllocationMethods = []AllocationMethod{
	AllocationMethodPointBuy, AllocationMethodStandardArray, AllocationMethodRoll,
}

// Valid reports whether m is a known method.
func (m AllocationMethod) Valid() bool {
	switch m {
	case AllocationMethodPointBuy, AllocationMethodStandardArray, AllocationMethodRoll:
		return true
	}
	return false
}

// AllocationState is the bookkeeping for the active allocation method. It
// never holds scores; those live on the character.
type AllocationState struct {
	Method      AllocationMethod `json:"method"`
	PointsSpent int              `json:"pointsSpent"`
	// Assigned maps an ability to the standard array value it consumed.
	Assigned map[Ability]int `json:"assigned,omitempty"`
}

// Clone returns a copy that shares nothing with s.
func (s *AllocationState) Clone() *AllocationState {
	if s == nil {
		return nil
	}
	out := *s
	if s.Assigned != nil {
		out.Assigned = make(map[Ability]int, len(s.Assigned))
		for k, v := range s.Assigned {
			out.Assigned[k] = v
		}
	}
	return &out
}
