package conicaltesting

// Insertion scenarios with known outcomes. Values[i] is inserted with
// Heights[i], in order.
type Scenario struct {
	Values  []int
	Heights []int

	// Want is the expected level 0 order.
	Want []int
	// Levels is the expected active level count.
	Levels int
}

var ScenarioMixedHeights = Scenario{
	Values:  []int{7, 5, 6, 1, 9, 16, 33, 7, -3, 0},
	Heights: []int{4, 1, 2, 1, 4, 2, 1, 3, 1, 2},
	Want:    []int{-3, 0, 1, 5, 6, 7, 7, 9, 16, 33},
	Levels:  4,
}

var ScenarioSingleton = Scenario{
	Values:  []int{42},
	Heights: []int{3},
	Want:    []int{42},
	Levels:  3,
}
