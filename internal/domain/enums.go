package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// DotColor distinguishes the two Kropki dot relations.
type DotColor int

const (
	Black DotColor = iota // one value is exactly twice the other
	White                 // the two values differ by exactly 1
)

// Propagator selects the domain-pruning algorithm run after each
// assignment. The set is closed; every solver configuration is one of
// these two.
type Propagator int

const (
	ForwardChecking Propagator = iota
	GAC
)
