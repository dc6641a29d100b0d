// Package concepts holds the concept catalog: the units of knowledge the
// feed sequences, with prerequisite edges gating what a learner may be
// offered next.
package concepts

// Area groups related concepts for display.
type Area string

const (
	AreaNumberSense Area = "number-sense"
	AreaOperations  Area = "operations"
	AreaFractions   Area = "fractions"
)

// Concept is one teachable unit of knowledge.
type Concept struct {
	ID            string
	Name          string
	Area          Area
	Prerequisites []string
}
