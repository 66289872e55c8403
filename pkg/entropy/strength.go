package entropy

// Strength is a coarse rating of an Estimate.
type Strength uint8

const (
	VeryWeak Strength = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

var strengthLabels = [...]string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Moderate:   "Moderate",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// String returns the display label.
func (s Strength) String() string {
	if int(s) < len(strengthLabels) {
		return strengthLabels[s]
	}
	return "Unknown"
}
