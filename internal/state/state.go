// Package state defines the image health enum so that both backends can use it
package state

import "fmt"

// Health is the health of an image as reported by a corruption scan.
// It is an alias for Windows' DismImageHealthState.
type Health int

// The values match the DismImageHealthState enumeration, with the addition
// of Error for when the scan itself could not run.
const (
	Healthy Health = iota
	Repairable
	NonRepairable
	Error
)

// NewFromString parses the name of a health state as printed by this package
// and returns its `Health` enum value.
func NewFromString(s string) (Health, error) {
	switch s {
	case "Healthy":
		return Healthy, nil
	case "Repairable":
		return Repairable, nil
	case "NonRepairable":
		return NonRepairable, nil
	}

	return Error, fmt.Errorf("could not parse health state %q", s)
}

func (h Health) String() string {
	switch h {
	case Healthy:
		return "Healthy"
	case Repairable:
		return "Repairable"
	case NonRepairable:
		return "NonRepairable"
	case Error:
		return "Error"
	}

	return fmt.Sprintf("Unknown health state %d", h)
}
