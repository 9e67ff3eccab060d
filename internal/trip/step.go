package trip

import "fmt"

// Step selects which part of the form is rendered.
type Step int

const (
	// StepDetails is the trip details form.
	StepDetails Step = iota
	// StepReview is the read-only summary shown after submitting.
	StepReview
)

const lastStep = StepReview

// Next returns the following step. Advancing past the last defined step
// returns ErrStepNotImplemented.
func (s Step) Next() (Step, error) {
	if s >= lastStep {
		return s, fmt.Errorf("%w: no step after %s", ErrStepNotImplemented, s)
	}
	return s + 1, nil
}

// Defined reports whether the step has a rendering.
func (s Step) Defined() bool {
	return s >= StepDetails && s <= lastStep
}

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}
