package trip

import (
	"fmt"
	"time"
)

// Field names a trip request field.
type Field string

const (
	FieldDestination       Field = "destination"
	FieldStartDate         Field = "startDate"
	FieldEndDate           Field = "endDate"
	FieldAdults            Field = "adults"
	FieldChildren          Field = "children"
	FieldInterests         Field = "interests"
	FieldStartingLocation  Field = "startingLocation"
	FieldAccommodationType Field = "accommodationType"
)

// Request is the trip request collected by the planning form.
//
// Request is a value: Set and ToggleInterest return a new Request and leave
// the receiver untouched.
type Request struct {
	Destination       string
	StartDate         time.Time // zero when unset
	EndDate           time.Time // zero when unset
	Adults            int
	Children          int
	Interests         []InterestTag // selection order
	StartingLocation  string
	AccommodationType Accommodation
}

// NewRequest returns a request with the default values.
func NewRequest() Request {
	return Request{
		Adults:   1,
		Children: 0,
	}
}

// HasDates reports whether both dates are set.
func (r Request) HasDates() bool {
	return !r.StartDate.IsZero() && !r.EndDate.IsZero()
}

// HasInterest reports whether tag is selected.
func (r Request) HasInterest(tag InterestTag) bool {
	for _, t := range r.Interests {
		if t == tag {
			return true
		}
	}
	return false
}

// Set returns a copy of r with field replaced by value.
func (r Request) Set(field Field, value any) (Request, error) {
	switch field {
	case FieldDestination:
		s, ok := value.(string)
		if !ok {
			return r, typeError(field, "string", value)
		}
		r.Destination = s

	case FieldStartingLocation:
		s, ok := value.(string)
		if !ok {
			return r, typeError(field, "string", value)
		}
		r.StartingLocation = s

	case FieldStartDate:
		d, ok := value.(time.Time)
		if !ok {
			return r, typeError(field, "time.Time", value)
		}
		d = Day(d)
		if !d.IsZero() && !r.EndDate.IsZero() && d.After(r.EndDate) {
			return r, fmt.Errorf("%w: %s %s is after end date %s",
				ErrInvalidValue, field, d.Format(DateLayout), r.EndDate.Format(DateLayout))
		}
		r.StartDate = d

	case FieldEndDate:
		d, ok := value.(time.Time)
		if !ok {
			return r, typeError(field, "time.Time", value)
		}
		d = Day(d)
		if !d.IsZero() && !r.StartDate.IsZero() && d.Before(r.StartDate) {
			return r, fmt.Errorf("%w: %s %s is before start date %s",
				ErrInvalidValue, field, d.Format(DateLayout), r.StartDate.Format(DateLayout))
		}
		r.EndDate = d

	case FieldAdults:
		n, ok := value.(int)
		if !ok {
			return r, typeError(field, "int", value)
		}
		if n < 1 {
			return r, fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidValue, field, n)
		}
		r.Adults = n

	case FieldChildren:
		n, ok := value.(int)
		if !ok {
			return r, typeError(field, "int", value)
		}
		if n < 0 {
			return r, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, field, n)
		}
		r.Children = n

	case FieldInterests:
		tags, ok := value.([]InterestTag)
		if !ok {
			return r, typeError(field, "[]InterestTag", value)
		}
		seen := make(map[InterestTag]bool, len(tags))
		for _, t := range tags {
			if !t.Valid() {
				return r, fmt.Errorf("%w: %q", ErrUnknownInterest, t)
			}
			if seen[t] {
				return r, fmt.Errorf("%w: duplicate interest %q", ErrInvalidValue, t)
			}
			seen[t] = true
		}
		r.Interests = append([]InterestTag(nil), tags...)

	case FieldAccommodationType:
		a, ok := value.(Accommodation)
		if !ok {
			return r, typeError(field, "Accommodation", value)
		}
		if !a.Valid() {
			return r, fmt.Errorf("%w: unknown accommodation %q", ErrInvalidValue, a)
		}
		r.AccommodationType = a

	default:
		return r, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	return r, nil
}

// ToggleInterest returns a copy of r with tag added (checked) or removed.
// Adding a selected tag or removing an unselected one is a no-op.
func (r Request) ToggleInterest(tag InterestTag, checked bool) (Request, error) {
	if !tag.Valid() {
		return r, fmt.Errorf("%w: %q", ErrUnknownInterest, tag)
	}

	next := make([]InterestTag, 0, len(r.Interests)+1)
	for _, t := range r.Interests {
		if t != tag {
			next = append(next, t)
		}
	}
	if checked {
		if r.HasInterest(tag) {
			return r, nil
		}
		next = append(next, tag)
	}
	if len(next) == 0 {
		next = nil
	}
	r.Interests = next
	return r, nil
}

func typeError(field Field, want string, got any) error {
	return fmt.Errorf("%w: %s expects %s, got %T", ErrInvalidValue, field, want, got)
}
