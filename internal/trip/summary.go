package trip

// Summary is the printable form of a request, used for the json and yaml
// output of the planner command.
type Summary struct {
	Destination       string   `json:"destination" yaml:"destination"`
	StartDate         string   `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate           string   `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Nights            int      `json:"nights,omitempty" yaml:"nights,omitempty"`
	Adults            int      `json:"adults" yaml:"adults"`
	Children          int      `json:"children" yaml:"children"`
	Interests         []string `json:"interests" yaml:"interests"`
	StartingLocation  string   `json:"startingLocation" yaml:"startingLocation"`
	AccommodationType string   `json:"accommodationType" yaml:"accommodationType"`
}

// Summary flattens the request. Dates use DateLayout; interests keep
// selection order.
func (r Request) Summary() Summary {
	s := Summary{
		Destination:       r.Destination,
		Adults:            r.Adults,
		Children:          r.Children,
		Interests:         make([]string, 0, len(r.Interests)),
		StartingLocation:  r.StartingLocation,
		AccommodationType: string(r.AccommodationType),
	}
	if !r.StartDate.IsZero() {
		s.StartDate = r.StartDate.Format(DateLayout)
	}
	if !r.EndDate.IsZero() {
		s.EndDate = r.EndDate.Format(DateLayout)
	}
	s.Nights = r.Nights()
	for _, tag := range r.Interests {
		s.Interests = append(s.Interests, string(tag))
	}
	return s
}

// Nights returns the number of nights between the dates, or 0 when either
// is unset.
func (r Request) Nights() int {
	if !r.HasDates() {
		return 0
	}
	return int(Day(r.EndDate).Sub(Day(r.StartDate)).Hours() / 24)
}
