package geocode

import "strconv"

// Response is the subset of the OpenCage response the planner reads.
type Response struct {
	Results      []Result `json:"results"`
	Status       *Status  `json:"status,omitempty"`
	TotalResults int      `json:"total_results"`
}

// Result is one candidate address.
type Result struct {
	Formatted  string    `json:"formatted"`
	Confidence int       `json:"confidence"`
	Geometry   *Geometry `json:"geometry,omitempty"`
}

// Geometry is the coordinate of a result.
type Geometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Status is the API status block.
type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FirstFormatted returns results[0].formatted when present and non-empty.
func (r *Response) FirstFormatted() (string, bool) {
	if r == nil || len(r.Results) == 0 {
		return "", false
	}
	if r.Results[0].Formatted == "" {
		return "", false
	}
	return r.Results[0].Formatted, true
}

// FormatCoordinate renders a coordinate with the shortest exact decimal form.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Query builds the free-text query for a coordinate pair. Once URL-encoded
// the separating space goes on the wire as "+".
func Query(lat, lon float64) string {
	return FormatCoordinate(lat) + " " + FormatCoordinate(lon)
}
