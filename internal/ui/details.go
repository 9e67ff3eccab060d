package ui

// Detail is one key/value line in a header or result box
type Detail struct {
	Key   string
	Value string
}

// Details keeps key/value lines in insertion order
type Details []Detail

// Add appends a line and returns the extended list
func (d Details) Add(key, value string) Details {
	return append(d, Detail{Key: key, Value: value})
}

// Get returns the value for key
func (d Details) Get(key string) (string, bool) {
	for _, detail := range d {
		if detail.Key == key {
			return detail.Value, true
		}
	}
	return "", false
}

func (d Details) render(keyPrefix string) []string {
	lines := make([]string, 0, len(d))
	for _, detail := range d {
		keyStyled := ResultKeyStyle.Render(keyPrefix + detail.Key + ":")
		lines = append(lines, keyStyled+" "+ResultValueStyle.Render(detail.Value))
	}
	return lines
}
