package trip

// Destination is an inspiration entry shown in the inspiration overlay.
type Destination struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// InterestTag identifies one entry of the interest catalog.
type InterestTag string

// Interest tags, in display order.
const (
	InterestNightlife InterestTag = "nightlife"
	InterestCityTours InterestTag = "citytours"
	InterestAdventure InterestTag = "adventure"
	InterestCulture   InterestTag = "culture"
	InterestFamily    InterestTag = "family"
	InterestNature    InterestTag = "nature"
	InterestEco       InterestTag = "eco"
	InterestLocal     InterestTag = "local"
)

// Interest pairs a tag with its display label.
type Interest struct {
	Tag   InterestTag `json:"value" yaml:"value"`
	Label string      `json:"label" yaml:"label"`
}

// Accommodation is the accommodation type. The zero value means unset.
type Accommodation string

const (
	AccommodationUnset     Accommodation = ""
	AccommodationEcoHotel  Accommodation = "eco-hotel"
	AccommodationHostel    Accommodation = "hostel"
	AccommodationApartment Accommodation = "apartment"
	AccommodationEcoLodge  Accommodation = "eco-lodge"
	AccommodationHomestay  Accommodation = "homestay"
)

// AccommodationOption pairs an accommodation type with its display label.
type AccommodationOption struct {
	Type  Accommodation `json:"value" yaml:"value"`
	Label string        `json:"label" yaml:"label"`
}

var destinations = []Destination{
	{Name: "Costa Rica", Description: "Known for its biodiversity and eco-lodges"},
	{Name: "Iceland", Description: "Leader in renewable energy and stunning natural landscapes"},
	{Name: "Palau", Description: "Island nation with strong marine conservation efforts"},
	{Name: "Slovenia", Description: "Europe's green gem with sustainable tourism practices"},
	{Name: "Bhutan", Description: "Carbon-negative country with strict environmental policies"},
}

var interests = []Interest{
	{Tag: InterestNightlife, Label: "Night Life"},
	{Tag: InterestCityTours, Label: "City Tours"},
	{Tag: InterestAdventure, Label: "Adventure"},
	{Tag: InterestCulture, Label: "Culture"},
	{Tag: InterestFamily, Label: "Family Activities"},
	{Tag: InterestNature, Label: "Nature & Wildlife"},
	{Tag: InterestEco, Label: "Eco-Adventures"},
	{Tag: InterestLocal, Label: "Local Communities"},
}

var accommodations = []AccommodationOption{
	{Type: AccommodationEcoHotel, Label: "Eco-Hotel"},
	{Type: AccommodationHostel, Label: "Sustainable Hostel"},
	{Type: AccommodationApartment, Label: "Green Apartment"},
	{Type: AccommodationEcoLodge, Label: "Eco-Lodge"},
	{Type: AccommodationHomestay, Label: "Local Homestay"},
}

// Destinations returns a copy of the inspiration destinations.
func Destinations() []Destination {
	return append([]Destination(nil), destinations...)
}

// Interests returns a copy of the interest catalog in display order.
func Interests() []Interest {
	return append([]Interest(nil), interests...)
}

// Accommodations returns a copy of the accommodation options.
func Accommodations() []AccommodationOption {
	return append([]AccommodationOption(nil), accommodations...)
}

// FindDestination looks up an inspiration destination by name.
func FindDestination(name string) (Destination, bool) {
	for _, d := range destinations {
		if d.Name == name {
			return d, true
		}
	}
	return Destination{}, false
}

// Label returns the display label of an interest tag, or the tag itself when
// it is not in the catalog.
func (t InterestTag) Label() string {
	for _, i := range interests {
		if i.Tag == t {
			return i.Label
		}
	}
	return string(t)
}

// Valid reports whether the tag is part of the catalog.
func (t InterestTag) Valid() bool {
	for _, i := range interests {
		if i.Tag == t {
			return true
		}
	}
	return false
}

// Label returns the display label, "Accommodation" for the unset value.
func (a Accommodation) Label() string {
	for _, o := range accommodations {
		if o.Type == a {
			return o.Label
		}
	}
	if a == AccommodationUnset {
		return "Accommodation"
	}
	return string(a)
}

// Valid reports whether a is unset or one of the catalog types.
func (a Accommodation) Valid() bool {
	if a == AccommodationUnset {
		return true
	}
	for _, o := range accommodations {
		if o.Type == a {
			return true
		}
	}
	return false
}
