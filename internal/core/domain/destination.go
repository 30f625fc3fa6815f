package domain

// Destination is an entry of the static travel catalogue shown on the site.
type Destination struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

var catalogue = []Destination{
	{Slug: "paris", Name: "Paris", Country: "France", Description: "Museums, cafés and the Eiffel Tower."},
	{Slug: "bali", Name: "Bali", Country: "Indonesia", Description: "Beaches, rice terraces and temples."},
	{Slug: "kyoto", Name: "Kyoto", Country: "Japan", Description: "Shrines, gardens and traditional tea houses."},
	{Slug: "new-york", Name: "New York", Country: "United States", Description: "Skyline, Broadway and Central Park."},
	{Slug: "cape-town", Name: "Cape Town", Country: "South Africa", Description: "Table Mountain and the Cape of Good Hope."},
}

// Catalogue returns a copy of the destination catalogue.
func Catalogue() []Destination {
	out := make([]Destination, len(catalogue))
	copy(out, catalogue)
	return out
}
