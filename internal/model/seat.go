package model

// Seat describes a venue seat offered for sale. Like games, seats are
// static reference data owned by the loader and never mutated here.
//
// Fields:
//  Section – seating section label, e.g. "114".
//  Row     – row label within the section.
//  Price   – listed price for seats in this row.
type Seat struct {
	Section string `json:"section"`
	Row     string `json:"row"`
	Price   string `json:"price"`
}

// SearchText is the text a free-text query is matched against.
func (s *Seat) SearchText() string {
	return s.Section + s.Row
}
