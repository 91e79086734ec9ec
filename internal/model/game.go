package model

// Game describes a single sporting event. Games are static reference data:
// they are loaded once at startup and never modified by this service.
//
// Fields:
//  Date     – calendar date of the game.
//  Teams    – matchup text, e.g. "Hornets vs. Hawks".
//  Location – venue name.
//  Time     – scheduled start time.
type Game struct {
	Date     string `json:"date"`
	Teams    string `json:"teams"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

// SearchText is the text a free-text query is matched against.
func (g *Game) SearchText() string {
	return g.Date + g.Teams
}
