package store

import (
	"sort"
	"strings"

	"github.com/ticketlane/ticket-orders/internal/model"
)

// OrderEntry pairs an order with its identifier for list rendering.
type OrderEntry struct {
	ID    string
	Order *model.Order
}

// GameEntry pairs a game with its identifier.
type GameEntry struct {
	ID   string
	Game *model.Game
}

// SeatEntry pairs a seat with its identifier.
type SeatEntry struct {
	ID   string
	Seat *model.Seat
}

// FilterOrders returns the orders whose first+last name contains the
// query, sorted by descending identifier. The query is lowercased before
// matching; record text is matched exactly as stored. An empty query
// matches every order.
func (s *Store) FilterOrders(query string) []OrderEntry {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.orders))
	for id, o := range s.orders {
		if strings.Contains(o.SearchText(), q) {
			ids = append(ids, id)
		}
	}
	sortDescending(ids)
	out := make([]OrderEntry, 0, len(ids))
	for _, id := range ids {
		o := *s.orders[id]
		out = append(out, OrderEntry{ID: id, Order: &o})
	}
	return out
}

// FilterGames returns the games whose date+teams text contains the query,
// sorted by descending identifier.
func (s *Store) FilterGames(query string) []GameEntry {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.games))
	for id, g := range s.games {
		if strings.Contains(g.SearchText(), q) {
			ids = append(ids, id)
		}
	}
	sortDescending(ids)
	out := make([]GameEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, GameEntry{ID: id, Game: s.games[id]})
	}
	return out
}

// FilterSeats returns the seats whose section+row text contains the query,
// sorted by descending identifier.
func (s *Store) FilterSeats(query string) []SeatEntry {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.seats))
	for id, seat := range s.seats {
		if strings.Contains(seat.SearchText(), q) {
			ids = append(ids, id)
		}
	}
	sortDescending(ids)
	out := make([]SeatEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, SeatEntry{ID: id, Seat: s.seats[id]})
	}
	return out
}

// sortDescending orders identifiers in reverse lexicographic order, the
// fixed presentation order for every list view.
func sortDescending(ids []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(ids)))
}
