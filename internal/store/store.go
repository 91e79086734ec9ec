package store // store is the JSON-file-backed datastore for orders, games and seats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/ticketlane/ticket-orders/internal/model"
)

// Paths names the three JSON documents backing the store.
type Paths struct {
	Orders string // orders document, read at startup and rewritten on mutation
	Games  string // games document, read once
	Seats  string // seats document, read once
}

// Store holds the three collections in memory. Games and seats are frozen
// after Open and served by pointer; orders may be inserted and updated, so
// lookups hand out copies and a single RWMutex guards the map. Every order
// mutation is written back to the orders document best-effort: a failed
// write is logged and the in-memory state stands.
type Store struct {
	mu        sync.RWMutex
	orders    map[string]*model.Order
	games     map[string]*model.Game
	seats     map[string]*model.Seat
	orderPath string
}

// Document wrappers matching the on-disk shape: a single top-level key
// holding the id -> record mapping.
type orderDoc struct {
	Orders map[string]*model.Order `json:"orders"`
}

type gameDoc struct {
	Games map[string]*model.Game `json:"games"`
}

type seatDoc struct {
	Seats map[string]*model.Seat `json:"seats"`
}

// Open reads and parses the three documents and verifies they are usable
// before the server starts taking requests. Any unreadable or malformed
// file aborts startup.
func Open(p Paths) (*Store, error) {
	var od orderDoc
	if err := readDoc(p.Orders, &od); err != nil {
		return nil, err
	}
	var gd gameDoc
	if err := readDoc(p.Games, &gd); err != nil {
		return nil, err
	}
	var sd seatDoc
	if err := readDoc(p.Seats, &sd); err != nil {
		return nil, err
	}
	s := &Store{
		orders:    od.Orders,
		games:     gd.Games,
		seats:     sd.Seats,
		orderPath: p.Orders,
	}
	if s.orders == nil {
		s.orders = make(map[string]*model.Order)
	}
	if s.games == nil {
		s.games = make(map[string]*model.Game)
	}
	if s.seats == nil {
		s.seats = make(map[string]*model.Seat)
	}
	return s, nil
}

func readDoc(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// GetOrder returns a copy of the order stored under id, or
// ErrOrderNotFound if there is none.
func (s *Store) GetOrder(id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	o := *rec
	return &o, nil
}

// GetGame returns the game stored under id, or ErrGameNotFound if there
// is none. Games are immutable, so the stored record is returned directly.
func (s *Store) GetGame(id string) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// OrderCount reports the number of orders currently held.
func (s *Store) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// InsertOrder adds a new order under id and persists the collection.
// Whether id is already taken is not checked; the caller owns identifier
// assignment.
func (s *Store) InsertOrder(id string, o *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := *o
	s.orders[id] = &rec
	s.persistLocked()
}

// OrderUpdate carries the replacement values for the four fields an order
// update may touch. This is a full replace: a zero-value field blanks the
// stored value rather than leaving it alone.
type OrderUpdate struct {
	PhoneNumber     string
	Email           string
	ShippingAddress string
	Zipcode         string
}

// UpdateOrder overwrites the mutable fields of the order stored under id
// and persists the collection. The updated order is returned as a copy.
func (s *Store) UpdateOrder(id string, upd OrderUpdate) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	rec.PhoneNumber = upd.PhoneNumber
	rec.Email = upd.Email
	rec.ShippingAddress = upd.ShippingAddress
	rec.Zipcode = upd.Zipcode
	s.persistLocked()
	o := *rec
	return &o, nil
}

// persistLocked rewrites the orders document. Callers must hold the write
// lock. The document is written to a temp file in the same directory and
// renamed into place so a crash mid-write never leaves a torn file.
func (s *Store) persistLocked() {
	doc := orderDoc{Orders: s.orders}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("store: marshal orders failed: %v", err)
		return
	}
	dir := filepath.Dir(s.orderPath)
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		log.Printf("store: create temp file failed: %v", err)
		return
	}
	name := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(name)
		log.Printf("store: write orders failed: %v", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		log.Printf("store: close temp file failed: %v", err)
		return
	}
	if err := os.Rename(name, s.orderPath); err != nil {
		os.Remove(name)
		log.Printf("store: replace %s failed: %v", s.orderPath, err)
	}
}
