// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// OrderCreatedEvent is published after a ticket order is successfully
// created. It carries enough of the order for downstream consumers to log
// or notify without reading the order store.
type OrderCreatedEvent struct {
	OrderNumber string `json:"order_number"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Teams       string `json:"teams"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Section     string `json:"section"`
	Row         string `json:"row"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	CreatedAt   string `json:"created_at"`
}
