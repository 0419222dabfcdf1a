package model

import "time"

type Customer struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RawOrder is an order as the backend returns it.
type RawOrder struct {
	ID         string       `json:"id"`
	Status     *OrderStatus `json:"status"`
	Timestamp  string       `json:"timestamp"`
	Customer   Customer     `json:"customer"`
	Restaurant Restaurant   `json:"restaurant"`
}

// Validate rejects records that must be treated as "no order".
// An unknown status code is still a valid record.
func (o RawOrder) Validate() error {
	if o.ID == "" {
		return ErrMissingOrderID
	}
	if o.Status == nil {
		return ErrMissingStatus
	}
	return nil
}

type Action struct {
	Target OrderStatus `json:"target"`
	Label  string      `json:"label"`
	Color  string      `json:"color"`
}

type OrderRecord struct {
	ID                string      `json:"id"`
	Time              string      `json:"time"`
	Status            OrderStatus `json:"status"`
	StatusLabel       string      `json:"statusLabel"`
	StatusColor       string      `json:"statusColor"`
	CustomerID        string      `json:"customerID,omitempty"`
	Address           string      `json:"addr"`
	RestaurantID      string      `json:"restId"`
	RestaurantName    string      `json:"restName"`
	RestaurantAddress string      `json:"restAddr"`
	Actions           []Action    `json:"actions"`
}

type TransitionRecord struct {
	OrderID   string      `json:"orderID"`
	Role      Role        `json:"role"`
	ActorID   string      `json:"actorID"`
	From      OrderStatus `json:"from"`
	To        OrderStatus `json:"to"`
	AppliedAt time.Time   `json:"appliedAt"`
}
