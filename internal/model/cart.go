package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type FoodStatus int

const (
	FoodUnavailable FoodStatus = 0
	FoodAvailable   FoodStatus = 1
)

type Food struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
	Status FoodStatus      `json:"status"`
}

type RestaurantInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Menu    []Food `json:"menu"`
}

type OrderItem struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderInput struct {
	Items []OrderItem `json:"items"`
}

type PlaceOrderOutput struct {
	RestaurantID string          `json:"restaurantID"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

// Cart accumulates quantities of foods from a single restaurant menu.
type Cart struct {
	menu   map[string]Food
	order  []string
	counts map[string]int
}

func NewCart(menu []Food) *Cart {
	m := make(map[string]Food, len(menu))
	for _, f := range menu {
		m[f.ID] = f
	}
	return &Cart{menu: m, counts: make(map[string]int)}
}

// Put adds item.Quantity units of a food.
func (c *Cart) Put(item OrderItem) error {
	f, ok := c.menu[item.FoodID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFoodNotInMenu, item.FoodID)
	}
	if f.Status != FoodAvailable {
		return fmt.Errorf("%w: %s", ErrFoodUnavailable, item.FoodID)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidQuantity, item.FoodID)
	}

	if _, ok := c.counts[item.FoodID]; !ok {
		c.order = append(c.order, item.FoodID)
	}
	c.counts[item.FoodID] += item.Quantity
	return nil
}

func (c *Cart) Items() []OrderItem {
	items := make([]OrderItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, OrderItem{FoodID: id, Quantity: c.counts[id]})
	}
	return items
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, id := range c.order {
		total = total.Add(c.menu[id].Price.Mul(decimal.NewFromInt(int64(c.counts[id]))))
	}
	return total
}

func (c *Cart) Validate() error {
	if len(c.order) == 0 {
		return ErrEmptyCart
	}
	return nil
}
