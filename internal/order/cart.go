// Package order holds the shopping cart and submits finished orders to the
// form relay that emails the shop.
package order

import (
	"errors"
	"sync"

	"camper-renderer/internal/camper"
	"camper-renderer/internal/pricing"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrEmptyCart          = errors.New("order: cart is empty")
	ErrMissingContact     = errors.New("order: name and email are required")
	ErrRelayNotConfigured = errors.New("order: no relay URL configured")
)

// Item is one build in the cart. Price is captured when the build is added.
type Item struct {
	ID    string        `json:"id"`
	Build camper.Config `json:"build"`
	Price int           `json:"price"`
}

// NewItem prices cfg and gives it a fresh id.
func NewItem(cfg camper.Config) Item {
	return Item{ID: uuid.NewString(), Build: cfg, Price: pricing.Price(cfg)}
}

// Cart is an ordered list of items, safe for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// Add prices cfg and appends it.
func (c *Cart) Add(cfg camper.Config) Item {
	it := NewItem(cfg)
	c.mu.Lock()
	c.items = append(c.items, it)
	c.mu.Unlock()
	return it
}

// Remove drops the item with id and reports whether it was present.
func (c *Cart) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = lo.Reject(c.items, func(it Item, _ int) bool { return it.ID == id })
	return len(c.items) < n
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.items...)
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums the captured item prices.
func (c *Cart) Total() int {
	return Total(c.Items())
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}

// Total sums item prices.
func Total(items []Item) int {
	return lo.SumBy(items, func(it Item) int { return it.Price })
}
