package session

import (
	"strconv"
	"sync"

	"go.uber.org/zap"
)

// Item is a menu item as offered by a café, before any quantity is
// attached to it.
type Item struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"` // minor units
	Description    string `json:"description"`
	Picture        string `json:"picture"`
	RestaurantID   uint   `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`
}

// CartLine is one line of the cart. Quantity is always >= 1: a line
// whose quantity drops to zero is removed, never stored.
type CartLine struct {
	Item
	Qty int `json:"quantity"`
}

// Cart holds the order-in-progress for one device session. All lines
// belong to a single café at a time; adding an item from a different
// café replaces the whole cart. Every mutation rewrites both the item
// list and the active café identifier in durable storage.
type Cart struct {
	mu    sync.Mutex
	store Store
	log   *zap.Logger

	items        []CartLine
	restaurantID uint // 0 = no active café yet
}

func NewCart(store Store, log *zap.Logger) *Cart {
	c := &Cart{store: store, log: log}
	if items, ok := loadJSON[[]CartLine](store, KeyCart, log); ok {
		c.items = items
	}
	if raw, ok := store.Get(KeyCurrentRestaurant); ok {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.Warn("discarding corrupt session value", zap.String("key", KeyCurrentRestaurant), zap.Error(err))
			store.Delete(KeyCurrentRestaurant)
		} else {
			c.restaurantID = uint(id)
		}
	}
	return c
}

// AddItem puts one unit of it into the cart. An item from a café other
// than the active one discards the existing cart and starts a fresh
// single-line cart; an already-present item gets its quantity bumped.
func (c *Cart) AddItem(it Item) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restaurantID != 0 && c.restaurantID != it.RestaurantID {
		c.items = []CartLine{{Item: it, Qty: 1}}
		c.restaurantID = it.RestaurantID
		c.persistLocked()
		return
	}
	c.restaurantID = it.RestaurantID

	for i := range c.items {
		if c.items[i].ID == it.ID {
			c.items[i].Qty++
			c.persistLocked()
			return
		}
	}
	c.items = append(c.items, CartLine{Item: it, Qty: 1})
	c.persistLocked()
}

func (c *Cart) RemoveItem(itemID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(itemID)
	c.persistLocked()
}

// UpdateQuantity sets the quantity of an existing line. Zero or
// negative removes the line; a positive quantity for an unknown item
// is a no-op.
func (c *Cart) UpdateQuantity(itemID uint, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if qty <= 0 {
		c.removeLocked(itemID)
	} else {
		for i := range c.items {
			if c.items[i].ID == itemID {
				c.items[i].Qty = qty
				break
			}
		}
	}
	c.persistLocked()
}

// Clear empties the item list. The active café identifier is left as
// is: a cleared cart stays pinned to its café for the next add.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

// SetCurrentRestaurant pins the cart to a café, discarding any items
// that belong to a different one.
func (c *Cart) SetCurrentRestaurant(restaurantID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.restaurantID != 0 && c.restaurantID != restaurantID {
		c.items = nil
	}
	c.restaurantID = restaurantID
	c.persistLocked()
}

// IsFromSameRestaurant reports whether an item from the given café can
// join the cart without replacing it. True when no café is active yet.
func (c *Cart) IsFromSameRestaurant(restaurantID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restaurantID == 0 || c.restaurantID == restaurantID
}

func (c *Cart) ActiveRestaurant() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restaurantID
}

// TotalPrice recomputes the cart total fresh on every call.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, l := range c.items {
		total += l.Price * int64(l.Qty)
	}
	return total
}

func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, l := range c.items {
		n += l.Qty
	}
	return n
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) removeLocked(itemID uint) {
	kept := c.items[:0]
	for _, l := range c.items {
		if l.ID != itemID {
			kept = append(kept, l)
		}
	}
	c.items = kept
}

func (c *Cart) persistLocked() {
	items := c.items
	if items == nil {
		items = []CartLine{}
	}
	saveJSON(c.store, KeyCart, items, c.log)
	c.store.Set(KeyCurrentRestaurant, strconv.FormatUint(uint64(c.restaurantID), 10))
}
