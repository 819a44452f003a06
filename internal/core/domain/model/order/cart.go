package order

import (
	"errors"
	"sort"

	"foodmate/internal/core/domain/model/kernel"
	"foodmate/internal/core/domain/model/menu"
	"foodmate/internal/pkg/errs"
)

var (
	// ErrCartItemNotFound is returned when removing a dish that is not in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrQuantityIsInvalid is returned when adding a non-positive quantity.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be positive")
	// ErrLineIsNotConstructed is returned when a Line was created bypassing its constructor.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine")
)

// Line is one priced cart entry: a dish snapshot with a quantity.
//
// The dish name and unit price are copied when the line is created, so the
// line keeps pricing a placed order correctly even if the menu changes
// afterwards.
type Line struct {
	dishID    kernel.ID
	dishName  string
	unitPrice kernel.Money
	quantity  int
}

// NewLine creates a validated Line. Used by the cart and by store adapters
// rehydrating frozen order lines.
func NewLine(dishID kernel.ID, dishName string, unitPrice kernel.Money, quantity int) (Line, error) {
	if err := dishID.Validate(); err != nil {
		return Line{}, err
	}
	if dishName == "" {
		return Line{}, errs.NewValueIsRequiredError("dish name")
	}
	if unitPrice.IsNegative() {
		return Line{}, errs.NewValueIsInvalidError("unit price must not be negative")
	}
	if quantity <= 0 {
		return Line{}, ErrQuantityIsInvalid
	}

	return Line{dishID: dishID, dishName: dishName, unitPrice: unitPrice, quantity: quantity}, nil
}

// DishID returns the identifier of the dish this line snapshots.
func (l Line) DishID() kernel.ID {
	return l.dishID
}

// DishName returns the dish name as it read when the line was created.
func (l Line) DishName() string {
	return l.dishName
}

// UnitPrice returns the per-unit price snapshot.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns how many units of the dish the line holds.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns unit price times quantity.
func (l Line) Total() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

// Validate checks that the Line was built via NewLine.
func (l Line) Validate() error {
	if l.dishID.IsZero() {
		return ErrLineIsNotConstructed
	}
	return nil
}

// Cart is the transient basket a customer edits before an order is created.
//
// Lines are keyed by dish ID: adding the same dish again increments the
// existing line. The cart is not an aggregate of its own, it is consumed
// into an Order, which freezes its lines.
type Cart struct {
	lines map[kernel.ID]Line
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{lines: make(map[kernel.ID]Line)}
}

// AddItem adds quantity units of the dish to the cart, merging into an
// existing line for the same dish.
func (c *Cart) AddItem(dish *menu.Dish, quantity int) error {
	if err := dish.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	if existing, ok := c.lines[dish.ID()]; ok {
		existing.quantity += quantity
		c.lines[dish.ID()] = existing
		return nil
	}

	line, err := NewLine(dish.ID(), dish.Name(), dish.Price(), quantity)
	if err != nil {
		return err
	}
	c.lines[dish.ID()] = line
	return nil
}

// RemoveItemByName removes the line whose dish name matches.
//
// When several dishes share the name, the line with the smallest dish ID is
// removed, so repeated removals are deterministic regardless of insertion
// order. Returns ErrCartItemNotFound when no line matches.
func (c *Cart) RemoveItemByName(name string) error {
	for _, id := range c.sortedIDs() {
		if c.lines[id].dishName == name {
			delete(c.lines, id)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// Subtotal returns the sum of all line totals.
func (c *Cart) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.quantity
	}
	return count
}

// Lines returns the cart lines ordered by dish ID.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.lines))
	for _, id := range c.sortedIDs() {
		lines = append(lines, c.lines[id])
	}
	return lines
}

func (c *Cart) sortedIDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(c.lines))
	for id := range c.lines {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
	return ids
}
