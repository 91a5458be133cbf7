package domain

import "fmt"

// A CartLine is one product's quantity entry. Quantity is always > 0:
// a mutation that would drive it to zero or below removes the line.
type CartLine struct {
	ProductID int
	Name      string
	Price     float64
	Quantity  int
}

// A Cart maps productID to at most one CartLine, preserving insertion
// order. Every mutation is applied immediately and is visible to the
// next read. A Cart is not safe for concurrent use; the owning session
// serializes access.
type Cart struct {
	order []int
	lines map[int]*CartLine
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int]*CartLine)}
}

// Add inserts a new line or increments an existing one. Non-positive
// quantities are normalized to 1 so an Add is never a silent no-op.
func (c *Cart) Add(productID int, name string, price float64, qty int) {
	if qty <= 0 {
		qty = 1
	}
	if line, ok := c.lines[productID]; ok {
		line.Quantity += qty
		return
	}
	c.lines[productID] = &CartLine{
		ProductID: productID,
		Name:      name,
		Price:     price,
		Quantity:  qty,
	}
	c.order = append(c.order, productID)
}

// Remove decrements a line, deleting it when the quantity reaches zero
// or below. Removing an absent product returns ErrNotInCart so callers
// can report it instead of silently ignoring it.
func (c *Cart) Remove(productID, qty int) error {
	line, ok := c.lines[productID]
	if !ok {
		return ErrNotInCart
	}
	if qty <= 0 {
		qty = 1
	}
	line.Quantity -= qty
	if line.Quantity <= 0 {
		c.deleteLine(productID)
	}
	return nil
}

// SetQuantity overwrites a line's quantity, clamping to >= 0.
// Zero removes the line.
func (c *Cart) SetQuantity(productID, qty int) error {
	line, ok := c.lines[productID]
	if !ok {
		return ErrNotInCart
	}
	if qty <= 0 {
		c.deleteLine(productID)
		return nil
	}
	line.Quantity = qty
	return nil
}

// Clear empties the cart. Used after successful checkout.
func (c *Cart) Clear() {
	c.order = nil
	c.lines = make(map[int]*CartLine)
}

// Total is always recomputed, never cached.
func (c *Cart) Total() float64 {
	var sum float64
	for _, line := range c.lines {
		sum += line.Price * float64(line.Quantity)
	}
	return sum
}

func (c *Cart) Quantity(productID int) int {
	if line, ok := c.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

func (c *Cart) Len() int { return len(c.lines) }

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []CartLine {
	ls := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		if line, ok := c.lines[id]; ok {
			ls = append(ls, *line)
		}
	}
	return ls
}

func (c *Cart) deleteLine(productID int) {
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// A CommandResult is the per-command feedback of one Apply pass.
type CommandResult struct {
	Command ValidatedCommand
	Applied bool
	Message string
}

// Apply drives a validated batch through the cart in order. Failures
// are per-command feedback, never a whole-batch abort: one product that
// is not in the cart must not block unrelated commands.
func (c *Cart) Apply(batch CommandBatch) []CommandResult {
	results := make([]CommandResult, 0, len(batch.Commands))
	for _, cmd := range batch.Commands {
		results = append(results, c.apply(cmd))
	}
	return results
}

func (c *Cart) apply(cmd ValidatedCommand) CommandResult {
	res := CommandResult{Command: cmd}
	switch cmd.Action {
	case ActionAdd:
		c.Add(cmd.ProductID, cmd.ProductName, cmd.Price, cmd.Quantity)
		res.Applied = true
		res.Message = fmt.Sprintf("added %d x %s", cmd.Quantity, cmd.ProductName)
	case ActionRemove:
		if err := c.Remove(cmd.ProductID, cmd.Quantity); err != nil {
			res.Message = fmt.Sprintf("%s is not in your cart", cmd.ProductName)
			return res
		}
		res.Applied = true
		res.Message = fmt.Sprintf("removed %d x %s", cmd.Quantity, cmd.ProductName)
	default:
		res.Message = cmd.Message
	}
	return res
}

// A CartSnapshot is a client-reported cart state used for telemetry.
type CartSnapshot struct {
	SessionID string
	Lines     []CartLine
	Total     float64
}
