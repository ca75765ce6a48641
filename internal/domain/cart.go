package domain

type CartLine struct {
	Product
	Quantity int
}

func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart is the in-progress transaction. It is not safe for concurrent use;
// the billing session serializes access to it.
type Cart struct {
	Lines         []CartLine
	CustomerName  string
	CustomerPhone string
	Notes         string
}

func (c *Cart) indexOf(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			return i
		}
	}
	return -1
}

// AddItem increments the quantity of an existing line or appends a new line
// with quantity 1.
func (c *Cart) AddItem(p Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// SetQuantity adjusts a line by delta, never below 1. Unknown ids are ignored.
func (c *Cart) SetQuantity(productID string, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	// compared against 1-qty so that a huge negative delta cannot wrap around
	if delta <= 1-c.Lines[i].Quantity {
		c.Lines[i].Quantity = 1
		return
	}
	c.Lines[i].Quantity += delta
}

func (c *Cart) RemoveItem(productID string) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}

func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Snapshot returns a copy of the lines that shares no backing array with the cart.
func (c *Cart) Snapshot() []CartLine {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}

func (c *Cart) Descriptors() []string {
	descriptors := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		descriptors = append(descriptors, l.Descriptor())
	}
	return descriptors
}

// Clear drops all lines and the transient customer fields.
func (c *Cart) Clear() {
	c.Lines = nil
	c.CustomerName = ""
	c.CustomerPhone = ""
	c.Notes = ""
}
