// Package position implements the 1-based wraparound file counter.
package position

import "fmt"

// Counter tracks the current 1-based position over total items.
// current is 0 exactly when total is 0.
type Counter struct {
	total   int
	current int
}

// New returns a counter reset to total.
func New(total int) *Counter {
	c := &Counter{}
	c.Reset(total)
	return c
}

// Reset starts over at the first item, or 0 when empty.
func (c *Counter) Reset(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	if total > 0 {
		c.current = 1
	} else {
		c.current = 0
	}
}

// Next advances one item, wrapping from the last to the first.
func (c *Counter) Next() {
	if c.total == 0 {
		return
	}
	c.current++
	if c.current > c.total {
		c.current = 1
	}
}

// Prev retreats one item, wrapping from the first to the last.
func (c *Counter) Prev() {
	if c.total == 0 {
		return
	}
	c.current--
	if c.current < 1 {
		c.current = c.total
	}
}

// HoldAfterRemoval keeps the index after an entry was dropped so the next
// entry slides into place, clamping to the new last item.
func (c *Counter) HoldAfterRemoval(newTotal int) {
	if newTotal <= 0 {
		c.total = 0
		c.current = 0
		return
	}
	c.total = newTotal
	if c.current > newTotal {
		c.current = newTotal
	}
	if c.current < 1 {
		c.current = 1
	}
}

// Current returns the 1-based position, 0 when empty.
func (c *Counter) Current() int {
	return c.current
}

// Total returns the item count.
func (c *Counter) Total() int {
	return c.total
}

// Empty reports whether there is nothing to show.
func (c *Counter) Empty() bool {
	return c.total == 0
}

func (c *Counter) String() string {
	if c.total == 0 {
		return "File - / -"
	}
	return fmt.Sprintf("File %d / %d", c.current, c.total)
}
