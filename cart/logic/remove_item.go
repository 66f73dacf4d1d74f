package logic

// RemoveItem deletes a line item and reports whether it was present.
// Removing an unknown identifier leaves the cart unchanged.
func (c *Cart) RemoveItem(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}
