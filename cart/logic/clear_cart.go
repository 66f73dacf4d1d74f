package logic

// Clear removes every line item. Identifiers already issued stay reserved.
func (c *Cart) Clear() {
	c.items = nil
}
