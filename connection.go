package actions

// Connection represents one registration of a handler on an Action.
// Duplicate Connect calls yield independent connections; disconnecting one
// leaves the others in place.
type Connection struct {
	action *Action
	id     uint64
}

// Disconnect removes this registration from the action's dispatch list.
// It returns ErrNotConnected when the registration was already removed.
func (c *Connection) Disconnect() error {
	if c == nil || c.action == nil {
		return ErrNotConnected
	}
	return c.action.disconnect(c.id)
}
