package input

// Context carries the state of input consumers that outrank the automap
// Hosts update it as the chat box or menu opens and closes
type Context struct {
	ChatOpen   bool
	MenuActive bool
}

// Blocks reports whether the automap must leave input to other consumers
func (c Context) Blocks() bool {
	return c.ChatOpen || c.MenuActive
}
