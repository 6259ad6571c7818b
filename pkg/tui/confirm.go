package tui

// confirmAction names what a pending confirmation will do once the user
// answers yes.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmReload
	confirmQuit
)

// Confirmation is a minimal inline y/n prompt rendered in the status area.
type Confirmation struct {
	Active bool
	Prompt string
	Action confirmAction
}

// Ask arms the prompt.
func (c *Confirmation) Ask(prompt string, action confirmAction) {
	c.Active = true
	c.Prompt = prompt
	c.Action = action
}

// Clear disarms the prompt.
func (c *Confirmation) Clear() {
	c.Active = false
	c.Prompt = ""
	c.Action = confirmNone
}
