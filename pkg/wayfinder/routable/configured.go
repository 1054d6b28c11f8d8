package routable

// Table maps transition sources to the primitive that realizes them.
type Table map[TransitionSource]Primitive

// Configured derives Show and Hide from a Table.
// Embed it in a screen and implement RouteIdentifier, VisibleChildren and
// Change on the outer type.
type Configured struct {
	owner    Routable
	platform Platform
	table    Table
}

// NewConfigured binds a table to the screen that owns it.
func NewConfigured(owner Routable, platform Platform, table Table) *Configured {
	if table == nil {
		table = Table{}
	}
	return &Configured{owner: owner, platform: platform, table: table}
}

// Transitions returns the table. Callers must not modify it.
func (c *Configured) Transitions() Table {
	return c.table
}

// Handles reports whether the table has an entry for the source.
func (c *Configured) Handles(src TransitionSource) bool {
	_, ok := c.table[src]
	return ok
}

func (c *Configured) Show(req Request, done Completion) bool {
	return c.perform(Show, req, done)
}

func (c *Configured) Hide(req Request, done Completion) bool {
	return c.perform(Hide, req, done)
}

func (c *Configured) perform(dir Direction, req Request, done Completion) bool {
	p, ok := c.table[TransitionSource{Identifier: req.Identifier, Direction: dir}]
	if !ok {
		return false
	}

	p.Perform(Transition{
		Request:   req,
		Direction: dir,
		Handler:   c.owner,
		Platform:  c.platform,
	}, done)
	return true
}
