package girlint

import "sync"

// CheckerBase is a type to be embedded into every rule set.
// It caches the rule set identifier.
type CheckerBase struct {
	once sync.Once
	id   string
}

// ID returns the cached identifier. compute is called on first use only.
//
// Rule sets implement Checker.Identifier by calling ID with a closure
// that formats the entity label.
func (c *CheckerBase) ID(compute func() string) string {
	c.once.Do(func() {
		c.id = compute()
	})
	return c.id
}
