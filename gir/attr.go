package gir

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// Bool is a GIR boolean attribute. GIR writes them as "0" and "1".
type Bool bool

func (b *Bool) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := strconv.ParseBool(attr.Value)
	if err != nil {
		return fmt.Errorf("attribute %s: %w", attr.Name.Local, err)
	}
	*b = Bool(v)
	return nil
}

// Scope tells how long a callback parameter stays alive.
type Scope int

const (
	// ScopeNone means the parameter declares no scope.
	ScopeNone Scope = iota
	// ScopeCall is valid for the duration of the call.
	ScopeCall
	// ScopeAsync is invoked once, after the call returns.
	ScopeAsync
	// ScopeNotified lives until a destroy notifier runs.
	ScopeNotified
	// ScopeForever is never freed.
	ScopeForever
)

var scopeNames = [...]string{
	ScopeNone:     "",
	ScopeCall:     "call",
	ScopeAsync:    "async",
	ScopeNotified: "notified",
	ScopeForever:  "forever",
}

func (s Scope) String() string {
	if s < 0 || int(s) >= len(scopeNames) {
		return "Scope(" + strconv.Itoa(int(s)) + ")"
	}
	return scopeNames[s]
}

func (s *Scope) UnmarshalXMLAttr(attr xml.Attr) error {
	for i, name := range scopeNames {
		if name == attr.Value {
			*s = Scope(i)
			return nil
		}
	}
	return fmt.Errorf("unknown parameter scope %q", attr.Value)
}
