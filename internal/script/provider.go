// Package script evaluates user-authored snippets attached to panels,
// recipes, modifiers and slots.
package script

import (
	"context"
	"strings"
)

// Arg is one positional argument of a script call. Scripts see the value
// both at its position and under Name.
type Arg struct {
	Name  string
	Value interface{}
}

// Args is the ordered argument list of a script call.
type Args []Arg

// Get returns the value of the named argument.
func (a Args) Get(name string) (interface{}, bool) {
	for _, arg := range a {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return nil, false
}

// Provider evaluates a script source with the given arguments.
type Provider interface {
	Evaluate(ctx context.Context, source string, args Args) (interface{}, error)
}

// Truthy applies loose truthiness to a script result. Nil, false, zero,
// the empty string and the string "false" are falsy.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && !strings.EqualFold(t, "false")
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
