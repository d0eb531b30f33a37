// Package effect applies property changes to item data and synthesizes
// status-effect records.
package effect

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/osse101/CraftPanel_Go/internal/domain"
	"github.com/osse101/CraftPanel_Go/internal/pathutil"
)

// CustomFunc handles CUSTOM changes. It returns the updated document.
type CustomFunc func(doc []byte, change domain.Change) ([]byte, error)

// Applier applies changes to JSON item data.
type Applier struct {
	custom CustomFunc
}

// NewApplier creates an Applier. custom may be nil, in which case CUSTOM
// changes leave the document untouched.
func NewApplier(custom CustomFunc) *Applier {
	return &Applier{custom: custom}
}

// kind is the runtime type of a property value.
type kind int

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindArray
	kindObject
)

func kindOf(r gjson.Result) kind {
	switch r.Type {
	case gjson.True, gjson.False:
		return kindBool
	case gjson.Number:
		return kindNumber
	case gjson.String:
		return kindString
	case gjson.JSON:
		if r.IsArray() {
			return kindArray
		}
		return kindObject
	default:
		return kindNull
	}
}

// Apply applies one change and returns the updated document. A value that
// cannot be cast to the current property type fails with ErrInvalidChange
// and leaves doc untouched.
func (a *Applier) Apply(doc []byte, change domain.Change) ([]byte, error) {
	if change.Key == "" {
		return doc, fmt.Errorf("empty key | %w", domain.ErrInvalidChange)
	}

	if change.Mode == domain.ChangeCustom {
		if a.custom == nil {
			return doc, nil
		}
		return a.custom(doc, change)
	}

	current := pathutil.Get(doc, change.Key)
	ct := kindOf(current)

	var delta interface{}
	var err error
	if ct == kindArray {
		delta, err = castArray(change.Value, current)
	} else {
		delta, err = castDelta(change.Value, ct)
	}
	if err != nil {
		return doc, fmt.Errorf("%s %q: %v | %w", change.Key, change.Value, err, domain.ErrInvalidChange)
	}

	update, ok := combine(change.Mode, ct, current, delta)
	if !ok {
		return doc, nil
	}

	raw, err := json.Marshal(update)
	if err != nil {
		return doc, fmt.Errorf("%s: %v | %w", change.Key, err, domain.ErrInvalidChange)
	}
	return pathutil.SetRaw(doc, change.Key, raw)
}

// combine computes the new value for mode. ok is false when the mode does
// not apply to the current type.
func combine(mode domain.ChangeMode, ct kind, current gjson.Result, delta interface{}) (interface{}, bool) {
	switch mode {
	case domain.ChangeAdd:
		switch ct {
		case kindNull:
			return delta, true
		case kindBool:
			return current.Bool() || delta.(bool), true
		case kindNumber:
			return current.Float() + delta.(float64), true
		case kindString:
			return current.String() + delta.(string), true
		case kindArray:
			return append(toSlice(current), delta.([]interface{})...), true
		}
	case domain.ChangeMultiply:
		switch ct {
		case kindBool:
			return current.Bool() && delta.(bool), true
		case kindNumber:
			return current.Float() * delta.(float64), true
		}
	case domain.ChangeOverride:
		return delta, true
	case domain.ChangeUpgrade, domain.ChangeDowngrade:
		up := mode == domain.ChangeUpgrade
		switch ct {
		case kindNumber:
			d := delta.(float64)
			if (up && d > current.Float()) || (!up && d < current.Float()) {
				return d, true
			}
		case kindBool:
			d, c := delta.(bool), current.Bool()
			if (up && d && !c) || (!up && !d && c) {
				return d, true
			}
		}
	}
	return nil, false
}

// castDelta converts the authored value to the type of the current property.
func castDelta(raw string, ct kind) (interface{}, error) {
	switch ct {
	case kindBool:
		return truthy(parseOrString(raw)), nil
	case kindNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("not a number")
		}
		return f, nil
	case kindString:
		return raw, nil
	default:
		return parseOrString(raw), nil
	}
}

// castArray coerces the authored value into an array whose elements take
// the type of the current array's first element.
func castArray(raw string, current gjson.Result) ([]interface{}, error) {
	elemKind := kindNull
	if items := current.Array(); len(items) > 0 {
		elemKind = kindOf(items[0])
	}

	var parts []string
	parsed := gjson.Parse(raw)
	if gjson.Valid(raw) && parsed.IsArray() {
		for _, item := range parsed.Array() {
			if item.Type == gjson.String {
				parts = append(parts, item.String())
			} else {
				parts = append(parts, item.Raw)
			}
		}
	} else {
		parts = []string{raw}
	}

	out := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		v, err := castDelta(p, elemKind)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseOrString(raw string) interface{} {
	if gjson.Valid(raw) {
		return gjson.Parse(raw).Value()
	}
	return raw
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

func toSlice(r gjson.Result) []interface{} {
	if v, ok := r.Value().([]interface{}); ok {
		return v
	}
	return nil
}
