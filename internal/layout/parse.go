package layout

import (
	"encoding/json"
	"maps"
	"strings"
)

// PropValue is a slot prop: either a string or a boolean.
type PropValue struct {
	str    string
	b      bool
	isBool bool
}

// StringProp wraps a string prop value.
func StringProp(value string) PropValue {
	return PropValue{str: value}
}

// BoolProp wraps a boolean prop value.
func BoolProp(value bool) PropValue {
	return PropValue{b: value, isBool: true}
}

// IsBool reports whether the value was parsed from a literal true/false.
func (v PropValue) IsBool() bool { return v.isBool }

// Bool returns the boolean value; false for string props.
func (v PropValue) Bool() bool { return v.isBool && v.b }

// String returns the string form. Boolean props render as "true"/"false".
func (v PropValue) String() string {
	if v.isBool {
		if v.b {
			return "true"
		}
		return "false"
	}
	return v.str
}

// MarshalJSON encodes booleans as JSON booleans and everything else as strings.
func (v PropValue) MarshalJSON() ([]byte, error) {
	if v.isBool {
		return json.Marshal(v.b)
	}
	return json.Marshal(v.str)
}

// Component is one parsed slot entry.
type Component struct {
	Kind  Kind                 `json:"type"`
	Props map[string]PropValue `json:"props"`
}

// RendererID returns the renderer token for the component kind.
func (c Component) RendererID() string {
	return RendererID(c.Kind)
}

// Prop returns the string form of a prop, or "" when absent.
func (c Component) Prop(key string) string {
	return c.Props[key].String()
}

func (c Component) clone() Component {
	return Component{Kind: c.Kind, Props: maps.Clone(c.Props)}
}

// ParseSlotValue parses a raw slot value into components in source order.
// Segments naming none or an unknown kind are dropped. Params are key=value
// pairs separated by ';'; pairs without '=' are ignored and the literal values
// true/false become booleans.
func ParseSlotValue(raw string) []Component {
	if strings.TrimSpace(raw) == "" {
		return []Component{}
	}

	segments := strings.Split(raw, ",")
	out := make([]Component, 0, len(segments))
	for _, segment := range segments {
		component, ok := parseSegment(segment)
		if !ok {
			continue
		}
		out = append(out, component)
	}
	return out
}

func parseSegment(segment string) (Component, bool) {
	name, params, _ := strings.Cut(strings.TrimSpace(segment), ":")
	kind, ok := ParseKind(name)
	if !ok || kind == KindNone {
		return Component{}, false
	}
	return Component{Kind: kind, Props: parseParams(params)}, true
}

func parseParams(params string) map[string]PropValue {
	props := map[string]PropValue{}
	if strings.TrimSpace(params) == "" {
		return props
	}
	for _, pair := range strings.Split(params, ";") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		switch value {
		case "true":
			props[key] = BoolProp(true)
		case "false":
			props[key] = BoolProp(false)
		default:
			props[key] = StringProp(value)
		}
	}
	return props
}
