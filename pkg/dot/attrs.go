package dot

import (
	"sort"
	"strings"
)

// Value is an attribute value that may be unset.
//
// The zero Value is unset. Unset values are left out of attribute lists,
// while a value set to the empty string is written as key="".
type Value struct {
	text string
	set  bool
}

// None is the unset Value.
var None Value

// String returns a Value set to s.
func String(s string) Value {
	return Value{text: s, set: true}
}

// Int returns a Value set to the decimal form of i.
func Int(i int64) Value {
	return String(Format(i))
}

// Float returns a Value set to the decimal form of f.
func Float(f float64) Value {
	return String(Format(f))
}

// ValueOf converts v to a Value. A nil v, or a nil *string, yields None.
func ValueOf(v any) Value {
	switch v := v.(type) {
	case nil:
		return None
	case Value:
		return v
	case *string:
		if v == nil {
			return None
		}
		return String(*v)
	}
	return String(Format(v))
}

// IsSet reports whether v holds a value.
func (v Value) IsSet() bool {
	return v.set
}

// Text returns the unquoted text of v, or "" if v is unset.
func (v Value) Text() string {
	return v.text
}

// Attr is a single key/value pair.
type Attr struct {
	Key   string
	Value Value
}

// Attributes is a source of attribute pairs.
type Attributes interface {
	// Pairs returns the pairs in the order they are to be written.
	Pairs() []Attr
}

// Map is an unordered attribute source. Its pairs are written sorted by key.
type Map map[string]Value

// Pairs returns the entries of m sorted by key.
func (m Map) Pairs() []Attr {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]Attr, len(keys))
	for i, k := range keys {
		pairs[i] = Attr{Key: k, Value: m[k]}
	}
	return pairs
}

// List is an ordered attribute source. Its pairs are written as given.
type List []Attr

// Pairs returns l unchanged.
func (l List) Pairs() []Attr {
	return l
}

// AList returns the DOT a_list for label, kwargs and attributes: a space
// separated sequence of key=value tokens.
//
// The label comes first, then kwargs sorted by key, then attributes in the
// order of their source. Unset values are skipped. attributes may be nil.
func AList(label Value, kwargs Map, attributes Attributes) string {
	var result []string
	if label.IsSet() {
		result = append(result, "label="+Quote(label.text))
	}
	result = appendPairs(result, kwargs.Pairs())
	if attributes != nil {
		result = appendPairs(result, attributes.Pairs())
	}
	return strings.Join(result, " ")
}

// AttrList returns the DOT attr_list for label, kwargs and attributes: the
// a_list wrapped as " [...]", ready to follow a statement, or "" when there
// is nothing to write.
func AttrList(label Value, kwargs Map, attributes Attributes) string {
	content := AList(label, kwargs, attributes)
	if content == "" {
		return ""
	}
	return " [" + content + "]"
}

func appendPairs(dst []string, pairs []Attr) []string {
	for _, p := range pairs {
		if !p.Value.IsSet() {
			continue
		}
		dst = append(dst, Quote(p.Key)+"="+Quote(p.Value.text))
	}
	return dst
}
