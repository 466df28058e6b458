// Package dot quotes identifiers and assembles attribute lists for the
// DOT graph description language.
//
// See https://graphviz.org/doc/info/lang.html for the grammar.
package dot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nameRegex    = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	numeralRegex = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
	keywordRegex = regexp.MustCompile(`(?i)^(node|edge|graph|digraph|subgraph|strict)$`)
	htmlRegex    = regexp.MustCompile(`(?s)^<.*>$`)
	compassRegex = regexp.MustCompile(`^(n|ne|e|se|s|sw|w|nw|c|_)$`)
)

// Kind is the lexical class of an identifier.
type Kind int

const (
	// KindString needs quoting.
	KindString Kind = iota
	// KindHTML is an HTML-like label, emitted as is.
	KindHTML
	// KindName is an alphanumeric name, emitted as is.
	KindName
	// KindNumeral is a numeric literal, emitted as is.
	KindNumeral
	// KindKeyword matches the name grammar but is reserved and needs quoting.
	KindKeyword
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindName:
		return "id"
	case KindNumeral:
		return "numeral"
	case KindKeyword:
		return "keyword"
	default:
		return "string"
	}
}

// Bare reports whether identifiers of this kind are emitted without quotes.
func (k Kind) Bare() bool {
	return k == KindHTML || k == KindName || k == KindNumeral
}

// Classify returns the lexical class of id.
func Classify(id string) Kind {
	switch {
	case htmlRegex.MatchString(id):
		return KindHTML
	case keywordRegex.MatchString(id):
		return KindKeyword
	case nameRegex.MatchString(id):
		return KindName
	case numeralRegex.MatchString(id):
		return KindNumeral
	}
	return KindString
}

// Quote returns id as a DOT identifier, quoting it if needed.
//
// HTML-like labels (<...>), names and numerals that are not keywords are
// returned unmodified. Anything else is wrapped in double quotes with
// embedded double quotes escaped. No other character is escaped, so escape
// sequences such as \n or \l reach the renderer untouched.
func Quote(id string) string {
	if Classify(id).Bare() {
		return id
	}
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}

// IsCompass reports whether s is a compass point (n, ne, e, se, s, sw, w, nw,
// c or _). QuoteEdge does not use it; compass suffixes pass through as given.
func IsCompass(s string) bool {
	return compassRegex.MatchString(s)
}

// Format returns the display string of v as it should be passed to Quote.
//
// Floats are written in the shortest decimal form without an exponent so
// that they always match the numeral grammar.
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case Value:
		return v.text
	case fmt.Stringer:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.FormatInt(int64(v), 10)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
