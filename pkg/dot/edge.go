package dot

import "strings"

// Endpoint is an edge endpoint of the form node[:port[:compass]].
type Endpoint struct {
	Node    string
	Port    string
	Compass string
	// HasPort is set when a non-empty port segment follows the node, even
	// if the port itself is empty as in "a::" or "a::s".
	HasPort bool
}

// SplitEdge splits an edge endpoint on its first two colons.
// A trailing empty component is treated as absent: "a:" has no port.
func SplitEdge(id string) Endpoint {
	node, rest, _ := strings.Cut(id, ":")
	if rest == "" {
		return Endpoint{Node: node}
	}
	port, compass, _ := strings.Cut(rest, ":")
	return Endpoint{Node: node, Port: port, Compass: compass, HasPort: true}
}

// String returns e as a DOT endpoint, quoting node and port as needed.
// The compass point is appended verbatim and is not validated.
func (e Endpoint) String() string {
	parts := []string{Quote(e.Node)}
	if e.HasPort {
		parts = append(parts, Quote(e.Port))
		if e.Compass != "" {
			parts = append(parts, e.Compass)
		}
	}
	return strings.Join(parts, ":")
}

// QuoteEdge returns id as a DOT edge endpoint, quoting node and port as
// needed. The compass point is appended verbatim and is not validated.
//
// A trailing empty component is dropped: "a:" yields a and "a:b:" yields a:b.
func QuoteEdge(id string) string {
	return SplitEdge(id).String()
}
