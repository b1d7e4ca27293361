package flexfolio

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// This file wraps the XML decoder into the generic tree shape the rest of the
// package navigates: every element becomes a map[string]any with "@name" keys
// for attributes and child-element names as keys, repeated children collected
// into a []any.

// textKeys whose name carries a date, time or identifier must stay text even
// when they happen to look numeric: "20180205" is a day, not twenty million.
var textSuffixes = []string{"time", "date", "Time", "Date", "conid"}

// typify converts an attribute value to float64 when it parses as a number,
// unless the attribute name has a date/time/identifier suffix.
func typify(name, value string) any {
	for _, suffix := range textSuffixes {
		if strings.HasSuffix(name, suffix) {
			return value
		}
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

// decodeTree parses a whole XML document into the generic tree, keyed by the
// root element name.
func decodeTree(r io.Reader) (map[string]any, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, parseErrorf("empty document")
		}
		if err != nil {
			return nil, parseErrorf("invalid xml: %v", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			node, err := decodeElement(dec, start)
			if err != nil {
				return nil, err
			}
			return map[string]any{start.Name.Local: node}, nil
		}
	}
}

// decodeElement consumes tokens until the matching end element, building the
// node map for one element.
func decodeElement(dec *xml.Decoder, start xml.StartElement) (map[string]any, error) {
	node := make(map[string]any, len(start.Attr))
	for _, attr := range start.Attr {
		node["@"+attr.Name.Local] = typify(attr.Name.Local, attr.Value)
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, parseErrorf("invalid xml inside <%s>: %v", start.Name.Local, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			addChild(node, t.Name.Local, child)
		case xml.EndElement:
			return node, nil
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				node["#text"] = typify(start.Name.Local, text)
			}
		}
	}
}

// addChild stores a child node under its element name, folding repeated
// elements into a []any in document order.
func addChild(node map[string]any, name string, child map[string]any) {
	prev, ok := node[name]
	if !ok {
		node[name] = child
		return
	}
	if list, ok := prev.([]any); ok {
		node[name] = append(list, child)
		return
	}
	node[name] = []any{prev, child}
}

// asList normalizes a tree value into a slice of records: a repeated element
// is already a []any, a single occurrence is wrapped into one.
func asList(v any) []map[string]any {
	switch t := v.(type) {
	case []any:
		records := make([]map[string]any, 0, len(t))
		for _, e := range t {
			if m, ok := e.(map[string]any); ok {
				records = append(records, m)
			}
		}
		return records
	case map[string]any:
		return []map[string]any{t}
	default:
		return nil
	}
}
