package flexfolio

import (
	"io"
	"os"
)

// Statement is a fully parsed Flex statement. It is built once per file and is
// read-only afterwards: every derivation recomputes its result from the parsed
// sections, so calling a derivation twice yields identical output.
type Statement struct {
	sections []*ModelSection
}

// ModelSection holds the raw statement subtree of one accounting model,
// together with the reporting period declared for it.
type ModelSection struct {
	Name     string
	From, To Date
	tree     map[string]any
}

// Period returns the reporting range [From, To] of the section.
func (m *ModelSection) Period() Range { return Range{From: m.From, To: m.To} }

// Parse reads a Flex statement document and returns the parsed Statement.
// It returns a *ParseError when the root structure is malformed or the
// expected top-level fields are absent.
func Parse(r io.Reader) (*Statement, error) {
	tree, err := decodeTree(r)
	if err != nil {
		return nil, err
	}
	response, ok := tree["FlexQueryResponse"].(map[string]any)
	if !ok {
		return nil, parseErrorf("missing FlexQueryResponse root element")
	}
	statements, ok := response["FlexStatements"].(map[string]any)
	if !ok {
		return nil, parseErrorf("missing FlexStatements element")
	}
	// A single FlexStatement decodes as a map, several as a list. Normalize to
	// a list so nothing downstream special-cases cardinality.
	raw := asList(statements["FlexStatement"])
	if len(raw) == 0 {
		return nil, parseErrorf("no FlexStatement element")
	}

	stmt := &Statement{}
	for _, section := range raw {
		nav, ok := section["ChangeInNAV"].(map[string]any)
		if !ok {
			return nil, parseErrorf("FlexStatement without ChangeInNAV element")
		}
		name, ok := nav["@model"].(string)
		if !ok {
			return nil, parseErrorf("ChangeInNAV without model attribute")
		}
		from, err := parseDateAttr(section, "@fromDate")
		if err != nil {
			return nil, err
		}
		to, err := parseDateAttr(section, "@toDate")
		if err != nil {
			return nil, err
		}
		stmt.sections = append(stmt.sections, &ModelSection{
			Name: name,
			From: from,
			To:   to,
			tree: section,
		})
	}
	return stmt, nil
}

// ParseFile reads and parses the Flex statement at path.
func ParseFile(path string) (*Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func parseDateAttr(node map[string]any, key string) (Date, error) {
	str, ok := node[key].(string)
	if !ok {
		return Date{}, parseErrorf("FlexStatement without %s attribute", key)
	}
	day, err := ParseDate(str)
	if err != nil {
		return Date{}, parseErrorf("invalid %s: %v", key, err)
	}
	return day, nil
}

// Models returns the model names present in the statement, in file order.
func (s *Statement) Models() []string {
	names := make([]string, 0, len(s.sections))
	for _, section := range s.sections {
		names = append(names, section.Name)
	}
	return names
}

// Section returns the section of the named model, or nil.
func (s *Statement) Section(name string) *ModelSection {
	for _, section := range s.sections {
		if section.Name == name {
			return section
		}
	}
	return nil
}

// selected returns the sections matched by the selector, in file order.
// Model names are assumed unique within a statement.
func (s *Statement) selected(sel ModelSelector) []*ModelSection {
	matched := make([]*ModelSection, 0, len(s.sections))
	for _, section := range s.sections {
		if sel.Matches(section.Name) {
			matched = append(matched, section)
		}
	}
	return matched
}

// NAV returns the starting and ending net asset value summed over the selected
// models.
func (s *Statement) NAV(sel ModelSelector) (starting, ending float64) {
	for _, section := range s.selected(sel) {
		nav, _ := section.tree["ChangeInNAV"].(map[string]any)
		starting += floatValue(nav["@startingValue"])
		ending += floatValue(nav["@endingValue"])
	}
	return starting, ending
}

func floatValue(v any) float64 {
	f, _ := v.(float64)
	return f
}
