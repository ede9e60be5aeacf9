package sat

import "strings"

// Parse decodes a complete SAT text blob into a resolved entity graph.
func Parse(text string) (*Graph, error) {
	return ParseLines(splitLines(text))
}

// ParseLines decodes SAT text already split into lines. Parsing is
// two-pass: all entities are built keyed by record number, then every
// pointer token is resolved against that population.
func ParseLines(lines []string) (*Graph, error) {
	header, rest, err := parseHeader(lines)
	if err != nil {
		return nil, err
	}
	records, err := parseRecords(rest)
	if err != nil {
		return nil, err
	}
	unresolved, err := buildEntities(records, &header)
	if err != nil {
		return nil, err
	}
	entities, err := resolvePointers(unresolved)
	if err != nil {
		return nil, err
	}
	g := &Graph{Header: header}
	g.SetEntities(entities)
	return g, nil
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
