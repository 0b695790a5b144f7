// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ontology

import (
	"bufio"
	"io"
	"strings"
)

const (
	initialTermCapacity = 50000 // go.obo carries ~47k terms
	scannerBufferSize   = 1 << 20
)

// Document is a parsed OBO file before DAG construction.
type Document struct {
	FormatVersion    string
	DataVersion      string
	Ontology         string
	DefaultNamespace string
	Terms            []RawTerm
}

// RawTerm is a [Term] stanza as read from the file: accessions are not yet
// canonicalized and parent references are unresolved.
type RawTerm struct {
	ID         string
	Name       string
	Namespace  string
	AltIDs     []string
	IsA        []string
	PartOf     []string
	IsObsolete bool
	ReplacedBy string
}

// internPool avoids duplicate string allocations for repeated values such
// as namespaces and relation names.
type internPool struct {
	m map[string]string
}

func newInternPool() *internPool {
	return &internPool{m: make(map[string]string, 16)}
}

func (p *internPool) get(s string) string {
	if v, ok := p.m[s]; ok {
		return v
	}
	p.m[s] = s
	return s
}

// ParseOBO reads a Gene Ontology OBO-format file. Only the header fields
// and [Term] stanzas needed for DAG construction are kept; other stanza
// types are skipped.
func ParseOBO(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, scannerBufferSize), scannerBufferSize)

	doc := &Document{
		Terms: make([]RawTerm, 0, initialTermCapacity),
	}
	pool := newInternPool()

	// Header lines run until the first stanza.
	inHeader := true
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "[Term]" {
			inHeader = false
			doc.Terms = append(doc.Terms, parseTermStanza(scanner, pool))
			continue
		}
		if line[0] == '[' {
			inHeader = false
			continue // skip [Typedef] and other stanzas
		}
		if inHeader {
			parseHeaderLine(doc, line)
		}
	}

	return doc, scanner.Err()
}

func parseHeaderLine(doc *Document, line string) {
	key, val, ok := strings.Cut(line, ": ")
	if !ok {
		return
	}
	switch key {
	case "format-version":
		doc.FormatVersion = val
	case "data-version":
		doc.DataVersion = val
	case "ontology":
		doc.Ontology = val
	case "default-namespace":
		doc.DefaultNamespace = val
	}
}

func parseTermStanza(scanner *bufio.Scanner, pool *internPool) RawTerm {
	var t RawTerm
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break // end of stanza
		}

		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}

		switch key {
		case "id":
			t.ID = val
		case "name":
			t.Name = val
		case "namespace":
			t.Namespace = pool.get(val)
		case "alt_id":
			t.AltIDs = append(t.AltIDs, val)
		case "is_a":
			t.IsA = append(t.IsA, stripComment(val))
		case "relationship":
			rel, target := parseRelationship(val)
			if rel == "part_of" {
				t.PartOf = append(t.PartOf, target)
			}
		case "is_obsolete":
			t.IsObsolete = val == "true"
		case "replaced_by":
			t.ReplacedBy = stripComment(val)
		}
	}
	return t
}

// stripComment drops the " ! name" trailer from an accession value.
func stripComment(val string) string {
	id, _, _ := strings.Cut(val, " ! ")
	return strings.TrimSpace(id)
}

// parseRelationship parses "part_of GO:0005622 ! intracellular" into the
// relation name and target accession.
func parseRelationship(val string) (rel, target string) {
	rel, rest, ok := strings.Cut(val, " ")
	if !ok {
		return rel, ""
	}
	return rel, stripComment(rest)
}
