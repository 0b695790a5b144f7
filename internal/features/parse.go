// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package features computes the annotation feature record for a protein
// pair: raw annotation unions plus GO terms induced up to the least common
// ancestors of the two proteins' term sets.
package features

import "strings"

// DefaultSeparator is the token delimiter used by the annotation fields.
const DefaultSeparator = ","

// SplitAnnotations splits a raw annotation string into clean tokens. Each
// token is trimmed and tokens that are empty after trimming are dropped;
// upstream sources routinely emit trailing delimiters. Order is preserved
// and duplicates are kept.
//
// An empty raw string returns nil, meaning the field is absent. A non-empty
// string always returns a non-nil slice, even when every token is dropped,
// so callers can tell "absent field" from "field with zero tokens".
func SplitAnnotations(raw, sep string) []string {
	if raw == "" {
		return nil
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	parts := strings.Split(raw, sep)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
