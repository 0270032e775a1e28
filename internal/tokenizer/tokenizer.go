package tokenizer

import (
	"strings"
)

// Keywords splits a free-text query into search keywords.
// Keywords are separated by any run of Unicode whitespace. Case is preserved
// and duplicates are dropped, keeping the first occurrence.
func Keywords(text string) []string {
	fields := strings.Fields(text)

	keywords := make([]string, 0, len(fields)) // Initialize as empty slice, not nil
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		keywords = append(keywords, field)
	}
	return keywords
}

// Normalize cleans a keyword list supplied as separate tokens: empty and
// whitespace-only entries are dropped, surrounding whitespace is trimmed and
// duplicates are removed. Order of first occurrence is kept.
func Normalize(keywords []string) []string {
	result := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		result = append(result, kw)
	}
	return result
}
