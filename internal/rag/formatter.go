package rag

import (
	"fmt"
	"sort"
	"strings"
)

// formatRecords renders query records deterministically. It is the fallback
// when LLM formatting is unavailable, so it favors predictability over prose.
func formatRecords(records []map[string]any) string {
	if len(records) == 0 {
		return "No results found."
	}

	// Single scalar result reads better unnumbered.
	if len(records) == 1 && len(records[0]) == 1 {
		for _, value := range records[0] {
			return fmt.Sprintf("Result: %v", value)
		}
	}

	lines := make([]string, 0, len(records))
	for i, record := range records {
		if len(records) > 1 {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, formatRecord(record)))
		} else {
			lines = append(lines, formatRecord(record))
		}
	}

	return strings.Join(lines, "\n")
}

// formatRecord renders one record as "key: value" pairs in stable key order.
func formatRecord(record map[string]any) string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := record[key]
		if value == nil {
			continue
		}

		// Flattened nodes surface as property maps; prefer their name.
		if props, ok := value.(map[string]any); ok {
			if name, ok := props["name"].(string); ok {
				parts = append(parts, fmt.Sprintf("%s: %s", key, name))
				continue
			}
			if description, ok := props["description"].(string); ok {
				parts = append(parts, fmt.Sprintf("%s: %s", key, description))
				continue
			}
		}

		parts = append(parts, fmt.Sprintf("%s: %v", key, value))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("%v", record)
	}
	return strings.Join(parts, ", ")
}
