package signal

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Flatten projects a signal tree into a two-level map: the root's direct
// Category children become the outer keys (display labels normalized to
// lowerCamel), and each category's direct Info leaves become the inner
// label-to-value map.
//
// Only two levels are walked. Categories nested inside categories are
// invisible to the flattened view; callers that need full structure should
// walk the tree itself. Info leaves hanging directly off the root are
// likewise skipped, since they have no category to live under.
func Flatten(root Item) map[string]map[string]string {
	out := make(map[string]map[string]string)
	children, ok := root.Children()
	if !ok {
		return out
	}

	for _, category := range children {
		leaves, ok := category.Children()
		if !ok {
			continue
		}
		signals := make(map[string]string)
		for _, leaf := range leaves {
			value, ok := leaf.Value()
			if !ok {
				continue
			}
			signals[leaf.Label()] = value
		}
		out[normalizeKey(category.Label())] = signals
	}

	return out
}

// FlattenJSON renders the flattened view of the tree as pretty-printed JSON.
func FlattenJSON(root Item) (string, error) {
	data, err := json.MarshalIndent(Flatten(root), "", "  ")
	if err != nil {
		return "", fmt.Errorf("signal: encoding flattened tree: %w", err)
	}
	return string(data), nil
}

// normalizeKey turns a display label into a stable lowerCamel map key:
// whitespace-delimited words, first word lower-cased, subsequent words
// capitalized, concatenated. "Operating System" becomes "operatingSystem".
func normalizeKey(label string) string {
	words := strings.Fields(label)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
