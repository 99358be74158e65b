package sarif

import (
	"encoding/json"
	"fmt"
)

const tagsProperty = "tags"

// UnmarshalJSON implements json.Unmarshaler
func (p *PropertyBag) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("property bag: %w", err)
	}

	bag := PropertyBag{Additional: make(map[string]json.RawMessage, len(raw))}
	for key, value := range raw {
		if key == tagsProperty {
			bag.Tags = stringElements(value)
			continue
		}
		bag.Additional[key] = value
	}

	*p = bag
	return nil
}

// StringArray returns the string elements of the array-valued entry named
// key. Non-string elements are skipped; a missing or non-array entry yields
// nil.
func (p *PropertyBag) StringArray(key string) []string {
	if p == nil {
		return nil
	}
	if key == tagsProperty {
		return p.Tags
	}
	value, ok := p.Additional[key]
	if !ok {
		return nil
	}
	return stringElements(value)
}

// stringElements decodes a JSON array and keeps its string members.
func stringElements(data json.RawMessage) []string {
	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}

	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
