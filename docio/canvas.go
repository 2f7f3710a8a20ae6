package docio

import (
	"sort"
	"strconv"

	json "github.com/goccy/go-json"
)

// CanvasEntry is one opaque UI presentation record: a kind tag, a
// coordinate list, and a tag list. The core never inspects these
// beyond preserving them round-trip.
type CanvasEntry struct {
	Kind        string
	Coordinates []float64
	Tags        []string
}

// MarshalJSON renders the entry as the three-element tuple the
// document format expects: ["kind", [coords...], ["tag", ...]].
func (e CanvasEntry) MarshalJSON() ([]byte, error) {
	tuple := [3]interface{}{e.Kind, e.Coordinates, e.Tags}

	return json.Marshal(tuple)
}

// UnmarshalJSON parses the three-element tuple form back into an entry.
func (e *CanvasEntry) UnmarshalJSON(data []byte) error {
	var tuple [3]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return ErrMalformedDocument
	}
	if err := json.Unmarshal(tuple[0], &e.Kind); err != nil {
		return ErrMalformedDocument
	}
	if err := json.Unmarshal(tuple[1], &e.Coordinates); err != nil {
		return ErrMalformedDocument
	}
	if err := json.Unmarshal(tuple[2], &e.Tags); err != nil {
		return ErrMalformedDocument
	}

	return nil
}

// Canvas is the UI-opaque by-id mapping preserved across save/load
// without interpretation by the core.
type Canvas map[string]CanvasEntry

// sortedKeys returns the canvas's keys ordered by their numeric value,
// per the source's "sort keys as integers before writing" rule.
func (c Canvas) sortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}

		return a < b
	})

	return keys
}

// MarshalJSON emits the canvas as a JSON object with keys in numeric
// order, matching the source's stable-ordering guarantee.
func (c Canvas) MarshalJSON() ([]byte, error) {
	keys := c.sortedKeys()
	buf := []byte("{")
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(c[k])
		if err != nil {
			return nil, err
		}
		buf = append(buf, keyJSON...)
		buf = append(buf, ':')
		buf = append(buf, valJSON...)
	}
	buf = append(buf, '}')

	return buf, nil
}
