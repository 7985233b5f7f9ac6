package jira

// Field describes a queryable field in the tracker schema. Instances
// can carry several custom fields with the same display name, so a
// name never identifies a field on its own.
type Field struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Issue is a raw search result. Fields holds the tracker's dynamic
// field-id to value payload; the set of keys is not known until
// runtime, so access goes through typed lookups instead of a static
// struct.
type Issue struct {
	ID     string         `json:"id"`
	Key    string         `json:"key"`
	Fields map[string]any `json:"fields"`
}

// NumericField returns the value of the given field id when it holds a
// JSON number. Absent and non-numeric values report ok=false.
func (i Issue) NumericField(id string) (float64, bool) {
	v, ok := i.Fields[id]
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

// StatusCategory returns the display name of the issue's coarse status
// category (e.g. "Done"), independent of the fine-grained status name.
func (i Issue) StatusCategory() (string, bool) {
	return stringAt(i.Fields, "status", "statusCategory", "name")
}

// stringAt walks nested JSON objects along path and returns the string
// at the leaf. Any missing key or non-object along the way reports
// ok=false.
func stringAt(m map[string]any, path ...string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}

	current := m
	for _, key := range path[:len(path)-1] {
		inner, ok := current[key].(map[string]any)
		if !ok {
			return "", false
		}
		current = inner
	}

	s, ok := current[path[len(path)-1]].(string)
	return s, ok
}
