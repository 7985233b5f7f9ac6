package jira

import "context"

// ResolveFieldIDs returns the id of every field whose display name
// matches displayName exactly, preserving the input order. Instances
// rename and duplicate custom fields freely, so all matches are
// returned, never just the first. An empty result is not an error; it
// means the field does not exist on this instance and downstream
// consumers degrade to treating every issue as unpointed.
func ResolveFieldIDs(fields []Field, displayName string) []string {
	var ids []string
	for _, f := range fields {
		if f.Name == displayName {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

// StoryPointFieldIDs fetches the instance schema and resolves the
// story-points display name against it.
func (c *Client) StoryPointFieldIDs(ctx context.Context, displayName string) ([]string, error) {
	fields, err := c.GetFields(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveFieldIDs(fields, displayName), nil
}
