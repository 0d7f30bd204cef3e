package catalog

import "strings"

// WorksDiff is the plan for reconciling a service's persisted works against a
// submitted list: after applying it, the persisted id set equals the submitted
// rows that carry an id plus one new id per row that does not.
type WorksDiff struct {
	DeleteIDs []string
	Updates   []WorkInput
	Inserts   []WorkInput
}

// FilterWorks drops submitted rows missing any of mediaPath, title, or link.
// Incomplete rows are how the form represents blank gallery slots.
func FilterWorks(submitted []WorkInput) []WorkInput {
	out := make([]WorkInput, 0, len(submitted))
	for _, w := range submitted {
		w.ID = strings.TrimSpace(w.ID)
		w.MediaPath = strings.TrimSpace(w.MediaPath)
		w.Title = strings.TrimSpace(w.Title)
		w.Link = strings.TrimSpace(w.Link)
		if w.MediaPath == "" || w.Title == "" || w.Link == "" {
			continue
		}
		if w.MediaType == "" {
			w.MediaType = "image"
		}
		out = append(out, w)
	}
	return out
}

// DiffWorks computes the reconciliation plan between the persisted ids and an
// already-filtered submitted list. Persisted docs whose id is absent from the
// submitted list are deleted; submitted rows with an id are updates; rows
// without an id are inserts.
func DiffWorks(existingIDs []string, submitted []WorkInput) WorksDiff {
	submittedByID := make(map[string]bool, len(submitted))
	var diff WorksDiff
	for _, w := range submitted {
		if w.ID == "" {
			diff.Inserts = append(diff.Inserts, w)
			continue
		}
		submittedByID[w.ID] = true
		diff.Updates = append(diff.Updates, w)
	}
	for _, id := range existingIDs {
		if !submittedByID[id] {
			diff.DeleteIDs = append(diff.DeleteIDs, id)
		}
	}
	return diff
}
