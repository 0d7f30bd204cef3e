package catalog

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestFilterWorksDropsIncompleteRows(t *testing.T) {
	submitted := []WorkInput{
		{ID: "w1", MediaPath: "/media/a.jpg", Title: "Campaign A", Link: "https://example.com/a"},
		{MediaPath: "", Title: "Blank slot", Link: ""},
		{MediaPath: "/media/b.mp4", Title: "", Link: "https://example.com/b"},
		{MediaPath: "  /media/c.jpg  ", Title: "  Campaign C  ", Link: "  https://example.com/c  "},
	}

	out := FilterWorks(submitted)
	if len(out) != 2 {
		t.Fatalf("expected 2 works, got %d", len(out))
	}
	if out[0].ID != "w1" {
		t.Fatalf("unexpected first work: %+v", out[0])
	}
	if out[1].MediaPath != "/media/c.jpg" || out[1].Title != "Campaign C" {
		t.Fatalf("expected trimmed fields, got %+v", out[1])
	}
}

func TestFilterWorksDefaultsMediaType(t *testing.T) {
	out := FilterWorks([]WorkInput{
		{MediaPath: "/media/a.jpg", Title: "A", Link: "https://example.com/a"},
		{MediaPath: "/media/b.mp4", Title: "B", Link: "https://example.com/b", MediaType: "video"},
	})
	if out[0].MediaType != "image" {
		t.Fatalf("expected image default, got %q", out[0].MediaType)
	}
	if out[1].MediaType != "video" {
		t.Fatalf("expected video preserved, got %q", out[1].MediaType)
	}
}

func TestDiffWorksPartitionsSubmittedRows(t *testing.T) {
	existing := []string{"w1", "w2", "w3"}
	submitted := []WorkInput{
		{ID: "w1", MediaPath: "/media/a.jpg", Title: "A updated", Link: "https://example.com/a"},
		{ID: "w3", MediaPath: "/media/c.jpg", Title: "C", Link: "https://example.com/c"},
		{MediaPath: "/media/d.jpg", Title: "D new", Link: "https://example.com/d"},
	}

	diff := DiffWorks(existing, submitted)
	if len(diff.DeleteIDs) != 1 || diff.DeleteIDs[0] != "w2" {
		t.Fatalf("expected delete of w2, got %v", diff.DeleteIDs)
	}
	if len(diff.Updates) != 2 {
		t.Fatalf("expected 2 updates, got %d", len(diff.Updates))
	}
	if len(diff.Inserts) != 1 || diff.Inserts[0].Title != "D new" {
		t.Fatalf("unexpected inserts: %+v", diff.Inserts)
	}
}

func TestDiffWorksEmptySubmissionDeletesAll(t *testing.T) {
	diff := DiffWorks([]string{"w1", "w2"}, nil)
	if len(diff.DeleteIDs) != 2 {
		t.Fatalf("expected all existing ids deleted, got %v", diff.DeleteIDs)
	}
	if len(diff.Updates) != 0 || len(diff.Inserts) != 0 {
		t.Fatalf("expected no updates or inserts, got %+v", diff)
	}
}

func TestWorkUpdatePreservesCreatedAt(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	update := workUpdate(WorkInput{ID: "w1", MediaPath: "/m/a", Title: "A", Link: "l"}, now)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatalf("expected $set document, got %+v", update)
	}
	if _, clobbers := set["createdAt"]; clobbers {
		t.Fatalf("update must not rewrite createdAt: %+v", set)
	}
	if set["updatedAt"] != now {
		t.Fatalf("expected updatedAt stamped, got %+v", set)
	}

	onInsert, ok := update["$setOnInsert"].(bson.M)
	if !ok || onInsert["createdAt"] != now {
		t.Fatalf("expected createdAt only on insert, got %+v", update["$setOnInsert"])
	}
}

func TestDiffWorksResultSetMatchesSubmission(t *testing.T) {
	existing := []string{"a", "b", "c", "d"}
	submitted := []WorkInput{
		{ID: "b", MediaPath: "/m/b", Title: "B", Link: "l"},
		{ID: "d", MediaPath: "/m/d", Title: "D", Link: "l"},
		{MediaPath: "/m/e", Title: "E", Link: "l"},
		{MediaPath: "/m/f", Title: "F", Link: "l"},
	}

	diff := DiffWorks(existing, submitted)

	kept := make(map[string]bool)
	for _, id := range existing {
		kept[id] = true
	}
	for _, id := range diff.DeleteIDs {
		delete(kept, id)
	}
	for _, w := range diff.Updates {
		if !kept[w.ID] {
			t.Fatalf("update targets deleted or unknown id %q", w.ID)
		}
	}
	if len(kept) != len(diff.Updates) {
		t.Fatalf("expected surviving ids to equal update set: kept=%v updates=%d", kept, len(diff.Updates))
	}
	if len(kept)+len(diff.Inserts) != len(submitted) {
		t.Fatalf("expected final count %d, got %d", len(submitted), len(kept)+len(diff.Inserts))
	}
}
