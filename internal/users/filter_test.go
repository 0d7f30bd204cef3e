package users

import "testing"

func sampleUsers() []User {
	return []User{
		{ID: "u1", Name: "Alice Johnson", Email: "alice@acme.com", Role: "editor", Status: "active"},
		{ID: "u2", Name: "Bob Smith", Email: "bob@acme.com", Role: "viewer", Status: "active"},
		{ID: "u3", Name: "Carol Jones", Email: "carol@other.io", Role: "editor", Status: "inactive"},
		{ID: "u4", Name: "Dan Brown", Email: "dan@other.io", Role: "viewer", Status: "inactive"},
	}
}

func TestFilterSearchMatchesNameOrEmail(t *testing.T) {
	out := Filter(sampleUsers(), ListFilter{Query: "ACME"})
	if len(out) != 2 {
		t.Fatalf("expected 2 users, got %d", len(out))
	}

	out = Filter(sampleUsers(), ListFilter{Query: "jo"})
	if len(out) != 2 {
		t.Fatalf("expected Johnson and Jones, got %d", len(out))
	}
}

func TestFilterIntersectsSearchAndFilters(t *testing.T) {
	out := Filter(sampleUsers(), ListFilter{Query: "jo", Role: "editor", Status: "inactive"})
	if len(out) != 1 {
		t.Fatalf("expected 1 user, got %d", len(out))
	}
	if out[0].ID != "u3" {
		t.Fatalf("expected u3, got %s", out[0].ID)
	}
}

func TestFilterEmptyControlsReturnAll(t *testing.T) {
	out := Filter(sampleUsers(), ListFilter{})
	if len(out) != 4 {
		t.Fatalf("expected all 4 users, got %d", len(out))
	}
}

func TestFilterNoMatch(t *testing.T) {
	out := Filter(sampleUsers(), ListFilter{Query: "zzz"})
	if len(out) != 0 {
		t.Fatalf("expected no users, got %d", len(out))
	}
}

func TestPaginate(t *testing.T) {
	list := sampleUsers()

	page := Paginate(list, 2, 0)
	if len(page) != 2 || page[0].ID != "u1" {
		t.Fatalf("unexpected first page: %+v", page)
	}

	page = Paginate(list, 2, 2)
	if len(page) != 2 || page[0].ID != "u3" {
		t.Fatalf("unexpected second page: %+v", page)
	}

	page = Paginate(list, 2, 3)
	if len(page) != 1 || page[0].ID != "u4" {
		t.Fatalf("unexpected partial page: %+v", page)
	}

	page = Paginate(list, 2, 10)
	if len(page) != 0 {
		t.Fatalf("expected empty page past the end, got %+v", page)
	}
}
