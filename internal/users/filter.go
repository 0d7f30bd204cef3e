package users

import "strings"

// Filter applies the admin list controls over the full in-memory user list:
// case-insensitive substring search on name and email, then exact role and
// status matches. Search and filters intersect.
func Filter(list []User, f ListFilter) []User {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]User, 0, len(list))
	for _, u := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Name), query) &&
			!strings.Contains(strings.ToLower(u.Email), query) {
			continue
		}
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Status != "" && u.Status != f.Status {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Paginate slices one page out of an already-filtered list.
func Paginate(list []User, limit, offset int64) []User {
	if offset >= int64(len(list)) {
		return []User{}
	}
	end := offset + limit
	if end > int64(len(list)) {
		end = int64(len(list))
	}
	return list[offset:end]
}
