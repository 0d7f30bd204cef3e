package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Digital Marketing", "digital-marketing"},
		{"  SEO & Content  ", "seo-and-content"},
		{"Brand's Journey", "brands-journey"},
		{"Print/Production", "print-production"},
		{"Déjà Vu Studio", "d-j-vu-studio"},
		{"---already--slugged---", "already-slugged"},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
