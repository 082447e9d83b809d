package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Business Cards", "business-cards"},
		{"  Flyers & Leaflets  ", "flyers-leaflets"},
		{"A4 Poster (Glossy)", "a4-poster-glossy"},
		{"UPPER CASE", "upper-case"},
		{"---already---hyphenated---", "already-hyphenated"},
		{"বাংলা টাইটেল", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{
		"business-cards":   true,
		"business-cards-1": true,
	}
	exists := func(slug string) (bool, error) { return taken[slug], nil }

	got, err := UniqueSlug("business-cards", exists)
	if err != nil {
		t.Fatal(err)
	}
	if got != "business-cards-2" {
		t.Errorf("UniqueSlug probing = %q, want %q", got, "business-cards-2")
	}

	got, err = UniqueSlug("flyers", exists)
	if err != nil {
		t.Fatal(err)
	}
	if got != "flyers" {
		t.Errorf("UniqueSlug free slug = %q, want %q", got, "flyers")
	}
}

func TestUniqueSlugEmptyBase(t *testing.T) {
	exists := func(slug string) (bool, error) { return false, nil }
	got, err := UniqueSlug("", exists)
	if err != nil {
		t.Fatal(err)
	}
	if got != "item" {
		t.Errorf("UniqueSlug(\"\") = %q, want %q", got, "item")
	}
}
