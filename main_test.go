package main

import "testing"

func TestModelName(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"articles/CNNarticle.txt", "CNNarticle"},
		{"tmz.html", "tmz"},
		{"notes", "notes"},
		{"https://example.com/story", "https://example.com/story"},
	}

	for _, v := range cases {
		got := modelName(v.location)
		if got != v.want {
			t.Errorf("modelName(%q) == %q, want %q", v.location, got, v.want)
		}
	}
}
