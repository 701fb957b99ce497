package stem

import "testing"

func TestStem(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"cats", "cat"},
		{"the", "the"},
		{"bake", "bak"},
		{"makes", "mak"},
		{"running", "run"},
		{"hopping", "hop"},
		{"rolling", "roll"},
		{"bigger", "big"},
		{"planned", "plan"},
		{"spelled", "spell"},
		{"jumped", "jump"},
		{"over", "ov"},
		{"happy", "happi"},
		{"really", "realli"},
		{"lovelys", "loveli"},
		{"flies", "fli"},
		{"ties", "ti"},
		{"stoppers", "stop"},
		{"reds", "red"},
		{"is", "i"},
		{"s", ""},
		{"e", ""},
		{"", ""},
		{"a", "a"},
		{"ed", "ed"},
		{"sing", "sing"},
		{"bring", "bring"},
		{"cafés", "café"},
	}

	for _, v := range cases {
		got := Stem(v.word)
		if got != v.want {
			t.Errorf("Stem(%q) == %q, want %q", v.word, got, v.want)
		}
	}
}

func TestHeuristicMatchesStem(t *testing.T) {
	var s Stemmer = Heuristic{}
	for _, w := range []string{"cats", "running", "bigger"} {
		if s.Stem(w) != Stem(w) {
			t.Errorf("Heuristic{}.Stem(%q) == %q, want %q", w, s.Stem(w), Stem(w))
		}
	}
}

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"heuristic", false},
		{"Heuristic", false},
		{"snowball", false},
		{"porter", true},
	}

	for _, v := range cases {
		s, err := New(v.name)
		if (err != nil) != v.wantErr {
			t.Errorf("New(%q) error == %v, want error %t", v.name, err, v.wantErr)
			continue
		}
		if err == nil && s == nil {
			t.Errorf("New(%q) returned a nil stemmer", v.name)
		}
		if sb, ok := s.(*Snowball); ok {
			sb.Close()
		}
	}
}

func TestSnowball(t *testing.T) {
	s, err := NewSnowball()
	if err != nil {
		t.Fatalf("NewSnowball() error: %v", err)
	}
	defer s.Close()

	cases := []struct {
		word string
		want string
	}{
		{"running", "run"},
		{"cats", "cat"},
	}

	for _, v := range cases {
		got := s.Stem(v.word)
		if got != v.want {
			t.Errorf("Snowball.Stem(%q) == %q, want %q", v.word, got, v.want)
		}
	}
}
