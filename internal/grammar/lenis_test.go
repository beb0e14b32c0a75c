package grammar

import "testing"

func TestToLenis(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"tüka", "düka"},
		{"puni", "buni"},
		{"kwana", "gwana"},
		{"sawa", "zawa"},
		{"mui", "w̃ui"},
		{"yadohi", "yadohi"},
		{"naka", "naka"},
		{"üwi", "üwi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ToLenis(tt.word); got != tt.want {
			t.Errorf("ToLenis(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

// Mutation only touches the first character, never later occurrences of a
// fortis consonant.
func TestToLenisFirstCharacterOnly(t *testing.T) {
	if got := ToLenis("katü"); got != "gatü" {
		t.Errorf("ToLenis(katü) = %q, want gatü", got)
	}
	if got := ToLenis("tama'i"); got != "dama'i" {
		t.Errorf("ToLenis(tama'i) = %q, want dama'i", got)
	}
}

func TestLenisPairs(t *testing.T) {
	pairs := LenisPairs()
	if len(pairs) != 5 {
		t.Fatalf("expected 5 fortis/lenis pairs, got %d", len(pairs))
	}
	if pairs[0].Fortis != "p" || pairs[0].Lenis != "b" {
		t.Errorf("first pair = %+v, want p->b", pairs[0])
	}
	if pairs[4].Fortis != "m" || pairs[4].Lenis != "w̃" {
		t.Errorf("last pair = %+v, want m->w̃", pairs[4])
	}
}
