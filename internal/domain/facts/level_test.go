package facts

import (
	"errors"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"beginner", LevelBeginner},
		{"  Beginner ", LevelBeginner},
		{"INTERMEDIATE", LevelIntermediate},
		{"advanced", LevelAdvanced},
		{"expert", LevelExpert},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseLevelUnknown(t *testing.T) {
	if _, err := ParseLevel("ninja"); !errors.Is(err, ErrUnknownLevel) {
		t.Fatalf("expected ErrUnknownLevel, got %v", err)
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(LevelBeginner < LevelIntermediate && LevelIntermediate < LevelAdvanced && LevelAdvanced < LevelExpert) {
		t.Fatalf("level ordering broken")
	}
}
