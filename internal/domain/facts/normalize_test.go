package facts

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"  PYTHON  ", "Python"},
		{"méxico", "Mexico"},
		{"são paulo", "Sao Paulo"},
		{"spring   boot", "Spring Boot"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"Python", "PYTHON"},
		{"México", "mexico"},
		{"Spring Boot", "spring   BOOT"},
	}
	for _, p := range pairs {
		if Fold(p[0]) != Fold(p[1]) {
			t.Errorf("Fold(%q) != Fold(%q)", p[0], p[1])
		}
	}
	if Fold("Python") == Fold("Java") {
		t.Errorf("distinct names must not fold together")
	}
}
