package mathexpr

import "testing"

func TestNormalizeASCIIPassthrough(t *testing.T) {
	got, ok := Normalize("1+2")
	if !ok || got != "1+2" {
		t.Fatalf("Normalize(1+2) = (%q, %v), want (1+2, true)", got, ok)
	}
}

func TestNormalizeFullwidthFolds(t *testing.T) {
	got, ok := Normalize("１＋２＝３")
	if !ok || got != "1+2=3" {
		t.Fatalf("Normalize(fullwidth) = (%q, %v), want (1+2=3, true)", got, ok)
	}
}

func TestNormalizeRejectsNonMathRune(t *testing.T) {
	if _, ok := Normalize("1+あ"); ok {
		t.Fatal("expected non-math rune to reject the whole expression")
	}
}

func TestNormalizeEmptyString(t *testing.T) {
	got, ok := Normalize("")
	if !ok || got != "" {
		t.Fatalf("Normalize(\"\") = (%q, %v), want (\"\", true)", got, ok)
	}
}

func TestNormalizeAliasedOperators(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"3ー1", "3-1"},
		{"2×3", "2*3"},
		{"6÷2", "6/2"},
		{"6・2", "6/2"},
		{"（1＋2）", "(1+2)"},
	}
	for _, c := range cases {
		got, ok := Normalize(c.in)
		if !ok || got != c.want {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, true)", c.in, got, ok, c.want)
		}
	}
}

func TestNormalizeIsIdempotentOnItsImage(t *testing.T) {
	inputs := []string{"1+2", "１＋２＝３", "（1＋2）÷3"}
	for _, in := range inputs {
		once, ok := Normalize(in)
		if !ok {
			t.Fatalf("Normalize(%q) unexpectedly failed", in)
		}
		twice, ok := Normalize(once)
		if !ok || twice != once {
			t.Errorf("Normalize not idempotent on %q: once=%q twice=%q", in, once, twice)
		}
	}
}
