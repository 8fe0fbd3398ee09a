package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	if got := IfEmpty(nil, []string{"a"}); len(got) != 1 || got[0] != "a" {
		t.Fatalf("IfEmpty(nil) = %v", got)
	}
	if got := IfEmpty([]int{1, 2}, []int{9}); len(got) != 2 {
		t.Fatalf("IfEmpty(non-empty) = %v", got)
	}
}

func TestNormPrefix(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", "/"},
		{"/", "/"},
		{"  ", "/"},
		{"lookup", "/lookup"},
		{"/lookup/", "/lookup"},
		{"//a/b//", "/a/b"},
		{" /trans ", "/trans"},
	}
	for _, c := range cases {
		if got := NormPrefix(c.in); got != c.want {
			t.Fatalf("NormPrefix(%q) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestRedact(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"abcdef", 2, "ab****"},
		{"ab", 4, "**"},
		{"", 3, ""},
		{"xyz", -1, "***"},
	}
	for _, c := range cases {
		if got := Redact(c.in, c.n); got != c.want {
			t.Fatalf("Redact(%q,%d) = %q want %q", c.in, c.n, got, c.want)
		}
	}
}

func TestDeref(t *testing.T) {
	s := "v"
	if Deref(nil) != "" || Deref(&s) != "v" {
		t.Fatalf("Deref mismatch")
	}
}
