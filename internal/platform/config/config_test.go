package config

import (
	"slices"
	"testing"
	"time"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_PORT")
	}
	nested := api.Prefix("LOG_")
	if got := nested.key("LEVEL"); got != "CORE_API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_API_LOG_LEVEL")
	}
}

func TestLookup_DistinguishesUnsetFromEmpty(t *testing.T) {
	c := New()
	t.Setenv("KK_EMPTY", "")
	t.Setenv("KK_SET", " Basic abc ")

	if v, ok := c.Lookup("KK_EMPTY"); !ok || v != "" {
		t.Fatalf("Lookup(KK_EMPTY) = %q,%v want \"\",true", v, ok)
	}
	if v, ok := c.Lookup("KK_SET"); !ok || v != " Basic abc " {
		t.Fatalf("Lookup(KK_SET) = %q,%v want untrimmed value", v, ok)
	}
	if _, ok := c.Lookup("KK_DEFINITELY_UNSET_VAR"); ok {
		t.Fatal("Lookup of unset var reported set")
	}
}

func TestMayHelpers(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_S", " v ")
	t.Setenv("M_I", "42")
	t.Setenv("M_IBAD", "x")
	t.Setenv("M_I64", "1048576")
	t.Setenv("M_I64BAD", "1MB")
	t.Setenv("M_B", "true")
	t.Setenv("M_BBAD", "maybe")
	t.Setenv("M_D", "2s")
	t.Setenv("M_DBAD", "soon")
	t.Setenv("M_CSV", " a, ,b ,")
	t.Setenv("M_CSVEMPTY", " , ")

	if got := c.MayString("S", "d"); got != "v" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NONE", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("I", 1); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("IBAD", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	if got := c.MayInt64("I64", 0); got != 1<<20 {
		t.Fatalf("MayInt64 = %d", got)
	}
	if got := c.MayInt64("I64BAD", 7); got != 7 {
		t.Fatalf("MayInt64 invalid = %d", got)
	}
	if !c.MayBool("B", false) {
		t.Fatal("MayBool = false")
	}
	if c.MayBool("BBAD", false) {
		t.Fatal("MayBool invalid should return default false")
	}
	if got := c.MayDuration("D", time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("DBAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
	if got := c.MayCSV("CSV", nil); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("MayCSV = %v", got)
	}
	if got := c.MayCSV("CSVEMPTY", []string{"x"}); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("MayCSV empty = %v", got)
	}
}
