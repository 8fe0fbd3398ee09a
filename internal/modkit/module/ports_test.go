package module

import (
	"testing"

	"knownkey/internal/modkit/httpkit"
	"knownkey/internal/platform/testkit"
)

type FooPort interface {
	Foo() int
}

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string               { return m.name }
func (m fakeModule) Ports() any                 { return m.ports }
func (m fakeModule) MountRoutes(httpkit.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Other string
		Foo   FooPort
	}
	type hidden struct {
		foo FooPort
	}

	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", fooImpl{v: 3}, 3, true},
		{"struct field", bundle{Other: "x", Foo: fooImpl{v: 9}}, 9, true},
		{"pointer bundle", &bundle{Foo: fooImpl{v: 5}}, 5, true},
		{"nil pointer bundle", (*bundle)(nil), 0, false},
		{"nil field", bundle{Other: "x"}, 0, false},
		{"unexported field", hidden{foo: fooImpl{v: 1}}, 0, false},
		{"no match", "nope", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[FooPort](fakeModule{name: tc.name, ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Foo() != tc.want {
				t.Fatalf("Foo() = %d, want %d", got.Foo(), tc.want)
			}
		})
	}
}

func TestMustPortsOf_PanicsWithModuleName(t *testing.T) {
	t.Parallel()

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected panic")
		}
		testkit.MustContain(t, v.(string), "module keystore exposes no module.FooPort port")
	}()
	MustPortsOf[FooPort](fakeModule{name: "keystore"})
}
