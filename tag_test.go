package actions

import "testing"

func TestTag_Equality(t *testing.T) {
	sym := NewSymbol("ADD")

	tests := []struct {
		name string
		a, b Tag
		want bool
	}{
		{"same string", String("ADD"), String("ADD"), true},
		{"different string", String("ADD"), String("SUB"), false},
		{"symbol with itself", sym, sym, true},
		{"symbol copy", sym, func() Tag { c := sym; return c }(), true},
		{"two symbols same description", NewSymbol("ADD"), NewSymbol("ADD"), false},
		{"symbol vs string", sym, String("ADD"), false},
		{"empty string vs zero", String(""), Tag{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a == tt.b; got != tt.want {
				t.Errorf("%v == %v is %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTag_AsMapKey(t *testing.T) {
	sym := NewSymbol("ADD")
	m := map[Tag]int{String("ADD"): 1, sym: 2}

	if m[String("ADD")] != 1 || m[sym] != 2 {
		t.Errorf("map lookups = (%d, %d), want (1, 2)", m[String("ADD")], m[sym])
	}
}

func TestTag_Accessors(t *testing.T) {
	s := String("ADD")
	if s.IsZero() || s.IsSymbol() || s.Name() != "ADD" || s.String() != "ADD" {
		t.Errorf("string tag accessors wrong: %#v", s)
	}

	sym := NewSymbol("INCREMENT")
	if sym.IsZero() || !sym.IsSymbol() || sym.Name() != "INCREMENT" {
		t.Errorf("symbol accessors wrong: %#v", sym)
	}
	if sym.String() != "Symbol(INCREMENT)" {
		t.Errorf("String() = %q, want %q", sym.String(), "Symbol(INCREMENT)")
	}

	var zero Tag
	if !zero.IsZero() || zero.String() != "<absent>" {
		t.Errorf("zero tag accessors wrong: %#v", zero)
	}
}

func TestTag_Suffixed(t *testing.T) {
	got, err := String("LIST").suffixed(SuffixSuccess)
	if err != nil {
		t.Fatalf("suffixed() error: %v", err)
	}
	if got != String("LIST_SUCCESS") {
		t.Errorf("suffixed() = %v, want LIST_SUCCESS", got)
	}

	if _, err := NewSymbol("LIST").suffixed(SuffixSuccess); err == nil {
		t.Error("suffixed() on a symbol should fail")
	}
	if _, err := (Tag{}).suffixed(SuffixSuccess); err == nil {
		t.Error("suffixed() on the zero tag should fail")
	}
}
