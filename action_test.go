package actions

import (
	"testing"
)

type items struct {
	List []string
}

func (i items) Clone() items {
	list := make([]string, len(i.List))
	copy(list, i.List)
	return items{List: list}
}

func TestAction_Clone(t *testing.T) {
	a := Action[items, items]{
		Type:    String("SET"),
		Payload: items{List: []string{"a"}},
		Meta:    items{List: []string{"m"}},
		fields:  hasPayload | hasMeta,
	}

	c := a.Clone()
	if !c.Equal(a) {
		t.Fatalf("Clone() = %v, want %v", c, a)
	}

	c.Payload.List[0] = "changed"
	c.Meta.List[0] = "changed"
	if a.Payload.List[0] != "a" || a.Meta.List[0] != "m" {
		t.Error("Clone() did not deep-copy Cloner payload and meta")
	}
}

func TestAction_CloneShallow(t *testing.T) {
	a := Action[[]string, Void]{Type: String("SET"), Payload: []string{"a"}, fields: hasPayload}
	c := a.Clone()
	c.Type = String("OTHER")
	if a.Type != String("SET") {
		t.Error("Clone() should copy the action itself")
	}
}

func TestAction_Values(t *testing.T) {
	a := Action[int, string]{Type: String("ADD"), Payload: 1, fields: hasPayload}

	if p, ok := a.PayloadValue(); !ok || p != 1 {
		t.Errorf("PayloadValue() = (%v, %v), want (1, true)", p, ok)
	}
	if m, ok := a.MetaValue(); ok || m != nil {
		t.Errorf("MetaValue() = (%v, %v), want (nil, false)", m, ok)
	}
	if a.ActionType() != String("ADD") {
		t.Errorf("ActionType() = %v, want ADD", a.ActionType())
	}
}

func TestAction_Equal_Presence(t *testing.T) {
	withNil := Action[*int, Void]{Type: String("X"), fields: hasPayload}
	without := Action[*int, Void]{Type: String("X")}

	if withNil.Equal(without) {
		t.Error("present nil payload must differ from absent payload")
	}
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		name string
		a    Envelope
		want string
	}{
		{"empty", Action[Void, Void]{Type: String("INCREMENT")}, "{type: INCREMENT}"},
		{"payload", Action[int, Void]{Type: String("ADD"), Payload: 10, fields: hasPayload}, "{type: ADD, payload: 10}"},
		{"meta", Action[string, string]{Type: String("N"), Payload: "p", Meta: "m", fields: hasPayload | hasMeta}, "{type: N, payload: p, meta: m}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := tt.a.(interface{ String() string })
			if !ok {
				t.Fatal("action should implement fmt.Stringer")
			}
			if got := s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsNullish(t *testing.T) {
	var nilMap map[string]int
	var nilSlice []int
	var nilPtr *int
	var nilFunc func()
	zero := 0

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"void", Void{}, true},
		{"nil map", nilMap, true},
		{"nil slice", nilSlice, true},
		{"nil pointer", nilPtr, true},
		{"nil func", nilFunc, true},
		{"zero int", 0, false},
		{"false", false, false},
		{"empty string", "", false},
		{"empty slice", []int{}, false},
		{"pointer to zero", &zero, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNullish(tt.v); got != tt.want {
				t.Errorf("isNullish(%#v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}
