package label

import "testing"

func TestOr(t *testing.T) {
	tests := []struct {
		a, b, want Label
	}{
		{True, True, True},
		{True, False, True},
		{False, True, True},
		{False, False, False},
		{Null, True, Null},
		{False, Null, Null},
	}
	for _, tt := range tests {
		if got := tt.a.Or(tt.b); got != tt.want {
			t.Errorf("%s.Or(%s) = %s, want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNotNeutralPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Neutral.Not()
}

func TestSet(t *testing.T) {
	s := All.Intersect(Boolean)
	if s != Boolean {
		t.Fatalf("got %s want %s", s, Boolean)
	}
	if s.Has(Neutral) || !s.Has(True) {
		t.Errorf("bad membership in %s", s)
	}
	s = s.Intersect(Of(False, Neutral))
	if l, ok := s.Single(); !ok || l != False {
		t.Errorf("Single() = %s, %v", l, ok)
	}
	if !s.Intersect(Of(True)).Empty() {
		t.Errorf("expected empty intersection")
	}
	if Of(Null).Len() != 0 {
		t.Errorf("Null must not be a member")
	}
	if got := All.String(); got != "{TRUE,FALSE,NEUTRAL}" {
		t.Errorf("String() = %q", got)
	}
}

func TestUnmarshalText(t *testing.T) {
	var l Label
	if err := l.UnmarshalText([]byte("NEUTRAL")); err != nil {
		t.Fatal(err)
	}
	if l != Neutral {
		t.Errorf("got %s", l)
	}
	if err := l.UnmarshalText([]byte("blue")); err == nil {
		t.Errorf("expected error")
	}
}
