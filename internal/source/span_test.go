package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 10, End: 20}
	b := Span{File: 1, Start: 5, End: 12}
	if got := a.Cover(b); got != (Span{File: 1, Start: 5, End: 20}) {
		t.Fatalf("Cover: got %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must keep receiver, got %v", got)
	}
}

func TestSpanLocated(t *testing.T) {
	if NoSpan.Located() {
		t.Fatalf("NoSpan must not be located")
	}
	if NoSpan.String() != "-" {
		t.Fatalf("NoSpan.String: got %q", NoSpan.String())
	}
	s := Span{File: 0, Start: 3, End: 7}
	if !s.Located() || s.Len() != 4 || s.Empty() {
		t.Fatalf("unexpected span state: %v", s)
	}
}
