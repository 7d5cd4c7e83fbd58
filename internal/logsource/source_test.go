package logsource

import "testing"

func TestLines_LineOutOfRange(t *testing.T) {
	src := NewLines([]string{"a", "b"})
	cases := []struct {
		index int
		want  string
	}{
		{-1, ""},
		{0, "a"},
		{1, "b"},
		{2, ""},
	}
	for _, tc := range cases {
		if got := src.Line(tc.index); got != tc.want {
			t.Errorf("Line(%d) = %q, want %q", tc.index, got, tc.want)
		}
	}
}

func TestCursor_RestartableAtAnyIndex(t *testing.T) {
	src := NewLines([]string{"a", "b", "c", "d"})

	cur := src.IterateFrom(2)
	idx, text, ok := cur.Next()
	if !ok || idx != 2 || text != "c" {
		t.Fatalf("Next() = (%d, %q, %v), want (2, c, true)", idx, text, ok)
	}
	if cur.Position() != 3 {
		t.Fatalf("Position() = %d, want 3", cur.Position())
	}
	if _, _, ok := cur.Next(); !ok {
		t.Fatal("expected a fourth line")
	}
	if _, _, ok := cur.Next(); ok {
		t.Fatal("cursor should be exhausted")
	}

	again := src.IterateFrom(-5)
	if idx, _, _ := again.Next(); idx != 0 {
		t.Fatalf("negative start clamped to %d, want 0", idx)
	}

	past := src.IterateFrom(10)
	if _, _, ok := past.Next(); ok {
		t.Fatal("cursor past the end should be exhausted")
	}
}

func TestLines_NilIsEmpty(t *testing.T) {
	var src *Lines
	if src.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", src.Len())
	}
	if src.Line(0) != "" {
		t.Fatal("Line(0) on nil source should be empty")
	}
}
