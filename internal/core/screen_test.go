package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '#', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell() = %+v", cell)
	}

	// Out of bounds is ignored
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')
	if s.Get(-1, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
	if strings.Contains(s.String(), "X") {
		t.Error("out-of-bounds Set should not write anything")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(12, 3)

	s.DrawText(1, 0, "Score: 4")
	if got := s.Row(0); got != " Score: 4   " {
		t.Errorf("Row(0) = %q", got)
	}

	s.DrawTextCentered(1, "WIN")
	if got := s.Row(1); got != "    WIN     " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(10, 2, "abcdef")
	if got := s.Row(2); got != "          ab" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenFillRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)

	s.FillRect(NewRect(1, 1, 2, 2), '█', ColorGreen)
	if s.Get(1, 1) != '█' || s.Get(2, 2) != '█' {
		t.Error("FillRect should fill the rectangle")
	}
	if s.Get(3, 1) != ' ' {
		t.Error("FillRect should not spill past its width")
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 6, 4))
	expected := "┌────┐\n│    │\n│    │\n└────┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox produced:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'x')

	s.Resize(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Error("resize should clear the buffer")
	}
	if len(s.Row(2)) != 8 {
		t.Errorf("Row length = %d, expected 8", len(s.Row(2)))
	}
}
