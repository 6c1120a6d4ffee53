package chess

import "testing"

func TestSide(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap sides")
	}
	if White.Direction() != -1 || Black.Direction() != 1 {
		t.Errorf("Direction() = %d/%d; want -1/1", White.Direction(), Black.Direction())
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q/%q", White.String(), Black.String())
	}
}

func TestPieceTypeLetters(t *testing.T) {
	tests := []struct {
		pt     PieceType
		letter byte
	}{
		{Pawn, 'P'},
		{Knight, 'N'},
		{Bishop, 'B'},
		{Rook, 'R'},
		{Queen, 'Q'},
		{King, 'K'},
	}

	for _, tt := range tests {
		t.Run(tt.pt.String(), func(t *testing.T) {
			if got := tt.pt.Letter(); got != tt.letter {
				t.Errorf("%v.Letter() = %c; want %c", tt.pt, got, tt.letter)
			}
			if got := PieceTypeFromLetter(tt.letter + ('a' - 'A')); got != tt.pt {
				t.Errorf("PieceTypeFromLetter(%c) = %v; want %v", tt.letter+('a'-'A'), got, tt.pt)
			}
		})
	}

	if PieceTypeFromLetter('x') != NoPieceType {
		t.Error("PieceTypeFromLetter('x') should be NoPieceType")
	}
}

func TestPieceTypePredicates(t *testing.T) {
	for _, pt := range PieceTypes {
		if pt.IsKing() != (pt == King) {
			t.Errorf("%v.IsKing() = %v", pt, pt.IsKing())
		}
		if pt.IsRook() != (pt == Rook) {
			t.Errorf("%v.IsRook() = %v", pt, pt.IsRook())
		}
	}
}

func TestPieceEquality(t *testing.T) {
	a := NewPiece(Rook, 63, White)
	b := NewPiece(Rook, 63, White)
	if a != b {
		t.Error("identical pieces should compare equal")
	}

	moved := a.Moved(61)
	if moved.FirstMove {
		t.Error("Moved() should clear the first-move flag")
	}
	if moved.Square != 61 || moved.Type != Rook || moved.Side != White {
		t.Errorf("Moved(61) = %+v", moved)
	}
	if a.Moved(63) == a {
		t.Error("pieces differing only in first-move flag should not be equal")
	}

	promoted := NewPiece(Pawn, 8, White).Promoted(Queen, 0)
	if promoted.Type != Queen || promoted.Square != 0 || promoted.FirstMove {
		t.Errorf("Promoted() = %+v", promoted)
	}
}

func TestPieceLetter(t *testing.T) {
	if got := NewPiece(Knight, 1, Black).String(); got != "n" {
		t.Errorf("black knight String() = %q; want \"n\"", got)
	}
	if got := NewPiece(Knight, 57, White).String(); got != "N" {
		t.Errorf("white knight String() = %q; want \"N\"", got)
	}
}

func TestTiles(t *testing.T) {
	empty := EmptyTile(12)
	if empty.IsOccupied() {
		t.Error("EmptyTile should not be occupied")
	}
	if empty != NewTile(12, nil) {
		t.Error("NewTile(sq, nil) should return the interned empty tile")
	}
	if empty.String() != "-" {
		t.Errorf("empty tile String() = %q", empty.String())
	}

	p := NewPiece(Queen, 3, Black)
	occupied := NewTile(3, &p)
	got, ok := occupied.Piece()
	if !ok || got != p {
		t.Errorf("occupied.Piece() = %+v, %v; want %+v, true", got, ok, p)
	}
	if occupied.Square() != 3 {
		t.Errorf("occupied.Square() = %d; want 3", occupied.Square())
	}
}
