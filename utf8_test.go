package vtcore

import "testing"

// TestEncodeDecodeRoundTrip exercises invariant 9: decode(encode(u)) == u
// for valid UCS-4 code points.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	points := []rune{0x41, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF}
	for _, u := range points {
		var buf [6]byte
		n := Encode(buf[:], u)

		dec := NewUTF8Decoder()
		var got []rune
		for i := 0; i < n; i++ {
			points, _ := dec.Decode(buf[i])
			got = append(got, points...)
		}
		if len(got) != 1 || got[0] != u {
			t.Errorf("round-trip %#x: got %v", u, got)
		}
	}
}

func TestDecodeInvalidLeadFallsBack(t *testing.T) {
	dec := NewUTF8Decoder()
	points, valid := dec.Decode(0xFF)
	if valid {
		t.Fatal("expected invalid")
	}
	if len(points) != 1 || points[0] != 0xFF {
		t.Fatalf("got %v", points)
	}
}

func TestDecodeOverlongRejected(t *testing.T) {
	dec := NewUTF8Decoder()
	// 0xC0 0x80 is an overlong encoding of NUL.
	p1, v1 := dec.Decode(0xC0)
	if v1 != true || len(p1) != 0 {
		t.Fatalf("mid-sequence should be pending: %v %v", p1, v1)
	}
	points, valid := dec.Decode(0x80)
	if valid {
		t.Fatal("expected overlong sequence to be rejected")
	}
	if len(points) != 2 || points[0] != 0xC0 || points[1] != 0x80 {
		t.Fatalf("got %v", points)
	}
}

func TestDecodeStrayContinuationByte(t *testing.T) {
	dec := NewUTF8Decoder()
	points, valid := dec.Decode(0x80)
	if valid {
		t.Fatal("expected invalid")
	}
	if len(points) != 1 || points[0] != 0x80 {
		t.Fatalf("got %v", points)
	}
}

func TestDecodeInterruptedSequenceReprocessesByte(t *testing.T) {
	dec := NewUTF8Decoder()
	dec.Decode(0xE0) // expects 2 more continuation bytes
	points, valid := dec.Decode('A')
	if valid {
		t.Fatal("expected invalid (interrupted sequence)")
	}
	if len(points) != 2 || points[0] != 0xE0 || points[1] != 'A' {
		t.Fatalf("got %v", points)
	}
}
