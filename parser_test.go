package vtcore

import "testing"

func feedString(p *Parser, s string) []Sequence {
	dec := NewUTF8Decoder()
	return p.FeedBytes([]byte(s), dec)
}

// TestParserCUP is scenario S1: ESC [ H -> one CSI/CUP record, n_args=0,
// terminator 'H'.
func TestParserCUP(t *testing.T) {
	p := NewParser(false)
	seqs := feedString(p, "\x1b[H")
	if len(seqs) != 1 {
		t.Fatalf("got %d sequences, want 1: %+v", len(seqs), seqs)
	}
	s := seqs[0]
	if s.Type != SeqCSI || s.Command != CmdCUP || s.NArgs != 0 || s.Terminator != 'H' {
		t.Fatalf("got %+v", s)
	}
}

// TestParserCUPWithArgs is scenario S2.
func TestParserCUPWithArgs(t *testing.T) {
	p := NewParser(false)
	seqs := feedString(p, "\x1b[12;34H")
	if len(seqs) != 1 {
		t.Fatalf("got %d sequences, want 1", len(seqs))
	}
	s := seqs[0]
	if s.Command != CmdCUP || s.NArgs != 2 || s.Args[0] != 12 || s.Args[1] != 34 {
		t.Fatalf("got %+v", s)
	}
}

// TestParserSetDECMode is scenario S3.
func TestParserSetDECMode(t *testing.T) {
	p := NewParser(false)
	seqs := feedString(p, "\x1b[?25h")
	if len(seqs) != 1 {
		t.Fatalf("got %d sequences, want 1", len(seqs))
	}
	s := seqs[0]
	if s.Command != CmdSM_DEC {
		t.Fatalf("command = %v, want SM_DEC", s.Command)
	}
	if !s.HasIntermediate('?') {
		t.Fatal("expected '?' intermediate bit set")
	}
	if s.NArgs != 1 || s.Args[0] != 25 {
		t.Fatalf("args = %v", s.Args[:s.NArgs])
	}
}

// TestParserOSC is scenario S6.
func TestParserOSC(t *testing.T) {
	p := NewParser(false)
	seqs := feedString(p, "\x1b]0;hi\x07")
	if len(seqs) != 1 {
		t.Fatalf("got %d sequences, want 1", len(seqs))
	}
	s := seqs[0]
	if s.Type != SeqOSC {
		t.Fatalf("type = %v, want OSC", s.Type)
	}
	if string(s.St) != "0;hi" {
		t.Fatalf("st = %q, want %q", s.St, "0;hi")
	}
}

func TestParserOSCTerminatedByST(t *testing.T) {
	p := NewParser(false)
	seqs := feedString(p, "\x1b]0;hi\x1b\\")
	if len(seqs) != 1 || string(seqs[0].St) != "0;hi" {
		t.Fatalf("got %+v", seqs)
	}
}

func TestParserGraphicAndControl(t *testing.T) {
	p := NewParser(false)
	seqs := feedString(p, "A\n")
	if len(seqs) != 2 {
		t.Fatalf("got %d sequences, want 2", len(seqs))
	}
	if seqs[0].Type != SeqGraphic || seqs[0].Graphic != 'A' {
		t.Fatalf("seqs[0] = %+v", seqs[0])
	}
	if seqs[1].Type != SeqControl || seqs[1].Command != CmdLF {
		t.Fatalf("seqs[1] = %+v", seqs[1])
	}
}

func TestParserCSIIgnoreRecovers(t *testing.T) {
	p := NewParser(false)
	// A colon inside CSI params forces CSI_IGNORE; the sequence is
	// absorbed silently and parsing resumes cleanly afterward.
	seqs := feedString(p, "\x1b[1:2x\x1b[H")
	if len(seqs) != 1 {
		t.Fatalf("got %d sequences, want 1 (ignored one should be silent): %+v", len(seqs), seqs)
	}
	if seqs[0].Command != CmdCUP {
		t.Fatalf("got %+v", seqs[0])
	}
}

// TestParserDeterminism is invariant 10: feeding a byte sequence produces
// the same records regardless of chunk boundaries.
func TestParserDeterminism(t *testing.T) {
	input := "\x1b[12;34H\x1b]0;title\x07A"
	whole := feedString(NewParser(false), input)

	p := NewParser(false)
	dec := NewUTF8Decoder()
	var chunked []Sequence
	for i := 0; i < len(input); i++ {
		chunked = append(chunked, p.FeedBytes([]byte{input[i]}, dec)...)
	}

	if len(whole) != len(chunked) {
		t.Fatalf("whole=%d chunked=%d", len(whole), len(chunked))
	}
	for i := range whole {
		if whole[i].Type != chunked[i].Type || whole[i].Command != chunked[i].Command {
			t.Errorf("seq %d differs: %+v vs %+v", i, whole[i], chunked[i])
		}
	}
}

func TestParserSUBEmitsSubstitute(t *testing.T) {
	p := NewParser(false)
	seq := p.Feed(0x1A)
	if seq == nil || seq.Type != SeqGraphic || seq.Command != CmdSubstitute {
		t.Fatalf("got %+v", seq)
	}
}

func TestParserCANAborts(t *testing.T) {
	p := NewParser(false)
	p.Feed(0x1B)
	p.Feed('[')
	p.Feed('1')
	if seq := p.Feed(0x18); seq != nil {
		t.Fatalf("CAN should abort silently, got %+v", seq)
	}
	seqs := feedString(p, "\x1b[H")
	if len(seqs) != 1 || seqs[0].Command != CmdCUP {
		t.Fatalf("parser should resume cleanly after CAN: %+v", seqs)
	}
}
