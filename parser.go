package vtcore

// parserState is one of the VT500-style states. Initial state is
// stGround.
type parserState int

const (
	stGround parserState = iota
	stEscape
	stEscapeIntermediate
	stCSIEntry
	stCSIParam
	stCSIIntermediate
	stCSIIgnore
	stDCSEntry
	stDCSParam
	stDCSIntermediate
	stDCSPassthrough
	stDCSIgnore
	stOSCString
	stSOSPIAPCString
)

// Parser is a streaming control-sequence state machine: feed it one code
// point at a time (from a UTF8Decoder's output, not raw bytes) and it
// surfaces a Sequence whenever a complete control function, escape
// sequence, string, or plain graphic/control character has been
// recognized.
//
// A Parser is not safe for concurrent use. Its returned *Sequence aliases
// internal storage (Args, St) that the next Feed call overwrites; callers
// that need to retain a record must copy it first.
type Parser struct {
	host bool // recorded from NewParser; command resolution does not consult it

	state parserState

	intermediates uint32
	args          [ArgMax]int32
	nArgs         int
	curArg        int32
	curArgSet     bool
	sawParam      bool

	dcsTerminator    byte
	dcsIntermediates uint32

	st          []byte
	stTruncated bool
	pendingESC  bool

	seq Sequence
}

// NewParser returns a parser in the GROUND state. host marks the parser
// as host-side (vs. terminal-side) and is stored on the parser, but it
// changes neither tokenization nor command resolution: host-side and
// terminal-side parsers map every sequence to the same Command.
func NewParser(host bool) *Parser {
	return &Parser{host: host, st: make([]byte, 0, 256)}
}

// Reset returns the parser to GROUND, discarding any in-progress
// sequence.
func (p *Parser) Reset() {
	p.state = stGround
	p.resetParams()
	p.st = p.st[:0]
	p.stTruncated = false
	p.pendingESC = false
}

func (p *Parser) resetParams() {
	p.intermediates = 0
	p.nArgs = 0
	p.curArg = 0
	p.curArgSet = false
	p.sawParam = false
}

func (p *Parser) resetString() {
	p.st = p.st[:0]
	p.stTruncated = false
	p.pendingESC = false
}

// Feed consumes one code point and returns the completed Sequence, or nil
// if the sequence is still in progress. CAN and SUB abort whatever is in
// progress from any state; SUB additionally surfaces a GRAPHIC record for
// the Unicode replacement character, standing in for the character it
// interrupted.
func (p *Parser) Feed(r rune) *Sequence {
	switch r {
	case 0x18: // CAN
		p.Reset()
		return nil
	case 0x1A: // SUB
		p.Reset()
		p.seq = Sequence{Type: SeqGraphic, Command: CmdSubstitute, Graphic: 0xFFFD}
		return &p.seq
	}

	switch p.state {
	case stGround:
		return p.feedGround(r)
	case stEscape:
		return p.feedEscape(r)
	case stEscapeIntermediate:
		return p.feedEscapeIntermediate(r)
	case stCSIEntry:
		return p.feedCSIEntry(r)
	case stCSIParam:
		return p.feedCSIParam(r)
	case stCSIIntermediate:
		return p.feedCSIIntermediate(r)
	case stCSIIgnore:
		return p.feedCSIIgnore(r)
	case stDCSEntry:
		return p.feedDCSEntry(r)
	case stDCSParam:
		return p.feedDCSParam(r)
	case stDCSIntermediate:
		return p.feedDCSIntermediate(r)
	case stDCSPassthrough:
		return p.feedDCSPassthrough(r)
	case stDCSIgnore:
		return p.feedDCSIgnore(r)
	case stOSCString:
		return p.feedOSCString(r)
	case stSOSPIAPCString:
		return p.feedSOSPIAPCString(r)
	default:
		p.state = stGround
		return nil
	}
}

// FeedBytes decodes raw bytes through a UTF8Decoder and feeds the
// resulting code points to p, returning every Sequence produced along the
// way (copied, since each aliases scratch state that the next Feed call
// reuses). It is a convenience for callers that have a byte stream and no
// reason to manage the UTF-8 decoding step themselves.
func (p *Parser) FeedBytes(data []byte, dec *UTF8Decoder) []Sequence {
	var out []Sequence
	for _, b := range data {
		points, _ := dec.Decode(b)
		for _, r := range points {
			if seq := p.Feed(r); seq != nil {
				out = append(out, *seq)
			}
		}
	}
	return out
}

func isControlPoint(r rune) bool {
	return r <= 0x1F || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

func (p *Parser) feedGround(r rune) *Sequence {
	if r == 0x1B {
		p.Reset()
		p.state = stEscape
		return nil
	}
	if isControlPoint(r) {
		return p.dispatchControl(r)
	}
	p.seq = Sequence{Type: SeqGraphic, Command: CmdGraphic, Graphic: r}
	return &p.seq
}

func (p *Parser) dispatchControl(r rune) *Sequence {
	cmd := CmdNone
	if r <= 0xFF {
		if c, ok := c0Controls[byte(r)]; ok {
			cmd = c
		}
	}
	p.seq = Sequence{Type: SeqControl, Command: cmd, Terminator: r}
	return &p.seq
}

func (p *Parser) feedEscape(r rune) *Sequence {
	if r > 0xFF {
		p.state = stGround
		return nil
	}
	b := byte(r)
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.intermediates |= intermediateBit(b)
		p.state = stEscapeIntermediate
		return nil
	case b == 0x5B:
		p.resetParams()
		p.state = stCSIEntry
		return nil
	case b == 0x5D:
		p.resetString()
		p.state = stOSCString
		return nil
	case b == 0x50:
		p.resetParams()
		p.resetString()
		p.state = stDCSEntry
		return nil
	case b == 0x58 || b == 0x5E || b == 0x5F:
		p.resetString()
		p.state = stSOSPIAPCString
		return nil
	case b >= 0x30 && b <= 0x7E:
		return p.dispatchEscape(b)
	default:
		p.state = stGround
		return nil
	}
}

func (p *Parser) feedEscapeIntermediate(r rune) *Sequence {
	if r > 0xFF {
		p.state = stGround
		return nil
	}
	b := byte(r)
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.intermediates |= intermediateBit(b)
		return nil
	case b >= 0x30 && b <= 0x7E:
		return p.dispatchEscape(b)
	default:
		p.state = stGround
		return nil
	}
}

func (p *Parser) dispatchEscape(term byte) *Sequence {
	cmd := commandForEscape(p.intermediates, term)
	p.seq = Sequence{Type: SeqEscape, Command: cmd, Terminator: rune(term), Intermediates: p.intermediates}
	if cmd == CmdSCS {
		p.seq.Charset = rune(term)
	}
	p.state = stGround
	return &p.seq
}

// pushArg appends the in-progress parameter (or -1 if no digits were seen
// since the last separator) and starts a fresh one, dropping parameters
// past ArgMax.
func (p *Parser) pushArg() {
	if p.nArgs < ArgMax {
		if p.curArgSet {
			p.args[p.nArgs] = clampArg(int(p.curArg))
		} else {
			p.args[p.nArgs] = -1
		}
		p.nArgs++
	}
	p.curArg = 0
	p.curArgSet = false
}

func (p *Parser) appendST(r rune) {
	if p.stTruncated {
		return
	}
	var buf [6]byte
	n := Encode(buf[:], r)
	if len(p.st)+n > STMax {
		p.stTruncated = true
		return
	}
	p.st = append(p.st, buf[:n]...)
}
