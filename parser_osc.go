package vtcore

func (p *Parser) feedOSCString(r rune) *Sequence {
	if p.pendingESC {
		p.pendingESC = false
		if r <= 0xFF && byte(r) == 0x5C {
			return p.finishOSC()
		}
		p.Reset()
		p.state = stEscape
		return p.feedEscape(r)
	}
	if r == 0x07 {
		return p.finishOSC()
	}
	if r == 0x1B {
		p.pendingESC = true
		return nil
	}
	p.appendST(r)
	return nil
}

func (p *Parser) finishOSC() *Sequence {
	p.seq = Sequence{Type: SeqOSC, Command: CmdNone, St: p.st}
	p.Reset()
	return &p.seq
}

// SOS/PM/APC strings (ESC X, ESC ^, ESC _) carry no catalogued meaning in
// this core; their payload is collected only so the terminator can be
// recognized correctly, then discarded without producing a record.
func (p *Parser) feedSOSPIAPCString(r rune) *Sequence {
	if p.pendingESC {
		p.pendingESC = false
		if r <= 0xFF && byte(r) == 0x5C {
			p.Reset()
			return nil
		}
		p.Reset()
		p.state = stEscape
		return p.feedEscape(r)
	}
	if r == 0x07 {
		p.Reset()
		return nil
	}
	if r == 0x1B {
		p.pendingESC = true
		return nil
	}
	return nil
}
