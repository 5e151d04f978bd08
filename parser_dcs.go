package vtcore

// DCS mirrors CSI's entry/param/intermediate phases; reaching a final
// byte doesn't dispatch immediately, it captures the command shape and
// moves to DCS_PASSTHROUGH to collect the payload until ST/BEL.

func (p *Parser) feedDCSEntry(r rune) *Sequence {
	if r <= 0xFF {
		b := byte(r)
		if b >= 0x3C && b <= 0x3F {
			p.intermediates |= intermediateBit(b)
			p.state = stDCSParam
			return nil
		}
	}
	return p.feedDCSParam(r)
}

func (p *Parser) feedDCSParam(r rune) *Sequence {
	if r > 0xFF {
		p.state = stDCSIgnore
		return nil
	}
	b := byte(r)
	switch {
	case b >= 0x30 && b <= 0x39:
		if !p.curArgSet {
			p.curArg = 0
			p.curArgSet = true
		}
		p.curArg = p.curArg*10 + int32(b-0x30)
		p.sawParam = true
		return nil
	case b == 0x3B:
		p.sawParam = true
		if p.nArgs >= ArgMax {
			p.state = stDCSIgnore
			return nil
		}
		p.pushArg()
		return nil
	case b == 0x3A:
		p.state = stDCSIgnore
		return nil
	case b >= 0x20 && b <= 0x2F:
		p.intermediates |= intermediateBit(b)
		p.state = stDCSIntermediate
		return nil
	case b >= 0x40 && b <= 0x7E:
		p.enterDCSPassthrough(b)
		return nil
	default:
		p.state = stDCSIgnore
		return nil
	}
}

func (p *Parser) feedDCSIntermediate(r rune) *Sequence {
	if r > 0xFF {
		p.state = stDCSIgnore
		return nil
	}
	b := byte(r)
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.intermediates |= intermediateBit(b)
		return nil
	case b >= 0x40 && b <= 0x7E:
		p.enterDCSPassthrough(b)
		return nil
	default:
		p.state = stDCSIgnore
		return nil
	}
}

func (p *Parser) enterDCSPassthrough(term byte) {
	if p.sawParam {
		p.pushArg()
	}
	p.dcsTerminator = term
	p.dcsIntermediates = p.intermediates
	p.st = p.st[:0]
	p.stTruncated = false
	p.state = stDCSPassthrough
}

// feedDCSIgnore absorbs bytes until a final, then returns to GROUND
// without a record.
func (p *Parser) feedDCSIgnore(r rune) *Sequence {
	if r <= 0xFF {
		b := byte(r)
		if b >= 0x40 && b <= 0x7E {
			p.state = stGround
			return nil
		}
	}
	return nil
}

func (p *Parser) feedDCSPassthrough(r rune) *Sequence {
	if p.pendingESC {
		p.pendingESC = false
		if r <= 0xFF && byte(r) == 0x5C {
			return p.finishDCS()
		}
		p.Reset()
		p.state = stEscape
		return p.feedEscape(r)
	}
	if r == 0x07 {
		return p.finishDCS()
	}
	if r == 0x1B {
		p.pendingESC = true
		return nil
	}
	p.appendST(r)
	return nil
}

func (p *Parser) finishDCS() *Sequence {
	cmd := commandForCSI(p.host, p.dcsIntermediates, p.dcsTerminator)
	p.seq = Sequence{
		Type:          SeqDCS,
		Command:       cmd,
		Terminator:    rune(p.dcsTerminator),
		Intermediates: p.dcsIntermediates,
		NArgs:         p.nArgs,
		St:            p.st,
	}
	copy(p.seq.Args[:], p.args[:p.nArgs])
	p.Reset()
	return &p.seq
}
