package vtcore

// feedCSIEntry handles the byte immediately following CSI: private
// markers (0x3C-0x3F) are only recognized here, then control falls
// through to the shared CSI_PARAM byte handling.
func (p *Parser) feedCSIEntry(r rune) *Sequence {
	if r <= 0xFF {
		b := byte(r)
		if b >= 0x3C && b <= 0x3F {
			p.intermediates |= intermediateBit(b)
			p.state = stCSIParam
			return nil
		}
	}
	return p.feedCSIParam(r)
}

func (p *Parser) feedCSIParam(r rune) *Sequence {
	if r > 0xFF {
		p.state = stCSIIgnore
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
		p.state = stCSIParam
		return nil
	case b == 0x3B:
		p.sawParam = true
		if p.nArgs >= ArgMax {
			p.state = stCSIIgnore
			return nil
		}
		p.pushArg()
		p.state = stCSIParam
		return nil
	case b == 0x3A:
		p.state = stCSIIgnore
		return nil
	case b >= 0x20 && b <= 0x2F:
		p.intermediates |= intermediateBit(b)
		p.state = stCSIIntermediate
		return nil
	case b >= 0x40 && b <= 0x7E:
		return p.dispatchCSI(b)
	default:
		p.state = stCSIIgnore
		return nil
	}
}

func (p *Parser) feedCSIIntermediate(r rune) *Sequence {
	if r > 0xFF {
		p.state = stCSIIgnore
		return nil
	}
	b := byte(r)
	switch {
	case b >= 0x20 && b <= 0x2F:
		p.intermediates |= intermediateBit(b)
		return nil
	case b >= 0x40 && b <= 0x7E:
		return p.dispatchCSI(b)
	default:
		p.state = stCSIIgnore
		return nil
	}
}

// feedCSIIgnore absorbs bytes until a final is seen, then returns to
// GROUND without producing a record, per the IGNORE-state contract.
func (p *Parser) feedCSIIgnore(r rune) *Sequence {
	if r <= 0xFF {
		b := byte(r)
		if b >= 0x40 && b <= 0x7E {
			p.state = stGround
			return nil
		}
	}
	return nil
}

func (p *Parser) dispatchCSI(term byte) *Sequence {
	if p.sawParam {
		p.pushArg()
	}
	cmd := commandForCSI(p.host, p.intermediates, term)
	p.seq = Sequence{
		Type:          SeqCSI,
		Command:       cmd,
		Terminator:    rune(term),
		Intermediates: p.intermediates,
		NArgs:         p.nArgs,
	}
	copy(p.seq.Args[:], p.args[:p.nArgs])
	p.state = stGround
	return &p.seq
}
