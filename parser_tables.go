package vtcore

// commandForEscape maps a plain (non-CSI) escape sequence's intermediates
// and terminator to a catalogued command.
func commandForEscape(inter uint32, term byte) Command {
	switch {
	case inter&intermediateBit('#') != 0:
		switch term {
		case '8':
			return CmdDECALN
		case '3':
			return CmdDECDHL_TOP
		case '4':
			return CmdDECDHL_BOTTOM
		case '5':
			return CmdDECSWL
		case '6':
			return CmdDECDWL
		}
		return CmdNone
	case inter&(intermediateBit('(')|intermediateBit(')')|intermediateBit('*')|intermediateBit('+')) != 0:
		return CmdSCS
	case inter == 0:
		switch term {
		case 'D':
			return CmdIND
		case 'E':
			return CmdNEL
		case 'M':
			return CmdRI
		case 'H':
			return CmdHTS
		case '7':
			return CmdDECSC
		case '8':
			return CmdDECRC
		case '6':
			return CmdDECBI
		case '9':
			return CmdDECFI
		case 'c':
			return CmdRIS
		}
	}
	return CmdNone
}

// commandForCSI maps a CSI (or DCS passthrough entry) sequence's
// intermediates and terminator to a catalogued command. The host argument
// is ignored: ANSI/DEC variants are told apart by the '?' marker alone.
//
// Several xterm extension mappings (STM/RTM/SRV/RRV/SDCS/SUCS) are
// best-effort: xterm's own ctlseqs reference does not give these a single
// unambiguous CSI encoding, so the choices below are a reasonable,
// internally-consistent assignment rather than a verified transcription.
//
// The DEC rectangular-area family (DECCARA/DECRARA/DECCRA/DECERA/DECFRA/
// DECSERA) are selected by the '$' intermediate that DEC always pairs with
// the rectangle's Pt;Pl;Pb;Pr argument list ('v', 'z' and '{' map to
// nothing without it). Three of them share a terminator with an existing
// ANSI or xterm function: 'r' is DECSTBM bare and
// DECCARA with '$', 't' is XTERM_WM bare and DECRARA with '$', and 'x' is
// DECREQTPARM bare and DECFRA with '$' (the DECREQTPARM mapping previously
// lived on the '$' branch, which was never reachable for the real request
// form "CSI Ps x" and has been moved to the default case it actually uses).
func commandForCSI(_ bool, inter uint32, term byte) Command {
	has := func(b byte) bool { return inter&intermediateBit(b) != 0 }
	hasWhat := has('?')

	switch term {
	case 'A':
		return CmdCUU
	case 'B':
		return CmdCUD
	case 'C':
		return CmdCUF
	case 'D':
		return CmdCUB
	case 'E':
		return CmdCNL
	case 'F':
		return CmdCPL
	case 'G':
		return CmdCHA
	case 'H':
		return CmdCUP
	case 'f':
		return CmdHVP
	case 'd':
		return CmdVPA
	case 'e':
		return CmdVPR
	case '`':
		return CmdHPA
	case 'a':
		return CmdHPR
	case 'J':
		return CmdED
	case 'K':
		return CmdEL
	case 'L':
		return CmdIL
	case 'M':
		return CmdDL
	case '@':
		return CmdICH
	case 'P':
		return CmdDCH
	case 'X':
		return CmdECH
	case 'S':
		return CmdSU
	case 'T':
		return CmdSD
	case 'm':
		return CmdSGR
	case 'g':
		return CmdTBC
	case 'Z':
		return CmdCBT
	case 'I':
		return CmdCHT
	case 'b':
		return CmdREP
	case 'c':
		switch {
		case has('>'):
			return CmdDA2
		case has('='):
			return CmdDA3
		default:
			return CmdDA
		}
	case 'n':
		if hasWhat {
			return CmdDSR_DEC
		}
		return CmdDSR_ANSI
	case 'i':
		if hasWhat {
			return CmdMC_DEC
		}
		return CmdMC_ANSI
	case 'h':
		if hasWhat {
			return CmdSM_DEC
		}
		return CmdSM_ANSI
	case 'l':
		if hasWhat {
			return CmdRM_DEC
		}
		return CmdRM_ANSI
	case 'r':
		switch {
		case has('$'):
			return CmdDECCARA
		case hasWhat:
			return CmdXtermRPM
		}
		return CmdDECSTBM
	case 'p':
		switch {
		case has('!'):
			return CmdDECSTR
		case has('$') && hasWhat:
			return CmdDECRQM_DEC
		case has('$'):
			return CmdDECRQM_ANSI
		case has('>'):
			return CmdXtermSTM
		case has('='):
			return CmdXtermRTM
		}
		return CmdNone
	case 'x':
		switch {
		case has('$'):
			return CmdDECFRA
		case has('*'):
			return CmdXtermSRV
		case has('+'):
			return CmdXtermRRV
		}
		return CmdDECREQTPARM
	case 'z':
		if has('$') {
			return CmdDECERA
		}
		return CmdNone
	case 'v':
		if has('$') {
			return CmdDECCRA
		}
		return CmdNone
	case 'q':
		if has(' ') {
			return CmdDECSCUSR
		}
		return CmdNone
	case 't':
		if has('$') {
			return CmdDECRARA
		}
		return CmdXtermWM
	case 's':
		if hasWhat {
			return CmdXtermSPM
		}
		return CmdNone
	case 'u':
		switch {
		case has('#'):
			return CmdXtermSDCS
		default:
			return CmdXtermSUCS
		}
	case '}':
		if has('\'') {
			return CmdDECIC
		}
		return CmdNone
	case '~':
		if has('\'') {
			return CmdDECDC
		}
		return CmdNone
	case '{':
		if has('$') {
			return CmdDECSERA
		}
		return CmdNone
	}
	return CmdNone
}
