package jvalue

// ScratchTop reports the top offset of the scratch buffer of p.
func ScratchTop(p *Parser) int { return p.buf.Top() }

// ScratchCap reports the capacity of the scratch buffer of p.
func ScratchCap(p *Parser) int { return p.buf.Cap() }
