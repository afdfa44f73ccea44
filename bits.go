// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

// bitAccumulator builds a single ordered bit sequence, most significant bit
// first throughout. It transiently holds entropy-equivalent bits, so owners
// wipe it on every exit path.
type bitAccumulator struct {
	bits []bool
}

func newBitAccumulator(capBits int) *bitAccumulator {
	return &bitAccumulator{bits: make([]bool, 0, capBits)}
}

// appendByte appends the 8 bits of b, MSB first
func (a *bitAccumulator) appendByte(b byte) {
	for i := 0; i < bitsInByte; i++ {
		a.bits = append(a.bits, b&(1<<(bitsInByte-1-i)) != 0)
	}
}

// appendBits11 appends the 11 significant bits of v, MSB first. The five
// leading padding bits of the uint16 representation are never appended.
func (a *bitAccumulator) appendBits11(v Bits11) {
	u := v.Bits()
	for i := 0; i < bitsInU11; i++ {
		a.bits = append(a.bits, u&(1<<(bitsInU11-1-i)) != 0)
	}
}

// toBits11Set splits the sequence into exact, non-overlapping 11-bit groups
// in input order. Trailing bits that do not fill a group are ignored.
func (a *bitAccumulator) toBits11Set() []Bits11 {
	set := make([]Bits11, 0, MaxSetLen)
	for off := 0; off+bitsInU11 <= len(a.bits); off += bitsInU11 {
		var u uint16
		for i, bit := range a.bits[off : off+bitsInU11] {
			if bit {
				u |= 1 << (bitsInU11 - 1 - i)
			}
		}
		set = append(set, Bits11(u))
	}
	return set
}

// toBytes regroups the sequence into 8-bit bytes. The final partial group,
// if any, is packed into the leading bits of the last byte.
func (a *bitAccumulator) toBytes() []byte {
	out := make([]byte, 0, (len(a.bits)+bitsInByte-1)/bitsInByte)
	for off := 0; off < len(a.bits); off += bitsInByte {
		end := off + bitsInByte
		if end > len(a.bits) {
			end = len(a.bits)
		}
		var b byte
		for i, bit := range a.bits[off:end] {
			if bit {
				b |= 1 << (bitsInByte - 1 - i)
			}
		}
		out = append(out, b)
	}
	return out
}

// wipe securely erases the accumulated bits
func (a *bitAccumulator) wipe() {
	for i := range a.bits {
		a.bits[i] = false
	}
	a.bits = a.bits[:0]
}
