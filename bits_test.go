// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendByteOrder(t *testing.T) {
	acc := newBitAccumulator(8)
	acc.appendByte(0xA5) // 10100101

	want := []bool{true, false, true, false, false, true, false, true}
	assert.Equal(t, want, acc.bits)
}

func TestAppendBits11Order(t *testing.T) {
	acc := newBitAccumulator(11)
	acc.appendBits11(Bits11(0x555)) // 10101010101

	require.Len(t, acc.bits, 11)
	for i, bit := range acc.bits {
		assert.Equal(t, i%2 == 0, bit, "bit %d", i)
	}
}

func TestBits11RoundTrip(t *testing.T) {
	in := []Bits11{0, 1, 1024, 2047, 3, 512}

	acc := newBitAccumulator(len(in) * bitsInU11)
	for _, v := range in {
		acc.appendBits11(v)
	}
	assert.Equal(t, in, acc.toBits11Set())
}

func TestBytesRoundTrip(t *testing.T) {
	in := []byte{0x00, 0xFF, 0x37, 0x80, 0x01}

	acc := newBitAccumulator(len(in) * bitsInByte)
	for _, b := range in {
		acc.appendByte(b)
	}
	assert.Equal(t, in, acc.toBytes())
}

func TestPartialTrailingByte(t *testing.T) {
	// 11 bits regroup into one full byte plus 3 bits packed into the
	// leading positions of the trailing byte.
	acc := newBitAccumulator(bitsInU11)
	acc.appendBits11(Bits11(0x7FF))

	assert.Equal(t, []byte{0xFF, 0xE0}, acc.toBytes())
}

func TestIncompleteGroupIgnored(t *testing.T) {
	acc := newBitAccumulator(16)
	acc.appendByte(0x00)
	acc.appendByte(0x01)

	// 16 bits hold only one complete 11-bit group.
	set := acc.toBits11Set()
	require.Len(t, set, 1)
	assert.Equal(t, Bits11(0), set[0])
}

func TestWipe(t *testing.T) {
	acc := newBitAccumulator(8)
	acc.appendByte(0xFF)
	acc.wipe()

	assert.Zero(t, len(acc.bits))
	for _, bit := range acc.bits[:cap(acc.bits)] {
		assert.False(t, bit)
	}
}
