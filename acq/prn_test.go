package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralLfsrIsDeterministicAndPeriodic(t *testing.T) {
	word := GpsInit[0] // PRN 1
	a := NewGeneralLfsr()
	a.PhaseInit(word)
	b := NewGeneralLfsr()
	b.PhaseInit(word)

	var seqA, seqB []uint8
	for i := 0; i < 2046; i++ {
		seqA = append(seqA, a.Chip())
		a.Shift()
		seqB = append(seqB, b.Chip())
		b.Shift()
	}
	assert.Equal(t, seqA, seqB, "two generators phase-inited identically must produce identical chip streams")

	// Gold code period is 1023 chips.
	assert.Equal(t, seqA[:1023], seqA[1023:2046], "the general LFSR code must repeat every 1023 chips")
}

func TestGeneralLfsrDifferentSvidsDiverge(t *testing.T) {
	a := NewGeneralLfsr()
	a.PhaseInit(GpsInit[0])
	b := NewGeneralLfsr()
	b.PhaseInit(GpsInit[1])

	same := true
	for i := 0; i < 1023; i++ {
		if a.Chip() != b.Chip() {
			same = false
		}
		a.Shift()
		b.Shift()
	}
	assert.False(t, same, "distinct SVID init words must produce distinct Gold codes")
}

func TestMemoryPrnPhaseInitDecodesStartBit(t *testing.T) {
	table := []uint32{0x80000000, 0x00000001}
	m := NewMemoryPrn(table)
	m.PhaseInit(0xc0000004) // wordAddr=0, bitOffset=4 per ((49+svid)<<6)+0xc0000004 base
	// bitOffset 4 means the decoded start bit is wordAddr*32+bitOffset = 4,
	// independent of svid here since we pass the base word directly.
	require.Equal(t, uint32(4), m.startBit)
}

func TestMemoryPrnReadsPackedBitsMsbFirst(t *testing.T) {
	table := []uint32{0x00000001} // single word, only bit 31 (LSB) set
	m := NewMemoryPrn(table)
	m.PhaseInit(0xc0000000) // bitOffset 0 -> startBit 0
	var chips []uint8
	for i := 0; i < 32; i++ {
		chips = append(chips, m.Chip())
		m.Shift()
	}
	assert.Equal(t, uint8(1), chips[31], "bit 31 (LSB of the word) must be the last bit read MSB-first")
	for i := 0; i < 31; i++ {
		assert.Equal(t, uint8(0), chips[i])
	}
}

func TestWeilPrnB1CAndL1CChipsDoNotPanic(t *testing.T) {
	b1c := NewWeilPrn()
	b1c.PhaseInit((0x8 << 28) | (0 << 14) | 1) // tag=B1C, p=1, w=1
	l1c := NewWeilPrn()
	l1c.PhaseInit((0xa << 28) | (0 << 14) | 1) // tag=L1C, p=1, w=1

	for i := 0; i < 100; i++ {
		b1c.Shift()
		l1c.Shift()
	}
	assert.NotPanics(t, func() { b1c.Chip() })
	assert.NotPanics(t, func() { l1c.Chip() })
}

func TestWeilPrnSharedInstanceReinitializesCleanly(t *testing.T) {
	g := NewWeilPrn()
	g.PhaseInit((0xa << 28) | (0 << 14) | 1)
	var firstRun []uint8
	for i := 0; i < 50; i++ {
		firstRun = append(firstRun, g.Chip())
		g.Shift()
	}
	// re-init with the same word (as happens switching pilot<->data use of
	// one shared instance) must reproduce the same stream from scratch.
	g.PhaseInit((0xa << 28) | (0 << 14) | 1)
	var secondRun []uint8
	for i := 0; i < 50; i++ {
		secondRun = append(secondRun, g.Chip())
		g.Shift()
	}
	assert.Equal(t, firstRun, secondRun)
}
