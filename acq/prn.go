/*------------------------------------------------------------------------------
* prn.go : PRN code generators (C2)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : three variants behind a common phase_init/chip/shift contract.
*         General LFSR reproduces the GPS L1 C/A / SBAS L1 Gold-code
*         construction (two maximal-length shift registers combined through
*         a per-SV output tap). Memory PRN indexes a caller-supplied packed
*         bit table. Weil PRN builds a Legendre-sequence based code for BDS
*         B1C / GPS L1C and is shared between the pilot and data component
*         (phase_init must be called before every use; no residual state is
*         carried between channels).
*-----------------------------------------------------------------------------*/
package acq

import "math/bits"

// PrnGenerator is the contract every PRN variant implements.
type PrnGenerator interface {
	PhaseInit(word uint32)
	Chip() uint8
	Shift()
}

// --- General LFSR ------------------------------------------------------

// prnPolySettings holds the fixed feedback-tap bitmasks shared by every
// general-LFSR instance, taken verbatim from the reference model's
// two-entry polynomial table.
var prnPolySettings = [2]uint32{(0x3a6 << 14) | 0x204, 1023 << 14}

// lfsrFeedbackG1/G2 are the ICD-200 G1 (x^10+x^3+1, 2-tap) and G2
// (x^10+x^9+x^8+x^6+x^3+x^2+1, 6-tap) polynomials; the per-SV tapMask in
// Chip() selects G2's output taps, so G2 must carry the 6-tap mask.
var (
	lfsrFeedbackG1 = prnPolySettings[0] & 0x3ff
	lfsrFeedbackG2 = (prnPolySettings[0] >> 14) & 0x3ff
	lfsrLoadValue  = (prnPolySettings[1] >> 14) & 0x3ff // 1023, all-ones initial load
)

// GeneralLfsr is the LFSR/Gold-code generator variant (GPS L1 C/A, SBAS L1).
type GeneralLfsr struct {
	g1, g2  uint32
	tapMask uint32
}

// NewGeneralLfsr returns a General LFSR generator with zero state; call
// PhaseInit before use.
func NewGeneralLfsr() *GeneralLfsr {
	return &GeneralLfsr{}
}

// PhaseInit decodes the 28-bit payload (seed14<<14)|shift14: seed14 selects
// which G2 register taps are combined into the Gold-code output for this
// SV, shift14 pre-advances the pair by that many chips (used by SBAS PRNs,
// whose code is a delayed version of the same generator).
func (g *GeneralLfsr) PhaseInit(word uint32) {
	seed14 := getBitU(word, 14, 14)
	shift14 := getBitU(word, 0, 14)
	g.tapMask = seed14 & 0x3ff
	g.g1 = lfsrLoadValue
	g.g2 = lfsrLoadValue
	for i := uint32(0); i < shift14%1023; i++ {
		g.Shift()
	}
}

// Chip returns the current Gold-code chip without advancing state.
func (g *GeneralLfsr) Chip() uint8 {
	g1out := uint8((g.g1 >> 9) & 1)
	g2out := uint8(bits.OnesCount32(g.g2&g.tapMask) & 1)
	return g1out ^ g2out
}

// Shift advances both shift registers by one chip.
func (g *GeneralLfsr) Shift() {
	fb1 := uint8(bits.OnesCount32(g.g1&lfsrFeedbackG1) & 1)
	fb2 := uint8(bits.OnesCount32(g.g2&lfsrFeedbackG2) & 1)
	g.g1 = ((g.g1 << 1) | uint32(fb1)) & 0x3ff
	g.g2 = ((g.g2 << 1) | uint32(fb2)) & 0x3ff
}

// --- Memory PRN ----------------------------------------------------------

// MemoryPrn reads chips out of a caller-supplied 32-bit-packed bit table
// (the "memory code" address space the hardware maps at MemCodeAddress).
type MemoryPrn struct {
	table    []uint32
	startBit uint32
	cursor   uint32
}

// NewMemoryPrn returns a memory-table generator backed by table, a packed
// bit array addressed MSB-first within each word.
func NewMemoryPrn(table []uint32) *MemoryPrn {
	return &MemoryPrn{table: table}
}

// PhaseInit decodes a start-address/bit-offset init word of the shape
// ((49+svid)<<6)+0xc0000004: bits [5:0] hold a sub-word bit offset and
// bits [25:6] hold the table word address; the bits above 25 are not read.
func (m *MemoryPrn) PhaseInit(word uint32) {
	wordAddr := getBitU(word, 6, 20)
	bitOffset := getBitU(word, 0, 6)
	m.startBit = wordAddr*32 + bitOffset
	m.cursor = 0
}

// Chip returns the bit at the current table position without advancing.
func (m *MemoryPrn) Chip() uint8 {
	if len(m.table) == 0 {
		return 0
	}
	total := uint32(len(m.table)) * 32
	pos := (m.startBit + m.cursor) % total
	w := m.table[pos/32]
	bitPos := 31 - (pos % 32) // MSB-first within the word
	return uint8((w >> bitPos) & 1)
}

// Shift advances the read cursor by one bit.
func (m *MemoryPrn) Shift() {
	m.cursor++
}

// --- Weil PRN --------------------------------------------------------------

const (
	weilLengthB1C = 10243 // BDS B1C Legendre-sequence prime length
	weilLengthL1C = 10223 // GPS L1C Legendre-sequence prime length
	weilTagB1C    = 0x8
	weilTagL1C    = 0xa
)

var legendreCache = map[uint32][]uint8{}

// legendreSequence returns (and caches) the order-n Legendre/quadratic-
// residue sequence: seq[0]=0, seq[k]=1 iff k is a nonzero quadratic
// residue mod n, for prime n.
func legendreSequence(n uint32) []uint8 {
	if s, ok := legendreCache[n]; ok {
		return s
	}
	seq := make([]uint8, n)
	residues := make([]bool, n)
	for k := uint32(1); k < n; k++ {
		residues[(k*k)%n] = true
	}
	for k := uint32(1); k < n; k++ {
		if residues[k] {
			seq[k] = 1
		}
	}
	legendreCache[n] = seq
	return seq
}

// WeilPrn is the Legendre-sequence based generator for BDS B1C / GPS L1C;
// a single instance is shared between a signal's pilot and data component
// since chip() depends only on the most recent PhaseInit.
type WeilPrn struct {
	seq    []uint8
	w      uint32
	insert uint32
	length uint32
	cursor uint32
}

// NewWeilPrn returns a Weil-code generator; call PhaseInit before use.
func NewWeilPrn() *WeilPrn {
	return &WeilPrn{}
}

// PhaseInit decodes the init word's top-nibble tag (0x8 = B1C, 0xa = L1C)
// to pick the Legendre sequence length, and the w/p fields packing the
// Weil shift (1..5111 half-range) and the fixed-bit insertion index
// (1..10230) per "w + ((p-1)<<14)".
func (g *WeilPrn) PhaseInit(word uint32) {
	tag := getBitU(word, 28, 4)
	w := getBitU(word, 0, 14)
	p := getBitU(word, 14, 14) + 1

	length := uint32(weilLengthL1C)
	if tag == weilTagB1C {
		length = weilLengthB1C
	}
	g.seq = legendreSequence(length)
	g.w = w
	g.insert = p
	g.length = length
	g.cursor = 0
}

// Chip returns the Weil chip at the current code-phase position: the
// Legendre sequence XORed with itself shifted by w, with a fixed zero
// chip substituted at the insertion index to expand the period by one.
func (g *WeilPrn) Chip() uint8 {
	if g.length == 0 {
		return 0
	}
	pos := g.cursor % (g.length + 1)
	if pos == g.insert%(g.length+1) {
		return 0
	}
	idx := pos
	if idx > g.insert%(g.length+1) {
		idx--
	}
	return g.seq[idx] ^ g.seq[(idx+g.w)%g.length]
}

// Shift advances the code-phase cursor by one chip.
func (g *WeilPrn) Shift() {
	g.cursor++
}
