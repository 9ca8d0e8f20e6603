/*------------------------------------------------------------------------------
* types.go : acquisition engine data types and hardware constants
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : behavioral model of a GNSS baseband acquisition engine: searches a
*         code-phase x Doppler grid for PRN code replicas in a short buffered
*         window of down-converted samples and reports the strongest peaks
*         per channel. ported from a C++ hardware-model reference; fixed-point
*         shifts, rounding rules and clips below are bit-exact to that model.
*-----------------------------------------------------------------------------*/
package acq

// hardware constants ---------------------------------------------------------
const (
	DftNumber       = 8   /* number of DFT bins (+-1,+-3,+-5,+-7) */
	MfCoreDepth     = 682 /* correlator window width per output phase */
	AdderTreeWidth  = MfCoreDepth / 2 /* PRN chip batch width loaded per segment */
	FullLength      = false           /* compile-time mode select; reference uses 3-segment mode */
	SegmentsPerCoh  = 3               /* number of MF_CORE_DEPTH windows per coherent epoch in 3-segment mode */
	AeBufferSize    = 32 * MfCoreDepth /* ring buffer size (bytes); 32 == number of values of the 5-bit ReadAddress field */
	ChannelWordCnt  = 8                /* 32-bit config/result words per channel */
	ChannelStride   = 32               /* word stride between per-channel blocks in the register address space */
	MaxChannels     = 64               /* ChannelNumber register field is 6 bits wide */
	AeClkMHz        = 100              /* clock frequency for AE module (MHz) */
	BlockLengthUs   = 1000             /* length of one scheduling block (us) */
)

// PRN generator selection (channel config word1[31:30]) ----------------------
const (
	PrnSelectLfsr   = 0 /* GPS L1 C/A / SBAS L1, general LFSR Gold code */
	PrnSelectMemory = 1 /* memory-table PRN */
	PrnSelectB1C    = 2 /* BDS B1C, Weil code */
	PrnSelectL1C    = 3 /* GPS L1C, Weil code */
)

// ComplexInt is a pair of signed accumulator values, wide enough to hold a
// full matched-filter correlation sum before block-float renormalization.
type ComplexInt struct {
	Real, Imag int32
}

// AddC returns the componentwise sum of two complex integers.
func (c ComplexInt) AddC(o ComplexInt) ComplexInt {
	return ComplexInt{c.Real + o.Real, c.Imag + o.Imag}
}

// Not returns the one's-complement negation (~x == -x-1) the matched filter
// uses in place of true two's-complement negation; see spec design notes.
func (c ComplexInt) Not() ComplexInt {
	return ComplexInt{^c.Real, ^c.Imag}
}

// MulScalar scales both components by an integer twiddle-factor magnitude.
func (c ComplexInt) MulScalar(m int32) ComplexInt {
	return ComplexInt{c.Real * m, c.Imag * m}
}

// PeakRecord is one entry of the per-channel top-3 peak table.
type PeakRecord struct {
	Amp      uint8
	Exp      uint8
	PhasePos uint16
	FreqPos  uint16
}

// ChannelConfig mirrors the 8x32-bit per-channel register block: words 0-3
// are the input fields (written by the host, readable back), words 4-7 are
// the overwritten result fields.
type ChannelConfig struct {
	StrideNumber     uint32 /* word0[5:0] */
	CoherentNumber   uint32 /* word0[13:8] */
	NonCoherentNumber uint32 /* word0[22:16] */
	PeakRatioTh      uint32 /* word0[26:24] */
	EarlyTerminate   bool   /* word0[27] */
	CenterFreq       int32  /* word1[19:0]<<12, signed carrier NCO step */
	Svid             uint32 /* word1[29:24] */
	PrnSelect        uint32 /* word1[31:30] */
	CodeSpan         uint32 /* word2[4:0] */
	ReadAddress      uint32 /* word2[12:8] */
	DftFreq          uint32 /* word2[30:20], 11-bit */
	StrideInterval   int32  /* word3[21:0] */

	Success    bool
	NoiseFloor uint32
	Peaks      [3]PeakRecord
}
