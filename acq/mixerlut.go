/*------------------------------------------------------------------------------
* mixerlut.go : carrier mixer and DFT twiddle-factor lookup tables (C3, C7)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : complexMulI/complexMulQ replace a complex multiply of a 4-bit input
*         sample against a 64-phase carrier NCO angle with a direct table
*         lookup -- the reference hardware has no multiplier on this path.
*         dftTable is a 128-entry half-wave sine magnitude LUT (0..511)
*         indexed by the low 7 bits of a right-shifted NCO phase; the cosine
*         value for the same angle is read from the table 0x40 chips away
*         (quarter-period shift), with sign correction applied by the caller.
*-----------------------------------------------------------------------------*/
package acq

// complexMulI/complexMulQ[sample][angle] give the real/imag product of a
// 4-bit signed input sample (rows, 0-15) against one of 64 carrier phase
// steps (columns), scaled to the same amplitude range the matched filter
// downstream expects (|value| <= 30).
var complexMulI = [16][64]int32{
	{7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7, 7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7, -7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7, -7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7},
	{7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21, 21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7, -7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21, -21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7},
	{7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7, -7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7, -7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7},
	{7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21, -21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7, -7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21, 21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7},
	{21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7, 7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21, -21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7, -7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21},
	{21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21, 21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21, -21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21, -21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21},
	{21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7, -7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21, -21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7, 7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21},
	{21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21, -21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21, -21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21, 21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21},
	{-7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7, 7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7, -7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7},
	{-7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21, 21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7, 7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21, -21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7},
	{-7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7, -7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7, 7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7},
	{-7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21, -21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7, 7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21, 21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7},
	{-21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7, 7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21, 21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7, -7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21},
	{-21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21, 21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21, 21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21, -21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21},
	{-21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7, -7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21, 21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7, 7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21},
	{-21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21, -21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21, 21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21, 21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21},
}

var complexMulQ = [16][64]int32{
	{7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7, -7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7, -7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7},
	{21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7, -7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21, -21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7, 7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21},
	{-7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7, -7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7, 7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7},
	{-21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7, -7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21, 21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7, 7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21},
	{7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21, -21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7, -7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21, 21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7},
	{21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21, -21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21, -21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21, 21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21},
	{-7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21, -21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7, 7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21, 21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7},
	{-21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21, -21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21, 21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21, 21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21},
	{7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7, 7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7, -7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7, -7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7},
	{21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7, 7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21, -21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7, -7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21},
	{-7, -6, -5, -5, -3, -2, -2, 0, 0, 2, 2, 3, 5, 5, 6, 7, 7, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 9, 9, 9, 8, 7, 7, 6, 5, 5, 3, 2, 2, 0, 0, -2, -2, -3, -5, -5, -6, -7, -7, -8, -9, -9, -9, -10, -10, -10, -10, -10, -10, -9, -9, -9, -8, -7},
	{-21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7, 7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21, 21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7, -7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21},
	{7, 10, 13, 13, 15, 18, 18, 20, 20, 22, 22, 21, 23, 23, 22, 21, 21, 20, 19, 19, 15, 14, 14, 10, 10, 6, 6, 3, -1, -1, -4, -7, -7, -10, -13, -13, -15, -18, -18, -20, -20, -22, -22, -21, -23, -23, -22, -21, -21, -20, -19, -19, -15, -14, -14, -10, -10, -6, -6, -3, 1, 1, 4, 7},
	{21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21, 21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21, -21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21, -21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21},
	{-7, -4, -1, -1, 3, 6, 6, 10, 10, 14, 14, 15, 19, 19, 20, 21, 21, 22, 23, 23, 21, 22, 22, 20, 20, 18, 18, 15, 13, 13, 10, 7, 7, 4, 1, 1, -3, -6, -6, -10, -10, -14, -14, -15, -19, -19, -20, -21, -21, -22, -23, -23, -21, -22, -22, -20, -20, -18, -18, -15, -13, -13, -10, -7},
	{-21, -18, -15, -15, -9, -6, -6, 0, 0, 6, 6, 9, 15, 15, 18, 21, 21, 24, 27, 27, 27, 30, 30, 30, 30, 30, 30, 27, 27, 27, 24, 21, 21, 18, 15, 15, 9, 6, 6, 0, 0, -6, -6, -9, -15, -15, -18, -21, -21, -24, -27, -27, -27, -30, -30, -30, -30, -30, -30, -27, -27, -27, -24, -21},
}

// dftTable holds sine magnitudes (0..511) over half a period, indexed by the
// low 7 bits of a shifted NCO phase; dftTable[i^0x40] gives the matching
// cosine magnitude (quarter-period offset).
var dftTable = [128]int32{
	0, 13, 25, 38, 50, 63, 75, 87, 100, 112, 124, 136, 148, 160, 172, 184, 196, 207, 218, 230, 241, 252, 263, 273, 284, 294, 304, 314, 324, 334, 343, 352, 361, 370, 379, 387, 395, 403, 410, 418, 425, 432, 438, 445, 451, 456, 462, 467, 472, 477, 481, 485, 489, 492, 496, 499, 501, 503, 505, 507, 509, 510, 510, 511, 511, 511, 510, 510, 509, 507, 505, 503, 501, 499, 496, 492, 489, 485, 481, 477, 472, 467, 462, 456, 451, 445, 438, 432, 425, 418, 410, 403, 395, 387, 379, 370, 361, 352, 343, 334, 324, 314, 304, 294, 284, 273, 263, 252, 241, 230, 218, 207, 196, 184, 172, 160, 148, 136, 124, 112, 100, 87, 75, 63, 50, 38, 25, 13,
}

// mixSample looks up the carrier-mixed complex sample for a 4-bit signed
// buffer sample against the top 6 bits of a 32-bit carrier NCO phase
// accumulator (bufferSample in [-8,7], nco any uint32).
func mixSample(bufferSample int32, nco uint32) ComplexInt {
	row := uint32(bufferSample) & 0xf
	col := nco >> 26
	return ComplexInt{Real: complexMulI[row][col], Imag: complexMulQ[row][col]}
}

// DftFactor returns the complex twiddle factor for one of the DFT_NUMBER/2
// positive frequency bins used by the coherent-integration DFT, given the
// current DFT NCO phase dftNco and bin index i (covers bins +-1,+-3,...).
// signCos/signSin report the quadrant sign flips that must be applied by the
// caller since the table itself only holds non-negative magnitudes.
func DftFactor(dftNco uint32, i int) (factor ComplexInt, signCos, signSin bool) {
	nco := uint32(i*2+1) * dftNco
	nco &= 0x3fff // 14-bit phase
	nco >>= 6     // round shift 6 bits (raw truncation, matches reference)
	index := nco & 0x7f
	factor.Imag = dftTable[index]
	factor.Real = dftTable[index^0x40]
	signCos = ((nco>>7)&1)^((nco>>6)&1) != 0
	signSin = ((^nco>>7)&1) != 0
	return factor, signCos, signSin
}
