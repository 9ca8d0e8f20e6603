/*------------------------------------------------------------------------------
* noncoherent.go : non-coherent accumulator (C8)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : per DFT-frequency-bin magnitudes are rescaled to a common
*         exponent with the coherent accumulator before being summed into
*         an 8-bit-per-cell running total; any cell exceeding 255 forces a
*         one-bit rescale of the whole row for every future round
*         (ExtraShift / NoncohExp / ExpIncPos bookkeeping).
*-----------------------------------------------------------------------------*/
package acq

// amplitude approximates sqrt(real^2+imag^2) with a piecewise alpha-max-
// plus-beta-min estimator (max + min/8 when max > 3*min, otherwise
// max - max/8 + min/2), operating on one's-complement-negated
// magnitudes (matching the matched filter's own negation convention).
func amplitude(c BlockFloat) uint32 {
	absOf := func(v int32) uint32 {
		if v&0x200 != 0 {
			return uint32(^v)
		}
		return uint32(v)
	}
	max := absOf(c.Real)
	min := absOf(c.Imag)
	if max < min {
		max, min = min, max
	}
	if max > min*3 {
		return max + (min >> 3)
	}
	return max - (max >> 3) + (min >> 1)
}

// nonCoherentAcc folds one round of coherent-buffer amplitudes into the
// non-coherent accumulator, handling the dynamic exponent rescale, and
// offers the strongest per-phase frequency bin to the peak sorter.
func (e *Engine) nonCoherentAcc(maxCohExp uint32, noncohCount uint32) {
	e.noiseFloor = 0

	extraShift := false
	expIncCor := uint32(0)

	if noncohCount == 0 {
		e.noncohExp = 0
		e.expIncPos = 0
	}

	var shiftCoh, shiftNoncoh uint32
	if e.noncohExp > maxCohExp {
		shiftCoh = e.noncohExp - maxCohExp
		shiftNoncoh = 0
	} else {
		shiftCoh = 0
		shiftNoncoh = maxCohExp - e.noncohExp
		e.noncohExp = maxCohExp
	}

	for corCount := 0; corCount < MfCoreDepth; corCount++ {
		var ampSumCor uint32
		exceed := false
		var maxAmp uint32
		maxFreq := 0

		var ampNoncoh [DftNumber]uint32
		for freqCount := 0; freqCount < DftNumber; freqCount++ {
			cell := e.coherentBuffer[corCount][freqCount]
			ampCoh := amplitude(cell)
			ampCoh >>= uint(int(shiftCoh) + int(maxCohExp) - cell.Exp)
			ampCoh = (ampCoh + 1) >> 1

			if noncohCount == 0 {
				ampNoncoh[freqCount] = 0
			} else {
				ampNoncoh[freqCount] = uint32(e.nonCoherentBuffer[corCount][freqCount])
			}
			shiftBit := shiftNoncoh
			if uint32(corCount) < e.expIncPos {
				shiftBit++
			}
			if shiftBit != 0 {
				ampNoncoh[freqCount] = uint32(roundShiftRaw(int32(ampNoncoh[freqCount]), uint(shiftBit)))
			}

			ampNoncoh[freqCount] += ampCoh
			if extraShift {
				ampNoncoh[freqCount] = (ampNoncoh[freqCount] + 1) >> 1
			}
			if ampNoncoh[freqCount]&0x200 != 0 {
				ampNoncoh[freqCount] = 510
			}
			if ampNoncoh[freqCount]&0x100 != 0 {
				exceed = true
			}
			if ampNoncoh[freqCount] > maxAmp {
				maxAmp = ampNoncoh[freqCount]
				maxFreq = freqCount
			}
		}

		if exceed {
			extraShift = true
			e.noncohExp++
			expIncCor = uint32(corCount)
			for freqCount := 0; freqCount < DftNumber; freqCount++ {
				ampNoncoh[freqCount] = (ampNoncoh[freqCount] + 1) >> 1
			}
			e.noiseFloor >>= 1
			maxAmp = (maxAmp + 1) >> 1
		}

		for freqCount := 0; freqCount < DftNumber; freqCount++ {
			e.nonCoherentBuffer[corCount][freqCount] = uint8(ampNoncoh[freqCount])
			ampSumCor += ampNoncoh[freqCount]
		}

		ampSumCor >>= 3
		lastRound := noncohCount == e.nonCoherentNumber-1 &&
			e.codeRoundCount == codeRoundNumber(e.codeSpan)-1 &&
			uint32(e.strideCount) == e.strideNumber
		if lastRound {
			e.noiseFloor += ampSumCor
		}

		e.insertPeak(maxAmp, e.noncohExp, corCount, maxFreq)
	}

	e.expIncPos = expIncCor
}
