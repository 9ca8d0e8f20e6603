/*------------------------------------------------------------------------------
* coherent.go : coherent integrator and 8-point DFT (C7)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : the first coherent round seeds every DFT bin with the raw
*         matched-filter output (the twiddle factor for zero Doppler
*         residual is always 1); later rounds multiply by the DFT factor
*         table, drop 3 LSBs then convergent-round-shift by 6 more, and
*         fold the result into the symmetric positive/negative frequency
*         bin pair before accumulating into the block-float buffer.
*-----------------------------------------------------------------------------*/
package acq

// doNonCoherentSum runs NonCoherentNumber rounds of coherent integration
// (each CoherentNumber deep, each segmented per FullLength/3-segment mode)
// followed by a non-coherent accumulation pass, stopping early once
// EarlyTerminate and peakFound both hold.
func (e *Engine) doNonCoherentSum() {
	segmentsPerRound := SegmentsPerCoh
	if FullLength {
		segmentsPerRound = 1
	}

	e.carrierNco = 0
	e.preloadSample()

	var corResult [MfCoreDepth]ComplexInt

	for noncohCount := uint32(0); noncohCount < e.nonCoherentNumber; noncohCount++ {
		e.dftNco = 0
		maxExp := uint32(0)

		for cohCount := uint32(0); cohCount < e.coherentNumber; {
			dftFactor, signCos, signSin := dftFactors(e.dftNco)

			for segmentCount := 0; segmentCount < segmentsPerRound; segmentCount++ {
				e.matchFilterCore(MfCoreDepth, corResult[:])
				bias := segmentBias(segmentCount)
				for i := 0; i < MfCoreDepth; i++ {
					corResult[i] = corResult[i].AddC(bias)
				}

				for corCount := 0; corCount < MfCoreDepth; corCount++ {
					if cohCount == 0 {
						corOutput := corResult[corCount]
						var corData BlockFloat
						if segmentCount != 0 {
							corData = e.coherentBuffer[corCount][0].AddComplexInt(corOutput)
						} else {
							corData = NewBlockFloat(corOutput)
						}
						for freqCount := 0; freqCount < DftNumber; freqCount++ {
							e.coherentBuffer[corCount][freqCount] = corData
						}
						if uint32(corData.Exp) > maxExp {
							maxExp = uint32(corData.Exp)
						}
					} else {
						for freqCount := 0; freqCount < DftNumber/2; freqCount++ {
							corOutput := corResult[corCount]
							mulAdd, mulSub := mixDftProducts(corOutput, dftFactor[freqCount], signCos[freqCount], signSin[freqCount])

							e.coherentBuffer[corCount][4+freqCount] = e.coherentBuffer[corCount][4+freqCount].AddComplexInt(mulAdd)
							e.coherentBuffer[corCount][3-freqCount] = e.coherentBuffer[corCount][3-freqCount].AddComplexInt(mulSub)

							if uint32(e.coherentBuffer[corCount][4+freqCount].Exp) > maxExp {
								maxExp = uint32(e.coherentBuffer[corCount][4+freqCount].Exp)
							}
							if uint32(e.coherentBuffer[corCount][3-freqCount].Exp) > maxExp {
								maxExp = uint32(e.coherentBuffer[corCount][3-freqCount].Exp)
							}
						}
					}
				}

				copy(e.acqSamples[:MfCoreDepth], e.acqSamples[MfCoreDepth:])
				e.loadSample()
				e.loadCode()
			}
			cohCount++
			e.dftNco += e.dftFreq
		}

		e.nonCoherentAcc(maxExp, noncohCount)
		if e.peakFound() && e.earlyTerminate {
			break
		}
	}
}

// segmentBias returns the three-segment-mode DC bias added to every
// matched-filter output before coherent accumulation (full-length mode
// uses a single fixed bias instead).
func segmentBias(segmentCount int) ComplexInt {
	if FullLength {
		return ComplexInt{512, 512}
	}
	if segmentCount == 2 {
		return ComplexInt{192, 192}
	}
	return ComplexInt{160, 160}
}

// dftFactors returns the DFT_NUMBER/2 positive-frequency twiddle factors
// and their quadrant sign flips for the current DFT NCO phase.
func dftFactors(dftNco uint32) (factors [DftNumber / 2]ComplexInt, signCos, signSin [DftNumber / 2]bool) {
	for i := 0; i < DftNumber/2; i++ {
		factors[i], signCos[i], signSin[i] = DftFactor(dftNco, i)
	}
	return
}

// mixDftProducts multiplies corOutput by one DFT twiddle factor and folds
// it into the positive (mulAdd) and negative (mulSub) frequency-bin
// contributions, applying the drop-3-then-convergent-round-6 scaling the
// reference model uses on this path.
func mixDftProducts(corOutput, factor ComplexInt, signCos, signSin bool) (mulAdd, mulSub ComplexInt) {
	mulCos := corOutput.MulScalar(factor.Real)
	mulSin := corOutput.MulScalar(factor.Imag)

	mulCos.Real = convergentRoundShift(mulCos.Real>>3, 6)
	mulCos.Imag = convergentRoundShift(mulCos.Imag>>3, 6)
	mulSin.Real = convergentRoundShift(mulSin.Real>>3, 6)
	mulSin.Imag = convergentRoundShift(mulSin.Imag>>3, 6)

	cosReal, cosImag := mulCos.Real, mulCos.Imag
	if signCos {
		cosReal, cosImag = -cosReal, -cosImag
	}
	sinAddReal := -mulSin.Imag
	sinAddImag := mulSin.Real
	if signSin {
		sinAddReal = mulSin.Imag
		sinAddImag = -mulSin.Real
	}

	mulAdd = ComplexInt{Real: cosReal + sinAddReal, Imag: cosImag + sinAddImag}
	mulSub = ComplexInt{Real: cosReal - sinAddReal, Imag: cosImag - sinAddImag}
	return mulAdd, mulSub
}
