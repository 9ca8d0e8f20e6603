/*------------------------------------------------------------------------------
* mixer.go : carrier mixer and code-sample loading (C3)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : each raw sample is carrier-mixed via the LUT in mixerlut.go, then
*         boxcar-averaged two-to-one against the previous mixed sample
*         (ReadSampleToBuffer) to form the correlator's working window.
*-----------------------------------------------------------------------------*/
package acq

// readSampleFromFifo pulls one raw sample off the ring buffer, mixes it
// against the current carrier NCO phase, and advances the NCO by
// CarrierFreq.
func (e *Engine) readSampleFromFifo() ComplexInt {
	sample := e.buffer.ReadSample()
	mixed := mixSample(int32(sample), e.carrierNco)
	e.carrierNco += uint32(e.carrierFreq)
	return mixed
}

// readSampleToBuffer forms one boxcar-averaged correlator input sample:
// the mean of the current and immediately preceding mixed samples.
func (e *Engine) readSampleToBuffer() ComplexInt {
	mixed := e.readSampleFromFifo()
	sum := e.lastInput.AddC(mixed)
	toBuffer := ComplexInt{Real: sum.Real >> 1, Imag: sum.Imag >> 1}
	e.lastInput = mixed
	return toBuffer
}

// preloadSample repositions the read cursor to the current code round's
// segment start and fills the full 2*MF_CORE_DEPTH correlator window.
func (e *Engine) preloadSample() {
	startAddr := e.readAddress*MfCoreDepth + e.codeRoundCount*MfCoreDepth
	e.buffer.SetStartAddr(startAddr)
	e.lastInput = e.readSampleFromFifo()
	for i := 0; i < 2*MfCoreDepth; i++ {
		e.acqSamples[i] = e.readSampleToBuffer()
	}
}

// loadSample refills the upper half of the correlator window after the
// lower half has been shifted down by one segment.
func (e *Engine) loadSample() {
	for i := MfCoreDepth; i < 2*MfCoreDepth; i++ {
		e.acqSamples[i] = e.readSampleToBuffer()
	}
}

// loadCode advances the selected PRN generator by ADDER_TREE_WIDTH chips,
// refilling the matched-filter's local replica.
func (e *Engine) loadCode() {
	gen := e.prnGen[e.prnSelect]
	for i := 0; i < AdderTreeWidth; i++ {
		e.acqCode[i] = gen.Chip()
		gen.Shift()
	}
}
