/*------------------------------------------------------------------------------
* engine.go : acquisition engine top-level orchestration (C10, C11)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : Engine owns the sample buffer, the three PRN generator instances
*         (Weil is shared between PrnSelect 2 and 3, matching the reference
*         model's single CWeilPrn behind two selector slots), the per-
*         channel register blocks, and the transient per-search working set
*         (coherent/non-coherent accumulators, matched-filter scratch,
*         peak sorter). DoAcquisition walks every configured channel in
*         order and is synchronous: the model has no pipelining across
*         channels.
*-----------------------------------------------------------------------------*/
package acq

// Engine is the behavioral model of one acquisition engine instance.
type Engine struct {
	buffer      *SampleBuffer
	rateAdaptor RateAdaptor

	prnGen [4]PrnGenerator

	channels      [MaxChannels]ChannelConfig
	channelNumber uint32

	bufferThreshold uint32

	// per-search transient state, reset at the start of each channel search
	carrierNco uint32
	dftNco     uint32
	lastInput  ComplexInt

	acqSamples [2 * MfCoreDepth]ComplexInt
	acqCode    [AdderTreeWidth]uint8

	coherentBuffer    [MfCoreDepth][DftNumber]BlockFloat
	nonCoherentBuffer [MfCoreDepth][DftNumber]uint8
	noncohExp         uint32
	expIncPos         uint32

	peakSorter PeakSorter
	noiseFloor uint32
	success    bool

	// active channel config, decoded fresh for each channel by DoAcquisition
	strideNumber      uint32
	coherentNumber    uint32
	nonCoherentNumber uint32
	peakRatioTh       uint32
	earlyTerminate    bool
	centerFreq        int32
	svid              uint32
	prnSelect         uint32
	codeSpan          uint32
	readAddress       uint32
	dftFreq           uint32
	strideInterval    int32

	strideCount    int32
	strideOffset   int32
	codeRoundCount uint32
	carrierFreq    int32
}

// NewEngine constructs an idle engine. memoryCodeTable backs the Memory PRN
// generator (PrnSelect==1); pass nil if that variant is never used.
func NewEngine(memoryCodeTable []uint32) *Engine {
	e := &Engine{buffer: NewSampleBuffer()}
	weil := NewWeilPrn()
	e.prnGen[PrnSelectLfsr] = NewGeneralLfsr()
	e.prnGen[PrnSelectMemory] = NewMemoryPrn(memoryCodeTable)
	e.prnGen[PrnSelectB1C] = weil
	e.prnGen[PrnSelectL1C] = weil
	return e
}

// Reset restores power-on state: buffer pointers, rate adaptor, carrier/DFT
// NCOs and the default peak-ratio threshold.
func (e *Engine) Reset() {
	e.buffer.Reset()
	e.bufferThreshold = 0
	e.rateAdaptor.Reset()
	e.carrierNco = 0
	e.dftNco = 0
	e.lastInput = ComplexInt{}
	e.earlyTerminate = false
	e.peakRatioTh = 3
}

// ChannelConfig returns a copy of channel i's current register block
// (config fields plus the last search's results).
func (e *Engine) ChannelConfig(i uint32) ChannelConfig {
	return e.channels[i]
}

// SetChannelConfig installs channel i's config input fields ahead of
// the next DoAcquisition call.
func (e *Engine) SetChannelConfig(i uint32, cfg ChannelConfig) {
	old := e.channels[i]
	old.StrideNumber = cfg.StrideNumber
	old.CoherentNumber = cfg.CoherentNumber
	old.NonCoherentNumber = cfg.NonCoherentNumber
	old.PeakRatioTh = cfg.PeakRatioTh
	old.EarlyTerminate = cfg.EarlyTerminate
	old.CenterFreq = cfg.CenterFreq
	old.Svid = cfg.Svid
	old.PrnSelect = cfg.PrnSelect
	old.CodeSpan = cfg.CodeSpan
	old.ReadAddress = cfg.ReadAddress
	old.DftFreq = cfg.DftFreq
	old.StrideInterval = cfg.StrideInterval
	e.channels[i] = old
}

// WriteSample feeds raw samples into the ring buffer; see SampleBuffer.
func (e *Engine) WriteSample(sample []int8) bool {
	return e.buffer.WriteSample(sample)
}

// codeRoundNumber returns the number of MF_CORE_DEPTH-wide segments one
// CodeSpan covers, folding in three-segment mode.
func codeRoundNumber(codeSpan uint32) uint32 {
	if FullLength {
		return codeSpan / 3
	}
	return codeSpan
}

// DoAcquisition runs a synchronous search over every configured channel
// and writes results back into that channel's register block. A
// ChannelNumber of 0 is a documented no-op.
func (e *Engine) DoAcquisition() {
	for i := uint32(0); i < e.channelNumber; i++ {
		cfg := e.channels[i]

		e.strideNumber = cfg.StrideNumber
		e.coherentNumber = cfg.CoherentNumber
		e.nonCoherentNumber = cfg.NonCoherentNumber
		e.peakRatioTh = cfg.PeakRatioTh
		e.earlyTerminate = cfg.EarlyTerminate
		e.centerFreq = cfg.CenterFreq
		e.svid = cfg.Svid
		e.prnSelect = cfg.PrnSelect
		e.codeSpan = cfg.CodeSpan
		e.readAddress = cfg.ReadAddress
		e.dftFreq = cfg.DftFreq
		e.strideInterval = cfg.StrideInterval

		e.searchOneChannel()

		shift := int(e.peakSorter.Peaks[0].Exp) - int(e.noncohExp)
		if shift < 0 {
			shift = 0
		}
		noiseFloor := e.noiseFloor >> uint(shift)
		result := e.channels[i]
		result.Success = e.success
		result.NoiseFloor = noiseFloor & 0x7ffff
		result.Peaks = e.peakSorter.Peaks
		e.channels[i] = result
	}
}

// searchOneChannel sweeps the configured stride (Doppler) and code-phase
// search grid for the currently decoded channel, accumulating peaks into
// peakSorter.
func (e *Engine) searchOneChannel() {
	codeRounds := codeRoundNumber(e.codeSpan)
	e.success = false
	e.peakSorter.Clear()

	for e.strideCount = 1; e.strideCount <= int32(e.strideNumber); e.strideCount++ {
		e.strideOffset = strideOffsetFor(e.strideCount)
		e.carrierFreq = e.centerFreq + e.strideInterval*e.strideOffset

		for e.codeRoundCount = 0; e.codeRoundCount < codeRounds; e.codeRoundCount++ {
			e.initPrnGen()
			e.loadCode()
			e.doNonCoherentSum()

			if e.success && e.earlyTerminate {
				return
			}
		}
	}
}

// strideOffsetFor maps a 1-based stride count to the zig-zag Doppler bin
// offset the search visits: 0, +1, -1, +2, -2, ... so the center frequency
// is always searched first and the sweep fans out symmetrically.
func strideOffsetFor(strideCount int32) int32 {
	offset := strideCount >> 1
	if strideCount&1 != 0 {
		offset = ^offset
	}
	return offset + strideCount&1
}

// initPrnGen phase-inits the selected PRN generator for the current
// channel's SVID; Svid==0 forces a zero/sentinel init word.
func (e *Engine) initPrnGen() {
	if e.svid == 0 {
		e.prnGen[e.prnSelect].PhaseInit(0)
		return
	}
	switch e.prnSelect {
	case PrnSelectLfsr:
		word := uint32(0)
		if e.svid < 52 {
			word = GpsInit[e.svid-1]
		}
		e.prnGen[PrnSelectLfsr].PhaseInit(word)
	case PrnSelectMemory:
		e.prnGen[PrnSelectMemory].PhaseInit(((49 + e.svid) << 6) + 0xc0000004)
	case PrnSelectB1C:
		e.prnGen[PrnSelectB1C].PhaseInit(B1CInit[e.svid-1])
	case PrnSelectL1C:
		e.prnGen[PrnSelectL1C].PhaseInit(L1CInit[e.svid-1])
	}
}

// ProcessTimeMillis estimates, in whole milliseconds rounded up, the wall
// time a synchronous DoAcquisition call over the currently configured
// channels would take on the reference clock (100 MHz, 1 ms scheduling
// block): 682 * (2 + sum_i S_i*R_i*(1+6*C_i*N_i)) / (AeClkMHz*BlockLengthUs).
func (e *Engine) ProcessTimeMillis() int {
	totalCycles := 2
	for i := uint32(0); i < e.channelNumber; i++ {
		cfg := e.channels[i]
		totalCycles += int(cfg.StrideNumber) * int(cfg.CodeSpan) * (1 + 6*int(cfg.CoherentNumber)*int(cfg.NonCoherentNumber))
	}
	clkPerBlock := AeClkMHz * BlockLengthUs
	processTime := float64(MfCoreDepth) * float64(totalCycles) / float64(clkPerBlock)
	return int(processTime + 1) // round up, matches reference's (int)(x+1)
}
