/*------------------------------------------------------------------------------
* register.go : memory-mapped register facade (C11)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : mirrors a host bus interface onto the engine: a handful of
*         control/status words plus a bank of per-channel 8-word blocks.
*         SetRegValue/GetRegValue dispatch on a byte address the same way
*         the reference model's switch on (Address & 0xff) does; per-
*         channel addresses are routed by word offset within a 32-word
*         channel stride.
*-----------------------------------------------------------------------------*/
package acq

// Register byte-address offsets for the top-level control block.
const (
	AddrOffsetAeControl       = 0x00
	AddrOffsetAeBufferControl = 0x04
	AddrOffsetAeStatus        = 0x08
	AddrOffsetAeCarrierFreq   = 0x0c
	AddrOffsetAeCodeRatio     = 0x10
	AddrOffsetAeThreshold     = 0x14
	AddrOffsetChannelBase     = 0x1000 // per-channel blocks start here
	channelConfigWriteWords   = 4      // words 0-3 are the writable config
)

// SetRegValue performs one 32-bit register write. Addresses below
// AddrOffsetChannelBase hit the top-level control block; addresses at or
// above it are routed to a per-channel config word by (addr-base)/4 within
// a ChannelStride-word block.
func (e *Engine) SetRegValue(addr uint32, value uint32) {
	if addr >= AddrOffsetChannelBase {
		e.setChannelRegValue(addr-AddrOffsetChannelBase, value)
		return
	}
	switch addr & 0xff {
	case AddrOffsetAeControl:
		e.channelNumber = getBitU(value, 0, 6)
		if value&0x100 != 0 {
			e.DoAcquisition()
		}
	case AddrOffsetAeBufferControl:
		e.bufferThreshold = getBitU(value, 0, 7)
		if value&0x200 != 0 {
			e.rateAdaptor.Reset()
		}
		if value&0x100 != 0 {
			e.buffer.StartFill()
		}
	case AddrOffsetAeCarrierFreq:
		e.rateAdaptor.CarrierFreq = value
	case AddrOffsetAeCodeRatio:
		e.rateAdaptor.CodeRateAdjustRatio = getBitU(value, 0, 24)
	case AddrOffsetAeThreshold:
		e.rateAdaptor.Threshold = getBitU(value, 0, 8)
	}
}

// GetRegValue performs one 32-bit register read.
func (e *Engine) GetRegValue(addr uint32) uint32 {
	if addr >= AddrOffsetChannelBase {
		return e.getChannelRegValue(addr - AddrOffsetChannelBase)
	}
	switch addr & 0xff {
	case AddrOffsetAeControl:
		return e.channelNumber
	case AddrOffsetAeBufferControl:
		return e.bufferThreshold
	case AddrOffsetAeStatus:
		var status uint32 = 0x80000
		if e.buffer.Filling() {
			status |= 0x10000
		}
		if (e.buffer.WritePointer() >> 11) >= e.bufferThreshold {
			status |= 0x20000
		}
		if e.buffer.WritePointer() >= AeBufferSize {
			status |= 0x40000
		}
		return status
	case AddrOffsetAeCarrierFreq:
		return e.rateAdaptor.CarrierFreq
	case AddrOffsetAeCodeRatio:
		return e.rateAdaptor.CodeRateAdjustRatio
	case AddrOffsetAeThreshold:
		return e.rateAdaptor.Threshold
	}
	return 0
}

// setChannelRegValue writes one word of a channel's config block: word
// index = (offset/4) % ChannelStride selects the field, offset/(4*ChannelStride)
// selects the channel.
func (e *Engine) setChannelRegValue(offset uint32, value uint32) {
	channel := offset / (4 * ChannelStride)
	word := (offset / 4) % ChannelStride
	if channel >= MaxChannels || word >= channelConfigWriteWords {
		return
	}
	cfg := e.channels[channel]
	switch word {
	case 0:
		cfg.StrideNumber = getBitU(value, 0, 6)
		cfg.CoherentNumber = getBitU(value, 8, 6)
		cfg.NonCoherentNumber = getBitU(value, 16, 7)
		cfg.PeakRatioTh = getBitU(value, 24, 3)
		cfg.EarlyTerminate = getBitU(value, 27, 1) != 0
	case 1:
		cfg.CenterFreq = getBits(value, 0, 20) << 12
		cfg.Svid = getBitU(value, 24, 6)
		cfg.PrnSelect = getBitU(value, 30, 2)
	case 2:
		cfg.CodeSpan = getBitU(value, 0, 5)
		cfg.ReadAddress = getBitU(value, 8, 5)
		cfg.DftFreq = getBitU(value, 20, 11)
	case 3:
		cfg.StrideInterval = getBits(value, 0, 22)
	}
	e.channels[channel] = cfg
}

// getChannelRegValue reads one word of a channel's block, including the
// overwritten result words 4-7.
func (e *Engine) getChannelRegValue(offset uint32) uint32 {
	channel := offset / (4 * ChannelStride)
	word := (offset / 4) % ChannelStride
	if channel >= MaxChannels {
		return 0
	}
	cfg := e.channels[channel]
	switch word {
	case 0:
		var v uint32
		setBitU(&v, 0, 6, cfg.StrideNumber)
		setBitU(&v, 8, 6, cfg.CoherentNumber)
		setBitU(&v, 16, 7, cfg.NonCoherentNumber)
		setBitU(&v, 24, 3, cfg.PeakRatioTh)
		if cfg.EarlyTerminate {
			setBitU(&v, 27, 1, 1)
		}
		return v
	case 1:
		var v uint32
		setBits(&v, 0, 20, cfg.CenterFreq>>12)
		setBitU(&v, 24, 6, cfg.Svid)
		setBitU(&v, 30, 2, cfg.PrnSelect)
		return v
	case 2:
		var v uint32
		setBitU(&v, 0, 5, cfg.CodeSpan)
		setBitU(&v, 8, 5, cfg.ReadAddress)
		setBitU(&v, 20, 11, cfg.DftFreq)
		return v
	case 3:
		var v uint32
		setBits(&v, 0, 22, cfg.StrideInterval)
		return v
	case 4:
		var v uint32
		if cfg.Success {
			v |= 1 << 31
		}
		setBitU(&v, 24, 7, uint32(cfg.Peaks[0].Exp))
		setBitU(&v, 0, 19, cfg.NoiseFloor)
		return v
	case 5, 6, 7:
		p := cfg.Peaks[word-5]
		var v uint32
		setBitU(&v, 24, 8, uint32(p.Amp))
		setBitU(&v, 15, 9, uint32(p.FreqPos))
		setBitU(&v, 0, 15, uint32(p.PhasePos))
		return v
	}
	return 0
}
