package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferControlBit0x100StartsFillAndBit0x200ResetsRateAdaptor(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()
	e.rateAdaptor.CarrierFreq = 42

	e.SetRegValue(AddrOffsetAeBufferControl, 0x200)
	assert.Equal(t, uint32(0), e.rateAdaptor.CarrierFreq, "bit 0x200 must reset the rate adaptor")
	assert.False(t, e.buffer.Filling())

	e.SetRegValue(AddrOffsetAeBufferControl, 0x100)
	assert.True(t, e.buffer.Filling(), "bit 0x100 must start the buffer fill")
}

func TestChannelConfigRegisterRoundTrip(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()

	var word0 uint32
	setBitU(&word0, 0, 6, 21)
	setBitU(&word0, 8, 6, 4)
	setBitU(&word0, 16, 7, 2)
	setBitU(&word0, 24, 3, 3)
	setBitU(&word0, 27, 1, 1)

	base := AddrOffsetChannelBase
	e.SetRegValue(uint32(base), word0)
	e.SetRegValue(uint32(base+4), 0x0c000000) // Svid=12, PrnSelect=0
	e.SetRegValue(uint32(base+8), 0x00100103) // CodeSpan=3, ReadAddress=1

	cfg := e.ChannelConfig(0)
	require.Equal(t, uint32(21), cfg.StrideNumber)
	assert.Equal(t, uint32(4), cfg.CoherentNumber)
	assert.Equal(t, uint32(2), cfg.NonCoherentNumber)
	assert.Equal(t, uint32(3), cfg.PeakRatioTh)
	assert.True(t, cfg.EarlyTerminate)
	assert.Equal(t, uint32(12), cfg.Svid)
	assert.Equal(t, uint32(3), cfg.CodeSpan)
	assert.Equal(t, uint32(1), cfg.ReadAddress)

	assert.Equal(t, word0, e.GetRegValue(uint32(base)))
}

func TestAeControlDecodesChannelNumberWithBit0x100Set(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()

	var word uint32
	setBitU(&word, 0, 6, 0) // ChannelNumber=0, so DoAcquisition runs as a no-op
	word |= 0x100
	e.SetRegValue(AddrOffsetAeControl, word)
	assert.Equal(t, uint32(0), e.channelNumber)
}
