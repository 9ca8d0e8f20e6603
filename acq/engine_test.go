package acq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrideOffsetSequenceIsZigZagFromCenter(t *testing.T) {
	want := []int32{0, 1, -1, 2, -2}
	for i, w := range want {
		got := strideOffsetFor(int32(i + 1))
		assert.Equal(t, w, got, "stride count %d", i+1)
	}
}

func TestDoAcquisitionWithZeroChannelsIsNoOp(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()
	before := e.channels
	e.DoAcquisition()
	assert.Equal(t, before, e.channels, "a ChannelNumber of 0 must leave every result word untouched")
}

func TestProcessTimeMillisMatchesSchedulerFormula(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()
	e.SetChannelConfig(0, ChannelConfig{
		StrideNumber:      4,
		CoherentNumber:    2,
		NonCoherentNumber: 10,
		CodeSpan:          3,
	})
	e.channelNumber = 1

	got := e.ProcessTimeMillis()
	want := int(math.Ceil(682.0 * 1454.0 / 100000.0))
	require.Equal(t, want, got)
}

func TestProcessTimeMillisGrowsWithMoreChannels(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()
	e.SetChannelConfig(0, ChannelConfig{StrideNumber: 4, CoherentNumber: 2, NonCoherentNumber: 10, CodeSpan: 3})
	e.SetChannelConfig(1, ChannelConfig{StrideNumber: 4, CoherentNumber: 2, NonCoherentNumber: 10, CodeSpan: 3})
	e.channelNumber = 2

	oneChannel := NewEngine(nil)
	oneChannel.Reset()
	oneChannel.SetChannelConfig(0, ChannelConfig{StrideNumber: 4, CoherentNumber: 2, NonCoherentNumber: 10, CodeSpan: 3})
	oneChannel.channelNumber = 1

	assert.Greater(t, e.ProcessTimeMillis(), oneChannel.ProcessTimeMillis())
}

func TestNoSignalBufferYieldsNoSuccess(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()
	e.SetChannelConfig(0, ChannelConfig{
		StrideNumber:      1,
		CoherentNumber:    1,
		NonCoherentNumber: 1,
		CodeSpan:          1,
		Svid:              1,
		PrnSelect:         PrnSelectLfsr,
		PeakRatioTh:       3,
		EarlyTerminate:    true,
	})
	e.channelNumber = 1

	// buffer left at its zeroed power-on state: a flat signal can never
	// clear the noise-relative peak threshold.
	e.DoAcquisition()

	result := e.ChannelConfig(0)
	assert.False(t, result.Success)
}
