package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleBufferWriteFillsAndReportsDone(t *testing.T) {
	b := NewSampleBuffer()
	b.StartFill()
	require.True(t, b.Filling())

	full := make([]int8, AeBufferSize)
	done := b.WriteSample(full)
	assert.True(t, done)
	assert.False(t, b.Filling())
	assert.Equal(t, uint32(AeBufferSize), b.WritePointer())
}

func TestSampleBufferWriteTruncatesAtEnd(t *testing.T) {
	b := NewSampleBuffer()
	b.StartFill()
	over := make([]int8, AeBufferSize+100)
	done := b.WriteSample(over)
	assert.True(t, done)
	assert.Equal(t, uint32(AeBufferSize), b.WritePointer())
}

func TestSampleBufferReadWrapsAtEnd(t *testing.T) {
	b := NewSampleBuffer()
	b.SetStartAddr(AeBufferSize - 1)
	first := b.ReadSample()
	second := b.ReadSample()
	assert.Equal(t, b.data[AeBufferSize-1], first)
	assert.Equal(t, b.data[0], second)
	assert.Equal(t, uint32(1), b.ReadPointer())
}

func TestRateAdaptorReset(t *testing.T) {
	r := RateAdaptor{CarrierFreq: 1, CodeRateAdjustRatio: 2, Threshold: 3}
	r.Reset()
	assert.Equal(t, RateAdaptor{}, r)
}
