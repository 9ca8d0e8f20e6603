package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmplitudeAlphaMaxBetaMinEstimator(t *testing.T) {
	// max=100, min=10: max > min*3, so amp = max + min/8
	got := amplitude(BlockFloat{Real: 100, Imag: 10})
	assert.Equal(t, uint32(100+10/8), got)

	// max=100, min=60: max <= min*3, so amp = max - max/8 + min/2
	got2 := amplitude(BlockFloat{Real: 100, Imag: 60})
	assert.Equal(t, uint32(100-100/8+60/2), got2)
}

func TestAmplitudeHandlesOnesComplementNegatives(t *testing.T) {
	// ^(-50) in int32 two's complement terms is the one's-complement
	// magnitude the matched filter's own negation convention produces.
	neg := int32(^49) // Not()'s style negative encoding of magnitude 49
	got := amplitude(BlockFloat{Real: neg, Imag: 0})
	assert.Greater(t, got, uint32(0))
}

func TestNonCoherentAccRescalesOverflowIntoEightBits(t *testing.T) {
	e := NewEngine(nil)
	e.Reset()
	e.coherentNumber = 1
	e.nonCoherentNumber = 1
	e.codeRoundCount = 0
	e.strideCount = 1
	e.strideNumber = 1

	for i := 0; i < MfCoreDepth; i++ {
		for f := 0; f < DftNumber; f++ {
			e.coherentBuffer[i][f] = BlockFloat{Real: 511, Imag: 511, Exp: 20}
		}
	}

	e.nonCoherentAcc(20, 0)

	for i := 0; i < MfCoreDepth; i++ {
		for f := 0; f < DftNumber; f++ {
			assert.LessOrEqual(t, e.nonCoherentBuffer[i][f], uint8(255))
		}
	}
}
