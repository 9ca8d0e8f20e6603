package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDftTableQuarterWaveSymmetry(t *testing.T) {
	assert.Equal(t, int32(0), dftTable[0])
	assert.Equal(t, int32(511), dftTable[64])
	for i := 1; i < 64; i++ {
		assert.Equal(t, dftTable[i], dftTable[128-i], "dft_table must be mirror-symmetric about index 64")
	}
}

func TestMixSampleZeroSampleReadsTableRowZero(t *testing.T) {
	out := mixSample(0, 0)
	assert.Equal(t, ComplexInt{Real: complexMulI[0][0], Imag: complexMulQ[0][0]}, out)
}

func TestMixSampleUsesTopSixNcoBits(t *testing.T) {
	// two phases that share the same top 6 bits must mix identically.
	a := mixSample(5, 0x04000000)
	b := mixSample(5, 0x04000001)
	assert.Equal(t, a, b)
}

func TestDftFactorFirstBinAtZeroNcoIsUnitReal(t *testing.T) {
	factor, _, _ := DftFactor(0, 0)
	assert.Equal(t, int32(0), factor.Imag)
	assert.Equal(t, int32(511), factor.Real)
}
