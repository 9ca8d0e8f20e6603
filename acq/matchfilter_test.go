package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchFilterCoreAlignedReplicaMaximizesMagnitude(t *testing.T) {
	e := &Engine{}
	for i := range e.acqSamples {
		e.acqSamples[i] = ComplexInt{Real: 10, Imag: -10}
	}
	for i := range e.acqCode {
		e.acqCode[i] = 0 // every chip un-negated: every term adds the same sample
	}

	var out [1]ComplexInt
	e.matchFilterCore(1, out[:])

	// AdderTreeWidth samples summed with no negation: a fixed-amplitude
	// input should sum to exactly AdderTreeWidth*sample.
	assert.Equal(t, int32(AdderTreeWidth*10), out[0].Real)
	assert.Equal(t, int32(AdderTreeWidth*-10), out[0].Imag)
}

func TestMatchFilterCoreNegatesViaOnesComplement(t *testing.T) {
	e := &Engine{}
	for i := range e.acqSamples {
		e.acqSamples[i] = ComplexInt{Real: 5, Imag: 5}
	}
	e.acqCode[0] = 1 // negates only the first correlated sample

	var out [1]ComplexInt
	e.matchFilterCore(1, out[:])

	want := ComplexInt{Real: 5, Imag: 5}.Not().AddC(ComplexInt{Real: 5, Imag: 5}.MulScalar(int32(AdderTreeWidth - 1)))
	assert.Equal(t, want, out[0])
}
