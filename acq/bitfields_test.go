package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBitURoundTripsWithSetBitU(t *testing.T) {
	var w uint32
	setBitU(&w, 8, 6, 0x2a)
	assert.Equal(t, uint32(0x2a), getBitU(w, 8, 6))
}

func TestGetBitsSignExtends(t *testing.T) {
	var w uint32
	setBits(&w, 0, 22, -5)
	assert.Equal(t, int32(-5), getBits(w, 0, 22))
}

func TestSetBitUDoesNotDisturbOtherFields(t *testing.T) {
	var w uint32
	setBitU(&w, 0, 6, 0x3f)
	setBitU(&w, 8, 6, 0x15)
	assert.Equal(t, uint32(0x3f), getBitU(w, 0, 6))
	assert.Equal(t, uint32(0x15), getBitU(w, 8, 6))
}
