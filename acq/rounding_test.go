package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvergentRoundShiftHalfToEven(t *testing.T) {
	// n=2: half = 2, mask = 3. x=2 -> rem=2==half, q=0, even -> stays 0.
	assert.Equal(t, int32(0), convergentRoundShift(2, 2))
	// x=6 -> q=1, rem=2==half, q odd -> rounds up to 2.
	assert.Equal(t, int32(2), convergentRoundShift(6, 2))
	// x=7 -> rem=3>half -> rounds up.
	assert.Equal(t, int32(2), convergentRoundShift(7, 2))
	// x=5 -> rem=1<half -> truncates.
	assert.Equal(t, int32(1), convergentRoundShift(5, 2))
}

func TestConvergentRoundShiftZeroShiftIsIdentity(t *testing.T) {
	assert.Equal(t, int32(-17), convergentRoundShift(-17, 0))
}

func TestRoundShiftRawHalfUp(t *testing.T) {
	assert.Equal(t, int32(1), roundShiftRaw(2, 2)) // (2+2)>>2 = 1
	assert.Equal(t, int32(2), roundShiftRaw(6, 2)) // (6+2)>>2 = 2
	assert.Equal(t, int32(-17), roundShiftRaw(-17, 0))
}
