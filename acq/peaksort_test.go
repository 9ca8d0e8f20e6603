package acq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeakSorterKeepsTopThreeDescending(t *testing.T) {
	var s PeakSorter
	s.Clear()
	amps := []uint8{10, 90, 30, 5, 200, 60}
	for _, a := range amps {
		s.InsertValue(PeakRecord{Amp: a, Exp: 0})
	}
	assert.Equal(t, uint8(200), s.Peaks[0].Amp)
	assert.Equal(t, uint8(90), s.Peaks[1].Amp)
	assert.Equal(t, uint8(60), s.Peaks[2].Amp)
}

func TestPeakSorterNormalizesAcrossExponents(t *testing.T) {
	var s PeakSorter
	s.Clear()
	// amp=255 at exp=0 (raw value 255) vs amp=10 at exp=8 (raw value 2560):
	// the higher-exponent candidate must win once normalized.
	s.InsertValue(PeakRecord{Amp: 255, Exp: 0})
	s.InsertValue(PeakRecord{Amp: 10, Exp: 8})
	assert.Equal(t, uint8(8), s.Peaks[0].Exp)
	assert.Equal(t, uint8(10), s.Peaks[0].Amp)
}

func TestPeakSorterClearResetsAllSlots(t *testing.T) {
	var s PeakSorter
	s.InsertValue(PeakRecord{Amp: 100})
	s.Clear()
	assert.Equal(t, [3]PeakRecord{}, s.Peaks)
}
