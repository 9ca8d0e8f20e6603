/*------------------------------------------------------------------------------
* peaksort.go : fixed 3-slot peak sorter (C9)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : InsertValue's exact normalization rule is not preserved in the
*         retained reference excerpt; this implementation follows the
*         invariant the behavioral contract does specify -- candidates are
*         compared after aligning to a common exponent (the largest among
*         the candidate and the kept slots), and the top 3 by normalized
*         amplitude are kept in
*         descending order.
*-----------------------------------------------------------------------------*/
package acq

// PeakSorter keeps the top 3 (amplitude, exponent) candidates seen during
// one channel search, ordered Peaks[0] >= Peaks[1] >= Peaks[2] after
// normalizing every candidate to a common exponent.
type PeakSorter struct {
	Peaks [3]PeakRecord
}

// Clear resets all three slots to zero ahead of a new channel search.
func (s *PeakSorter) Clear() {
	s.Peaks = [3]PeakRecord{}
}

// normalizedAmp rescales amp from its own exponent exp up to toExp (InsertValue
// passes the largest exponent of the candidate and the kept slots), matching
// the one's-sided
// shift-to-common-exponent the rest of the pipeline uses.
func normalizedAmp(amp uint32, exp, toExp uint8) uint32 {
	if toExp <= exp {
		return amp
	}
	return amp >> uint(toExp-exp)
}

// InsertValue offers one candidate peak; if it beats the weakest kept
// slot once both are normalized to a common exponent, it is inserted and
// the table re-sorted, keeping the 3 highest normalized amplitudes.
func (s *PeakSorter) InsertValue(peak PeakRecord) {
	maxExp := peak.Exp
	for _, p := range s.Peaks {
		if p.Exp > maxExp {
			maxExp = p.Exp
		}
	}

	candidates := make([]PeakRecord, 0, 4)
	candidates = append(candidates, peak)
	candidates = append(candidates, s.Peaks[:]...)

	type scored struct {
		rec PeakRecord
		amp uint32
	}
	scoredList := make([]scored, len(candidates))
	for i, c := range candidates {
		scoredList[i] = scored{rec: c, amp: normalizedAmp(uint32(c.Amp), c.Exp, maxExp)}
	}

	for i := 1; i < len(scoredList); i++ {
		cur := scoredList[i]
		j := i - 1
		for j >= 0 && scoredList[j].amp < cur.amp {
			scoredList[j+1] = scoredList[j]
			j--
		}
		scoredList[j+1] = cur
	}

	for i := 0; i < 3; i++ {
		rec := scoredList[i].rec
		rec.Exp = maxExp
		rec.Amp = uint8(scoredList[i].amp)
		s.Peaks[i] = rec
	}
}

// peakFound reports whether the strongest kept peak clears a threshold
// derived from the third-ranked ("noise") peak and the channel's
// PeakRatioTh bitmask (bit0 adds 1/8, bit1 adds 1/4, bit2 adds 1/2 of the
// noise peak's amplitude on top of a fixed 1/8+1 margin).
func (e *Engine) peakFound() bool {
	noise := uint32(e.peakSorter.Peaks[2].Amp)
	threshold := noise + (noise >> 3) + 1
	if e.peakRatioTh&1 != 0 {
		threshold += noise >> 3
	}
	if e.peakRatioTh&2 != 0 {
		threshold += noise >> 2
	}
	if e.peakRatioTh&4 != 0 {
		threshold += noise >> 1
	}
	e.success = uint32(e.peakSorter.Peaks[0].Amp) >= threshold
	return e.success
}

// insertPeak builds one PeakRecord from a non-coherent accumulation round
// and offers it to the peak sorter.
func (e *Engine) insertPeak(amp uint32, exp uint32, partialCorPos int, partialFreq int) {
	rec := PeakRecord{
		Amp:      uint8(amp),
		Exp:      uint8(exp),
		PhasePos: uint16(e.codeRoundCount*MfCoreDepth + uint32(partialCorPos)),
		FreqPos:  uint16(e.strideOffset<<3 + int32(partialFreq)),
	}
	e.peakSorter.InsertValue(rec)
}
