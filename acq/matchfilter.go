/*------------------------------------------------------------------------------
* matchfilter.go : matched-filter correlator core (C6)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : no multipliers -- correlation against a ±1 chip is realized as a
*         conditional bitwise NOT (one's-complement negation, off by one
*         from true two's-complement negation) followed by addition. This
*         must stay exact: using -x here drifts the final sum by one per
*         correlated chip.
*-----------------------------------------------------------------------------*/
package acq

// matchFilterCore computes phaseCount correlator outputs, each the sum of
// ADDER_TREE_WIDTH (MF_CORE_DEPTH/2) conditionally-negated samples drawn
// two apart starting at acqSamples[phase].
func (e *Engine) matchFilterCore(phaseCount int, corResult []ComplexInt) {
	for i := 0; i < phaseCount; i++ {
		sum := ComplexInt{}
		for j := 0; j < MfCoreDepth; j += 2 {
			sample := e.acqSamples[i+j]
			if e.acqCode[j/2] != 0 {
				sum = sum.AddC(sample.Not())
			} else {
				sum = sum.AddC(sample)
			}
		}
		corResult[i] = sum
	}
}
