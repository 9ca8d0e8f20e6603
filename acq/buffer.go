/*------------------------------------------------------------------------------
* buffer.go : sample ring buffer and rate adaptor (C4, C5)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : AEBuffer is a flat byte ring the host fills with raw 4-bit signed
*         I/Q nibbles (packed one sample per byte, low nibble used) and the
*         engine drains at its own pace through ReadSample/WriteSample. The
*         rate adaptor tracks the external carrier/code-rate registers the
*         mixer consumes; it carries no sample-rate-conversion logic of its
*         own in this model (RateAdaptor.CarrierFreq is surfaced through
*         AE_CARRIER_FREQ for host readback only -- the per-channel carrier
*         NCO used during search is configured independently per channel).
*-----------------------------------------------------------------------------*/
package acq

// RateAdaptor mirrors the AE_CARRIER_FREQ / AE_CODE_RATIO / AE_THRESHOLD
// register group: host-visible state describing the external front end's
// sample-rate-conversion parameters.
type RateAdaptor struct {
	CarrierFreq         uint32
	CodeRateAdjustRatio uint32
	Threshold           uint32
}

// Reset clears the rate adaptor back to its power-on state.
func (r *RateAdaptor) Reset() {
	*r = RateAdaptor{}
}

// SampleBuffer is the AE's fixed-size ring of raw input samples.
type SampleBuffer struct {
	data         []int8
	readPointer  uint32
	writePointer uint32
	filling      bool
}

// NewSampleBuffer allocates a ring of AeBufferSize bytes.
func NewSampleBuffer() *SampleBuffer {
	return &SampleBuffer{data: make([]int8, AeBufferSize)}
}

// Reset empties the buffer and clears the filling flag.
func (b *SampleBuffer) Reset() {
	b.readPointer = 0
	b.writePointer = 0
	b.filling = false
}

// Filling reports whether the last StartFill or WriteSample left the buffer
// short of completely written; Reset and a completed fill clear it.
func (b *SampleBuffer) Filling() bool { return b.filling }

// WritePointer and ReadPointer expose the raw cursor positions for the
// register status bits (AE_STATUS) and the buffer-bounds invariant.
func (b *SampleBuffer) WritePointer() uint32 { return b.writePointer }
func (b *SampleBuffer) ReadPointer() uint32  { return b.readPointer }

// StartFill begins accepting samples from position 0.
func (b *SampleBuffer) StartFill() {
	b.writePointer = 0
	b.filling = true
}

// ReadSample returns the next raw sample, wrapping ReadPointer to 0 past
// the end of the buffer (silent boundary condition, never an error).
func (b *SampleBuffer) ReadSample() int8 {
	if b.readPointer >= AeBufferSize {
		b.readPointer = 0
	}
	v := b.data[b.readPointer]
	b.readPointer++
	return v
}

// WriteSample appends up to len(sample) bytes starting at WritePointer,
// truncating silently at the buffer end and clearing Filling once full.
// Returns true once the buffer has been completely filled.
func (b *SampleBuffer) WriteSample(sample []int8) bool {
	i := 0
	for i < len(sample) && b.writePointer < AeBufferSize {
		b.data[b.writePointer] = sample[i]
		b.writePointer++
		i++
	}
	b.filling = b.writePointer < AeBufferSize
	return !b.filling
}

// SetStartAddr repositions ReadPointer to a fresh segment start, matching
// the reference's StartAddr = ReadAddress*682 + CodeRoundCount*MF_CORE_DEPTH.
func (b *SampleBuffer) SetStartAddr(addr uint32) {
	b.readPointer = addr
}
