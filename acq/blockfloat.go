/*------------------------------------------------------------------------------
* blockfloat.go : block-float complex arithmetic (C1)
*
*          Copyright (C) 2024-2025 by gnssacq contributors, All rights reserved.
*
* notes : (real, imag, exp) tuple with real/imag kept within [-512,511] (10
*         bits signed). After every mutation, if either half would exceed
*         that range the exponent is incremented and both halves are
*         arithmetic-right-shifted by one -- no rounding on renormalize,
*         truncation toward -inf.
*-----------------------------------------------------------------------------*/
package acq

import "math/bits"

// BlockFloat is a shared-exponent fixed-point complex cell.
type BlockFloat struct {
	Real, Imag int32
	Exp        int
}

// clz32 returns count-leading-zeros of a non-negative 32-bit value, treating
// it as a 32-bit field (matches the __builtin_clz semantics the reference
// model applies to either the value or its bitwise complement).
func clz32(v uint32) int {
	return bits.LeadingZeros32(v)
}

// NewBlockFloat constructs a block-float cell from a wide complex integer.
// For each half it takes 23 minus the count-leading-zeros of the value (or of
// its complement if negative), i.e. the bit width beyond the 9 magnitude bits
// a 10-bit signed half holds; exp is the larger of the two clamped to >= 0,
// and both halves are right-shifted by exp.
func NewBlockFloat(v ComplexInt) BlockFloat {
	widthOf := func(x int32) int {
		if x >= 0 {
			return 23 - clz32(uint32(x))
		}
		return 23 - clz32(uint32(^x))
	}
	realExp := widthOf(v.Real)
	imagExp := widthOf(v.Imag)
	exp := realExp
	if imagExp > exp {
		exp = imagExp
	}
	if exp <= 0 {
		return BlockFloat{Real: v.Real, Imag: v.Imag, Exp: 0}
	}
	return BlockFloat{Real: v.Real >> uint(exp), Imag: v.Imag >> uint(exp), Exp: exp}
}

// renormalize enforces the 10-bit signed range invariant after a mutation.
func (b *BlockFloat) renormalize() {
	if b.Real > 511 || b.Imag > 511 || b.Real < -512 || b.Imag < -512 {
		b.Exp++
		b.Real >>= 1
		b.Imag >>= 1
	}
}

// alignShift arithmetic-right-shifts (real, imag) from exponent fromExp to the
// wider exponent toExp, returning the pair unchanged when toExp is not larger.
func alignShift(real, imag int32, fromExp, toExp int) (int32, int32) {
	shift := toExp - fromExp
	if shift <= 0 {
		return real, imag
	}
	return real >> uint(shift), imag >> uint(shift)
}

// Add returns b+v as a new block-float cell, matching complex_exp10::operator+=.
func (b BlockFloat) Add(v BlockFloat) BlockFloat {
	r := b
	r.addAssign(v)
	return r
}

func (b *BlockFloat) addAssign(v BlockFloat) {
	var exp int
	var selfReal, selfImag, otherReal, otherImag int32
	if v.Exp > b.Exp {
		selfReal, selfImag = alignShift(b.Real, b.Imag, b.Exp, v.Exp)
		otherReal, otherImag = v.Real, v.Imag
		exp = v.Exp
	} else {
		selfReal, selfImag = b.Real, b.Imag
		otherReal, otherImag = alignShift(v.Real, v.Imag, v.Exp, b.Exp)
		exp = b.Exp
	}
	b.Real = selfReal + otherReal
	b.Imag = selfImag + otherImag
	b.Exp = exp
	b.renormalize()
}

// AddComplexInt adds a wide complex integer to b, matching
// complex_exp10::operator+=(complex_int): the addend is first widened
// through the same constructor NewBlockFloat uses (bit-width based exp),
// then added with the usual exponent-alignment rule.
func (b BlockFloat) AddComplexInt(v ComplexInt) BlockFloat {
	return b.Add(NewBlockFloat(v))
}

// Sub returns b-v, matching complex_exp10::operator-=.
func (b BlockFloat) Sub(v BlockFloat) BlockFloat {
	r := b
	r.subAssign(v)
	return r
}

func (b *BlockFloat) subAssign(v BlockFloat) {
	var exp int
	var selfReal, selfImag, otherReal, otherImag int32
	if v.Exp > b.Exp {
		selfReal, selfImag = alignShift(b.Real, b.Imag, b.Exp, v.Exp)
		otherReal, otherImag = v.Real, v.Imag
		exp = v.Exp
	} else {
		selfReal, selfImag = b.Real, b.Imag
		otherReal, otherImag = alignShift(v.Real, v.Imag, v.Exp, b.Exp)
		exp = b.Exp
	}
	b.Real = selfReal - otherReal
	b.Imag = selfImag - otherImag
	b.Exp = exp
	b.renormalize()
}
