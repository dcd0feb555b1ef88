package reedsolomon

// gfPoly is a polynomial over GF(256), coefficients ordered from
// highest-degree to lowest-degree. Instances are immutable.
type gfPoly struct {
	coefficients []int
}

func newGFPoly(coefficients []int) *gfPoly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			coefficients = []int{0}
		} else {
			trimmed := make([]int, len(coefficients)-firstNonZero)
			copy(trimmed, coefficients[firstNonZero:])
			coefficients = trimmed
		}
	}
	return &gfPoly{coefficients: coefficients}
}

func (p *gfPoly) degree() int  { return len(p.coefficients) - 1 }
func (p *gfPoly) isZero() bool { return p.coefficients[0] == 0 }

func (p *gfPoly) coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// add adds (equivalently, subtracts: GF(2^n) addition is XOR) another
// polynomial.
func (p *gfPoly) add(other *gfPoly) *gfPoly {
	if p.isZero() {
		return other
	}
	if other.isZero() {
		return p
	}

	small, large := p.coefficients, other.coefficients
	if len(small) > len(large) {
		small, large = large, small
	}

	sum := make([]int, len(large))
	diff := len(large) - len(small)
	copy(sum, large[:diff])
	for i := diff; i < len(large); i++ {
		sum[i] = small[i-diff] ^ large[i]
	}
	return newGFPoly(sum)
}

func (p *gfPoly) multiply(other *gfPoly) *gfPoly {
	if p.isZero() || other.isZero() {
		return newGFPoly([]int{0})
	}
	product := make([]int, len(p.coefficients)+len(other.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] ^= multiply(a, b)
		}
	}
	return newGFPoly(product)
}

func (p *gfPoly) multiplyByMonomial(degree, coefficient int) *gfPoly {
	if coefficient == 0 {
		return newGFPoly([]int{0})
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = multiply(c, coefficient)
	}
	return newGFPoly(product)
}

func buildMonomial(degree, coefficient int) *gfPoly {
	if coefficient == 0 {
		return newGFPoly([]int{0})
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGFPoly(coefficients)
}

// divide divides p by other, returning the quotient and remainder.
func (p *gfPoly) divide(other *gfPoly) (quotient, remainder *gfPoly) {
	quotient = newGFPoly([]int{0})
	remainder = p

	denomInverse := inverse(other.coefficient(other.degree()))

	for remainder.degree() >= other.degree() && !remainder.isZero() {
		degreeDiff := remainder.degree() - other.degree()
		scale := multiply(remainder.coefficient(remainder.degree()), denomInverse)
		quotient = quotient.add(buildMonomial(degreeDiff, scale))
		remainder = remainder.add(other.multiplyByMonomial(degreeDiff, scale))
	}
	return quotient, remainder
}
