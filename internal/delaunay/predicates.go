package delaunay

import (
	"math"
	"math/big"
)

// Error bounds for the floating point filters, after Shewchuk's
// "Adaptive Precision Floating-Point Arithmetic and Fast Robust Geometric
// Predicates".
var (
	epsilon     = math.Ldexp(1, -53)
	ccwErrBound = (3 + 16*epsilon) * epsilon
	iccErrBound = (10 + 96*epsilon) * epsilon
)

// orient returns +1 if a, b, c turn counter-clockwise, -1 if clockwise and 0
// if they are collinear.
func orient(a, b, c Vertex) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight

	errBound := ccwErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > errBound {
		return 1
	}
	if -det > errBound {
		return -1
	}
	return orientExact(a, b, c)
}

func orientExact(a, b, c Vertex) int {
	acx := sub(a.X, c.X)
	acy := sub(a.Y, c.Y)
	bcx := sub(b.X, c.X)
	bcy := sub(b.Y, c.Y)

	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	return left.Cmp(right)
}

// inCircle returns +1 if d lies inside the circle through a, b, c, -1 if it
// lies outside and 0 if the four points are cocircular. a, b, c must be
// counter-clockwise.
func inCircle(a, b, c, d Vertex) int {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift

	errBound := iccErrBound * permanent
	if det > errBound {
		return 1
	}
	if -det > errBound {
		return -1
	}
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d Vertex) int {
	adx, ady := sub(a.X, d.X), sub(a.Y, d.Y)
	bdx, bdy := sub(b.X, d.X), sub(b.Y, d.Y)
	cdx, cdy := sub(c.X, d.X), sub(c.Y, d.Y)

	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	bc := new(big.Rat).Sub(mul(bdx, cdy), mul(cdx, bdy))
	ca := new(big.Rat).Sub(mul(cdx, ady), mul(adx, cdy))
	ab := new(big.Rat).Sub(mul(adx, bdy), mul(bdx, ady))

	det := add(add(mul(alift, bc), mul(blift, ca)), mul(clift, ab))
	return det.Sign()
}

// sub returns x - y exactly. Both arguments must be finite.
func sub(x, y float64) *big.Rat {
	rx := new(big.Rat).SetFloat64(x)
	ry := new(big.Rat).SetFloat64(y)
	return rx.Sub(rx, ry)
}

func mul(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Mul(x, y)
}

func add(x, y *big.Rat) *big.Rat {
	return new(big.Rat).Add(x, y)
}

// between reports whether q lies strictly inside the segment u-v. The three
// points must be collinear and q must differ from u and v.
func between(u, v, q Vertex) bool {
	if u.X != v.X {
		return (u.X < q.X && q.X < v.X) || (v.X < q.X && q.X < u.X)
	}
	return (u.Y < q.Y && q.Y < v.Y) || (v.Y < q.Y && q.Y < u.Y)
}
