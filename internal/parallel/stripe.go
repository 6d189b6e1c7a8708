// Package parallel splits a raster into column stripes and renders them on a
// pool of goroutines.
//
// Stripes never overlap, so workers write disjoint pixels and share no
// locks. Stripe boundaries do not influence the rendered values.
package parallel

// StripeWidth is the default number of columns per stripe.
const StripeWidth = 16

// Stripe is the half-open column range [Min, Max).
type Stripe struct {
	Min, Max int
}

// Width returns the number of columns in the stripe.
func (s Stripe) Width() int {
	return s.Max - s.Min
}

// Stripes splits width columns into consecutive stripes of size columns.
// The last stripe is narrower when width is not a multiple of size.
// A non-positive size falls back to StripeWidth.
func Stripes(width, size int) []Stripe {
	if width <= 0 {
		return nil
	}
	if size <= 0 {
		size = StripeWidth
	}

	out := make([]Stripe, 0, (width+size-1)/size)
	for x := 0; x < width; x += size {
		out = append(out, Stripe{Min: x, Max: min(x+size, width)})
	}
	return out
}
