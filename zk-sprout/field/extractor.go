// Package field slices fixed-layout byte buffers into sub-ranges.
package field

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("range out of buffer")

type Range struct {
	Start int
	Len   int
}

func (r Range) End() int {
	return r.Start + r.Len
}

// Sequential returns count back-to-back ranges of the same width starting at 0.
func Sequential(width, count int) []Range {
	ret := make([]Range, count)
	for i := range ret {
		ret[i] = Range{Start: i * width, Len: width}
	}
	return ret
}

// Extract returns the sub-slices of buf for ranges, in order.
// The returned slices alias buf.
func Extract(buf []byte, ranges ...Range) ([][]byte, error) {
	ret := make([][]byte, len(ranges))
	for i, r := range ranges {
		if r.Start < 0 || r.Len < 0 || r.End() > len(buf) {
			return nil, fmt.Errorf("%w: [%d:%d] of %d bytes", ErrOutOfRange, r.Start, r.End(), len(buf))
		}
		ret[i] = buf[r.Start:r.End():r.End()]
	}
	return ret, nil
}

// Concat copies fields into one new buffer.
func Concat(fields ...[]byte) []byte {
	n := 0
	for _, f := range fields {
		n += len(f)
	}
	ret := make([]byte, 0, n)
	for _, f := range fields {
		ret = append(ret, f...)
	}
	return ret
}
