package httprange

import (
	"net/http"
	"strings"
)

const bytesPrefix = "bytes="

// ByteRanges is the value of a Range header in the bytes unit: an
// ordered set of one or more byte ranges (RFC 7233 Section 3.1).
//
// The zero value is an empty set ready for Push.
type ByteRanges struct {
	ranges []ByteRange
}

// Push appends r to the end of the range set. Ranges keep their
// insertion order; this package does not coalesce or reorder them.
func (rs *ByteRanges) Push(r ByteRange) {
	rs.ranges = append(rs.ranges, r)
}

// First returns the first range in the set, if any.
func (rs *ByteRanges) First() (ByteRange, bool) {
	if len(rs.ranges) == 0 {
		return ByteRange{}, false
	}
	return rs.ranges[0], true
}

// Ranges returns the ranges in the set, in order. The slice is shared
// with rs and must not be modified.
func (rs *ByteRanges) Ranges() []ByteRange {
	return rs.ranges
}

// MatchSize checks every range in the set against the given
// representation size, as a server does before responding with 206
// Partial Content. It returns an *Error with status 416 if any range
// is out of bounds.
func (rs *ByteRanges) MatchSize(size uint64) error {
	for _, r := range rs.ranges {
		if !r.MatchSize(size) {
			return rangeNotSatisfiable()
		}
	}
	return nil
}

// ByteRangesFromHeader parses the Range header from h.
//
// It returns nil with no error when the header is absent, or when its
// unit is not bytes: an unrecognized unit is deliberately not an
// error, so a server can ignore range requests it does not understand
// and send the full representation instead. When the header is
// repeated, only the last instance is parsed.
func ByteRangesFromHeader(h http.Header) (*ByteRanges, error) {
	v, ok := lastValue(h, RangeHeader)
	if !ok || !strings.HasPrefix(v, bytesPrefix) {
		return nil, nil
	}
	rs, err := ParseByteRanges(v)
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

// ParseByteRanges parses a Range field value such as "bytes=1-5,-10".
// A value without the bytes= prefix, or with an empty range list, is
// rejected with status 400; a malformed range in the list is rejected
// with status 416.
func ParseByteRanges(s string) (ByteRanges, error) {
	if !strings.HasPrefix(s, bytesPrefix) {
		return ByteRanges{}, badRangeRequest()
	}
	var rs ByteRanges
	body := strings.TrimLeft(s[len(bytesPrefix):], " \t")
	for _, f := range strings.Split(body, ",") {
		r, err := ParseByteRange(f)
		if err != nil {
			return ByteRanges{}, err
		}
		rs.ranges = append(rs.ranges, r)
	}
	if len(rs.ranges) == 0 {
		return ByteRanges{}, badRangeRequest()
	}
	return rs, nil
}

// Name returns the Range header name.
func (rs *ByteRanges) Name() string { return RangeHeader }

// Value returns the canonical Range field value for rs.
func (rs *ByteRanges) Value() string { return rs.String() }

// Apply sets the Range header in h, replacing any prior value.
func (rs *ByteRanges) Apply(h http.Header) {
	h.Set(RangeHeader, rs.Value())
}

// String renders the set in its wire form, with no whitespace after
// commas: "bytes=1-5,-5".
func (rs *ByteRanges) String() string {
	b := &strings.Builder{}
	b.WriteString(bytesPrefix)
	for i, r := range rs.ranges {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(r.String())
	}
	return b.String()
}
