package httprange

import (
	"strconv"
	"strings"
)

// A ByteRange is a single byte-range expression as used in the Range
// and Content-Range headers (RFC 7233 Section 2.1).
//
// Start and End are inclusive, 0-indexed octet positions. A nil Start
// with End set to N selects the final N bytes of the representation
// (suffix-length in the RFC grammar); a nil End means the range runs
// through the end of the representation. A parsed range always has at
// least one bound.
type ByteRange struct {
	Start *uint64
	End   *uint64
}

// NewByteRange returns the range covering positions start through end,
// inclusive.
func NewByteRange(start, end uint64) ByteRange {
	return ByteRange{Start: &start, End: &end}
}

// OpenRange returns the range from position start through the end of
// the representation ("start-" on the wire).
func OpenRange(start uint64) ByteRange {
	return ByteRange{Start: &start}
}

// SuffixRange returns the range covering the final length bytes of the
// representation ("-length" on the wire).
func SuffixRange(length uint64) ByteRange {
	return ByteRange{End: &length}
}

// ParseByteRange parses a single byte-range expression such as "1-5",
// "1-" or "-5" (RFC 7233 Appendix D). Surrounding whitespace is
// ignored. A range with no bounds at all is rejected, as is a range
// whose end does not come strictly after its start. Failures are
// reported as an *Error with status 416.
func ParseByteRange(s string) (ByteRange, error) {
	fields := strings.SplitN(strings.TrimSpace(s), "-", 2)
	start, err := parseBound(fields[0])
	if err != nil {
		return ByteRange{}, err
	}
	var end *uint64
	if len(fields) == 2 {
		if end, err = parseBound(fields[1]); err != nil {
			return ByteRange{}, err
		}
	}
	if start == nil && end == nil {
		return ByteRange{}, rangeNotSatisfiable()
	}
	if start != nil && end != nil && *end <= *start {
		return ByteRange{}, rangeNotSatisfiable()
	}
	return ByteRange{Start: start, End: end}, nil
}

func parseBound(s string) (*uint64, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, rangeNotSatisfiable()
	}
	return &n, nil
}

// MatchSize reports whether the range fits a representation of the
// given size: every present bound must be strictly less than size.
// Servers use it to choose between a 206 and a 416 response.
func (r ByteRange) MatchSize(size uint64) bool {
	if r.Start != nil && *r.Start >= size {
		return false
	}
	if r.End != nil && *r.End >= size {
		return false
	}
	return true
}

// String renders the range in its wire form, leaving absent bounds
// empty: "1-5", "1-", "-5".
func (r ByteRange) String() string {
	b := &strings.Builder{}
	if r.Start != nil {
		b.WriteString(strconv.FormatUint(*r.Start, 10))
	}
	b.WriteString("-")
	if r.End != nil {
		b.WriteString(strconv.FormatUint(*r.End, 10))
	}
	return b.String()
}
