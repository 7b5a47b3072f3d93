package httprange

import (
	"net/http"
	"strconv"
	"strings"
)

const contentRangePrefix = "bytes"

// A ByteContentRange is the value of a Content-Range header in the
// bytes unit (RFC 7233 Section 4.2), sent with a 206 Partial Content
// response to describe the enclosed range, or with a 416 response to
// advertise the representation's complete length.
//
// Range and Size are independently optional but never both absent on a
// parsed value: "bytes 1-5/100" carries both, "bytes 1-5/*" a range of
// unknown complete length, and "bytes */100" the unsatisfied-range form.
// A present Range always has both bounds.
type ByteContentRange struct {
	Range *ByteRange
	Size  *uint64
}

// NewByteContentRange returns an empty value to be filled in with
// WithRange and WithSize.
func NewByteContentRange() ByteContentRange { return ByteContentRange{} }

// WithRange returns a copy of cr carrying the range from start through
// end, inclusive.
func (cr ByteContentRange) WithRange(start, end uint64) ByteContentRange {
	r := NewByteRange(start, end)
	cr.Range = &r
	return cr
}

// WithSize returns a copy of cr carrying the complete length of the
// representation.
func (cr ByteContentRange) WithSize(size uint64) ByteContentRange {
	cr.Size = &size
	return cr
}

// ByteContentRangeFromHeader parses the Content-Range header from h.
//
// It returns nil with no error when the header is absent or its unit
// is not bytes. When the header is repeated, only the last instance is
// parsed.
func ByteContentRangeFromHeader(h http.Header) (*ByteContentRange, error) {
	v, ok := lastValue(h, ContentRangeHeader)
	if !ok || !strings.HasPrefix(v, contentRangePrefix) {
		return nil, nil
	}
	cr, err := ParseByteContentRange(v)
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// ParseByteContentRange parses a Content-Range field value such as
// "bytes 1-5/100", "bytes 1-5/*" or "bytes */100". The range, when
// present, must have both bounds; the "*/*" form is rejected, as is a
// range whose end is not strictly below a known complete length.
// Failures are reported as an *Error with status 416.
func ParseByteContentRange(s string) (ByteContentRange, error) {
	if !strings.HasPrefix(s, contentRangePrefix) {
		return ByteContentRange{}, invalidContentRange()
	}
	body := strings.TrimLeft(s[len(contentRangePrefix):], " \t")
	fields := strings.SplitN(body, "/", 2)
	if len(fields) != 2 {
		return ByteContentRange{}, invalidContentRange()
	}

	var cr ByteContentRange
	if fields[0] != "*" {
		r, err := ParseByteRange(fields[0])
		if err != nil || r.Start == nil || r.End == nil {
			return ByteContentRange{}, invalidContentRange()
		}
		cr.Range = &r
	}
	if fields[1] != "*" {
		size, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return ByteContentRange{}, invalidContentRange()
		}
		cr.Size = &size
	}

	if cr.Range == nil && cr.Size == nil {
		return ByteContentRange{}, invalidContentRange()
	}
	if cr.Range != nil && cr.Size != nil && *cr.Size <= *cr.Range.End {
		return ByteContentRange{}, invalidContentRange()
	}
	return cr, nil
}

// Name returns the Content-Range header name.
func (cr ByteContentRange) Name() string { return ContentRangeHeader }

// Value returns the canonical Content-Range field value for cr.
func (cr ByteContentRange) Value() string { return cr.String() }

// Apply sets the Content-Range header in h, replacing any prior value.
func (cr ByteContentRange) Apply(h http.Header) {
	h.Set(ContentRangeHeader, cr.Value())
}

// String renders cr in its wire form, with * for an absent range or
// size: "bytes 1-5/100", "bytes 1-5/*", "bytes */100".
func (cr ByteContentRange) String() string {
	b := &strings.Builder{}
	b.WriteString(contentRangePrefix)
	b.WriteString(" ")
	if cr.Range != nil {
		b.WriteString(cr.Range.String())
	} else {
		b.WriteString("*")
	}
	b.WriteString("/")
	if cr.Size != nil {
		b.WriteString(strconv.FormatUint(*cr.Size, 10))
	} else {
		b.WriteString("*")
	}
	return b.String()
}
