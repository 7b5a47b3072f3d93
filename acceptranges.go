package httprange

import "net/http"

const acceptNone = "none"

// AcceptRanges is the value of an Accept-Ranges header (RFC 7233
// Section 2.3), by which a server advertises whether, and in which
// unit, it accepts range requests.
//
// The zero value accepts no range requests and renders as "none".
type AcceptRanges struct {
	// Unit is the accepted range unit. Nil means range requests are
	// not accepted.
	Unit *Unit
}

// AcceptBytes returns a value accepting range requests in the bytes
// unit.
func AcceptBytes() AcceptRanges {
	u := Bytes
	return AcceptRanges{Unit: &u}
}

// AcceptUnit returns a value accepting range requests in the given
// unit.
func AcceptUnit(u Unit) AcceptRanges {
	return AcceptRanges{Unit: &u}
}

// AcceptRangesFromHeader parses the Accept-Ranges header from h.
//
// It returns nil when the header is absent. Parsing never fails: any
// token other than "none" is kept verbatim as the accepted unit. When
// the header is repeated, only the last instance is parsed.
func AcceptRangesFromHeader(h http.Header) *AcceptRanges {
	v, ok := lastValue(h, AcceptRangesHeader)
	if !ok {
		return nil
	}
	a := ParseAcceptRanges(v)
	return &a
}

// ParseAcceptRanges parses an Accept-Ranges field value.
func ParseAcceptRanges(s string) AcceptRanges {
	if s == acceptNone {
		return AcceptRanges{}
	}
	u := Unit(s)
	return AcceptRanges{Unit: &u}
}

// Name returns the Accept-Ranges header name.
func (a AcceptRanges) Name() string { return AcceptRangesHeader }

// Value returns the canonical Accept-Ranges field value for a.
func (a AcceptRanges) Value() string { return a.String() }

// Apply sets the Accept-Ranges header in h, replacing any prior value.
func (a AcceptRanges) Apply(h http.Header) {
	h.Set(AcceptRangesHeader, a.Value())
}

// String renders a in its wire form: "none" when no unit is accepted,
// otherwise the unit itself.
func (a AcceptRanges) String() string {
	if a.Unit == nil {
		return acceptNone
	}
	return a.Unit.String()
}
