package httprange

import "golang.org/x/net/http/httpguts"

// A Unit is an RFC 7233 range unit (RFC 7233 Section 2).
//
// Only the bytes unit is defined by the RFC, but the IANA registry is
// open: any token can name an extension unit, and this package keeps
// such tokens verbatim.
type Unit string

// Bytes is the range unit for expressing subranges of a
// representation's octet sequence (RFC 7233 Section 2.1). It is the
// only unit this package parses Range and Content-Range values in.
const Bytes Unit = "bytes"

// IsBytes reports whether u is the bytes unit.
func (u Unit) IsBytes() bool { return u == Bytes }

// Valid reports whether u is a legal range-unit token
// (RFC 7230 Section 3.2.6). Parsing accepts any token verbatim;
// callers minting extension units can check them here before use.
func (u Unit) Valid() bool {
	for _, r := range string(u) {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return u != ""
}

func (u Unit) String() string { return string(u) }
