/*
Package httprange parses and generates the HTTP range-request headers
defined in RFC 7233: Accept-Ranges, Range and Content-Range.

Each header has a typed value: AcceptRanges, ByteRanges and
ByteContentRange. A FromHeader function parses the value out of an
http.Header, the Apply method writes it back, and the String method
renders the canonical field value.

Unlike parsers that salvage whatever they can, the Range and
Content-Range parsers report errors: a malformed value yields an *Error
carrying the HTTP status code (400 or 416) a server should respond with.
A Range header in a unit other than bytes is not an error; FromHeader
returns nil for it, so a server can fall through to sending the full
representation.
*/
package httprange
