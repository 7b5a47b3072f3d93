package httprange

import "net/http"

// Header names used by this package, in http.Header canonical form.
const (
	AcceptRangesHeader = "Accept-Ranges"
	RangeHeader        = "Range"
	ContentRangeHeader = "Content-Range"
)

// lastValue returns the last field value for name in h. When a header
// is repeated, only the last instance is interpreted; earlier ones are
// ignored.
func lastValue(h http.Header, name string) (string, bool) {
	vs := h[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}
