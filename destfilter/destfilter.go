package destfilter

import (
	"net/http"
	"strings"

	"code.cloudfoundry.org/tenantrouter/models"
)

// DefaultHeader names the request header consulted when narrowing.
const DefaultHeader = "Destination"

// Filter narrows a candidate set by the destination header predicate. The
// set is narrowed only when the header carries exactly one value; zero or
// repeated values pass the set through untouched.
type Filter struct {
	Header string
}

func New(header string) *Filter {
	if header == "" {
		header = DefaultHeader
	}
	return &Filter{Header: header}
}

// Filter retains destinations whose ID contains the header value as a
// case-sensitive substring. Pure: the input set is never mutated and the
// result is always a freshly allocated set. An empty result is legitimate;
// destination selection downstream decides what to do with it.
func (f *Filter) Filter(candidates models.CandidateSet, headers http.Header) models.CandidateSet {
	values := headers[http.CanonicalHeaderKey(f.Header)]

	filtered := models.CandidateSet{}
	if len(values) != 1 {
		for id, dest := range candidates {
			filtered[id] = dest
		}
		return filtered
	}

	for id, dest := range candidates {
		if strings.Contains(dest.ID, values[0]) {
			filtered[id] = dest
		}
	}
	return filtered
}
