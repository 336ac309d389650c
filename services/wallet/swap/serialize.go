package swap

import (
	"net/url"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// SerializeQueryParams writes params as an URL query string. Keys are sorted so
// equal maps serialize identically.
func SerializeQueryParams(params map[string]interface{}) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, encodeURIComponent(key)+"="+encodeURIComponent(cast.ToString(params[key])))
	}
	return strings.Join(pairs, "&")
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
