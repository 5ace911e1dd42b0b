package breeze

import (
	"net/url"
	"strconv"
	"strings"
)

// params builds a query string whose parameters appear in insertion order.
// The Breeze API documents its parameters in a fixed order per endpoint and
// url.Values.Encode sorts keys alphabetically, so it cannot be used here.
type params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

// add appends a key/value pair unconditionally.
func (p *params) add(key, value string) {
	p.pairs = append(p.pairs, pair{key: key, value: value})
}

// addString appends the pair only when value is non-empty.
func (p *params) addString(key, value string) {
	if value != "" {
		p.add(key, value)
	}
}

// addInt appends the pair only when value is non-zero.
func (p *params) addInt(key string, value int) {
	if value != 0 {
		p.add(key, strconv.Itoa(value))
	}
}

// addBool appends the pair as 1/0 only when value is true.
// The API treats an absent flag as false.
func (p *params) addBool(key string, value bool) {
	if value {
		p.add(key, "1")
	}
}

// addList appends the pair as a dash-joined list when values are present.
func (p *params) addList(key string, values []string) {
	if len(values) > 0 {
		p.add(key, strings.Join(values, "-"))
	}
}

// encode renders the pairs as a percent-encoded query string.
func (p *params) encode() string {
	if len(p.pairs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.value))
	}
	return b.String()
}
