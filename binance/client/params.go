package client

import (
	"net/url"
	"strings"
)

// Params is an ordered set of query parameters. The exchange verifies the
// signature against the query string exactly as transmitted, so encoding
// must preserve append order; url.Values would re-sort keys and break it.
type Params struct {
	pairs []pair
}

type pair struct {
	key   string
	value string
}

func NewParams() *Params {
	return &Params{}
}

// Add appends one key=value pair and returns p for chaining.
func (p *Params) Add(key, value string) *Params {
	p.pairs = append(p.pairs, pair{key: key, value: value})
	return p
}

// Len returns the number of pairs.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// Encode renders the pairs as key=value joined by & in append order.
// Values are percent-escaped; the escaped form is both signed and sent.
func (p *Params) Encode() string {
	if p == nil || len(p.pairs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, kv := range p.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(kv.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(kv.value))
	}
	return sb.String()
}
