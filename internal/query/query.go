// Package query decodes raw URL query strings into ordered multi-value
// parameter maps.
package query

import (
	"fmt"
	"net/url"
	"strings"
)

// Params maps a decoded parameter name to its decoded values in encounter
// order. A parameter that appeared without "=" contributes a nil entry for
// that occurrence, so an absent value stays distinct from an empty one.
type Params map[string][]*string

// Parse splits a raw query string on "&" into key=value pairs and
// percent-decodes both sides. An empty input yields an empty map, not an
// error. Values for a repeated name accumulate in encounter order. A
// malformed percent-escape is returned as an error; it has no request-level
// recovery and callers are expected to fail the request with it.
func Parse(raw string) (Params, error) {
	params := Params{}
	if raw == "" {
		return params, nil
	}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, hasValue := strings.Cut(pair, "=")

		name, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("decode query key %q: %w", key, err)
		}
		if !hasValue {
			params[name] = append(params[name], nil)
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("decode query value %q: %w", value, err)
		}
		params[name] = append(params[name], &decoded)
	}
	return params, nil
}

// First returns the first value for name, or fallback when the parameter
// is absent or carries no value.
func (p Params) First(name, fallback string) string {
	values := p[name]
	if len(values) == 0 || values[0] == nil {
		return fallback
	}
	return *values[0]
}
