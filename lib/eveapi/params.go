package eveapi

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

const (
	paramKeyID            = "keyId"
	paramVerificationCode = "vCode"
	paramCharacterID      = "characterId"
	paramMarketCharName   = "char_name"
)

// Params are the query parameters of one request. Values are already
// flattened to strings.
type Params map[string]string

// Set stores v under name after flattening it with Join.
func (p Params) Set(name string, v any) {
	p[name] = Join(v)
}

func (p Params) Clone() Params {
	out := make(Params, len(p)+3)
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Encode renders the parameters as a url query string sorted by key.
func (p Params) Encode() string {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, v)
	}
	return values.Encode()
}

// Join flattens slices and arrays into a comma separated list and renders
// anything else in its default format. nil becomes an empty string.
func Join(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}
