// Package domain defines the translator's request and result types
package domain

import "encoding/json"

const (
	// DefaultLookupPath is used when KNOWN_KEY_URL is not set
	DefaultLookupPath = "/knownKey"

	// HashHeader carries the key being looked up, inbound and outbound
	HashHeader = "X-Hash-Value"
	// AuthHeader carries the caller credential, inbound and outbound
	AuthHeader = "Authorization"

	noMatchBody = `{"id":null}`
)

// RequestParameters are the resolved inputs of one translation
// nil means the value was not found by any resolver; an empty string is still defined
type RequestParameters struct {
	LookupURL     *string `json:"lookupUrl"     validate:"required"`
	Authorization *string `json:"authorization" validate:"required"`
	HashKey       *string `json:"hashKey"       validate:"required"`
}

// Headers is the complete outbound header set of a lookup
type Headers struct {
	HashKeyHeaderValue string
	AuthorizationValue string
}

// LookupResult is the JSON body sent back to the caller, either {"id":"<x>"} or {"id":null}
type LookupResult json.RawMessage

// NoMatch returns a fresh {"id":null} result
func NoMatch() LookupResult { return LookupResult(noMatchBody) }

// Bytes returns the body as written on the wire
func (r LookupResult) Bytes() []byte {
	if len(r) == 0 {
		return []byte(noMatchBody)
	}
	return r
}

// MarshalJSON emits the body unchanged
func (r LookupResult) MarshalJSON() ([]byte, error) { return r.Bytes(), nil }
