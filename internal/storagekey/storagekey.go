// Package storagekey derives and decodes the keys and values a
// Chromium-family browser writes into its local-storage LevelDB database.
//
// Keys are flat byte strings of the form
//
//	_<scheme>://<host>
//	_<scheme>://<host> 0x00 0x01 <application key>
//
// and values carry a single leading frame byte followed by the text payload.
// The 0x00 0x01 separator cannot occur inside a parsed scheme or host, so it
// unambiguously delimits the origin from the application key.
package storagekey

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrInvalidURL     = errors.New("storagekey: URL has no host")
	ErrMalformedValue = errors.New("storagekey: value is missing its frame byte")
	ErrMalformedKey   = errors.New("storagekey: key is missing the origin separator")
)

// separator delimits the origin from the application key inside a store key.
var separator = []byte{0x00, 0x01}

// upperBoundMarker sorts after the separator's first byte, so an origin key
// followed by it bounds every entry key of that origin from above.
const upperBoundMarker = 0x01

// OriginKey derives the store key prefix for the origin of rawURL.
// The scheme defaults to https when rawURL carries none, matching the
// convention the browser uses when recording origins.
func OriginKey(rawURL string) ([]byte, error) {
	// A bare "example.com" parses as a path with an empty host, so inputs
	// without a scheme separator get the default scheme prepended. Inputs
	// that already carry one are taken as-is; an empty host there is the
	// caller's mistake, not a missing scheme.
	input := rawURL
	if !strings.Contains(input, "://") {
		input = "https://" + input
	}
	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}
	return []byte("_" + u.Scheme + "://" + u.Host), nil
}

// EntryKey derives the exact store key for appKey under the origin of rawURL.
func EntryKey(rawURL, appKey string) ([]byte, error) {
	origin, err := OriginKey(rawURL)
	if err != nil {
		return nil, err
	}
	key := make([]byte, 0, len(origin)+len(separator)+len(appKey))
	key = append(key, origin...)
	key = append(key, separator...)
	key = append(key, appKey...)
	return key, nil
}

// ScanBounds derives the half-open key range [lower, upper) containing every
// entry key of rawURL's origin and no key of any other origin. Correctness
// relies on the store ordering keys lexicographically by byte: every entry
// key continues the origin with 0x00, so appending 0x01 to the origin bounds
// them all from above while staying below any later origin.
func ScanBounds(rawURL string) (lower, upper []byte, err error) {
	origin, err := OriginKey(rawURL)
	if err != nil {
		return nil, nil, err
	}
	upper = make([]byte, len(origin)+1)
	copy(upper, origin)
	upper[len(origin)] = upperBoundMarker
	return origin, upper, nil
}

// DecodeValue strips the single frame byte off a raw stored value and
// returns the remaining payload as text. The frame byte carries no payload
// information; its value is not validated.
func DecodeValue(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", ErrMalformedValue
	}
	return string(raw[1:]), nil
}

// DecodeKey recovers the application key from a raw store key retrieved by a
// scan. A key without the separator lies outside the layout every entry key
// follows and is reported as malformed, never as an empty application key.
func DecodeKey(raw []byte) (string, error) {
	_, appKey, found := bytes.Cut(raw, separator)
	if !found {
		return "", fmt.Errorf("%w: %q", ErrMalformedKey, raw)
	}
	return string(appKey), nil
}
