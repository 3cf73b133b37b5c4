//go:build !gojson

// Package gojson, without the "gojson" build tag, falls back to the
// standard-library driver so callers can unconditionally reference
// gojson.Driver() regardless of how the binary was built; only building
// with -tags gojson actually links github.com/goccy/go-json in.
package gojson

import schemaguard "github.com/oknoso/schemaguard"

// Driver returns the standard-library driver when built without the
// "gojson" tag.
func Driver() schemaguard.JSONDriver { return schemaguard.DefaultJSONDriver() }
