//go:build !gojson

// Package gojsondefault has no API of its own; without the "gojson" build
// tag it has nothing to register, so the process keeps whatever JSONDriver
// SetJSONDriver/UseDefaultJSONDriver already installed.
package gojsondefault
