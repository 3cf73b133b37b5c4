//go:build gojson

// Package gojsondefault has no API of its own; importing it for its side
// effect switches the process-wide default JSONDriver to goccy/go-json.
// Mirrors the donor's own driver_default_gojson.go, which did the same
// thing for its own JSON source abstraction.
package gojsondefault

import (
	schemaguard "github.com/oknoso/schemaguard"
	"github.com/oknoso/schemaguard/jsondrv/gojson"
)

func init() {
	schemaguard.SetJSONDriver(gojson.Driver())
}
