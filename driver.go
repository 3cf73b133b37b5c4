package schemaguard

import (
	"io"
	"sync"

	src "github.com/oknoso/schemaguard/internal/source"
	"github.com/oknoso/schemaguard/jsondrv/stdjson"
)

// Source is the token stream a JSONDriver produces. The document loaders
// consume it to build the "any" tree the builder and validator walk.
type Source interface {
	NextToken() (src.Token, error)
	Location() int64
}

// JSONDriver converts raw JSON input into a Source via a pluggable SPI.
// The default is backed by encoding/json; SetJSONDriver swaps in an
// alternate such as jsondrv/gojson (github.com/goccy/go-json).
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

// SourceFromTokens adapts any source.TokenSource (the type every driver
// package builds) into the public Source interface.
func SourceFromTokens(inner src.TokenSource) Source { return tokenSourceAdapter{inner} }

type tokenSourceAdapter struct{ inner src.TokenSource }

func (a tokenSourceAdapter) NextToken() (src.Token, error) { return a.inner.NextToken() }
func (a tokenSourceAdapter) Location() int64               { return a.inner.Location() }

var (
	driverMu      sync.RWMutex
	currentDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the process-wide JSON driver; nil is ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultJSONDriver restores the encoding/json-backed driver.
func UseDefaultJSONDriver() {
	driverMu.Lock()
	currentDriver = defaultJSONDriver{}
	driverMu.Unlock()
}

// DefaultJSONDriver returns the built-in encoding/json driver, regardless
// of what SetJSONDriver last installed. Alternate-driver stub packages use
// this to fall back cleanly when their build tag isn't set.
func DefaultJSONDriver() JSONDriver { return defaultJSONDriver{} }

func getJSONDriver() JSONDriver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source { return SourceFromTokens(stdjson.NewReader(r)) }
func (defaultJSONDriver) NewBytes(b []byte) Source     { return SourceFromTokens(stdjson.NewBytes(b)) }
func (defaultJSONDriver) Name() string                 { return "encoding/json" }

// decodeAny reads one complete JSON value from s, as an "any" tree with
// numbers kept as json.Number.
func decodeAny(s Source) (any, error) {
	return src.DecodeAny(tokenSourceFromPublic{s})
}

// tokenSourceFromPublic adapts the public Source back to src.TokenSource
// so decodeAny can reuse the shared recursive-descent tree builder.
type tokenSourceFromPublic struct{ s Source }

func (t tokenSourceFromPublic) NextToken() (src.Token, error) { return t.s.NextToken() }
func (t tokenSourceFromPublic) Location() int64                { return t.s.Location() }
