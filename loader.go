package schemaguard

import (
	"bytes"
	"errors"
	"io"

	src "github.com/oknoso/schemaguard/internal/source"
	"github.com/oknoso/schemaguard/internal/textcodec"
	"gopkg.in/yaml.v3"
)

// LoadSchemaJSON and LoadInstanceJSON decode JSON bytes into the "any" tree
// Compile/Validate consume. They are the module's entry points for raw
// JSON documents; both use whichever JSONDriver is
// currently installed (see SetJSONDriver) and apply the duplicate-key,
// max-depth and max-bytes enforcement requested via CompileOptions.
func LoadSchemaJSON(data []byte, opts ...CompileOption) (any, error) {
	return loadJSON(data, opts)
}

func LoadInstanceJSON(data []byte, opts ...CompileOption) (any, error) {
	return loadJSON(data, opts)
}

func loadJSON(data []byte, opts []CompileOption) (any, error) {
	cfg := newCompileConfig(opts)

	// Pre-scan for a BOM through the pull-style Reader rather than indexing
	// the raw slice directly, so a malformed-BOM Issue can report the exact
	// 1-based byte position the reader stopped at.
	br := src.NewBufferReader(data)
	if w, n := textcodec.BOMWidth(data); w == 8 {
		br.Ignore(n)
	} else if w != 0 {
		return nil, Issues{{
			Offset:  int64(br.Position()),
			Keyword: "encoding",
			Code:    CodeParseError,
			Message: "input has a non-UTF-8 byte-order mark",
		}}
	}
	rest := data[br.Position()-1:]

	driver := cfg.driver
	if driver == nil {
		driver = getJSONDriver()
	}
	s := driver.NewBytes(rest)

	needsEnforcement := cfg.strict.OnDuplicateKey != Ignore || cfg.maxDepth > 0 || cfg.maxBytes > 0
	if !needsEnforcement {
		return decodeAny(s)
	}

	v, err := src.DecodeAnyWithOptions(tokenSourceFromPublic{s}, src.DecodeOptions{
		OnDuplicate: toSourceDup(cfg.strict.OnDuplicateKey),
		MaxDepth:    cfg.maxDepth,
		MaxBytes:    cfg.maxBytes,
	})
	if err != nil {
		var ce src.ConstraintError
		if errors.As(err, &ce) {
			return nil, Issues{{InstanceLocation: ce.Path, Code: ce.Code, Keyword: "encoding", Message: ce.Message}}
		}
		return nil, err
	}
	return v, nil
}

func toSourceDup(s Severity) src.DuplicateStrictness {
	switch s {
	case Error:
		return src.DupError
	case Warn:
		return src.DupWarn
	default:
		return src.DupIgnore
	}
}

// LoadSchemaYAML and LoadInstanceYAML decode a YAML document into the same
// "any" tree a JSON loader produces, normalizing yaml.v3's map[any]any
// nodes into map[string]any so downstream code never has to special-case
// the document's origin.
func LoadSchemaYAML(data []byte) (any, error)   { return loadYAML(data) }
func LoadInstanceYAML(data []byte) (any, error) { return loadYAML(data) }

func loadYAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, Issues{{Code: CodeParseError, Keyword: "encoding", Message: "empty YAML document"}}
		}
		return nil, Issues{{Code: CodeParseError, Keyword: "encoding", Message: err.Error(), Cause: err}}
	}
	return yamlNormalizeValue(node), nil
}

// yamlNormalizeValue recursively rewrites map[any]any (yaml.v3's decode
// target for non-string-keyed mappings) into map[string]any, and leaves
// everything else as-is, so the result satisfies the same JsonValue
// contract a JSON-text loader produces.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if ks, ok := k.(string); ok {
				out[ks] = yamlNormalizeValue(vv)
			}
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
