package schemaguard

// Severity controls how strongly a non-fatal condition is enforced.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness bundles the severities for conditions that aren't schema
// keywords but still need a policy knob (currently just duplicate object
// keys in the raw JSON text).
type Strictness struct {
	OnDuplicateKey Severity
}

// compileConfig holds the options a Compile call accumulates.
type compileConfig struct {
	maxDepth int
	maxBytes int64
	strict   Strictness
	driver   JSONDriver
	formats  *FormatRegistry
}

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

// WithMaxDepth caps the nesting depth the JSON loaders accept from raw
// text, and the schema nesting depth Compile accepts. The YAML loaders take
// no options and are not capped. Zero means unlimited.
func WithMaxDepth(n int) CompileOption {
	return func(c *compileConfig) { c.maxDepth = n }
}

// WithMaxBytes caps the number of input bytes a streaming loader will
// consume before failing with CodeTruncated. The cap is checked against the
// input offset the JSON driver reports; a driver that reports none
// (jsondrv/gojson) is not capped. Zero means unlimited.
func WithMaxBytes(n int64) CompileOption {
	return func(c *compileConfig) { c.maxBytes = n }
}

// WithDuplicateKeyPolicy controls whether duplicate object keys in raw JSON
// text are ignored or treated as a hard error. Under Warn the JSON loaders
// keep the later value and report nothing, the same as under Ignore.
func WithDuplicateKeyPolicy(s Severity) CompileOption {
	return func(c *compileConfig) { c.strict.OnDuplicateKey = s }
}

// WithJSONDriver overrides the JSON driver used by the document loaders for
// this Compile call only (see SetJSONDriver for a process-wide default).
func WithJSONDriver(d JSONDriver) CompileOption {
	return func(c *compileConfig) {
		if d != nil {
			c.driver = d
		}
	}
}

// WithFormatRegistry overrides the format-checker registry consulted by the
// "format" keyword for schemas compiled with this option.
func WithFormatRegistry(r *FormatRegistry) CompileOption {
	return func(c *compileConfig) {
		if r != nil {
			c.formats = r
		}
	}
}

func newCompileConfig(opts []CompileOption) compileConfig {
	c := compileConfig{driver: getJSONDriver(), formats: DefaultFormats()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// validateConfig holds the options a Validate call accumulates.
type validateConfig struct {
	failFast bool
}

// ValidateOption configures Validate.
type ValidateOption func(*validateConfig)

// WithFailFast stops validation at the first issue instead of collecting
// every violation. Quorum keywords (allOf/anyOf/oneOf/not/contains) still
// evaluate their branches with a local, always-collecting reporter
// regardless of this option, since their own semantics require it.
func WithFailFast(v bool) ValidateOption {
	return func(c *validateConfig) { c.failFast = v }
}

func newValidateConfig(opts []ValidateOption) validateConfig {
	var c validateConfig
	for _, o := range opts {
		o(&c)
	}
	return c
}
