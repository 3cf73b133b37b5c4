package schemaguard

import (
	"fmt"
	"regexp"

	"github.com/oknoso/schemaguard/uriref"
)

// rootBaseURI is the synthetic base URI assigned to a schema document that
// declares no "$id" of its own. It is never exposed to callers; it only
// exists so every compiled node has an absolute URI to register under.
const rootBaseURI = "urn:schemaguard:root"

// Schema is a compiled, immutable validator tree, ready for repeated
// Validate calls.
type Schema struct {
	root    validator
	reg     *registry
	formats *FormatRegistry
}

// Compile builds a Schema from a decoded schema document (typically the
// output of LoadSchemaJSON/LoadSchemaYAML, but any "any" tree built from
// the same null/bool/string/float64-or-json.Number/[]any/map[string]any
// shapes works).
func Compile(doc any, opts ...CompileOption) (*Schema, error) {
	cfg := newCompileConfig(opts)
	b := &builder{reg: newRegistry(), cfg: cfg}
	root := uriref.MustParse(rootBaseURI)
	v, err := b.build(doc, root, 0)
	if err != nil {
		return nil, err
	}
	if err := b.reg.freeze(); err != nil {
		return nil, err
	}
	return &Schema{root: v, reg: b.reg, formats: cfg.formats}, nil
}

type builder struct {
	reg *registry
	cfg compileConfig
}

func (b *builder) build(doc any, loc uriref.Wrapper, depth int) (validator, error) {
	if b.cfg.maxDepth > 0 && depth > b.cfg.maxDepth {
		return nil, fmt.Errorf("schemaguard: schema nesting exceeds max depth %d", b.cfg.maxDepth)
	}
	switch d := doc.(type) {
	case bool:
		if d {
			v := &alwaysValid{base{loc: loc}}
			return v, b.reg.register(loc.String(), v)
		}
		v := &alwaysInvalid{base{loc: loc}}
		return v, b.reg.register(loc.String(), v)
	case map[string]any:
		return b.buildObject(d, loc, depth)
	case nil:
		// A bare "null" in a schema-document position is invalid per
		// draft-07 ("a JSON Schema MUST be an object or a boolean").
		return nil, fmt.Errorf("schemaguard: schema must be an object or boolean, got null")
	default:
		return nil, fmt.Errorf("schemaguard: schema must be an object or boolean, got %T", doc)
	}
}

func (b *builder) buildObject(d map[string]any, loc uriref.Wrapper, depth int) (validator, error) {
	nodeLoc := loc
	if idRaw, ok := d["$id"].(string); ok {
		idURI, err := uriref.Parse(idRaw)
		if err != nil {
			return nil, fmt.Errorf("schemaguard: invalid $id %q: %w", idRaw, err)
		}
		nodeLoc = idURI.Resolve(loc)
	}

	if refRaw, ok := d["$ref"].(string); ok {
		refURI, err := uriref.Parse(refRaw)
		if err != nil {
			return nil, fmt.Errorf("schemaguard: invalid $ref %q: %w", refRaw, err)
		}
		target := refURI.Resolve(nodeLoc)
		rv := &refValidator{base: base{loc: nodeLoc}}
		if err := b.reg.register(nodeLoc.String(), rv); err != nil {
			return nil, err
		}
		b.reg.deferRef(target.String(), rv)
		return rv, nil
	}

	sub := &subschema{base: base{loc: nodeLoc}}
	if err := b.reg.register(nodeLoc.String(), sub); err != nil {
		return nil, err
	}
	if def, ok := d["default"]; ok {
		sub.def = def
		sub.hasDefault = true
	}

	add := func(v validator) { sub.keywords = append(sub.keywords, v) }
	child := func(doc any, keyword string) (validator, error) {
		return b.build(doc, nodeLoc.Append(keyword), depth+1)
	}

	// "definitions" holds no validation semantics of its own; it exists so
	// $ref has somewhere to point. Build and register every entry purely
	// for that side effect, since nothing else below ever walks into it.
	if defs, ok := d["definitions"].(map[string]any); ok {
		for name, defDoc := range defs {
			if _, err := b.build(defDoc, nodeLoc.Append("definitions").Append(name), depth+1); err != nil {
				return nil, err
			}
		}
	}

	if err := b.buildType(d, nodeLoc, add); err != nil {
		return nil, err
	}
	b.buildEnumConst(d, nodeLoc, add)
	if err := b.buildNumeric(d, nodeLoc, add); err != nil {
		return nil, err
	}
	if err := b.buildString(d, nodeLoc, add); err != nil {
		return nil, err
	}
	if err := b.buildArray(d, nodeLoc, child, add, depth); err != nil {
		return nil, err
	}
	if err := b.buildObjectKeywords(d, nodeLoc, child, add, depth); err != nil {
		return nil, err
	}
	if err := b.buildLogic(d, nodeLoc, child, add, depth); err != nil {
		return nil, err
	}
	return sub, nil
}

func (b *builder) buildType(d map[string]any, loc uriref.Wrapper, add func(validator)) error {
	raw, ok := d["type"]
	if !ok {
		return nil
	}
	switch t := raw.(type) {
	case string:
		add(&typeValidator{base: base{loc: loc}, names: []string{t}})
	case []any:
		names := make([]string, 0, len(t))
		for _, n := range t {
			s, ok := n.(string)
			if !ok {
				return fmt.Errorf("schemaguard: \"type\" array must contain only strings")
			}
			names = append(names, s)
		}
		add(&typeValidator{base: base{loc: loc}, names: names})
	default:
		return fmt.Errorf("schemaguard: \"type\" must be a string or array of strings")
	}
	return nil
}

func (b *builder) buildEnumConst(d map[string]any, loc uriref.Wrapper, add func(validator)) {
	if raw, ok := d["enum"]; ok {
		if values, ok := raw.([]any); ok {
			add(&enumValidator{base: base{loc: loc}, values: values})
		}
	}
	if raw, ok := d["const"]; ok {
		add(&constValidator{base: base{loc: loc}, value: raw})
	}
}

func (b *builder) buildNumeric(d map[string]any, loc uriref.Wrapper, add func(validator)) error {
	rv := &numericRangeValidator{base: base{loc: loc}}
	have := false
	if raw, ok := d["minimum"]; ok {
		f, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"minimum\" must be a number")
		}
		rv.hasMin, rv.min, have = true, f, true
	}
	if raw, ok := d["maximum"]; ok {
		f, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"maximum\" must be a number")
		}
		rv.hasMax, rv.max, have = true, f, true
	}
	if raw, ok := d["exclusiveMinimum"]; ok {
		f, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"exclusiveMinimum\" must be a number")
		}
		rv.hasExclMin, rv.exclMin, have = true, f, true
	}
	if raw, ok := d["exclusiveMaximum"]; ok {
		f, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"exclusiveMaximum\" must be a number")
		}
		rv.hasExclMax, rv.exclMax, have = true, f, true
	}
	if have {
		add(rv)
	}
	if raw, ok := d["multipleOf"]; ok {
		f, ok := asFloat64(raw)
		if !ok || f <= 0 {
			return fmt.Errorf("schemaguard: \"multipleOf\" must be a positive number")
		}
		add(&multipleOfValidator{base: base{loc: loc}, divisor: f})
	}
	return nil
}

func (b *builder) buildString(d map[string]any, loc uriref.Wrapper, add func(validator)) error {
	lv := &stringLengthValidator{base: base{loc: loc}}
	have := false
	if raw, ok := d["minLength"]; ok {
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"minLength\" must be a number")
		}
		lv.hasMin, lv.min, have = true, int(n), true
	}
	if raw, ok := d["maxLength"]; ok {
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"maxLength\" must be a number")
		}
		lv.hasMax, lv.max, have = true, int(n), true
	}
	if have {
		add(lv)
	}
	if raw, ok := d["pattern"].(string); ok {
		re, err := regexp.Compile(raw)
		if err != nil {
			return fmt.Errorf("schemaguard: invalid \"pattern\": %w", err)
		}
		add(&patternValidator{base: base{loc: loc}, re: re})
	}
	if raw, ok := d["format"].(string); ok {
		add(&formatValidator{base: base{loc: loc}, name: raw, registry: b.cfg.formats})
	}
	encoding, base64Decoded := d["contentEncoding"].(string)
	if base64Decoded {
		add(&contentEncodingValidator{base: base{loc: loc}, encoding: encoding})
	}
	if raw, ok := d["contentMediaType"].(string); ok {
		add(&contentMediaTypeValidator{base: base{loc: loc}, mediaType: raw, base64Decoded: base64Decoded && encoding == "base64"})
	}
	return nil
}

func (b *builder) buildArray(d map[string]any, loc uriref.Wrapper, child func(any, string) (validator, error), add func(validator), depth int) error {
	if raw, ok := d["items"]; ok {
		iv := &itemsValidator{base: base{loc: loc}}
		if list, ok := raw.([]any); ok {
			for i, itemDoc := range list {
				v, err := b.build(itemDoc, loc.Append("items").AppendIndex(i), depth+1)
				if err != nil {
					return err
				}
				iv.itemsList = append(iv.itemsList, v)
			}
			if addlRaw, ok := d["additionalItems"]; ok {
				v, err := child(addlRaw, "additionalItems")
				if err != nil {
					return err
				}
				iv.additional = v
			}
		} else {
			v, err := child(raw, "items")
			if err != nil {
				return err
			}
			iv.single = v
		}
		add(iv)
	}
	av := &arrayLengthValidator{base: base{loc: loc}}
	have := false
	if raw, ok := d["minItems"]; ok {
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"minItems\" must be a number")
		}
		av.hasMin, av.min, have = true, int(n), true
	}
	if raw, ok := d["maxItems"]; ok {
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"maxItems\" must be a number")
		}
		av.hasMax, av.max, have = true, int(n), true
	}
	if have {
		add(av)
	}
	if raw, ok := d["uniqueItems"].(bool); ok && raw {
		add(&uniqueItemsValidator{base: base{loc: loc}})
	}
	if raw, ok := d["contains"]; ok {
		v, err := child(raw, "contains")
		if err != nil {
			return err
		}
		add(&containsValidator{base: base{loc: loc}, schema: v})
	}
	return nil
}

func (b *builder) buildObjectKeywords(d map[string]any, loc uriref.Wrapper, child func(any, string) (validator, error), add func(validator), depth int) error {
	if raw, ok := d["required"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("schemaguard: \"required\" must be an array of strings")
		}
		names := make([]string, 0, len(list))
		for _, n := range list {
			s, ok := n.(string)
			if !ok {
				return fmt.Errorf("schemaguard: \"required\" must contain only strings")
			}
			names = append(names, s)
		}
		add(&requiredValidator{base: base{loc: loc}, names: names})
	}

	_, hasProps := d["properties"]
	_, hasPatternProps := d["patternProperties"]
	_, hasAdditional := d["additionalProperties"]
	if hasProps || hasPatternProps || hasAdditional {
		pv := &propertiesValidator{base: base{loc: loc}}
		if raw, ok := d["properties"].(map[string]any); ok {
			pv.props = make(map[string]validator, len(raw))
			for name, propDoc := range raw {
				v, err := b.build(propDoc, loc.Append("properties").Append(name), depth+1)
				if err != nil {
					return err
				}
				pv.props[name] = v
			}
		}
		if raw, ok := d["patternProperties"].(map[string]any); ok {
			for pattern, propDoc := range raw {
				re, err := regexp.Compile(pattern)
				if err != nil {
					return fmt.Errorf("schemaguard: invalid patternProperties key %q: %w", pattern, err)
				}
				v, err := b.build(propDoc, loc.Append("patternProperties").Append(pattern), depth+1)
				if err != nil {
					return err
				}
				pv.patterns = append(pv.patterns, patternPropEntry{re: re, schema: v})
			}
		}
		if raw, ok := d["additionalProperties"]; ok {
			v, err := child(raw, "additionalProperties")
			if err != nil {
				return err
			}
			pv.additional = v
		}
		add(pv)
	}

	if raw, ok := d["propertyNames"]; ok {
		v, err := child(raw, "propertyNames")
		if err != nil {
			return err
		}
		add(&propertyNamesValidator{base: base{loc: loc}, schema: v})
	}

	ov := &objectLengthValidator{base: base{loc: loc}}
	have := false
	if raw, ok := d["minProperties"]; ok {
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"minProperties\" must be a number")
		}
		ov.hasMin, ov.min, have = true, int(n), true
	}
	if raw, ok := d["maxProperties"]; ok {
		n, ok := asFloat64(raw)
		if !ok {
			return fmt.Errorf("schemaguard: \"maxProperties\" must be a number")
		}
		ov.hasMax, ov.max, have = true, int(n), true
	}
	if have {
		add(ov)
	}

	if raw, ok := d["dependencies"].(map[string]any); ok {
		dv := &dependenciesValidator{base: base{loc: loc}, deps: make(map[string]dependency, len(raw))}
		for trigger, depDoc := range raw {
			switch dd := depDoc.(type) {
			case []any:
				names := make([]string, 0, len(dd))
				for _, n := range dd {
					s, ok := n.(string)
					if !ok {
						return fmt.Errorf("schemaguard: \"dependencies\" property-form must list only strings")
					}
					names = append(names, s)
				}
				dv.deps[trigger] = dependency{names: names}
			default:
				v, err := b.build(depDoc, loc.Append("dependencies").Append(trigger), depth+1)
				if err != nil {
					return err
				}
				dv.deps[trigger] = dependency{schema: v}
			}
		}
		add(dv)
	}
	return nil
}

func (b *builder) buildLogic(d map[string]any, loc uriref.Wrapper, child func(any, string) (validator, error), add func(validator), depth int) error {
	buildList := func(raw any, keyword string) ([]validator, error) {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("schemaguard: %q must be an array of schemas", keyword)
		}
		out := make([]validator, 0, len(list))
		for i, itemDoc := range list {
			v, err := b.build(itemDoc, loc.Append(keyword).AppendIndex(i), depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	if raw, ok := d["not"]; ok {
		v, err := child(raw, "not")
		if err != nil {
			return err
		}
		add(&notValidator{base: base{loc: loc}, schema: v})
	}
	if raw, ok := d["allOf"]; ok {
		branches, err := buildList(raw, "allOf")
		if err != nil {
			return err
		}
		add(&allOfValidator{base: base{loc: loc}, branches: branches})
	}
	if raw, ok := d["anyOf"]; ok {
		branches, err := buildList(raw, "anyOf")
		if err != nil {
			return err
		}
		add(&anyOfValidator{base: base{loc: loc}, branches: branches})
	}
	if raw, ok := d["oneOf"]; ok {
		branches, err := buildList(raw, "oneOf")
		if err != nil {
			return err
		}
		add(&oneOfValidator{base: base{loc: loc}, branches: branches})
	}
	if ifRaw, ok := d["if"]; ok {
		ite := &ifThenElseValidator{base: base{loc: loc}}
		v, err := child(ifRaw, "if")
		if err != nil {
			return err
		}
		ite.ifSchema = v
		if thenRaw, ok := d["then"]; ok {
			v, err := child(thenRaw, "then")
			if err != nil {
				return err
			}
			ite.thenSchema = v
		}
		if elseRaw, ok := d["else"]; ok {
			v, err := child(elseRaw, "else")
			if err != nil {
				return err
			}
			ite.elseSchema = v
		}
		add(ite)
	}
	return nil
}
