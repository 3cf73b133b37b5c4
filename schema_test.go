package schemaguard

import "testing"

func compile(t *testing.T, doc any) *Schema {
	t.Helper()
	s, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return s
}

func TestTypeKeywordRejectsWrongType(t *testing.T) {
	s := compile(t, map[string]any{"type": "string"})
	issues, _, _ := s.Validate(42.0)
	if len(issues) != 1 || issues[0].Keyword != "type" {
		t.Fatalf("expected one \"type\" issue, got %+v", issues)
	}
	issues, _, _ = s.Validate("ok")
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestRequiredReportsEachMissingProperty(t *testing.T) {
	s := compile(t, map[string]any{"required": []any{"a", "b"}})
	issues, _, _ := s.Validate(map[string]any{"a": 1.0})
	if len(issues) != 1 || issues[0].Keyword != "required" {
		t.Fatalf("expected one missing-property issue, got %+v", issues)
	}
}

func TestUniqueItemsReportsOneIssueForAnyNumberOfDuplicates(t *testing.T) {
	s := compile(t, map[string]any{"uniqueItems": true})
	issues, _, _ := s.Validate([]any{1.0, 2.0, 2.0, 2.0})
	if len(issues) != 1 || issues[0].Keyword != "uniqueItems" {
		t.Fatalf("expected exactly one uniqueItems issue, got %+v", issues)
	}
}

func TestOneOfReportsAmbiguityWhenMultipleBranchesMatch(t *testing.T) {
	s := compile(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "number"},
			map[string]any{"minimum": 0.0},
		},
	})
	issues, _, _ := s.Validate(5.0)
	if len(issues) != 1 || issues[0].Keyword != "oneOf" {
		t.Fatalf("expected one oneOf ambiguity issue, got %+v", issues)
	}
}

func TestOneOfPassesWithExactlyOneMatch(t *testing.T) {
	s := compile(t, map[string]any{
		"oneOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "number"},
		},
	})
	issues, _, _ := s.Validate("hi")
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestDefaultValueProducesPatchForMissingProperty(t *testing.T) {
	s := compile(t, map[string]any{
		"properties": map[string]any{
			"count": map[string]any{"default": 0.0},
		},
	})
	_, patch, _ := s.Validate(map[string]any{})
	if len(patch) != 1 || patch[0].Path != "/count" || patch[0].Value != 0.0 {
		t.Fatalf("expected a patch adding /count = 0, got %+v", patch)
	}
	_, patch, _ = s.Validate(map[string]any{"count": 5.0})
	if len(patch) != 0 {
		t.Fatalf("expected no patch when the property is already present, got %+v", patch)
	}
}

func TestPatternPropertiesWithAdditionalPropertiesFalse(t *testing.T) {
	s := compile(t, map[string]any{
		"patternProperties": map[string]any{
			"^S_": map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	})
	issues, _, _ := s.Validate(map[string]any{"S_name": "ok", "other": "bad"})
	if len(issues) != 1 {
		t.Fatalf("expected exactly one additionalProperties issue, got %+v", issues)
	}
	issues, _, _ = s.Validate(map[string]any{"S_name": "ok"})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestStringLengthCountsCodepointsNotBytes(t *testing.T) {
	s := compile(t, map[string]any{"maxLength": 1.0})
	// U+1F600 GRINNING FACE is one codepoint but four UTF-8 bytes and a
	// UTF-16 surrogate pair.
	issues, _, _ := s.Validate("\U0001F600")
	if len(issues) != 0 {
		t.Fatalf("expected the emoji to count as one character, got %+v", issues)
	}
	issues, _, _ = s.Validate("\U0001F600\U0001F600")
	if len(issues) != 1 || issues[0].Keyword != "maxLength" {
		t.Fatalf("expected a maxLength issue for two characters, got %+v", issues)
	}
}

func TestRefResolvesAgainstDefinitions(t *testing.T) {
	s := compile(t, map[string]any{
		"definitions": map[string]any{
			"pos": map[string]any{"minimum": 0.0},
		},
		"properties": map[string]any{
			"x": map[string]any{"$ref": "#/definitions/pos"},
		},
	})
	issues, _, _ := s.Validate(map[string]any{"x": -1.0})
	if len(issues) != 1 || issues[0].Keyword != "minimum" {
		t.Fatalf("expected a minimum issue reached through $ref, got %+v", issues)
	}
	issues, _, _ = s.Validate(map[string]any{"x": 1.0})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestAllOfNestsBranchIssues(t *testing.T) {
	s := compile(t, map[string]any{
		"allOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"minLength": 5.0},
		},
	})
	issues, _, _ := s.Validate("hi")
	if len(issues) != 1 || issues[0].Keyword != "allOf" || len(issues[0].Nested) != 1 {
		t.Fatalf("expected one allOf issue nesting one minLength failure, got %+v", issues)
	}
}

func TestIfThenElseSelectsBranch(t *testing.T) {
	s := compile(t, map[string]any{
		"if":   map[string]any{"type": "string"},
		"then": map[string]any{"minLength": 3.0},
		"else": map[string]any{"minimum": 10.0},
	})
	if issues, _, _ := s.Validate("ab"); len(issues) != 1 || issues[0].Keyword != "minLength" {
		t.Fatalf("expected then-branch minLength issue, got %+v", issues)
	}
	if issues, _, _ := s.Validate(1.0); len(issues) != 1 || issues[0].Keyword != "minimum" {
		t.Fatalf("expected else-branch minimum issue, got %+v", issues)
	}
}

func TestMultipleOfToleratesFloatingPointNoise(t *testing.T) {
	s := compile(t, map[string]any{"multipleOf": 0.1})
	issues, _, _ := s.Validate(0.3)
	if len(issues) != 0 {
		t.Fatalf("expected 0.3 to be treated as a multiple of 0.1 despite binary rounding, got %+v", issues)
	}
	issues, _, _ = s.Validate(0.25)
	if len(issues) != 1 || issues[0].Keyword != "multipleOf" {
		t.Fatalf("expected a multipleOf issue, got %+v", issues)
	}
}

func TestBooleanSchemas(t *testing.T) {
	trueSchema := compile(t, true)
	if issues, _, _ := trueSchema.Validate(map[string]any{"anything": 1.0}); len(issues) != 0 {
		t.Fatalf("expected the `true` schema to accept everything, got %+v", issues)
	}
	falseSchema := compile(t, false)
	if issues, _, _ := falseSchema.Validate(1.0); len(issues) != 1 {
		t.Fatalf("expected the `false` schema to reject everything, got %+v", issues)
	}
}

func TestFailFastStopsAtFirstIssue(t *testing.T) {
	s := compile(t, map[string]any{
		"required": []any{"a", "b"},
	})
	issues, _, _ := s.Validate(map[string]any{}, WithFailFast(true))
	if len(issues) != 1 {
		t.Fatalf("expected fail-fast to keep only the first issue, got %+v", issues)
	}
}
