package sarif

import (
	"errors"
	"testing"
)

var validSARIF = `{
  "version": "2.1.0",
  "$schema": "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
  "runs": [
    {
      "tool": {
        "driver": {
          "name": "TestTool",
          "version": "1.0.0",
          "rules": [
            {
              "id": "RULE001",
              "name": "test-rule",
              "shortDescription": {"text": "Test rule description"},
              "helpUri": "https://example.com/rules/RULE001",
              "properties": {
                "tags": ["security", 7, "external/cwe/cwe-79"],
                "cwe": ["CWE-79", {"id": 1}, "CWE-80"],
                "precision": "high"
              }
            }
          ]
        }
      },
      "results": [
        {
          "ruleId": "RULE001",
          "level": "error",
          "message": {"text": "This is an error"},
          "locations": [
            {
              "physicalLocation": {
                "artifactLocation": {"uri": "src/main.go"},
                "region": {"startLine": 10, "startColumn": 5}
              }
            }
          ]
        },
        {
          "message": {"markdown": "**bold** finding"}
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	log, err := Parse([]byte(validSARIF))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if log.Version != "2.1.0" {
		t.Errorf("Version = %q, want %q", log.Version, "2.1.0")
	}
	if len(log.Runs) != 1 {
		t.Fatalf("len(Runs) = %d, want 1", len(log.Runs))
	}

	run := log.Runs[0]
	if run.Tool.Driver.Name != "TestTool" {
		t.Errorf("driver name = %q, want %q", run.Tool.Driver.Name, "TestTool")
	}
	if run.Tool.Driver.Version == nil || *run.Tool.Driver.Version != "1.0.0" {
		t.Errorf("driver version = %v, want 1.0.0", run.Tool.Driver.Version)
	}

	if len(run.Tool.Driver.Rules) != 1 {
		t.Fatalf("len(Rules) = %d, want 1", len(run.Tool.Driver.Rules))
	}
	rule := run.Tool.Driver.Rules[0]
	if rule.ShortDescription == nil || rule.ShortDescription.Text != "Test rule description" {
		t.Errorf("shortDescription = %v", rule.ShortDescription)
	}
	if rule.Properties == nil {
		t.Fatal("rule properties should be decoded")
	}
	if got := rule.Properties.Tags; len(got) != 2 || got[0] != "security" || got[1] != "external/cwe/cwe-79" {
		t.Errorf("Tags = %v, want only the string elements", got)
	}
	if got := rule.Properties.StringArray("cwe"); len(got) != 2 || got[0] != "CWE-79" || got[1] != "CWE-80" {
		t.Errorf("StringArray(cwe) = %v, want [CWE-79 CWE-80]", got)
	}
	if got := rule.Properties.StringArray("precision"); got != nil {
		t.Errorf("StringArray(precision) = %v, want nil for non-array entry", got)
	}

	if len(run.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(run.Results))
	}
	first := run.Results[0]
	if first.Level == nil || *first.Level != LevelError {
		t.Errorf("first level = %v, want error", first.Level)
	}
	region := first.Locations[0].PhysicalLocation.Region
	if region == nil || region.StartLine == nil || *region.StartLine != 10 || *region.StartColumn != 5 {
		t.Errorf("region = %+v, want line 10 column 5", region)
	}

	second := run.Results[1]
	if second.RuleID != nil {
		t.Errorf("second ruleId = %v, want nil", *second.RuleID)
	}
	if second.Level != nil {
		t.Errorf("second level = %v, want nil", *second.Level)
	}
	if second.Message.Text != nil || second.Message.Markdown == nil {
		t.Errorf("second message = %+v, want markdown only", second.Message)
	}
}

func TestParse_Minimal(t *testing.T) {
	log, err := Parse([]byte(`{"version":"2.1.0","runs":[]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(log.Runs) != 0 {
		t.Errorf("len(Runs) = %d, want 0", len(log.Runs))
	}
}

func TestParse_UnrecognizedLevelIsKept(t *testing.T) {
	log, err := Parse([]byte(`{"runs":[{"tool":{"driver":{"name":"x"}},"results":[{"level":"critical","message":{"text":"m"}}]}]}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	level := log.Runs[0].Results[0].Level
	if level == nil || *level != "critical" {
		t.Fatalf("level = %v, want critical", level)
	}
	if level.IsValid() {
		t.Error("critical should not be a valid SARIF level")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace", "   \n\t"},
		{"truncated json", `{"version":"2.1.0","runs":[`},
		{"not json", "{ invalid json content"},
		{"top-level array", `[{"runs":[]}]`},
		{"empty object", `{}`},
		{"null", `null`},
		{"unrelated object", `{"vulnerabilities":[]}`},
		{"runs is not an array", `{"runs":"nope"}`},
		{"level is not a string", `{"runs":[{"tool":{"driver":{"name":"x"}},"results":[{"level":3,"message":{}}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidSARIF) {
				t.Errorf("error = %v, want ErrInvalidSARIF", err)
			}
			if log != nil {
				t.Error("no partial log should be returned on error")
			}
		})
	}
}

func TestParse_EmptyInputSentinel(t *testing.T) {
	_, err := Parse(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("error = %v, want ErrEmptyInput", err)
	}
}

func TestLevelIsValid(t *testing.T) {
	tests := []struct {
		level Level
		valid bool
	}{
		{LevelError, true},
		{LevelWarning, true},
		{LevelNote, true},
		{LevelNone, true},
		{"", false},
		{"ERROR", false},
		{"info", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := tt.level.IsValid(); got != tt.valid {
				t.Errorf("Level(%q).IsValid() = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
