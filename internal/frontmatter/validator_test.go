package frontmatter

import (
	"testing"
)

func TestValidate_AcceptsComponentHeader(t *testing.T) {
	data := []byte("id: TS101\nname: ds18b20\nshort: Waterproof probe\nqr_url: https://example.org/t/\n")

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, got %d issues:", len(result.Issues))
		for _, issue := range result.Issues {
			t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
		}
	}
}

func TestValidate_FlagsNonStringFields(t *testing.T) {
	data := []byte("id: TS101\nname: 42\nqr_url: true\n")

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected schema violations")
	}
	paths := make(map[string]bool)
	for _, issue := range result.Issues {
		paths[issue.Path] = true
		if issue.Keyword != "type" {
			t.Errorf("expected keyword type, got %q at %s", issue.Keyword, issue.Path)
		}
	}
	if !paths["/name"] {
		t.Errorf("expected an issue at /name, got %v", result.Issues)
	}
	if !paths["/qr_url"] {
		t.Errorf("expected an issue at /qr_url, got %v", result.Issues)
	}
}

func TestValidate_ToleratesUnknownKeys(t *testing.T) {
	data := []byte("id: TS101\nhide:\n  - toc\nvendor: aliexpress\n")

	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected unknown keys to pass, got issues: %v", result.Issues)
	}
}

func TestValidate_RejectsNonMappingDocument(t *testing.T) {
	result, err := Validate([]byte("just a scalar\n"))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected a non-mapping document to be invalid")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidate_InvalidYAMLReturnsError(t *testing.T) {
	if _, err := Validate([]byte("id: [unclosed\n")); err == nil {
		t.Fatal("expected an error for unparsable YAML")
	}
}
