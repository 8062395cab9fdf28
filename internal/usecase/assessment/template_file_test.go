package assessment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainassessment "sitecheck/internal/domain/assessment"
)

func TestLoadTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.toml")
	content := `
[[question]]
text = "Is the storefront clean?"

[[question]]
text = "  Are fire exits clear?  "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	tpl, err := LoadTemplateFile(path)
	if err != nil {
		t.Fatalf("LoadTemplateFile() error = %v", err)
	}
	if tpl.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", tpl.Size())
	}
	if tpl.Questions[1] != "Are fire exits clear?" {
		t.Fatalf("second prompt = %q, want trimmed file order", tpl.Questions[1])
	}
}

func TestLoadTemplateFileRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.toml")
	if err := os.WriteFile(path, []byte("# no questions\n"), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	if _, err := LoadTemplateFile(path); !errors.Is(err, domainassessment.ErrEmptyTemplate) {
		t.Fatalf("LoadTemplateFile() error = %v, want ErrEmptyTemplate", err)
	}
}

func TestLoadTemplateFileMissing(t *testing.T) {
	if _, err := LoadTemplateFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("LoadTemplateFile() must fail for a missing file")
	}
}
