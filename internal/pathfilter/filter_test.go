package pathfilter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMatchFile(t *testing.T) {
	tests := []struct {
		name     string
		include  []string
		exclude  []string
		path     string
		expected bool
	}{
		{"default keeps everything", []string{"**"}, nil, "src/main.go", true},
		{"excluded vendor", []string{"**"}, []string{"vendor/**"}, "vendor/lib/x.go", false},
		{"nested vendor needs leading globstar", []string{"**"}, []string{"vendor/**"}, "app/vendor/x.go", true},
		{"globstar exclude", []string{"**"}, []string{"**/testdata/**"}, "pkg/a/testdata/in.json", false},
		{"include restricts", []string{"src/**"}, nil, "docs/readme.md", false},
		{"file uri prefix", []string{"src/**"}, nil, "file://src/main.go", true},
		{"dot slash prefix", []string{"**"}, []string{"vendor/**"}, "./vendor/x.go", false},
		{"windows separators", []string{"**"}, []string{"vendor/**"}, `vendor\x.go`, false},
		{"extension filter", []string{"**/*.go"}, nil, "cmd/tool/main.go", true},
		{"absolute file uri excluded", []string{"**"}, []string{"vendor/**"}, "file:///repo/vendor/x.go", false},
		{"absolute file uri kept", []string{"**"}, []string{"vendor/**"}, "file:///repo/src/x.go", true},
		{"absolute include", []string{"src/**"}, nil, "/home/ci/work/src/main.go", true},
		{"windows drive excluded", []string{"**"}, []string{"vendor/**"}, "file:///C:/work/vendor/x.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.include, tt.exclude)
			match, err := f.MatchFile(tt.path)
			if err != nil {
				t.Fatalf("MatchFile error: %v", err)
			}
			if match != tt.expected {
				t.Errorf("MatchFile(%q) = %v, want %v", tt.path, match, tt.expected)
			}
			if f.Allows(tt.path) != tt.expected {
				t.Errorf("Allows(%q) = %v, want %v", tt.path, !tt.expected, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := New([]string{"**/*.go"}, []string{"vendor/**"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	err := New([]string{"**"}, []string{"[unclosed"}).Validate()
	if err == nil {
		t.Fatal("Validate() should reject a malformed exclude pattern")
	}
	if !strings.Contains(err.Error(), "exclude") {
		t.Errorf("error %q should name the exclude pattern", err)
	}

	if New([]string{"[unclosed"}, nil).Allows("a.go") {
		t.Error("malformed pattern should never allow a path")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"src/a.go", "src/a.go"},
		{"./src/a.go", "src/a.go"},
		{"././a.go", "a.go"},
		{"file:///abs/a.go", "/abs/a.go"},
		{`src\win\a.go`, "src/win/a.go"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGlob(t *testing.T) {
	// Create test directory structure
	tmpDir := t.TempDir()

	files := []string{
		"reports/b.sarif",
		"reports/a.sarif",
		"reports/nested/c.sarif",
		"reports/notes.txt",
	}
	for _, f := range files {
		path := filepath.Join(tmpDir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}

	t.Run("globstar", func(t *testing.T) {
		got, err := Glob(filepath.Join(tmpDir, "reports", "**", "*.sarif"))
		if err != nil {
			t.Fatalf("Glob error: %v", err)
		}
		want := []string{
			filepath.Join(tmpDir, "reports", "a.sarif"),
			filepath.Join(tmpDir, "reports", "b.sarif"),
			filepath.Join(tmpDir, "reports", "nested", "c.sarif"),
		}
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("Glob() = %v, want %v", got, want)
		}
	})

	t.Run("literal path", func(t *testing.T) {
		path := filepath.Join(tmpDir, "reports", "notes.txt")
		got, err := Glob(path)
		if err != nil {
			t.Fatalf("Glob error: %v", err)
		}
		if len(got) != 1 || got[0] != path {
			t.Errorf("Glob() = %v, want [%s]", got, path)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, err := Glob(filepath.Join(tmpDir, "*.json")); err == nil {
			t.Error("Glob should fail when nothing matches")
		}
	})

	t.Run("directories are not inputs", func(t *testing.T) {
		if _, err := Glob(filepath.Join(tmpDir, "reports", "nest*")); err == nil {
			t.Error("Glob should not return directories")
		}
	})
}
