package latex

import (
	"path/filepath"
	"testing"
)

func TestNewStagingDirUsesLabels(t *testing.T) {
	root := t.TempDir()
	dir, err := NewStagingDir(root, "Acme Corp", "Senior Engineer")
	if err != nil {
		t.Fatalf("NewStagingDir: %v", err)
	}
	if filepath.Base(dir) != "Acme_Corp_Senior_Engineer" {
		t.Fatalf("got %q", filepath.Base(dir))
	}
}

func TestNewStagingDirCollisionCounter(t *testing.T) {
	root := t.TempDir()
	first, err := NewStagingDir(root, "Acme", "Engineer")
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewStagingDir(root, "Acme", "Engineer")
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first == second {
		t.Fatal("staging dirs collided")
	}
	if filepath.Base(second) != "Acme_Engineer_1" {
		t.Fatalf("got %q", filepath.Base(second))
	}
}
