package templates

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/google/uuid"
)

//go:embed defaults/*.tex
var defaultsFS embed.FS

// SeedDefaults inserts the embedded default templates for any name not
// already present, so a fresh database can compile out of the box.
// Existing templates are never overwritten.
func SeedDefaults(ctx context.Context, repo Repo) error {
	entries, err := fs.ReadDir(defaultsFS, "defaults")
	if err != nil {
		return fmt.Errorf("read embedded templates: %w", err)
	}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".tex")
		exists, err := repo.Exists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		content, err := fs.ReadFile(defaultsFS, "defaults/"+entry.Name())
		if err != nil {
			return err
		}
		tpl := Template{
			ID:      uuid.NewString(),
			Name:    name,
			Kind:    kindFor(name),
			Version: 1,
			Content: string(content),
		}
		if err := repo.Create(ctx, tpl); err != nil {
			return fmt.Errorf("seed template %q: %w", name, err)
		}
	}
	return nil
}

func kindFor(name string) string {
	switch name {
	case NamePreamble:
		return KindPreamble
	case NameCoverLetter:
		return KindCoverLetter
	default:
		return KindSection
	}
}
