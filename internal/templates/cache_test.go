package templates

import (
	"context"
	"errors"
	"testing"
)

type countingSource struct {
	repo  *MemoryRepo
	calls int
}

func (s *countingSource) GetByName(ctx context.Context, name string) (Template, error) {
	s.calls++
	return s.repo.GetByName(ctx, name)
}

func TestCacheMemoizesLookups(t *testing.T) {
	repo := NewMemoryRepo()
	if err := repo.Create(context.Background(), Template{ID: "t1", Name: "preamble", Kind: KindPreamble, Content: "\\documentclass{article}"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	src := &countingSource{repo: repo}
	cache := NewCache(src)

	for i := 0; i < 3; i++ {
		content, err := cache.Get(context.Background(), "preamble")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if content != "\\documentclass{article}" {
			t.Fatalf("got %q", content)
		}
	}
	if src.calls != 1 {
		t.Fatalf("source called %d times, want 1", src.calls)
	}

	cache.Invalidate()
	if _, err := cache.Get(context.Background(), "preamble"); err != nil {
		t.Fatalf("get after invalidate: %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("source called %d times after invalidate, want 2", src.calls)
	}
}

func TestCacheMissPropagatesNotFound(t *testing.T) {
	cache := NewCache(&countingSource{repo: NewMemoryRepo()})
	_, err := cache.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()
	if err := SeedDefaults(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	first, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("no templates seeded")
	}
	if err := SeedDefaults(context.Background(), repo); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("reseed changed count: %d -> %d", len(first), len(second))
	}
	tpl, err := repo.GetByName(context.Background(), NamePreamble)
	if err != nil {
		t.Fatalf("preamble missing after seed: %v", err)
	}
	if tpl.Kind != KindPreamble {
		t.Fatalf("got kind %q", tpl.Kind)
	}
}
