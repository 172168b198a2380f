package sections

import (
	"errors"
	"testing"
)

func TestResolveDefaultsToGenerate(t *testing.T) {
	for _, s := range Order {
		action, err := Resolve(s, PolicyMap{})
		if err != nil {
			t.Fatalf("resolve %s: %v", s, err)
		}
		if action != Generate {
			t.Fatalf("resolve %s: got %q, want generate", s, action)
		}
	}
}

func TestResolveHonorsExplicitEntry(t *testing.T) {
	policies := PolicyMap{
		Skills:       Verbatim,
		Publications: Omit,
	}
	action, err := Resolve(Skills, policies)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if action != Verbatim {
		t.Fatalf("got %q, want verbatim", action)
	}
	action, err = Resolve(Publications, policies)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if action != Omit {
		t.Fatalf("got %q, want omit", action)
	}
}

func TestResolveUnknownSection(t *testing.T) {
	_, err := Resolve(Section("hobbies"), PolicyMap{})
	if !errors.Is(err, ErrUnknownSection) {
		t.Fatalf("got %v, want ErrUnknownSection", err)
	}
}

func TestResolveIgnoresBogusAction(t *testing.T) {
	action, err := Resolve(Skills, PolicyMap{Skills: Action("maybe")})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if action != Generate {
		t.Fatalf("got %q, want generate fallback", action)
	}
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := PolicyMap{Skills: Verbatim}
	merged := Merge(base, PolicyMap{Skills: Omit, Awards: Omit})
	if base[Skills] != Verbatim {
		t.Fatalf("base mutated")
	}
	if merged[Skills] != Omit || merged[Awards] != Omit {
		t.Fatalf("override not applied: %v", merged)
	}
}
