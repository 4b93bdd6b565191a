package provider

import (
	"context"
	"testing"
)

type fakeProvider struct {
	name string
}

func (f *fakeProvider) Name() string                       { return f.name }
func (f *fakeProvider) IsAvailable(_ context.Context) bool { return true }

func TestRegistry_CreateAndGet(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	reg.RegisterFactory("fake", func(cfg map[string]any) (*fakeProvider, error) {
		name := "fake"
		if v, ok := cfg["name"].(string); ok {
			name = v
		}
		return &fakeProvider{name: name}, nil
	})

	p, err := reg.Create("fake", map[string]any{"name": "custom"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Name() != "custom" {
		t.Errorf("expected name custom, got %s", p.Name())
	}

	reg.Set("fake", p)
	got, ok := reg.Get("fake")
	if !ok || got != p {
		t.Error("expected cached instance back")
	}
}

func TestRegistry_UnknownFactory(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	if _, err := reg.Create("missing", nil); err == nil {
		t.Error("expected error for unregistered factory")
	}
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry[*fakeProvider]()
	factory := func(cfg map[string]any) (*fakeProvider, error) { return &fakeProvider{}, nil }
	reg.RegisterFactory("b", factory)
	reg.RegisterFactory("a", factory)

	names := reg.List()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted [a b], got %v", names)
	}
}
