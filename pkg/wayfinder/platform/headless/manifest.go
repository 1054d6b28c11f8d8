package headless

import (
	"fmt"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/config"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

// NewRegistryFromManifest registers a builder for every screen a manifest
// declares. The manifest is expected to have passed validation.
func NewRegistryFromManifest(m config.Manifest) (*Registry, error) {
	reg := NewRegistry()
	for _, sc := range m.Screens {
		for _, t := range sc.Transitions {
			if err := checkPrimitive(t); err != nil {
				return nil, fmt.Errorf("screen %q: %w", sc.ID, err)
			}
		}
		reg.Register(route.Identifier(sc.ID), screenBuilder(sc))
	}
	return reg, nil
}

func screenBuilder(sc config.ScreenConfig) Builder {
	id := route.Identifier(sc.ID)
	return func(w *Window, _ any) *Screen {
		table := make(routable.Table, len(sc.Transitions))
		for _, t := range sc.Transitions {
			src := routable.ShowSource(route.Identifier(t.Target))
			if t.Direction == "hide" {
				src = routable.HideSource(route.Identifier(t.Target))
			}
			table[src] = primitive(w, t)
		}

		if len(sc.Tabs) == 0 {
			return NewScreen(w, id, table)
		}
		tabs := make([]route.Identifier, len(sc.Tabs))
		for i, tab := range sc.Tabs {
			tabs[i] = route.Identifier(tab)
		}
		return NewTabs(w, id, table, tabs, route.Identifier(sc.InitialTab))
	}
}

func checkPrimitive(t config.TransitionConfig) error {
	switch t.Primitive {
	case "push", "pop", "present", "dismiss":
		return nil
	default:
		return fmt.Errorf("unknown primitive %q for %q", t.Primitive, t.Target)
	}
}

func primitive(w *Window, t config.TransitionConfig) routable.Primitive {
	target := route.Identifier(t.Target)
	switch t.Primitive {
	case "push":
		return routable.Push(w.Factory(target))
	case "present":
		return routable.PresentModally(w.Factory(target))
	case "dismiss":
		if t.Dismiss == "presented" {
			return routable.DismissModally(routable.DismissPresented)
		}
		return routable.DismissModally(routable.DismissSelf)
	default:
		return routable.Pop()
	}
}
