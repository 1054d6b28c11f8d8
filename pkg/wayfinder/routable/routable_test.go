package routable_test

import (
	"testing"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/routable"
)

type screen struct {
	*routable.Configured
	id       route.Identifier
	children []routable.Routable
}

func newScreen(id route.Identifier, p routable.Platform, table routable.Table) *screen {
	s := &screen{id: id}
	s.Configured = routable.NewConfigured(s, p, table)
	return s
}

func (s *screen) RouteIdentifier() route.Identifier { return s.id }
func (s *screen) VisibleChildren() []routable.Routable { return s.children }
func (s *screen) Change(routable.ChangeRequest, routable.Completion) bool { return false }

type call struct {
	op     string
	target route.Identifier
	screen route.Identifier
}

type recordingPlatform struct {
	calls []call
}

func (p *recordingPlatform) Push(onto, s routable.Routable, _ bool, done routable.Completion) {
	p.calls = append(p.calls, call{"push", onto.RouteIdentifier(), s.RouteIdentifier()})
	done()
}

func (p *recordingPlatform) Pop(s routable.Routable, _ bool, done routable.Completion) {
	p.calls = append(p.calls, call{"pop", s.RouteIdentifier(), ""})
	done()
}

func (p *recordingPlatform) Present(from, s routable.Routable, _ bool, done routable.Completion) {
	p.calls = append(p.calls, call{"present", from.RouteIdentifier(), s.RouteIdentifier()})
	done()
}

func (p *recordingPlatform) Dismiss(s routable.Routable, _ bool, done routable.Completion) {
	p.calls = append(p.calls, call{"dismiss", s.RouteIdentifier(), ""})
	done()
}

func TestChainFollowsLastChild(t *testing.T) {
	leaf := &screen{id: "leaf"}
	modal := &screen{id: "modal", children: []routable.Routable{leaf}}
	a := &screen{id: "a"}
	b := &screen{id: "b", children: []routable.Routable{modal}}
	root := &screen{id: "root", children: []routable.Routable{a, b}}

	got := routable.Identifiers(routable.Chain(root))
	want := route.New("root", "a", "b", "modal", "leaf")
	if !got.Equal(want) {
		t.Errorf("Chain = %v, want %v", got, want)
	}
}

func TestChainNilRoot(t *testing.T) {
	if chain := routable.Chain(nil); len(chain) != 0 {
		t.Errorf("expected empty chain, got %d", len(chain))
	}
}

func TestIndexOf(t *testing.T) {
	a, b := &screen{id: "a"}, &screen{id: "b"}
	chain := []routable.Routable{a, b}

	if i := routable.IndexOf(chain, b); i != 1 {
		t.Errorf("IndexOf(b) = %d", i)
	}
	if i := routable.IndexOf(chain, &screen{id: "b"}); i != -1 {
		t.Errorf("IndexOf(other b) = %d, handlers compare by identity", i)
	}
}

func TestConfiguredShowPush(t *testing.T) {
	p := &recordingPlatform{}
	detail := func(any) routable.Routable { return &screen{id: "detail"} }
	home := newScreen("home", p, routable.Table{
		routable.ShowSource("detail"): routable.Push(detail),
	})

	completed := false
	ok := home.Show(routable.Request{Identifier: "detail", From: home}, func() { completed = true })

	if !ok {
		t.Fatal("expected home to accept show(detail)")
	}
	if !completed {
		t.Error("expected completion to fire")
	}
	if len(p.calls) != 1 || p.calls[0] != (call{"push", "home", "detail"}) {
		t.Errorf("unexpected platform calls: %+v", p.calls)
	}
}

func TestConfiguredDeclinesOnMiss(t *testing.T) {
	p := &recordingPlatform{}
	home := newScreen("home", p, routable.Table{
		routable.ShowSource("detail"): routable.Push(func(any) routable.Routable { return &screen{id: "detail"} }),
	})

	if home.Show(routable.Request{Identifier: "settings", From: home}, func() {}) {
		t.Error("expected show(settings) to be declined")
	}
	if home.Hide(routable.Request{Identifier: "detail", From: home}, func() {}) {
		t.Error("expected hide(detail) to be declined: only show is configured")
	}
	if len(p.calls) != 0 {
		t.Errorf("declined requests must not touch the platform: %+v", p.calls)
	}
}

func TestFactoryReceivesContext(t *testing.T) {
	p := &recordingPlatform{}
	var got any
	home := newScreen("home", p, routable.Table{
		routable.ShowSource("login"): routable.PresentModally(func(ctx any) routable.Routable {
			got = ctx
			return &screen{id: "login"}
		}),
	})

	home.Show(routable.Request{Identifier: "login", From: home, Context: "token"}, func() {})

	if got != "token" {
		t.Errorf("factory context = %v", got)
	}
	if p.calls[0].op != "present" {
		t.Errorf("expected present, got %s", p.calls[0].op)
	}
}

func TestDismissBehaviours(t *testing.T) {
	p := &recordingPlatform{}
	login := &screen{id: "login"}
	home := newScreen("home", p, routable.Table{
		routable.HideSource("login"): routable.DismissModally(routable.DismissPresented),
		routable.HideSource("home"):  routable.DismissModally(routable.DismissSelf),
	})
	home.children = []routable.Routable{login}

	home.Hide(routable.Request{Identifier: "login", From: login}, func() {})
	home.Hide(routable.Request{Identifier: "home", From: home}, func() {})

	want := []call{{"dismiss", "login", ""}, {"dismiss", "home", ""}}
	if len(p.calls) != len(want) {
		t.Fatalf("calls = %+v", p.calls)
	}
	for i := range want {
		if p.calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, p.calls[i], want[i])
		}
	}
}

func TestDismissPresentedWithNothingPresented(t *testing.T) {
	p := &recordingPlatform{}
	home := newScreen("home", p, routable.Table{
		routable.HideSource("login"): routable.DismissModally(routable.DismissPresented),
	})

	completed := false
	home.Hide(routable.Request{Identifier: "login", From: home}, func() { completed = true })

	if !completed {
		t.Error("expected completion when there is nothing to dismiss")
	}
	if len(p.calls) != 0 {
		t.Errorf("unexpected calls: %+v", p.calls)
	}
}

func TestCustomPrimitive(t *testing.T) {
	var seen routable.Transition
	home := newScreen("home", nil, routable.Table{
		routable.ShowSource("sheet"): routable.Custom(func(tr routable.Transition, done routable.Completion) {
			seen = tr
			done()
		}),
	})

	completed := false
	home.Show(routable.Request{Identifier: "sheet", From: home, Animated: true}, func() { completed = true })

	if !completed {
		t.Error("custom primitive owns completion")
	}
	if seen.Handler != home || seen.Direction != routable.Show || !seen.Animated {
		t.Errorf("unexpected transition: %+v", seen)
	}
}
