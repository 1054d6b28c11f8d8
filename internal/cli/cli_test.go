package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/navigator"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/headless"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	diffFrom, diffTo, diffAtomic = "", "", false
	logLevel = ""
	traceSpans = false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"wayfinder", "Navigation:", "diff", "play"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version output = %q", out)
	}

	SetVersion("")
	if rootCmd.Version != "1.2.3" {
		t.Errorf("empty version should be ignored, got %q", rootCmd.Version)
	}
}

func TestDiffCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "hide",
			args: []string{"diff", "--from", "home/list/detail", "--to", "home"},
			want: []string{"common index: 0", "1. hide(detail)", "2. hide(list)"},
		},
		{
			name: "atomic hide",
			args: []string{"diff", "--from", "home/list/detail", "--to", "home", "--atomic"},
			want: []string{"1. hide(list)"},
		},
		{
			name: "change",
			args: []string{"diff", "--from", "home/list", "--to", "home/settings"},
			want: []string{"1. change(home: list -> settings)"},
		},
		{
			name: "initial install",
			args: []string{"diff", "--to", "home"},
			want: []string{"<none> → home", "common index: -1", "root_change(<none> -> home)"},
		},
		{
			name: "same route",
			args: []string{"diff", "--from", "home", "--to", "home"},
			want: []string{"no changes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestDiffRejectsEmptyTarget(t *testing.T) {
	if _, err := run(t, "diff", "--from", "home", "--to", "/"); err == nil {
		t.Error("expected an error for an empty target")
	}
}

const playManifest = `
root = "home"

[navigator]
timeout = "1s"

[metrics]
enabled = true
namespace = "play"

[locale]
language = "en"
files = ["en.toml"]

[[screen]]
id = "home"

  [[screen.transition]]
  target = "detail"
  direction = "show"
  primitive = "push"

  [[screen.transition]]
  target = "login"
  direction = "show"
  primitive = "present"

[[screen]]
id = "detail"

  [[screen.transition]]
  target = "detail"
  direction = "hide"
  primitive = "pop"

[[screen]]
id = "login"

  [[screen.transition]]
  target = "login"
  direction = "hide"
  primitive = "dismiss"

[[step]]
op = "show"
identifiers = ["detail"]

[[step]]
op = "show"
identifiers = ["login"]

[[step]]
op = "hide"
identifier = "login"

[[step]]
op = "hide"
identifier = "ghost"

[[step]]
op = "navigate"
route = ["home"]
`

const playMessages = `
"screen.home" = "Home"
"screen.detail" = "Details"
`

func writeManifest(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.toml"), []byte(playMessages), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "app.toml")
	if err := os.WriteFile(path, []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlayCommand(t *testing.T) {
	out, err := run(t, "play", writeManifest(t, playManifest))
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}

	for _, want := range []string{
		"[0] start home",
		"Home > Details > login",
		"[4] hide ghost skipped",
		"batches: 6",
		"unhandled: 0",
		"play_navigator_batches_total",
		"✓ route home",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPlayTraceWritesSpans(t *testing.T) {
	out, err := run(t, "play", "--trace", writeManifest(t, playManifest))
	if err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, out)
	}
	for _, want := range []string{`"Name": "navigator.navigate"`, `"Name": "navigator.change"`, "wayfinder.batch"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q", want)
		}
	}
}

func TestPlayReportsUnhandled(t *testing.T) {
	manifest := strings.Replace(playManifest, `identifiers = ["login"]`, `identifiers = ["nowhere"]`, 1)

	out, err := run(t, "play", writeManifest(t, manifest))
	if err == nil {
		t.Fatalf("expected unhandled show to fail the run:\n%s", out)
	}
	if !strings.Contains(out, `show "nowhere": no handler accepted`) {
		t.Errorf("output missing the unhandled error:\n%s", out)
	}
}

func TestPlayRejectsInvalidManifest(t *testing.T) {
	if _, err := run(t, "play", writeManifest(t, `root = "home"`)); err == nil {
		t.Error("expected a manifest without screens to fail")
	}
}

func TestPlayStopsNavigatorWhenCancelled(t *testing.T) {
	s, err := loadSession(writeManifest(t, playManifest), nil)
	if err != nil {
		t.Fatalf("loadSession: %v", err)
	}
	t.Cleanup(func() { s.close(context.Background()) })

	loop := headless.NewLoop()
	t.Cleanup(loop.Close)
	window := headless.NewWindow(loop, s.registry)

	opts, err := s.options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	nav := navigator.New(loop, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := s.play(ctx, &buf, nav, window, window); err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("play: %v", err)
	}

	_, err = nav.Show([]route.Identifier{"detail"}, false, nil).Wait(context.Background())
	if !errors.Is(err, navigator.ErrStopped) {
		t.Errorf("Show after cancelled play = %v, want ErrStopped", err)
	}
	if pending := nav.Stats().Pending; pending != 0 {
		t.Errorf("pending batches = %d", pending)
	}
}
