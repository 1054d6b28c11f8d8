package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/config"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/locale"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/navigator"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/headless"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/route"
)

const stopTimeout = 10 * time.Second

// session is everything a manifest run needs besides the UI thread.
type session struct {
	manifest config.Manifest
	registry *headless.Registry
	titles   *locale.Titles
	metrics  *prometheus.Registry
	tracing  *sdktrace.TracerProvider
	logger   *slog.Logger

	mu     sync.Mutex
	fatals []error
}

// loadSession reads a manifest and prepares logging, titles and metrics.
// Spans are written to traceOut when it is not nil.
func loadSession(path string, traceOut io.Writer) (*session, error) {
	m, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := m.Logging.Level
	if logLevel != "" {
		level = logLevel
	}
	wayfinder.Init(wayfinder.Options{LogPath: m.Logging.Path, LogLevel: level})

	reg, err := headless.NewRegistryFromManifest(m)
	if err != nil {
		return nil, err
	}

	titles, err := locale.New(m.Locale.Language)
	if err != nil {
		return nil, err
	}
	for _, file := range m.Locale.Files {
		if !filepath.IsAbs(file) {
			file = filepath.Join(filepath.Dir(path), file)
		}
		if err := titles.LoadFile(file); err != nil {
			return nil, err
		}
	}

	s := &session{
		manifest: m,
		registry: reg,
		titles:   titles,
		logger:   wayfinder.GetLogger(),
	}
	if m.Metrics.Enabled {
		s.metrics = prometheus.NewRegistry()
	}
	if traceOut != nil {
		if s.tracing, err = newTraceProvider(traceOut); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// close flushes spans and closes the log file.
func (s *session) close(ctx context.Context) {
	if s.tracing != nil {
		if err := s.tracing.Shutdown(ctx); err != nil {
			s.logger.Warn("Failed to shut down tracing", "error", err)
		}
	}
	wayfinder.Close()
}

// options returns the navigator options the manifest asks for.
func (s *session) options(extra ...navigator.Option) ([]navigator.Option, error) {
	opts := []navigator.Option{
		navigator.WithTimeout(s.manifest.Navigator.Timeout),
		navigator.WithFatalHandler(s.recordFatal),
	}
	if s.metrics != nil {
		m := navigator.NewMetrics(s.manifest.Metrics.Namespace)
		if err := m.Register(s.metrics); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		opts = append(opts, navigator.WithMetrics(m))
	}
	if s.tracing != nil {
		opts = append(opts, navigator.WithTracer(s.tracing.Tracer("wayfinder")))
	}
	return append(opts, extra...), nil
}

// recordFatal keeps configuration errors so the run can report them and
// fail instead of crashing mid-script.
func (s *session) recordFatal(err error) {
	s.logger.Error("Navigation configuration error", "error", err)
	s.mu.Lock()
	s.fatals = append(s.fatals, err)
	s.mu.Unlock()
}

func (s *session) fatalErrors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.fatals...)
}

func traceWriter(cmd interface{ ErrOrStderr() io.Writer }) io.Writer {
	if !traceSpans {
		return nil
	}
	return cmd.ErrOrStderr()
}

// play starts nav on the manifest root and runs every step in order,
// printing the breadcrumb each step leaves behind.
func (s *session) play(ctx context.Context, out io.Writer, nav *navigator.Navigator, installer navigator.RootInstaller, surface navigator.Surface) error {
	printSection(out, "Steps")
	defer s.stop(ctx, nav)

	res, err := nav.Start(installer, surface, route.Identifier(s.manifest.Root)).Wait(ctx)
	if err != nil {
		return err
	}
	s.printStep(out, 0, "start "+s.manifest.Root, res)

	for i, step := range s.manifest.Steps {
		res, err := nav.Dispatch(intent(step)).Wait(ctx)
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			printWarning(out, fmt.Sprintf("[%d] %s skipped: %v", i+1, describe(step), err))
		default:
			s.printStep(out, i+1, describe(step), res)
		}
	}

	if err := nav.Stop(ctx); err != nil {
		return err
	}

	fmt.Fprintln(out)
	printStats(out, nav.Stats())

	if s.metrics != nil {
		if err := s.printMetrics(out); err != nil {
			return err
		}
	}

	if fatals := s.fatalErrors(); len(fatals) > 0 {
		for _, err := range fatals {
			printError(out, err.Error())
		}
		return fmt.Errorf("%d unhandled navigation request(s)", len(fatals))
	}
	printSuccess(out, "route "+nav.Current().String())
	return nil
}

// stop drains nav even after ctx has ended, so no queued batch is left
// waiting on a UI thread that is about to close.
func (s *session) stop(ctx context.Context, nav *navigator.Navigator) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stopTimeout)
	defer cancel()
	if err := nav.Stop(ctx); err != nil {
		s.logger.Warn("Navigator did not stop cleanly", "error", err)
	}
}

func (s *session) printStep(out io.Writer, n int, what string, res navigator.Result) {
	fmt.Fprintf(out, "  [%d] %-28s %s", n, what, s.titles.Breadcrumb(res.Applied))
	_, _ = dimColor.Fprintf(out, "  (%d changes, %d timed out)\n", len(res.Changes), res.TimedOut)
}

func (s *session) printMetrics(out io.Writer) error {
	families, err := s.metrics.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(out)
	printSection(out, "Metrics")
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}

// intent maps a manifest step to a navigation intent.
func intent(step config.StepConfig) navigator.Intent {
	switch step.Op {
	case "show":
		return navigator.Show{Identifiers: identifiers(step.Identifiers), Animated: step.Animated}
	case "hide":
		return navigator.Hide{Identifier: route.Identifier(step.Identifier), Animated: step.Animated, Atomic: step.Atomic}
	default:
		return navigator.Navigate{Route: route.New(identifiers(step.Route)...), Animated: step.Animated}
	}
}

func describe(step config.StepConfig) string {
	switch step.Op {
	case "show":
		return "show " + joinIDs(step.Identifiers)
	case "hide":
		what := step.Identifier
		if what == "" {
			what = "<leaf>"
		}
		if step.Atomic {
			what += " (atomic)"
		}
		return "hide " + what
	default:
		return "navigate " + route.New(identifiers(step.Route)...).String()
	}
}

func identifiers(ids []string) []route.Identifier {
	out := make([]route.Identifier, len(ids))
	for i, id := range ids {
		out[i] = route.Identifier(id)
	}
	return out
}
