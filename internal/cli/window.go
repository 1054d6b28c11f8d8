//go:build sdl

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/navigator"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/headless"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/sdlui"
)

const frameInterval = 16 * time.Millisecond

var (
	windowTitle string
	windowExit  bool
)

var windowCmd = &cobra.Command{
	Use:   "window <manifest.toml>",
	Short: "Replay a manifest's steps with an SDL window tracking the route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(args[0], traceWriter(cmd))
		if err != nil {
			return err
		}
		defer s.close(cmd.Context())

		var runErr error
		sdlui.Run(func() {
			runErr = runWindow(cmd, s)
		})
		return runErr
	},
}

func init() {
	windowCmd.GroupID = "navigation"
	rootCmd.AddCommand(windowCmd)

	windowCmd.Flags().StringVar(&windowTitle, "title", "wayfinder", "Window title prefix")
	windowCmd.Flags().BoolVar(&windowExit, "exit", false, "Close the window once every step has run")
}

func runWindow(cmd *cobra.Command, s *session) error {
	ui := sdlui.NewMainThread()
	defer ui.Close()

	var win *sdlui.Window
	var err error
	ui.Sync(func() {
		win, err = sdlui.OpenWindow(windowTitle, sdlui.WindowOptions{Resizable: true})
	})
	if err != nil {
		return err
	}
	defer ui.Sync(win.Close)

	tree := headless.NewWindow(ui, s.registry, headless.WithAnimation(s.manifest.Navigator.Animation))
	bar := sdlui.NewTitleBar(ui, win, s.titles)

	opts, err := s.options(navigator.OnApplied(bar.Observe))
	if err != nil {
		return err
	}
	nav := navigator.New(ui, opts...)

	if err := s.play(cmd.Context(), cmd.OutOrStdout(), nav, tree, tree); err != nil {
		return err
	}
	if windowExit {
		return nil
	}

	for running := true; running; {
		ui.Sync(func() { running = win.Frame() })
		time.Sleep(frameInterval)
	}
	return nil
}
