package cli

import (
	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/navigator"
	"github.com/BrandonKowalski/wayfinder/pkg/wayfinder/platform/headless"
)

var playCmd = &cobra.Command{
	Use:   "play <manifest.toml>",
	Short: "Replay a manifest's steps on a headless screen tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(args[0], traceWriter(cmd))
		if err != nil {
			return err
		}
		defer s.close(cmd.Context())

		loop := headless.NewLoop()
		defer loop.Close()

		window := headless.NewWindow(loop, s.registry, headless.WithAnimation(s.manifest.Navigator.Animation))

		opts, err := s.options()
		if err != nil {
			return err
		}
		nav := navigator.New(loop, opts...)

		s.logger.Debug("Playing manifest", "path", args[0], "steps", len(s.manifest.Steps))
		return s.play(cmd.Context(), cmd.OutOrStdout(), nav, window, window)
	},
}
