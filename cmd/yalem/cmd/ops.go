package cmd

import (
	"fmt"

	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "ops",
		Short: "Print the display list of a demo",
		Long: `Lay out a demo and print the surface calls of its final frame, one
per line, for every window.

Flags:
  --config DIR     Read yalem.yaml or yalem.toml from DIR
  --size WxH       Override the size of every window
  --click X,Y      Left click at X,Y in the first window (repeatable)`,
		Usage: "yalem ops <demo> [--config DIR] [--size WxH] [--click X,Y]...",
		Run:   runOps,
	})
}

func runOps(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	s, err := buildScene(opts)
	if err != nil {
		return err
	}

	for i, window := range s.app.Windows() {
		size := s.windows[i].Size
		recorder := &rendering.PictureRecorder{}
		draw := func() (*rendering.DisplayList, error) {
			err := window.Draw(recorder.BeginRecording(size))
			return recorder.EndRecording(), err
		}

		dl, err := draw()
		if err != nil {
			return err
		}
		if i == 0 {
			for _, pos := range opts.clicks {
				if err := window.Dispatch(core.MousePressed{Button: core.MouseLeft, Position: pos}); err != nil {
					return err
				}
				if dl, err = draw(); err != nil {
					return err
				}
			}
		}

		fmt.Fprintf(stdout, "# window %q %gx%g\n", window.Title(), size.Width, size.Height)
		for _, op := range dl.Ops() {
			fmt.Fprintln(stdout, op)
		}
	}
	return nil
}
