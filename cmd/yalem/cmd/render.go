package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/yalem-ui/yalem/pkg/engine"
	"github.com/yalem-ui/yalem/pkg/raster"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a demo to PNG",
		Long: `Render a demo with the software rasterizer and save the final frame
of every window as a PNG file.

Clicks are delivered to the first window in order, each followed by a
redraw, the same way a platform event loop would deliver them.

Flags:
  --out FILE       Output file (default: <demo>.png; extra windows get -2, -3, ...)
  --config DIR     Read yalem.yaml or yalem.toml from DIR
  --size WxH       Override the size of every window
  --click X,Y      Left click at X,Y (repeatable)`,
		Usage: "yalem render <demo> [--out FILE] [--config DIR] [--size WxH] [--click X,Y]...",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	s, err := buildScene(opts)
	if err != nil {
		return err
	}

	driver, ids := engine.NewDriver(s.app, raster.NewForSize, s.windows[0].Size)
	driver.SetLogger(slog.Default().With(slog.String("app", s.cfg.AppName)))

	frames := make(map[engine.WindowID]*raster.Canvas)
	driver.OnFrame = func(id engine.WindowID, surface rendering.Surface) {
		if canvas, ok := surface.(*raster.Canvas); ok {
			frames[id] = canvas
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := driver.Run(ctx, s.script(ids, opts.clicks)); err != nil {
		return err
	}

	for i, id := range ids {
		canvas, ok := frames[id]
		if !ok {
			return fmt.Errorf("window %q produced no frame", s.windows[i].Title)
		}
		path := outputPath(opts.out, opts.demo, i)
		if err := writePNG(path, canvas); err != nil {
			return err
		}
		slog.Debug("wrote frame", slog.String("window", s.windows[i].Title), slog.String("path", path))
		fmt.Fprintf(stdout, "%s\n", path)
	}
	return nil
}

// outputPath returns the file for window i.
func outputPath(out, demo string, i int) string {
	if out == "" {
		out = demo + ".png"
	}
	if i == 0 {
		return out
	}
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(out, ext), i+1, ext)
}

func writePNG(path string, canvas *raster.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := canvas.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
