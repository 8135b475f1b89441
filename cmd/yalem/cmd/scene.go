package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yalem-ui/yalem/cmd/yalem/internal/config"
	"github.com/yalem-ui/yalem/cmd/yalem/internal/demos"
	"github.com/yalem-ui/yalem/pkg/core"
	"github.com/yalem-ui/yalem/pkg/engine"
	"github.com/yalem-ui/yalem/pkg/rendering"
)

// sceneOptions are the flags shared by render and ops.
type sceneOptions struct {
	demo      string
	configDir string
	out       string
	size      rendering.Size
	hasSize   bool
	clicks    []rendering.Offset
}

func parseSceneArgs(args []string) (sceneOptions, error) {
	var opts sceneOptions
	value := func(i *int, name string) (string, error) {
		arg := args[*i]
		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v, nil
		}
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, _, _ := strings.Cut(arg, "=")
		switch name {
		case "--out":
			v, err := value(&i, name)
			if err != nil {
				return opts, err
			}
			opts.out = v
		case "--config":
			v, err := value(&i, name)
			if err != nil {
				return opts, err
			}
			opts.configDir = v
		case "--size":
			v, err := value(&i, name)
			if err != nil {
				return opts, err
			}
			size, err := parseSize(v)
			if err != nil {
				return opts, err
			}
			opts.size, opts.hasSize = size, true
		case "--click":
			v, err := value(&i, name)
			if err != nil {
				return opts, err
			}
			pos, err := parsePoint(v)
			if err != nil {
				return opts, err
			}
			opts.clicks = append(opts.clicks, pos)
		default:
			if strings.HasPrefix(arg, "--") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			if opts.demo != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.demo = arg
		}
	}

	if opts.demo == "" {
		return opts, fmt.Errorf("demo name is required (see \"yalem demos\")")
	}
	return opts, nil
}

// parseSize parses "WxH".
func parseSize(s string) (rendering.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return rendering.Size{}, fmt.Errorf("size %q must be WIDTHxHEIGHT", s)
	}
	width, err1 := strconv.ParseFloat(w, 64)
	height, err2 := strconv.ParseFloat(h, 64)
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return rendering.Size{}, fmt.Errorf("size %q must be two positive numbers", s)
	}
	return rendering.Size{Width: width, Height: height}, nil
}

// parsePoint parses "X,Y".
func parsePoint(s string) (rendering.Offset, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return rendering.Offset{}, fmt.Errorf("click %q must be X,Y", s)
	}
	x, err1 := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, err2 := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err1 != nil || err2 != nil {
		return rendering.Offset{}, fmt.Errorf("click %q must be two numbers", s)
	}
	return rendering.Offset{X: x, Y: y}, nil
}

// scene is an App built from a demo and the resolved configuration, with
// one config window per App window.
type scene struct {
	app     *engine.App
	windows []config.Window
	counter *demos.Counter
	cfg     *config.Resolved
}

func buildScene(opts sceneOptions) (*scene, error) {
	demo, ok := demos.Lookup(opts.demo)
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (see \"yalem demos\")", opts.demo)
	}

	cfg := config.Defaults()
	if opts.configDir != "" {
		resolved, err := config.Resolve(opts.configDir)
		if err != nil {
			return nil, err
		}
		cfg = resolved
	}

	s := &scene{app: engine.New(), counter: demos.NewCounter(), cfg: cfg}
	for _, wc := range cfg.Windows {
		if opts.hasSize {
			wc.Size = opts.size
		}
		s.windows = append(s.windows, wc)
		s.app.WithWindow(engine.NewWindow().
			Title(wc.Title).
			Clear(wc.Clear).
			Root(demo.Build(s.counter)).
			Build())
	}
	return s, nil
}

// script turns the requested clicks into driver inputs. Windows whose size
// differs from the driver's initial size are resized and redrawn first,
// clicks go to the first window, and every window is closed at the end.
func (s *scene) script(ids []engine.WindowID, clicks []rendering.Offset) <-chan engine.Input {
	ch := make(chan engine.Input, 2*len(ids)+len(clicks)+len(ids))
	for i, id := range ids {
		if s.windows[i].Size != s.windows[0].Size {
			ch <- engine.Resize{Window: id, Size: s.windows[i].Size}
			ch <- engine.RedrawRequest{Window: id}
		}
	}
	if len(ids) > 0 {
		for _, pos := range clicks {
			ch <- engine.Press{Window: ids[0], Button: core.MouseLeft, Position: pos}
		}
	}
	for _, id := range ids {
		ch <- engine.CloseRequest{Window: id}
	}
	close(ch)
	return ch
}
