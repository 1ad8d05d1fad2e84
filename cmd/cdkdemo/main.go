package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/odvcencio/cdk/pkg/cdk"
	"github.com/odvcencio/cdk/pkg/config"
	"github.com/odvcencio/cdk/pkg/logging"
	"github.com/odvcencio/cdk/pkg/ui/backend/sim"
	"github.com/odvcencio/cdk/pkg/ui/surface"
	"github.com/odvcencio/cdk/pkg/ui/terminal"
)

// Version information - set via ldflags during build
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "cdkdemo: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	backend    string
	keys       string
	version    bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cdkdemo", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "config file (default ~/.cdk/config.yaml then ./.cdk/config.yaml)")
	fs.StringVar(&opts.backend, "backend", "", "terminal backend: tcell or sim")
	fs.StringVar(&opts.keys, "keys", "", "space-separated key names replayed into the button, e.g. \"tab\" or \"esc\"")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Terminal.Backend = strings.ToLower(opts.backend)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logging.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return logging.Discard(), nil, nil
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	f, err := logging.Open(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, "cdkdemo", level), f, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.version {
		fmt.Fprintf(stdout, "cdkdemo %s (%s)\n", version, commit)
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	keys, err := terminal.ParseKeys(opts.keys)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	theme, err := cfg.Theme.Build()
	if err != nil {
		return err
	}

	var (
		host   cdk.Host
		screen *sim.Backend
	)
	switch cfg.Terminal.Backend {
	case config.BackendSim:
		host, screen = surface.Simulated(cfg.Terminal.Width, cfg.Terminal.Height)
		if len(keys) == 0 {
			keys = []terminal.KeyEvent{terminal.Press(terminal.KeyEnter)}
		}
	default:
		host = surface.Tcell()
	}

	canvas, err := cdk.Open(host, cdk.WithLogger(logger.Logger), cdk.WithTheme(theme))
	if err != nil {
		return err
	}
	defer canvas.Close()

	exit, index, err := demo(canvas, keys)
	if err != nil {
		return err
	}

	var frame string
	if screen != nil {
		frame = screen.Capture()
	}
	if err := canvas.Close(); err != nil {
		return err
	}
	if frame != "" {
		fmt.Fprintln(stdout, strings.TrimRight(frame, "\n "))
	}
	fmt.Fprintf(stdout, "exit=%s index=%d\n", exit, index)
	return nil
}

// demo places a label, a button and an alpha list, then activates the button.
func demo(canvas *cdk.Canvas, keys []terminal.KeyEvent) (cdk.ExitType, int, error) {
	if _, err := cdk.NewLabel(canvas,
		cdk.Position{X: cdk.Center, Y: cdk.Abs(5)},
		[]string{"libcdk", "demo", version},
		cdk.DrawingOptions{},
	); err != nil {
		return cdk.ExitNeverActivated, -1, err
	}

	button, err := cdk.NewButton(canvas,
		cdk.Position{X: cdk.Center, Y: cdk.Abs(10)},
		"Press me",
		cdk.DrawingOptions{Box: true, Shadow: true},
	)
	if err != nil {
		return cdk.ExitNeverActivated, -1, err
	}

	if _, err := cdk.NewAlphaList(canvas, cdk.At(0, 0), cdk.AlphaListContent{
		Title:  "Title",
		Items:  []string{"10", "thing", "I", "hate"},
		Width:  10,
		Height: 4,
		Filler: '_',
	}, cdk.DrawingOptions{}); err != nil {
		return cdk.ExitNeverActivated, -1, err
	}

	canvas.Refresh()

	index, err := button.Activate(keys...)
	if err != nil {
		return button.ExitType(), index, err
	}
	return button.ExitType(), index, nil
}
