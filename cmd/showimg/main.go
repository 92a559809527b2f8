package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/showimg/internal/config"
	"github.com/1broseidon/showimg/internal/platform"
	"github.com/1broseidon/showimg/internal/tui"
	"github.com/1broseidon/showimg/internal/x11"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "config":
			os.Exit(runConfig(os.Args[2:]))
		case "help":
			printMainUsage(os.Stdout)
			os.Exit(0)
		}
	}
	os.Exit(runViewer(os.Args[1:]))
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: showimg [options] [FILE]")
	fmt.Fprintln(w, "       showimg config <validate|print|explain> [--path PATH]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Shows FILE in a borderless window. Without FILE the image is taken from")
	fmt.Fprintln(w, "the clipboard (when enabled) or chosen with an interactive file picker.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -f, -file FILE        Image file to open")
	fmt.Fprintln(w, "  -quit ACCEL           Quit accelerator, e.g. \"<Control>q\" or \"none\"")
	fmt.Fprintln(w, "  -mouse MODE           Mouse behavior: none, drag, passthrough")
	fmt.Fprintln(w, "  -no-context-menu      Do not open the window menu on right click")
	fmt.Fprintln(w, "  -no-maximize          Do not toggle maximize on double click")
	fmt.Fprintln(w, "  -clipboard MODE       Read the image from the clipboard: no, primary, yes")
	fmt.Fprintln(w, "  -config PATH          Config file (default: ~/.config/showimg/config.yaml)")
	fmt.Fprintln(w, "  -debug                Enable debug logging")
}

// viewerFlags is the parsed command line of the viewer.
type viewerFlags struct {
	configPath string
	overrides  config.Overrides
}

func parseViewerFlags(args []string, stderr io.Writer) (*viewerFlags, error) {
	fs := flag.NewFlagSet("showimg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printMainUsage(stderr) }

	var (
		file       string
		quit       string
		mouse      config.MouseBehavior
		clip       config.ClipboardMode
		noMenu     bool
		noMaximize bool
		debug      bool
		configPath string
	)
	fs.StringVar(&file, "f", "", "image file to open")
	fs.StringVar(&file, "file", "", "image file to open")
	fs.StringVar(&quit, "quit", "", "quit accelerator")
	fs.Var(&mouse, "mouse", "mouse behavior: none, drag, passthrough")
	fs.Var(&clip, "clipboard", "clipboard mode: no, primary, yes")
	fs.BoolVar(&noMenu, "no-context-menu", false, "disable the window menu on right click")
	fs.BoolVar(&noMaximize, "no-maximize", false, "disable maximize on double click")
	fs.BoolVar(&debug, "debug", false, "enable debug logging")
	fs.StringVar(&configPath, "config", "", "config file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	out := &viewerFlags{configPath: configPath}
	switch fs.NArg() {
	case 0:
	case 1:
		if file != "" {
			return nil, fmt.Errorf("file given both as -file and as argument")
		}
		file = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	o := &out.overrides
	if file != "" {
		o.SetFile(file)
	}
	if set["quit"] {
		o.SetQuitAccelerator(quit)
	}
	if set["mouse"] {
		o.SetMouseBehavior(mouse)
	}
	if set["clipboard"] {
		o.SetClipboardMode(clip)
	}
	if set["no-context-menu"] {
		o.SetDisableContextMenu(noMenu)
	}
	if set["no-maximize"] {
		o.SetDisableMaximizeOnDoubleClick(noMaximize)
	}
	if debug {
		o.SetLogLevel("debug")
	}
	return out, nil
}

func loadConfig(path string, overrides *config.Overrides) (*config.LoadResult, error) {
	if path == "" {
		return config.Load(overrides)
	}
	return config.LoadFromPath(path, overrides)
}

func runViewer(args []string) int {
	log.SetFlags(0)
	log.SetPrefix("showimg: ")

	flags, err := parseViewerFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Println(err)
		return 2
	}

	res, err := loadConfig(flags.configPath, &flags.overrides)
	if err != nil {
		tui.ShowError("Invalid configuration", err)
		return 1
	}
	cfg := res.Config
	if res.File != "" {
		log.Printf("Loaded config from %s", res.File)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	img, err := selectImage(ctx, cfg, defaultImageSources(logger), logger)
	if errors.Is(err, tui.ErrCancelled) {
		return 0
	}
	if err != nil {
		tui.ShowError("Cannot open image", err)
		return 1
	}
	logger.Debug("image loaded", "format", img.Format, "width", img.Width, "height", img.Height, "path", img.Path)

	conn, err := x11.NewConnection()
	if err != nil {
		tui.ShowError("Cannot connect to display", err)
		return 1
	}
	defer conn.Close()

	viewer, err := platform.NewLinuxViewer(conn, img.Image, platform.OptionsFromConfig(cfg, windowTitle(res, img)), logger)
	if err != nil {
		tui.ShowError("Cannot create window", err)
		return 1
	}
	defer viewer.Close()

	// Quit only posts a message to the event loop. The goroutine is joined
	// before the window and the connection go away.
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			viewer.Quit()
		case <-done:
		}
	}()
	defer func() {
		close(done)
		<-stopped
	}()

	viewer.Show()
	viewer.Run()
	return 0
}
