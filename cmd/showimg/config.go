package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/showimg/internal/config"
	"gopkg.in/yaml.v3"
)

func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  showimg config validate [--path PATH]")
	fmt.Fprintln(w, "  showimg config print [--path PATH] [--defaults]")
	fmt.Fprintln(w, "  showimg config explain [--path PATH] <key>")
}

func runConfig(args []string) int {
	return runConfigTo(args, os.Stdout, os.Stderr)
}

func runConfigTo(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		printConfigUsage(stderr)
		return 2
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/showimg/config.yaml)")

	switch args[0] {
	case "validate":
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if _, err := loadConfig(*path, nil); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, "config: ok")
		return 0

	case "print":
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no file)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadConfig(*path, nil)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			if res.File != "" {
				fmt.Fprintf(stdout, "# loaded from %s\n", res.File)
			}
			cfg = res.Config
		}
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprint(stdout, string(data))
		return 0

	case "explain":
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if fs.NArg() < 1 {
			fmt.Fprintln(stderr, "explain requires <key>")
			return 2
		}
		key := fs.Arg(0)

		res, err := loadConfig(*path, nil)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		value, src, err := config.Explain(res, key)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		out, err := yaml.Marshal(value)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}

		fmt.Fprintf(stdout, "key: %s\n", key)
		fmt.Fprintf(stdout, "source: %s\n", src)
		fmt.Fprintf(stdout, "value: %s", out)
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
