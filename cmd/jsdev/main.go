package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phyten/jsdev/internal/config"
	"github.com/phyten/jsdev/internal/engine"
	"github.com/phyten/jsdev/internal/tagset"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "preview" {
		os.Exit(previewCmd(os.Args[2:]))
	}
	os.Exit(scanCmd(os.Args[1:]))
}

func scanCmd(args []string) int {
	fs := flag.NewFlagSet("jsdev", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: jsdev [flags] [token...]")
		fmt.Fprintln(os.Stderr, "tokens: <tag>, <tag>:<method>, -comment <text>")
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "config file (default: discovered .jsdev.*)")
		colorFlag  = fs.String("color", "", "auto|always|never")
		maxTag     = fs.Int("max-tag-length", 0, "maximum tag name length")
	)
	flagArgs, tokens := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return 2
	}

	settings, err := resolveSettings(*configPath, *colorFlag, *maxTag, tokens)
	if err != nil {
		reportConfigError(err)
		return 2
	}
	reg, err := tagset.Build(settings.Tokens(), settings.MaxTagLength)
	if err != nil {
		reportConfigError(err)
		return 2
	}

	if err := engine.New(os.Stdin, os.Stdout, reg).Run(); err != nil {
		reportScanError(err, settings.Color)
		return 1
	}
	return 0
}

// resolveSettings layers defaults, the discovered (or explicit) config
// file, JSDEV_* environment variables, and command-line values, in that
// order. Positional tokens replace any configured tag list.
func resolveSettings(configPath, colorFlag string, maxTag int, tokens []string) (config.Settings, error) {
	var layers []config.FileConfig

	path, _, err := config.Find(".", configPath, os.Getenv("XDG_CONFIG_HOME"), os.Getenv("HOME"))
	if err != nil {
		return config.Settings{}, err
	}
	if path != "" {
		fileLayer, err := config.Load(path)
		if err != nil {
			return config.Settings{}, err
		}
		layers = append(layers, fileLayer)
	}

	envLayer, err := config.FromEnv(os.Getenv)
	if err != nil {
		return config.Settings{}, err
	}
	layers = append(layers, envLayer, cliLayer(colorFlag, maxTag, tokens))

	return config.Merge(config.Defaults(), layers...).Normalize()
}

// splitArgs separates leading flags from configuration tokens. -comment is
// a token, not a flag, so any dash argument that is not a defined flag ends
// the flag section; a defined non-boolean flag written without = consumes
// the following argument as its value.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, tokens []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flagArgs, args[i+1:]
		}
		if len(arg) < 2 || arg[0] != '-' {
			return flagArgs, args[i:]
		}
		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		hasValue := false
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			hasValue = true
			name = name[:eq]
		}
		if name == "h" || name == "help" {
			flagArgs = append(flagArgs, arg)
			continue
		}
		def := fs.Lookup(name)
		if def == nil {
			return flagArgs, args[i:]
		}
		flagArgs = append(flagArgs, arg)
		if !hasValue && !isBoolFlag(def) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
	}
	return flagArgs, nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func cliLayer(colorFlag string, maxTag int, tokens []string) config.FileConfig {
	var layer config.FileConfig
	if colorFlag != "" {
		layer.Color = &colorFlag
	}
	if maxTag > 0 {
		layer.MaxTagLength = &maxTag
	}
	if len(tokens) > 0 {
		layer.Tags = &tokens
	}
	return layer
}
