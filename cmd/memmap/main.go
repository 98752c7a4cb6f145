package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/common/version"
	"github.com/spf13/afero"
	"gopkg.in/alecthomas/kingpin.v2"

	memmapcontext "github.com/grafana/memmap/pkg/memmap/context"
	"github.com/grafana/memmap/pkg/memmap/demangle"
	"github.com/grafana/memmap/pkg/memmap/layout"
)

var cfg struct {
	verbose  bool
	noColor  bool
	symbols  bool
	demangle string
	path     string
}

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(consoleOutput)
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Report how the sections of an ELF image use the memory regions of an ESP32-C3.").UsageWriter(os.Stdout)
	app.Version(version.Print("memmap"))
	app.HelpFlag.Short('h')
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("false").BoolVar(&cfg.verbose)
	app.Flag("no-color", "Disable colored output.").Default("false").BoolVar(&cfg.noColor)
	app.Flag("symbols", "Print the symbols placed in each region.").Default("false").BoolVar(&cfg.symbols)
	app.Flag("demangle", "Demangling of symbol names: "+strings.Join(demangle.Modes, ", ")+".").Default("full").EnumVar(&cfg.demangle, demangle.Modes...)
	app.Arg("elf", "Path to the ELF image.").Required().StringVar(&cfg.path)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// enable verbose logging if requested
	if !cfg.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	ctx := memmapcontext.WithLogger(context.Background(), logger)
	ctx = memmapcontext.WithOutput(ctx, os.Stdout)

	demangleOptions, err := demangle.Options(cfg.demangle)
	if err != nil {
		os.Exit(checkError(err))
	}
	params := &reportParams{
		Path:            cfg.path,
		Layout:          layout.ESP32C3(),
		Symbols:         cfg.symbols,
		DemangleOptions: demangleOptions,
		Color:           !cfg.noColor && isatty.IsTerminal(os.Stdout.Fd()),
	}
	os.Exit(checkError(report(ctx, afero.NewOsFs(), params)))
}

func checkError(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return 1
}
