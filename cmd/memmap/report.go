package main

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/ianlancetaylor/demangle"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/grafana/memmap/pkg/memmap"
	memmapcontext "github.com/grafana/memmap/pkg/memmap/context"
	"github.com/grafana/memmap/pkg/objfile"
)

type reportParams struct {
	Path            string
	Layout          memmap.Layout
	Symbols         bool
	DemangleOptions []demangle.Option
	Color           bool
}

func report(ctx context.Context, fs afero.Fs, params *reportParams) error {
	logger := memmapcontext.Logger(ctx)
	out := memmapcontext.Output(ctx)

	if err := params.Layout.Validate(); err != nil {
		return err
	}
	f, err := objfile.Open(fs, params.Path)
	if err != nil {
		return errors.Wrapf(err, "load %s", params.Path)
	}
	symbols, err := f.Symbols()
	if err != nil {
		return err
	}
	sections, err := f.Sections()
	if err != nil {
		return err
	}
	level.Debug(logger).Log(
		"msg", "loaded object file",
		"path", f.Path,
		"size", humanize.IBytes(uint64(f.Size)),
		"compression", f.Compression,
		"machine", f.Machine,
		"class", f.Class,
		"sections", len(sections),
		"symbols", len(symbols),
	)

	renderer := &memmap.Renderer{Color: params.Color}
	for _, r := range params.Layout {
		level.Debug(logger).Log("msg", "analyzing region", "region", r.Name, "range", r.Region, "capacity", humanize.IBytes(uint64(r.Capacity())))

		rep, err := memmap.Analyze(f, r)
		if err != nil {
			return errors.Wrapf(err, "region %s", r.Name)
		}
		if rep.Overflow() {
			level.Warn(logger).Log("msg", "region over-allocated", "region", r.Name, "total", rep.Total.String(), "capacity", rep.Capacity().String())
		}
		if err := renderer.Render(out, rep); err != nil {
			return err
		}

		selected := memmap.SelectSymbols(r.Region, symbols)
		named := memmap.OrderSymbols(selected, &memmap.SymbolsOptions{DemangleOptions: params.DemangleOptions})
		if dropped := len(selected) - len(named); dropped > 0 {
			level.Warn(logger).Log("msg", "skipped symbols with undecodable names", "region", r.Name, "count", dropped)
		}
		if params.Symbols {
			if err := renderer.RenderSymbols(out, r.Name, named); err != nil {
				return err
			}
		}
	}
	return nil
}
