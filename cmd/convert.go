package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
	"github.com/zooyer/dxfgeo"
	"github.com/zooyer/golib/xos"
	"golang.org/x/sync/errgroup"
)

type convertOpts struct {
	sourceFlags
	format   string
	typeName string
	bbox     string
	output   string
}

func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert <file>...",
		Short: "导出要素为 GeoJSON 或 CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, &opts)
		},
	}

	opts.sourceFlags.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "geojson", "输出格式: geojson 或 csv")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "只导出指定类型，例如 plan_line")
	cmd.Flags().StringVar(&opts.bbox, "bbox", "", "只导出与范围相交的要素 minx,miny,maxx,maxy")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "输出目录，缺省与图纸同目录")
	return cmd
}

func runConvert(cmd *cobra.Command, files []string, opts *convertOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.format != "geojson" && opts.format != "csv" {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	storeOpts, err := opts.options(cmd, logger)
	if err != nil {
		return err
	}
	bound, err := parseBound(opts.bbox)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return convertFile(ctx, file, storeOpts, opts, bound, logger.With("file", filepath.Base(file)))
		})
	}
	return g.Wait()
}

func convertFile(ctx context.Context, file string, storeOpts dxf.Options, opts *convertOpts, bound *orb.Bound, logger *log.Logger) error {
	prog := newProgress(logger)

	storeOpts.Logger = logger
	store, err := dxf.Open(file, storeOpts)
	if err != nil {
		return err
	}
	features, err := store.Query(dxf.Query{TypeName: opts.typeName, Bound: bound})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	name := outputName(file, opts.output, opts.format)
	switch opts.format {
	case "csv":
		err = writeCSV(name, features)
	default:
		err = writeGeoJSON(name, features)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Wrote %d features", len(features)))
	printSuccess("%s %s", StyleValue.Render(name), StyleNumber.Render(strconv.Itoa(len(features))))
	return nil
}

func outputName(file, dir, format string) string {
	name := dxf.BaseName(file) + "." + format
	if dir == "" {
		dir = filepath.Dir(file)
	}
	return filepath.Join(dir, name)
}

func writeGeoJSON(name string, features []*dxf.Feature) error {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		gf := geojson.NewFeature(f.Geometry)
		gf.ID = f.ID
		gf.Properties = f.Properties()
		fc.Append(gf)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}

func writeCSV(name string, features []*dxf.Feature) error {
	header := make([]string, 0, len(dxf.Schema))
	header = append(header, "id")
	for _, attr := range dxf.Schema {
		if attr.Name != "entity" {
			header = append(header, attr.Name)
		}
	}
	if err := os.WriteFile(name, []byte(strings.Join(header, ",")+"\n"), 0644); err != nil {
		return err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, f := range features {
		props := f.Properties()
		row := []string{f.ID, wkt.MarshalString(f.Geometry)}
		for _, attr := range dxf.Schema[1:] {
			if attr.Name == "entity" {
				continue
			}
			row = append(row, fmt.Sprint(props[attr.Name]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return xos.AppendFile(name, buf.Bytes(), 0644)
}
