package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"
	"github.com/zooyer/dxfgeo"
	"github.com/zooyer/dxfgeo/entities"
	"github.com/zooyer/golib/xmath"
)

const epsilon = 1e-9 // 范围宽高小于该值视为退化

func newInfoCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "显示图纸的要素类型、数量和范围",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts, err := flags.options(cmd, logger)
			if err != nil {
				return err
			}
			store, err := dxf.Open(args[0], opts)
			if err != nil {
				return err
			}
			return printInfo(store)
		},
	}
	flags.register(cmd)
	return cmd
}

func printInfo(store *dxf.Store) error {
	doc, err := store.Document()
	if err != nil {
		return err
	}
	names, err := store.TypeNames()
	if err != nil {
		return err
	}
	reader, err := store.Reader("")
	if err != nil {
		return err
	}
	features := reader.All()

	fmt.Println(StyleTitle.Render(store.Name()))
	printRow("version", StyleValue.Render(doc.Header.Version))
	printRow("layers", StyleNumber.Render(strconv.Itoa(len(doc.Layers))))
	printRow("blocks", StyleNumber.Render(strconv.Itoa(len(doc.Blocks))))
	printRow("entities", StyleNumber.Render(strconv.Itoa(len(doc.Entities))))
	printRow("features", StyleNumber.Render(strconv.Itoa(len(features))))

	counts := make(map[entities.GeometryType]int)
	classes := make(map[string]int)
	for _, f := range features {
		counts[f.Kind]++
		classes[f.Class]++
	}
	for _, kind := range []entities.GeometryType{entities.PointGeometry, entities.LineGeometry, entities.PolygonGeometry} {
		if counts[kind] > 0 {
			printRow("  "+store.TypeName(kind), StyleNumber.Render(strconv.Itoa(counts[kind])))
		}
	}
	if n := counts[entities.UnsupportedGeometry]; n > 0 {
		printRow("  unsupported", StyleNumber.Render(strconv.Itoa(n)))
	}

	keys := make([]string, 0, len(classes))
	for class := range classes {
		keys = append(keys, class)
	}
	sort.Strings(keys)
	for _, class := range keys {
		printRow("  "+class, StyleDim.Render(strconv.Itoa(classes[class])))
	}

	bound, err := store.Bounds(nil)
	if err != nil {
		return err
	}
	printRow("type names", StyleValue.Render(fmt.Sprint(names)))
	if bound == nil {
		printRow("bounds", StyleDim.Render("-"))
		return nil
	}
	printRow("bounds", StyleValue.Render(formatBound(*bound))+" "+renderBool(!degenerate(*bound)))
	return nil
}

func formatBound(b orb.Bound) string {
	return fmt.Sprintf("RECTANG %.2f,%.2f %.2f,%.2f", b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}

func degenerate(b orb.Bound) bool {
	return xmath.Equal(b.Min[0], b.Max[0], epsilon) || xmath.Equal(b.Min[1], b.Max[1], epsilon)
}
