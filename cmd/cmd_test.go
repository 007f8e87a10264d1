package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drawing = strings.Join([]string{
	"0", "SECTION", "2", "ENTITIES",
	"0", "POINT", "8", "0", "10", "1", "20", "2",
	"0", "LINE", "8", "0", "10", "0", "20", "0", "11", "5", "21", "0",
	"0", "ENDSEC",
	"0", "EOF",
}, "\n") + "\n"

func TestParseBound(t *testing.T) {
	b, err := parseBound("0, 0, 10, 5")
	require.NoError(t, err)
	assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 5}}, *b)

	b, err = parseBound("")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = parseBound("1,2,3")
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "plan.geojson"), outputName("/data/plan.dxf", "out", "geojson"))
	assert.Equal(t, filepath.Join("/data", "plan.csv"), outputName("/data/plan.dxf.gz", "", "csv"))
}

func TestDegenerate(t *testing.T) {
	assert.True(t, degenerate(orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{1, 5}}))
	assert.False(t, degenerate(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 5}}))
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plan.dxf")
	require.NoError(t, os.WriteFile(file, []byte(drawing), 0644))

	root := newRootCmd()
	root.SetArgs([]string{"convert", "--format", "csv", "--type", "plan_point", file})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "plan.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,the_geom,lineType"))
	assert.True(t, strings.HasPrefix(lines[1], "0,POINT(1 2)"))

	root = newRootCmd()
	root.SetArgs([]string{"convert", "-o", dir, file})
	require.NoError(t, root.Execute())

	data, err = os.ReadFile(filepath.Join(dir, "plan.geojson"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"LineString"`)
	assert.Contains(t, string(data), `"class":"POINT"`)
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"convert", "--format", "kml", "plan.dxf"})
	assert.Error(t, root.Execute())
}

func TestDragArgs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plan.dxf")
	require.NoError(t, os.WriteFile(file, []byte(drawing), 0644))

	args, dragged := dragArgs([]string{file})
	assert.True(t, dragged)
	assert.Equal(t, []string{"convert", file}, args)

	args, dragged = dragArgs([]string{"info", file})
	assert.False(t, dragged)
	assert.Equal(t, []string{"info", file}, args)
}
