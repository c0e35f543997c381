package mapfile

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/routegrid/citygrid"
)

// ErrDecode is returned when a map file cannot be parsed or decoded.
var ErrDecode = errors.New("mapfile: cannot decode map file")

// mapBlock is the content of the 'map' block of a map file.
type mapBlock struct {
	Rows []string `hcl:"rows"`
}

// mapFile is the top-level structure of a map file.
type mapFile struct {
	Map mapBlock `hcl:"map,block"`
}

// evalContext exposes the marker characters to row expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"free":    cty.StringVal(string(citygrid.Free)),
			"blocked": cty.StringVal(string(citygrid.Blocked)),
			"start":   cty.StringVal(string(citygrid.Start)),
			"goal":    cty.StringVal(string(citygrid.Goal)),
		},
	}
}

// Load reads and decodes the map file at path into a citygrid.Grid.
// Returns ErrDecode (wrapping the HCL diagnostics) for syntax or schema
// problems, or the citygrid sentinels for an invalid grid shape.
func Load(path string) (*citygrid.Grid, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	return decode(file)
}

// LoadBytes decodes an in-memory map file. The filename is used only in
// diagnostics.
func LoadBytes(filename string, src []byte) (*citygrid.Grid, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	return decode(file)
}

func decode(file *hcl.File) (*citygrid.Grid, error) {
	var mf mapFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &mf); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrDecode, diags.Error())
	}

	return citygrid.Parse(mf.Map.Rows)
}
