package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/targetconf/internal/config"
	"github.com/specialistvlad/targetconf/internal/ctxlog"
	"github.com/specialistvlad/targetconf/internal/fsutil"
	"github.com/specialistvlad/targetconf/internal/hclast"
)

// Extension is the file extension of program descriptions.
const Extension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL program loader.
func NewLoader() *Loader {
	return &Loader{}
}

// rootSchema lists the blocks allowed at the top level of a file.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "target"},
		{Type: "federate", LabelNames: []string{"name"}},
	},
}

// federateBody is decoded from the body of a `federate` block.
type federateBody struct {
	Board   hcl.Expression `hcl:"board,optional"`
	Address hcl.Expression `hcl:"address,optional"`
}

// Load parses every .hcl file under paths and merges them into one program.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Program, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := l.findAllHCLFiles(paths)
	if err != nil {
		return config.NewProgram(), hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Failed to read program files",
			Detail:   err.Error(),
		}}
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	var bodies []hcl.Body
	var diags hcl.Diagnostics
	for _, file := range files {
		f, fileDiags := parser.ParseHCLFile(file)
		diags = append(diags, fileDiags...)
		if f != nil {
			bodies = append(bodies, f.Body)
		}
	}

	program, decodeDiags := l.decode(ctx, bodies)
	program.Files = parser.Files()
	return program, append(diags, decodeDiags...)
}

// Parse reads a single in-memory source.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Program, hcl.Diagnostics) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	var bodies []hcl.Body
	if f != nil {
		bodies = append(bodies, f.Body)
	}
	program, decodeDiags := l.decode(ctx, bodies)
	program.Files = parser.Files()
	return program, append(diags, decodeDiags...)
}

func (l *Loader) decode(ctx context.Context, bodies []hcl.Body) (*config.Program, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	program := config.NewProgram()
	var diags hcl.Diagnostics

	var blocks hcl.Blocks
	for _, body := range bodies {
		content, contentDiags := body.Content(rootSchema)
		diags = append(diags, contentDiags...)
		if content != nil {
			blocks = append(blocks, content.Blocks...)
		}
	}

	target, uniqueDiags := FindUniqueBlock(blocks, "target")
	diags = append(diags, uniqueDiags...)
	if target != nil {
		attrs, attrDiags := target.Body.JustAttributes()
		diags = append(diags, attrDiags...)
		program.Target = attrs
		program.TargetRange = target.DefRange.Ptr()
	}

	for _, block := range blocks.OfType("federate") {
		federate, federateDiags := l.translateFederate(ctx, block)
		diags = append(diags, federateDiags...)
		if federate == nil {
			continue
		}
		if existing := program.Federate(federate.Name); existing != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate federate",
				Detail:   fmt.Sprintf("A federate named %q was already declared at %s.", federate.Name, existing.DefRange),
				Subject:  block.LabelRanges[0].Ptr(),
			})
			continue
		}
		program.Federates = append(program.Federates, federate)
	}

	logger.Debug("HCL decoding complete.", "target_attributes", len(program.Target), "federates", len(program.Federates), "diagnostics", len(diags))
	return program, diags
}

// translateFederate converts a `federate` block into the agnostic model.
func (l *Loader) translateFederate(ctx context.Context, block *hcl.Block) (*config.Federate, hcl.Diagnostics) {
	var body federateBody
	diags := gohcl.DecodeBody(block.Body, nil, &body)
	if diags.HasErrors() {
		return nil, diags
	}

	federate := &config.Federate{
		Name:     block.Labels[0],
		DefRange: block.DefRange,
	}
	if isExprDefined(ctx, body.Board, "board") {
		board, boardDiags := hclast.SingleString(body.Board)
		diags = append(diags, boardDiags...)
		federate.Board = board
	}
	if isExprDefined(ctx, body.Address, "address") {
		address, addrDiags := hclast.SingleString(body.Address)
		diags = append(diags, addrDiags...)
		federate.Address = address
		federate.AddressRange = body.Address.Range().Ptr()
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return federate, diags
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found. Unlike a directory, a missing explicit path is an error.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, Extension)
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				add(p)
			}
		} else if filepath.Ext(path) == Extension {
			add(path)
		} else {
			return nil, fmt.Errorf("%s is not a %s file", path, Extension)
		}
	}
	if len(allFiles) == 0 {
		return nil, fmt.Errorf("no %s files found in %v", Extension, paths)
	}
	return allFiles, nil
}
