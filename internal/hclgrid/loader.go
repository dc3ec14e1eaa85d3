package hclgrid

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/evalgridgo/internal/config"
	"github.com/vk/evalgridgo/internal/ctxlog"
	"github.com/vk/evalgridgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL grid loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every .hcl file under path (or path itself if it is a file),
// decodes the node blocks, and returns the validated model. Nodes keep file
// order within a file and sorted-path order across files, so a grid always
// loads into the same model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid path: %w", err)
	}

	paths := []string{path}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("scanning grid directory: %w", err)
		}
	}
	logger.Debug("Loading grid files.", "count", len(paths))

	model := &config.Model{}
	for _, p := range paths {
		nodes, err := l.loadFile(ctx, p)
		if err != nil {
			return nil, err
		}
		model.Nodes = append(model.Nodes, nodes...)
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}
	logger.Debug("Grid model loaded.", "nodes", len(model.Nodes))
	return model, nil
}

// loadFile parses one grid file into config nodes.
func (l *Loader) loadFile(ctx context.Context, path string) ([]*config.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing grid file.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}

	var grid gridFile
	if diags := gohcl.DecodeBody(file.Body, nil, &grid); diags.HasErrors() {
		return nil, diags
	}

	nodes := make([]*config.Node, 0, len(grid.Nodes))
	for _, block := range grid.Nodes {
		args, err := resolveArguments(block)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &config.Node{
			Fn:        block.Fn,
			Name:      block.Name,
			Arguments: args,
			DependsOn: block.DependsOn,
		})
	}
	return nodes, nil
}

// resolveArguments evaluates a node's argument expressions to concrete
// values. Arguments are static: they may not reference other nodes, whose
// outputs reach a function through its dependency values instead.
func resolveArguments(block *nodeBlock) (map[string]cty.Value, error) {
	if block.Arguments == nil {
		return nil, nil
	}

	attrs, diags := block.Arguments.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	args := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("node %q argument %q: %w", block.Name, name, diags)
		}
		args[name] = val
	}
	return args, nil
}
