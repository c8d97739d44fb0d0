package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/eventbinder/internal/config"
	"github.com/specialistvlad/eventbinder/internal/ctxlog"
	"github.com/specialistvlad/eventbinder/internal/fsutil"
	"github.com/specialistvlad/eventbinder/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths, in walk order, and merges
// them into a single model.
func (l *Loader) Load(ctx context.Context, catalog config.EventCatalog, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		logger.Warn("No .hcl files found.", "paths", paths)
	}
	logger.Debug("Discovered HCL files.", "files", files)

	evalCtx := newEvalContext(catalog)
	parser := hclparse.NewParser()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		fileModel, err := l.decodeFile(ctx, hclFile, file, evalCtx)
		if err != nil {
			return nil, nil, err
		}
		model.Merge(fileModel)
	}

	logger.Debug("HCL loading complete.", "modules", len(model.Modules), "groups", len(model.Groups), "rules", model.RuleCount())
	return model, NewConverter(evalCtx), nil
}

// LoadSource parses a single in-memory HCL document.
func (l *Loader) LoadSource(ctx context.Context, catalog config.EventCatalog, filename string, src []byte) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader parsing in-memory source.", "filename", filename)

	evalCtx := newEvalContext(catalog)
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	model, err := l.decodeFile(ctx, hclFile, filename, evalCtx)
	if err != nil {
		return nil, nil, err
	}
	return model, NewConverter(evalCtx), nil
}

func (l *Loader) decodeFile(ctx context.Context, file *hcl.File, filename string, evalCtx *hcl.EvalContext) (*config.Model, error) {
	var root schema.File
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model, err := translateFile(&root, filename, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("in %s: %w", filename, err)
	}

	ctxlog.FromContext(ctx).Debug("Decoded HCL file.", "file", filename, "modules", len(model.Modules), "groups", len(model.Groups))
	return model, nil
}
