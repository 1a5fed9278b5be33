// Package hclreq loads a feature selection from HCL request files.
//
// A request is a single `project` block:
//
//	project {
//	  name      = "harbor-house"
//	  business  = "Harbor House"
//	  framework = "react"
//	  industry  = "restaurant"
//	  features  = ["contact-form", "gallery"]
//
//	  business_data = {
//	    phone = "+1 555 0123"
//	  }
//	}
//
// The loader accepts a single .hcl file or a directory, in which case all
// .hcl files under it are parsed and exactly one project block must exist
// across them.
package hclreq

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/siteforge/internal/ctxlog"
	"github.com/vk/siteforge/internal/fsutil"
	"github.com/vk/siteforge/internal/request"
)

// projectBlock mirrors the HCL surface of a project request. business_data
// is kept as a raw expression and converted by hand so that the error for a
// non-string value can name the offending key.
type projectBlock struct {
	Name         string         `hcl:"name"`
	Business     string         `hcl:"business"`
	Framework    string         `hcl:"framework"`
	Industry     string         `hcl:"industry,optional"`
	Features     []string       `hcl:"features,optional"`
	BusinessData hcl.Expression `hcl:"business_data,optional"`
}

// fileRoot decodes the top-level blocks of any request file.
type fileRoot struct {
	Projects []*projectBlock `hcl:"project,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// Loader parses HCL request files into a feature selection.
type Loader struct{}

// NewLoader creates a new HCL request loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the request at path, which may be a single file or a
// directory of .hcl files, and returns the decoded selection. The selection
// is structurally validated before it is returned.
func (l *Loader) Load(ctx context.Context, path string) (*request.FeatureSelection, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.requestFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl request files found at %s", path)
	}
	logger.Debug("Discovered request files.", "count", len(files))

	parser := hclparse.NewParser()
	var projects []*projectBlock
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse request file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode request file %s: %w", file, diags)
		}
		projects = append(projects, root.Projects...)
	}

	if len(projects) == 0 {
		return nil, fmt.Errorf("no project block found in %s", path)
	}
	if len(projects) > 1 {
		return nil, fmt.Errorf("exactly one project block is allowed, found %d in %s", len(projects), path)
	}

	sel, err := l.translateProject(projects[0])
	if err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Request loaded.", "project", sel.ProjectName, "features", len(sel.SelectedFeatures))
	return sel, nil
}

func (l *Loader) requestFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing request path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return fsutil.FindFilesByExtension(path, ".hcl")
}

// translateProject converts the decoded block into the domain selection.
func (l *Loader) translateProject(block *projectBlock) (*request.FeatureSelection, error) {
	data, err := businessData(block.BusinessData)
	if err != nil {
		return nil, err
	}
	return &request.FeatureSelection{
		ProjectName:      block.Name,
		BusinessName:     block.Business,
		Framework:        block.Framework,
		Industry:         block.Industry,
		SelectedFeatures: block.Features,
		BusinessData:     data,
	}, nil
}

// businessData evaluates the raw business_data expression into a string
// map. The attribute is optional; a nil or null expression yields nil.
func businessData(expr hcl.Expression) (map[string]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate business_data: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("business_data must be a map of strings, got %s", val.Type().FriendlyName())
	}

	out := make(map[string]string)
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		if v.Type() != cty.String || v.IsNull() {
			return nil, fmt.Errorf("business_data value for %q must be a string", k.AsString())
		}
		out[k.AsString()] = v.AsString()
	}
	return out, nil
}
