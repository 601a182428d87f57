// Copyright (c) The Modspec Authors
// SPDX-License-Identifier: MPL-2.0

// Package manifest reads module manifest files: the declaration of a
// module's own identity plus the list of other modules it requires, each
// requirement expressed as a module specification.
//
// Manifests are written in HCL native syntax, or JSON for files with a
// .json suffix:
//
//	module "web" {
//	  version     = "1.2.0"
//	  description = "Example"
//
//	  required_modules = [
//	    "Utils",
//	    "@{ ModuleName = 'Logging'; ModuleVersion = '2.0' }",
//	    { ModuleName = "Db", RequiredVersion = "3.1.4" },
//	  ]
//	}
package manifest

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	version "github.com/hashicorp/go-version"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"

	"github.com/modspec/modspec/internal/collections"
	"github.com/modspec/modspec/internal/modspec"
)

// Manifest is the decoded form of one manifest file.
type Manifest struct {
	Name        string
	Version     *version.Version
	GUID        *uuid.UUID
	Description string

	RequiredModules []*modspec.ModuleSpecification

	DeclRange hcl.Range
}

// Parser is a manifest parser that keeps track of the files it has loaded,
// so the source code is available for rendering diagnostic snippets.
type Parser struct {
	fs afero.Afero
	p  *hclparse.Parser
}

// NewParser creates a parser reading files through the given filesystem
// implementation. Pass nil to read from the real filesystem.
func NewParser(fsys afero.Fs) *Parser {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Parser{
		fs: afero.Afero{Fs: fsys},
		p:  hclparse.NewParser(),
	}
}

// Files returns the source files loaded so far, for use with an
// hcl.DiagnosticWriter.
func (p *Parser) Files() map[string]*hcl.File {
	return p.p.Files()
}

// LoadManifestFile reads the file at the given path and parses it as a
// manifest. Files with a ".json" suffix are parsed as the JSON variant of
// the manifest syntax, everything else as HCL native syntax.
//
// If the returned diagnostics has errors then the returned manifest may be
// nil or incomplete, but is valid enough for careful static inspection.
func (p *Parser) LoadManifestFile(path string) (*Manifest, hcl.Diagnostics) {
	src, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, hcl.Diagnostics{
			{
				Severity: hcl.DiagError,
				Summary:  "Failed to read manifest",
				Detail:   fmt.Sprintf("The manifest file %q could not be read: %s.", path, err),
			},
		}
	}

	var file *hcl.File
	var diags hcl.Diagnostics
	if strings.HasSuffix(path, ".json") {
		file, diags = p.p.ParseJSON(src, path)
	} else {
		file, diags = p.p.ParseHCL(src, path)
	}
	if file == nil || file.Body == nil {
		return nil, diags
	}

	manifest, moreDiags := decodeManifestBody(file.Body)
	diags = append(diags, moreDiags...)
	return manifest, diags
}

func decodeManifestBody(body hcl.Body) (*Manifest, hcl.Diagnostics) {
	content, diags := body.Content(manifestFileSchema)

	var manifest *Manifest
	for _, block := range content.Blocks {
		// The schema admits only "module" blocks.
		if manifest != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate module block",
				Detail:   fmt.Sprintf("A manifest describes exactly one module. The first module block was at %s.", manifest.DeclRange),
				Subject:  &block.DefRange,
			})
			continue
		}
		var moreDiags hcl.Diagnostics
		manifest, moreDiags = decodeModuleBlock(block)
		diags = append(diags, moreDiags...)
	}

	if manifest == nil && !diags.HasErrors() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing module block",
			Detail:   "A manifest must contain exactly one module block describing the module it belongs to.",
		})
	}
	return manifest, diags
}

func decodeModuleBlock(block *hcl.Block) (*Manifest, hcl.Diagnostics) {
	manifest := &Manifest{
		Name:      block.Labels[0],
		DeclRange: block.DefRange,
	}

	content, diags := block.Body.Content(moduleBlockSchema)

	if !hclsyntax.ValidIdentifier(manifest.Name) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid module name",
			Detail:   "The module name must be a valid identifier: beginning with a letter or underscore, followed by letters, digits, underscores and dashes.",
			Subject:  &block.LabelRanges[0],
		})
	}

	if attr, exists := content.Attributes["version"]; exists {
		raw, moreDiags := stringAttr(attr)
		diags = append(diags, moreDiags...)
		if !moreDiags.HasErrors() {
			v, err := version.NewVersion(raw)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid module version",
					Detail:   fmt.Sprintf("Cannot parse %q as a version number: %s.", raw, err),
					Subject:  attr.Expr.Range().Ptr(),
				})
			} else {
				manifest.Version = v
			}
		}
	}

	if attr, exists := content.Attributes["guid"]; exists {
		raw, moreDiags := stringAttr(attr)
		diags = append(diags, moreDiags...)
		if !moreDiags.HasErrors() {
			id, err := uuid.Parse(raw)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid module GUID",
					Detail:   fmt.Sprintf("Cannot parse %q as a GUID: %s.", raw, err),
					Subject:  attr.Expr.Range().Ptr(),
				})
			} else {
				manifest.GUID = &id
			}
		}
	}

	if attr, exists := content.Attributes["description"]; exists {
		raw, moreDiags := stringAttr(attr)
		diags = append(diags, moreDiags...)
		manifest.Description = raw
	}

	if attr, exists := content.Attributes["required_modules"]; exists {
		reqs, moreDiags := decodeRequiredModules(attr)
		diags = append(diags, moreDiags...)
		manifest.RequiredModules = reqs
	}

	return manifest, diags
}

func decodeRequiredModules(attr *hcl.Attribute) ([]*modspec.ModuleSpecification, hcl.Diagnostics) {
	exprs, diags := hcl.ExprList(attr.Expr)
	if diags.HasErrors() {
		return nil, hcl.Diagnostics{
			{
				Severity: hcl.DiagError,
				Summary:  "Invalid required_modules argument",
				Detail:   "The required_modules argument must be a literal list of module specifications.",
				Subject:  attr.Expr.Range().Ptr(),
			},
		}
	}

	var reqs []*modspec.ModuleSpecification
	seen := collections.Set[string]{}
	for _, expr := range exprs {
		val, valDiags := expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}

		spec, specDiags := requirementFromValue(val, expr.Range())
		diags = append(diags, specDiags...)
		if spec == nil {
			continue
		}

		lowerName := strings.ToLower(spec.Name())
		if seen.Has(lowerName) {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagWarning,
				Summary:  "Duplicate required module",
				Detail:   fmt.Sprintf("Module %q appears more than once in required_modules. Only one entry per module has any effect.", spec.Name()),
				Subject:  expr.Range().Ptr(),
			})
		}
		seen.Add(lowerName)
		reqs = append(reqs, spec)
	}
	return reqs, diags
}

// requirementFromValue interprets one element of required_modules. A string
// element is either a constant map literal (when it opens with "@{") or a
// bare module name; an object element is a member map.
func requirementFromValue(val cty.Value, rng hcl.Range) (*modspec.ModuleSpecification, hcl.Diagnostics) {
	if val.IsNull() || !val.IsKnown() {
		return nil, hcl.Diagnostics{
			{
				Severity: hcl.DiagError,
				Summary:  "Invalid module specification",
				Detail:   "Each element of required_modules must be a known, non-null value.",
				Subject:  rng.Ptr(),
			},
		}
	}

	switch {
	case val.Type() == cty.String:
		s := val.AsString()
		if strings.HasPrefix(strings.TrimSpace(s), "@{") {
			spec, ok := modspec.TryParse(s)
			if !ok {
				return nil, hcl.Diagnostics{
					{
						Severity: hcl.DiagError,
						Summary:  "Invalid module specification literal",
						Detail:   fmt.Sprintf("Cannot interpret %q as a module specification. The literal may contain only constant values, and must combine the recognized members into a valid specification.", s),
						Subject:  rng.Ptr(),
					},
				}
			}
			return spec, nil
		}
		spec, err := modspec.New(s)
		if err != nil {
			return nil, hcl.Diagnostics{
				{
					Severity: hcl.DiagError,
					Summary:  "Invalid module name",
					Detail:   fmt.Sprintf("Cannot use %q as a required module name: %s.", s, err),
					Subject:  rng.Ptr(),
				},
			}
		}
		return spec, nil

	case val.Type().IsObjectType() || val.Type().IsMapType():
		fields := make(map[string]any)
		var diags hcl.Diagnostics
		for name, av := range val.AsValueMap() {
			converted, ok := memberValue(av)
			if !ok {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid module specification member",
					Detail:   fmt.Sprintf("The value of member %q must be a string, number, or boolean.", name),
					Subject:  rng.Ptr(),
				})
				continue
			}
			fields[name] = converted
		}
		if diags.HasErrors() {
			return nil, diags
		}

		spec, err := modspec.FromMap(fields)
		if err != nil {
			return nil, hcl.Diagnostics{
				{
					Severity: hcl.DiagError,
					Summary:  "Invalid module specification",
					Detail:   fmt.Sprintf("Unsuitable member combination: %s.", err),
					Subject:  rng.Ptr(),
				},
			}
		}
		return spec, nil

	default:
		return nil, hcl.Diagnostics{
			{
				Severity: hcl.DiagError,
				Summary:  "Invalid module specification",
				Detail:   "Each element of required_modules must be either a module name string, a specification literal string, or an object of specification members.",
				Subject:  rng.Ptr(),
			},
		}
	}
}

func memberValue(val cty.Value) (any, bool) {
	if val.IsNull() || !val.IsKnown() {
		return nil, false
	}
	switch val.Type() {
	case cty.String:
		return val.AsString(), true
	case cty.Number:
		// Version-shaped values should be quoted strings; a bare number
		// is still accepted, rendered in its shortest decimal form.
		return val.AsBigFloat().Text('f', -1), true
	case cty.Bool:
		return val.True(), true
	default:
		return nil, false
	}
}

func stringAttr(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return "", hcl.Diagnostics{
			{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Invalid %s argument", attr.Name),
				Detail:   fmt.Sprintf("The %s argument must be a constant string.", attr.Name),
				Subject:  attr.Expr.Range().Ptr(),
			},
		}
	}
	return val.AsString(), nil
}

var manifestFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "module", LabelNames: []string{"name"}},
	},
}

var moduleBlockSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version"},
		{Name: "guid"},
		{Name: "description"},
		{Name: "required_modules"},
	},
}
