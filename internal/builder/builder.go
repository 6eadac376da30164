package builder

import (
	"context"

	"github.com/specialistvlad/bedc/internal/ast"
	"github.com/specialistvlad/bedc/internal/ctxlog"
	"github.com/specialistvlad/bedc/internal/diag"
	"github.com/specialistvlad/bedc/internal/model"
	"github.com/specialistvlad/bedc/internal/schema"
)

// Options controls builder strictness.
type Options struct {
	// Strict turns unknown properties into issues instead of warnings.
	Strict bool
	// StrictUnits turns unknown unit symbols and dimension mismatches into
	// issues instead of warnings.
	StrictUnits bool
}

type builder struct {
	opts  Options
	draft *Draft
}

// Build applies every property of file onto a default-filled document.
func Build(ctx context.Context, file *ast.File, opts Options) *Draft {
	logger := ctxlog.FromContext(ctx)

	b := &builder{opts: opts, draft: newDraft(file.Filename)}
	logger.Debug("Building draft document.", "file", file.Filename, "sections", len(file.Sections))

	for _, section := range file.Sections {
		if !section.Known {
			logger.Debug("Skipping unknown section.", "section", section.Name)
			continue
		}
		b.applySection(section)
	}

	logger.Debug("Draft built.",
		"issues", len(b.draft.Issues),
		"warnings", len(b.draft.Warnings),
		"fields_set", len(b.draft.present),
	)
	return b.draft
}

func (b *builder) applySection(section *ast.Section) {
	d := b.draft
	if d.Has(section.Name) {
		first := d.Range(section.Name)
		d.issue(section.Name, section.NameRange, "duplicate section %q (first defined on line %d)", section.Name, first.Start.Line)
		return
	}
	d.present[section.Name] = section.NameRange

	if section.Name == schema.CFD && d.Document.CFD == nil {
		d.Document.CFD = model.DefaultCFD()
	}

	for _, prop := range section.Properties {
		b.applyProperty(section.Name, prop)
	}
}

func (b *builder) applyProperty(section string, prop *ast.Property) {
	d := b.draft
	name := prop.Name

	if replacement, ok := schema.Replacement(section, name); ok {
		d.warn(section+"."+name, prop.NameRange, "%q is deprecated, use %q instead", name, replacement)
		name = replacement
	}

	spec, ok := schema.Lookup(section, name)
	if !ok {
		path := section + "." + name
		if b.opts.Strict {
			d.issue(path, prop.NameRange, "unknown property %q in section %q", name, section)
		} else {
			d.warn(path, prop.NameRange, "unknown property %q in section %q is ignored", name, section)
		}
		return
	}

	path := spec.Path()
	if d.Has(path) || d.Invalid(path) {
		d.issue(path, prop.NameRange, "duplicate property %q in section %q", name, section)
		return
	}

	target := d.Document.Field(path)
	if target == nil {
		d.Issues = append(d.Issues, diag.Internal("no document field for %s", path))
		return
	}

	if !b.assign(spec, prop.Value, target) {
		d.invalid[path] = true
		return
	}
	d.present[path] = prop.Value.Range

	switch path {
	case "particles.count":
		d.Document.Particles.TargetPorosity = nil
		d.SizingModes = append(d.SizingModes, path)
	case "particles.target_porosity":
		d.Document.Particles.Count = nil
		d.SizingModes = append(d.SizingModes, path)
	}
}

// assign coerces v to the property's type and stores it in target. It
// records an issue and returns false when the value does not fit.
func (b *builder) assign(spec schema.Property, v ast.Value, target any) bool {
	switch spec.Type {
	case schema.Quantity:
		f, ok := b.quantity(spec, v)
		if !ok {
			return false
		}
		switch p := target.(type) {
		case *float64:
			*p = f
		case **float64:
			*p = &f
		default:
			return b.mismatchedTarget(spec, target)
		}

	case schema.Integer:
		i, ok := b.integer(spec, v)
		if !ok {
			return false
		}
		switch p := target.(type) {
		case *int64:
			*p = i
		case **int64:
			*p = &i
		default:
			return b.mismatchedTarget(spec, target)
		}

	case schema.Enum, schema.String:
		if !b.expectKind(spec, v, ast.StringValue) {
			return false
		}
		p, ok := target.(*string)
		if !ok {
			return b.mismatchedTarget(spec, target)
		}
		*p = v.Str

	case schema.Bool:
		if !b.expectKind(spec, v, ast.BoolValue) {
			return false
		}
		p, ok := target.(*bool)
		if !ok {
			return b.mismatchedTarget(spec, target)
		}
		*p = v.Bool

	case schema.StringList:
		if !b.expectKind(spec, v, ast.ListValue) {
			return false
		}
		p, ok := target.(*[]string)
		if !ok {
			return b.mismatchedTarget(spec, target)
		}
		*p = append([]string{}, v.List...)

	default:
		b.draft.Issues = append(b.draft.Issues, diag.Internal("%s has unhandled schema type %s", spec.Path(), spec.Type))
		return false
	}
	return true
}

func (b *builder) expectKind(spec schema.Property, v ast.Value, want ast.ValueKind) bool {
	if v.Kind == want {
		return true
	}
	b.draft.issue(spec.Path(), v.Range, "expected %s, found %s", spec.Type, v.Kind)
	return false
}

func (b *builder) mismatchedTarget(spec schema.Property, target any) bool {
	b.draft.Issues = append(b.draft.Issues, diag.Internal("%s: %s cannot be stored in %T", spec.Path(), spec.Type, target))
	return false
}
