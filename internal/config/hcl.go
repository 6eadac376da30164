package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// hclFile is the block layout of an HCL settings file. Every block is
// optional; absent blocks and attributes keep their defaults.
type hclFile struct {
	Compiler    *Compiler    `hcl:"compiler,block"`
	Log         *Log         `hcl:"log,block"`
	Diagnostics *Diagnostics `hcl:"diagnostics,block"`
}

func (s *Settings) blocks() *hclFile {
	return &hclFile{Compiler: &s.Compiler, Log: &s.Log, Diagnostics: &s.Diagnostics}
}

// HCLLoader reads settings from an HCL file:
//
//	compiler {
//	  strict = true
//	}
//	diagnostics {
//	  format = "pretty"
//	}
type HCLLoader struct{}

// NewHCLLoader creates an HCL settings loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

// Load implements Loader. An empty path yields the defaults.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Settings, error) {
	return readSettings(ctx, path, func(data []byte) (*Settings, error) {
		return ParseHCL(path, data)
	})
}

// ParseHCL decodes HCL settings over the defaults and validates the result.
// Unknown blocks and attributes are errors.
func ParseHCL(filename string, data []byte) (*Settings, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSettings, diags.Error())
	}

	s := Default()
	if diags := gohcl.DecodeBody(file.Body, nil, s.blocks()); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSettings, diags.Error())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func encodeHCL(s *Settings) []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(s.blocks(), f.Body())
	return hclwrite.Format(f.Bytes())
}
