// Package gen emits Go source for a resolved model: one constants
// subpackage per entity (table name, column names) plus a shared model
// file, all driven by the annotations the builders resolved. Generation
// reads the model and never mutates it.
package gen

import "path/filepath"

// Config configures code generation.
type Config struct {
	// Target is the output directory.
	Target string

	// Package is the output package import path,
	// e.g. "github.com/org/project/model".
	Package string

	// Header is the comment placed at the top of every generated file.
	Header string
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the output package import path.
// For example: "github.com/org/project/model".
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// pkgName returns the short name of the output package.
func (c *Config) pkgName() string {
	if c.Package != "" {
		return filepath.Base(c.Package)
	}
	return filepath.Base(c.Target)
}
