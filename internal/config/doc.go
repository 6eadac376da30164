// Package config defines the compiler's settings file: the format-agnostic
// Settings model, its defaults, and the Loader interface for reading it.
//
// Settings only carry preferences (strictness, size limit, logging and
// diagnostic rendering). Command-line flags are applied on top of whatever a
// Loader returns, so running without a settings file is never an error.
//
// Two formats are supported and FileLoader picks one by extension. TOML
// (bedc.toml):
//
//	[compiler]
//	max_source_bytes = 1048576
//	strict = false
//	strict_units = false
//
//	[log]
//	level = "warn"
//	format = "text"
//
//	[diagnostics]
//	format = "text"
//
// HCL (bedc.hcl), decoded with gohcl:
//
//	compiler {
//	  strict = true
//	}
//
//	log {
//	  level = "debug"
//	}
package config
