// Package config reads the optional xtcetools configuration file.
//
// The file is HCL. Every block is optional; command-line flags override
// whatever the file sets:
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	report {
//	  format           = "yaml"
//	  alias_namespaces = ["MIB", "OPS"]
//	}
//
//	document "platform" {
//	  path = "docs/platform.xml"
//	}
//
// Relative document paths are taken relative to the configuration file.
package config
