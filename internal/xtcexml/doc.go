// Package xtcexml decodes XTCE documents into an xtce.Tree.
//
// Only the parts of the schema the engine reasons about are decoded:
// nested Space Systems, names and descriptions, aliases, ancillary data,
// parameter and argument types with their encodings and valid ranges,
// parameters, sequence and command containers, streams and meta commands.
// Anything else is skipped. The loader is tolerant: references that cannot
// be resolved are logged and left unlinked rather than rejected.
package xtcexml
