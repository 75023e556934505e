// Package conf loads layered command-line configuration files.
//
// A configuration file holds one optional "global" section plus one
// section per command name. Resolving a command merges the two, with
// command-section keys winning:
//
//	[global]
//	key1 = "value1"
//
//	[greet]
//	key2 = "value2"
//
// Three encodings are supported, selected by file extension: TOML,
// YAML (.yaml or .yml), and JSON. Any other extension is rejected with
// an UNSUPPORTED_FORMAT error.
//
// Discovery is delegated to a Finder. The DefaultFinder checks the
// working directory (dot-file and dot-directory forms) and the user
// configuration directory; the Scope narrows the candidate set to
// bare files, per-application directories, or both. A missing file is
// not an error: resolution yields an empty mapping and the command
// runs on its declared defaults.
package conf
