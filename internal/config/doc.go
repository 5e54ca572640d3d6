// Package config provides configuration management for collsuite.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default Configuration (embedded in binary)
//     - Sequential execution and one suite per bundled container
//
//  2. User Configuration (~/.config/collsuite/config.yaml)
//
//  3. Project Configuration (./.collsuite/config.yaml)
//
//  4. The file passed with --config, which must exist
//
// Suites are merged by name: an overlay suite replaces the base suite of
// the same name in place, new suites are appended.
//
// # Configuration Structure
//
//	settings:
//	  parallelism: 4
//	  testTimeout: 5s
//	  failFast: true
//	  output: compact   # verbose, compact, quiet or json
//	  reportFile: report.json
//
//	suites:
//	  - name: ArrayList
//	    container: arraylist
//	    features: [size.any]
//	    suppress: [clear.supported]
//	  - name: HashSet
//	    container: hashset
//	    disabled: true
//
// Suite features are added to the container's own capability features.
// The merged result is validated with struct tags; unknown keys fail the
// load.
package config
