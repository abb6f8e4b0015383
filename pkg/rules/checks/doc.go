// Package checks registers the built-in metadata validation rules.
// Import this package (usually blank) to register all rules with the
// global registry:
//
//	import _ "github.com/archivelab/metacheck/pkg/rules/checks"
//
// Rule groups:
//   - completeness: MD01 required fields
//   - format: MD02 date format, MD03 license allow-list
//   - naming: MD04 filename convention
package checks
