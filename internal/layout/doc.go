// Package layout resolves which UI components occupy each page region.
//
// Each (page, position) pair is configured with a short text value such as
//
//	navigation:root=/books;title=Library,author
//
// which lists components left to right, each with optional key=value props.
// Parsing never fails: unknown or malformed segments are dropped so operator
// supplied configuration cannot break page rendering.
package layout
