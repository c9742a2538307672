// Package themes builds theme-scoped CSS class names and, when a theme
// directory is available, resolves go-theme manifests for tokens and CSS
// variables.
package themes
