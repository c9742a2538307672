// Package markdown loads Markdown documents from a filesystem, rewrites their
// whitespace so the typed layout survives rendering, extracts front matter
// and renders HTML with goldmark.
package markdown
