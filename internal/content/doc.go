// Package content holds the content tree built from markdown documents, the
// ordering rules used for navigation, and the password gate applied to
// protected items.
package content
