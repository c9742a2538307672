package themes

import "strings"

const (
	DefaultPrefix = "artia"
	DefaultTheme  = "classic"
)

// ClassNamer produces class names of the form <prefix>-<component>-theme-<theme>.
// Empty fields fall back to DefaultPrefix and DefaultTheme.
type ClassNamer struct {
	Prefix string
	Theme  string
}

// NewClassNamer returns a ClassNamer for theme with the default prefix.
func NewClassNamer(theme string) ClassNamer {
	return ClassNamer{Prefix: DefaultPrefix, Theme: theme}
}

// ThemeName returns the active theme, applying the default.
func (n ClassNamer) ThemeName() string {
	if theme := strings.TrimSpace(n.Theme); theme != "" {
		return theme
	}
	return DefaultTheme
}

func (n ClassNamer) prefix() string {
	if prefix := strings.TrimSpace(n.Prefix); prefix != "" {
		return prefix
	}
	return DefaultPrefix
}

// Class returns the class for a component, e.g. artia-header-theme-classic.
func (n ClassNamer) Class(component string) string {
	return n.prefix() + "-" + component + "-theme-" + n.ThemeName()
}

// Element returns the class for an element of a component, e.g.
// artia-header-logo-theme-classic. An empty element yields Class(component).
func (n ClassNamer) Element(component, element string) string {
	if element == "" {
		return n.Class(component)
	}
	return n.prefix() + "-" + component + "-" + element + "-theme-" + n.ThemeName()
}

// Classes returns the classes of several components joined by spaces.
func (n ClassNamer) Classes(components ...string) string {
	names := make([]string, len(components))
	for i, component := range components {
		names[i] = n.Class(component)
	}
	return strings.Join(names, " ")
}

// WithExtra returns Class(component) followed by extra, when extra is set.
func (n ClassNamer) WithExtra(component, extra string) string {
	if extra == "" {
		return n.Class(component)
	}
	return n.Class(component) + " " + extra
}
