package layout

import "strings"

// Kind identifies a component that can be placed in a slot.
type Kind string

const (
	KindAuthor     Kind = "author"
	KindNavigation Kind = "navigation"
	KindBookMenu   Kind = "bookmenu"
	KindTOC        Kind = "toc"
	KindHistory    Kind = "history"
	KindHero       Kind = "hero"
	KindFeatured   Kind = "featured"
	KindRecent     Kind = "recent"
	KindSearch     Kind = "search"
	KindNone       Kind = "none"
)

var rendererIDs = map[Kind]string{
	KindAuthor:     "LayoutSidebarAuthor",
	KindNavigation: "LayoutSidebarNav",
	KindBookMenu:   "LayoutSidebarBookMenu",
	KindTOC:        "LayoutTableOfContents",
	KindHistory:    "LayoutHistoryTimeline",
	KindHero:       "LayoutHeroSection",
	KindFeatured:   "LayoutFeaturedBooks",
	KindRecent:     "LayoutRecentContent",
	KindSearch:     "LayoutSearchBox",
	KindNone:       "",
}

// Kinds lists every known kind, none included, in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindAuthor, KindNavigation, KindBookMenu, KindTOC, KindHistory,
		KindHero, KindFeatured, KindRecent, KindSearch, KindNone,
	}
}

// ParseKind matches name case-insensitively after trimming.
func ParseKind(name string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := rendererIDs[kind]; !ok {
		return "", false
	}
	return kind, true
}

// RendererID returns the renderer token for kind. KindNone and unknown kinds
// map to "".
func RendererID(kind Kind) string {
	return rendererIDs[kind]
}

// Page is a page type with its own slot configuration.
type Page string

const (
	PageHome Page = "home"
	PageRead Page = "read"
)

// Position is a region within a page.
type Position string

const (
	PositionTop    Position = "top"
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
	PositionBottom Position = "bottom"
)

// Pages lists the configurable page types.
func Pages() []Page {
	return []Page{PageHome, PageRead}
}

// Positions lists slot positions top to bottom, left to right.
func Positions() []Position {
	return []Position{PositionTop, PositionLeft, PositionCenter, PositionRight, PositionBottom}
}

// ParsePage matches a page name case-insensitively.
func ParsePage(name string) (Page, error) {
	switch page := Page(strings.ToLower(strings.TrimSpace(name))); page {
	case PageHome, PageRead:
		return page, nil
	}
	return "", &InvalidInputError{Field: "page", Value: name, Err: ErrUnknownPage}
}

// ParsePosition matches a position name case-insensitively.
func ParsePosition(name string) (Position, error) {
	switch pos := Position(strings.ToLower(strings.TrimSpace(name))); pos {
	case PositionTop, PositionLeft, PositionCenter, PositionRight, PositionBottom:
		return pos, nil
	}
	return "", &InvalidInputError{Field: "position", Value: name, Err: ErrUnknownPosition}
}
