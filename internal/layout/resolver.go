package layout

import "strings"

// Mode selects how the top/bottom regions relate to the sidebars.
type Mode string

const (
	// ModeContent renders top and bottom full width, above and below the sidebars.
	ModeContent Mode = "content"
	// ModeApp extends the left and right sidebars to the top of the page.
	ModeApp Mode = "app"
)

// ParseMode returns ModeApp for "app" (any case) and ModeContent otherwise.
func ParseMode(value string) Mode {
	if strings.EqualFold(strings.TrimSpace(value), string(ModeApp)) {
		return ModeApp
	}
	return ModeContent
}

// Config holds the raw slot values for every page and position, plus the
// layout mode. Empty values mean the slot is unused.
type Config struct {
	Mode string

	HomeTop    string
	HomeLeft   string
	HomeCenter string
	HomeRight  string
	HomeBottom string

	ReadTop    string
	ReadLeft   string
	ReadCenter string
	ReadRight  string
	ReadBottom string
}

// Raw returns the configured value for a page/position pair.
func (c Config) Raw(page Page, position Position) string {
	switch page {
	case PageHome:
		switch position {
		case PositionTop:
			return c.HomeTop
		case PositionLeft:
			return c.HomeLeft
		case PositionCenter:
			return c.HomeCenter
		case PositionRight:
			return c.HomeRight
		case PositionBottom:
			return c.HomeBottom
		}
	case PageRead:
		switch position {
		case PositionTop:
			return c.ReadTop
		case PositionLeft:
			return c.ReadLeft
		case PositionCenter:
			return c.ReadCenter
		case PositionRight:
			return c.ReadRight
		case PositionBottom:
			return c.ReadBottom
		}
	}
	return ""
}

type slotKey struct {
	page     Page
	position Position
}

// Resolver answers slot queries for a fixed Config. It parses every slot once
// at construction and is safe for concurrent use.
type Resolver struct {
	cfg   Config
	mode  Mode
	slots map[slotKey][]Component
}

// NewResolver parses cfg into a Resolver.
func NewResolver(cfg Config) *Resolver {
	r := &Resolver{
		cfg:   cfg,
		mode:  ParseMode(cfg.Mode),
		slots: make(map[slotKey][]Component, len(Pages())*len(Positions())),
	}
	for _, page := range Pages() {
		for _, position := range Positions() {
			r.slots[slotKey{page, position}] = ParseSlotValue(cfg.Raw(page, position))
		}
	}
	return r
}

// Components returns a copy of the components assigned to a slot.
func (r *Resolver) Components(page Page, position Position) []Component {
	parsed := r.slots[slotKey{page, position}]
	out := make([]Component, len(parsed))
	for i, component := range parsed {
		out[i] = component.clone()
	}
	return out
}

// IsSlotEnabled reports whether at least one component occupies the slot.
func (r *Resolver) IsSlotEnabled(page Page, position Position) bool {
	return len(r.slots[slotKey{page, position}]) > 0
}

// HasLeftSidebar reports whether the left slot of page is in use.
func (r *Resolver) HasLeftSidebar(page Page) bool {
	return r.IsSlotEnabled(page, PositionLeft)
}

// HasRightSidebar reports whether the right slot of page is in use.
func (r *Resolver) HasRightSidebar(page Page) bool {
	return r.IsSlotEnabled(page, PositionRight)
}

// RendererIDs returns the renderer tokens for a slot in order, skipping empty ones.
func (r *Resolver) RendererIDs(page Page, position Position) []string {
	parsed := r.slots[slotKey{page, position}]
	ids := make([]string, 0, len(parsed))
	for _, component := range parsed {
		if id := component.RendererID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// FirstRendererID returns the first renderer token of a slot for callers that
// only render a single component.
func (r *Resolver) FirstRendererID(page Page, position Position) (string, bool) {
	ids := r.RendererIDs(page, position)
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// RawValue returns the unparsed configuration for a slot.
func (r *Resolver) RawValue(page Page, position Position) string {
	return r.cfg.Raw(page, position)
}

// Mode returns the configured layout mode.
func (r *Resolver) Mode() Mode { return r.mode }

// IsContentMode reports whether top/bottom render full width.
func (r *Resolver) IsContentMode() bool { return r.mode == ModeContent }

// IsAppMode reports whether the sidebars extend to the top.
func (r *Resolver) IsAppMode() bool { return r.mode == ModeApp }

// PageLayout is the serialisable slot assignment of one page.
type PageLayout struct {
	Page             Page                     `json:"page"`
	Mode             Mode                     `json:"mode"`
	Slots            map[Position][]Component `json:"slots"`
	HasLeftSidebar   bool                     `json:"has_left_sidebar"`
	HasRightSidebar  bool                     `json:"has_right_sidebar"`
	RendererIDsByPos map[Position][]string    `json:"renderers"`
}

// Snapshot returns the full assignment of page, including empty slots.
func (r *Resolver) Snapshot(page Page) PageLayout {
	out := PageLayout{
		Page:             page,
		Mode:             r.mode,
		Slots:            make(map[Position][]Component, len(Positions())),
		RendererIDsByPos: make(map[Position][]string, len(Positions())),
		HasLeftSidebar:   r.HasLeftSidebar(page),
		HasRightSidebar:  r.HasRightSidebar(page),
	}
	for _, position := range Positions() {
		out.Slots[position] = r.Components(page, position)
		out.RendererIDsByPos[position] = r.RendererIDs(page, position)
	}
	return out
}
