package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	contactcmd "github.com/goliatone/go-artia/internal/commands/contact"
	"github.com/goliatone/go-artia/internal/contact"
	"github.com/goliatone/go-artia/internal/content"
	"github.com/goliatone/go-artia/internal/layout"
	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/internal/themes"
	"github.com/goliatone/go-artia/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"golang.org/x/text/language"
)

const (
	defaultBasePath    = "/api"
	defaultRecentLimit = 5
	maxBodyBytes       = 64 << 10
)

// SiteAPI registers the public read endpoints and the contact form endpoint.
type SiteAPI struct {
	basePath      string
	content       content.Service
	layout        *layout.Resolver
	themes        *themes.Selector
	contact       command.Commander[contactcmd.SubmitContactCommand]
	featuredCodes []string
	recentLimit   int
	site          *SiteInfo
	logger        interfaces.Logger
}

// SiteOption mutates the SiteAPI configuration.
type SiteOption func(*SiteAPI)

// NewSiteAPI constructs a SiteAPI.
func NewSiteAPI(opts ...SiteOption) *SiteAPI {
	api := &SiteAPI{
		basePath:    defaultBasePath,
		recentLimit: defaultRecentLimit,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base path (defaults to "/api").
func WithBasePath(path string) SiteOption {
	return func(api *SiteAPI) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentService wires the content tree.
func WithContentService(service content.Service) SiteOption {
	return func(api *SiteAPI) {
		api.content = service
	}
}

// WithLayoutResolver wires the slot resolver.
func WithLayoutResolver(resolver *layout.Resolver) SiteOption {
	return func(api *SiteAPI) {
		api.layout = resolver
	}
}

// WithThemeSelector wires the theme selector.
func WithThemeSelector(selector *themes.Selector) SiteOption {
	return func(api *SiteAPI) {
		api.themes = selector
	}
}

// WithContactHandler wires the contact submission command handler. Without
// one the contact endpoint reports the form as disabled.
func WithContactHandler(handler command.Commander[contactcmd.SubmitContactCommand]) SiteOption {
	return func(api *SiteAPI) {
		api.contact = handler
	}
}

// WithFeaturedCodes sets the default book codes served by /featured.
func WithFeaturedCodes(codes []string) SiteOption {
	return func(api *SiteAPI) {
		api.featuredCodes = append([]string(nil), codes...)
	}
}

// WithRecentLimit sets the default /recent limit. Zero keeps the default.
func WithRecentLimit(limit int) SiteOption {
	return func(api *SiteAPI) {
		if limit > 0 {
			api.recentLimit = limit
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(logger interfaces.Logger) SiteOption {
	return func(api *SiteAPI) {
		api.logger = logging.Ensure(logger)
	}
}

// Register mounts the routes on mux. Routes whose backing service is not
// wired are skipped, except /contact which always answers.
func (api *SiteAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: site api is nil")
	}

	base := joinPath(api.basePath, "")
	if api.content != nil {
		mux.HandleFunc("GET "+joinPath(base, "content")+"/{path...}", api.handleContent)
		mux.HandleFunc("GET "+joinPath(base, "navigation"), api.handleNavigation)
		mux.HandleFunc("GET "+joinPath(base, "recent"), api.handleRecent)
		mux.HandleFunc("GET "+joinPath(base, "featured"), api.handleFeatured)
	}
	if api.layout != nil {
		mux.HandleFunc("GET "+joinPath(base, "layout")+"/{page}", api.handleLayout)
	}
	if api.themes != nil {
		mux.HandleFunc("GET "+joinPath(base, "theme"), api.handleTheme)
	}
	if api.site != nil {
		mux.HandleFunc("GET "+joinPath(base, "site"), api.handleSite)
	}
	mux.HandleFunc("POST "+joinPath(base, "contact"), api.handleContact)
	return nil
}

// fail logs server-side failures before writing the mapped error body.
func (api *SiteAPI) fail(w http.ResponseWriter, r *http.Request, err error) {
	if status, _ := mapError(err); status >= http.StatusInternalServerError {
		api.logger.WithContext(r.Context()).Error("http.request.failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeError(w, err)
}

func (api *SiteAPI) handleContent(w http.ResponseWriter, r *http.Request) {
	item, err := api.content.Lookup(r.Context(), "/"+r.PathValue("path"))
	if err != nil {
		api.fail(w, r, err)
		return
	}

	var password *string
	if query := r.URL.Query(); query.Has("password") {
		value := query.Get("password")
		password = &value
	}
	view, err := content.Access(item, password)
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (api *SiteAPI) handleNavigation(w http.ResponseWriter, r *http.Request) {
	opts := content.SortOptions{}
	var err error
	if opts.Recursive, err = queryBool(r, "recursive"); err != nil {
		api.fail(w, r, err)
		return
	}
	if opts.PrioritizeFolders, err = queryBool(r, "prioritize_folders"); err != nil {
		api.fail(w, r, err)
		return
	}
	if opts.FilterPages, err = queryBool(r, "filter_pages"); err != nil {
		api.fail(w, r, err)
		return
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("locale")); raw != "" {
		tag, parseErr := language.Parse(raw)
		if parseErr != nil {
			api.fail(w, r, &queryError{Param: "locale", Value: raw})
			return
		}
		opts.Locale = tag
	}

	items, err := api.content.Tree(r.Context(), r.URL.Query().Get("root"), opts)
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(content.Outline(items)))
}

func (api *SiteAPI) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", api.recentLimit)
	if err != nil {
		api.fail(w, r, err)
		return
	}
	items, err := api.content.Recent(r.Context(), limit)
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(content.Outline(items)))
}

func (api *SiteAPI) handleFeatured(w http.ResponseWriter, r *http.Request) {
	codes := queryList(r, "codes")
	if codes == nil {
		codes = api.featuredCodes
	}
	items, err := api.content.Featured(r.Context(), codes)
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(content.Outline(items)))
}

func (api *SiteAPI) handleLayout(w http.ResponseWriter, r *http.Request) {
	page, err := layout.ParsePage(r.PathValue("page"))
	if err != nil {
		api.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, api.layout.Snapshot(page))
}

type themeResponse struct {
	*themes.Theme
	Class string `json:"class,omitempty"`
}

func (api *SiteAPI) handleTheme(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	theme, err := api.themes.Select(query.Get("name"), query.Get("variant"))
	if err != nil {
		api.fail(w, r, err)
		return
	}
	resp := themeResponse{Theme: theme}
	if component := strings.TrimSpace(query.Get("component")); component != "" {
		if element := strings.TrimSpace(query.Get("element")); element != "" {
			resp.Class = theme.Classes().Element(component, element)
		} else {
			resp.Class = theme.Classes().Class(component)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleContact answers with 200 and a success flag for every form outcome.
// Only a body that is not JSON yields 400.
func (api *SiteAPI) handleContact(w http.ResponseWriter, r *http.Request) {
	if api.contact == nil {
		writeJSON(w, http.StatusOK, contactResponse{Error: "Contact form is not enabled"})
		return
	}

	var input contact.Input
	if err := decodeJSON(r, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, contactResponse{Error: "Invalid request body"})
		return
	}

	err := api.contact.Execute(r.Context(), contactcmd.SubmitContactCommand{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	})
	if err == nil {
		writeJSON(w, http.StatusOK, contactResponse{Success: true, Message: "Message sent successfully"})
		return
	}

	var invalid *contact.ValidationError
	switch {
	case errors.Is(err, contact.ErrContactDisabled):
		writeJSON(w, http.StatusOK, contactResponse{Error: "Contact form is not enabled"})
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusOK, contactResponse{Error: invalid.Message})
	default:
		api.logger.WithContext(r.Context()).Error("http.contact.failed", "error", err)
		writeJSON(w, http.StatusOK, contactResponse{Error: "Failed to send message"})
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
