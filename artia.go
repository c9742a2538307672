package artia

import (
	"context"
	"net/http"

	"github.com/goliatone/go-artia/internal/contact"
	"github.com/goliatone/go-artia/internal/content"
	"github.com/goliatone/go-artia/internal/di"
	sitehttp "github.com/goliatone/go-artia/internal/http"
	"github.com/goliatone/go-artia/internal/layout"
	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/internal/markdown"
	"github.com/goliatone/go-artia/internal/themes"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

// ContentService exports the content tree contract.
type ContentService = content.Service

// ContentItem exports a node of the content tree.
type ContentItem = content.Item

// ContentView exports an item after the password gate.
type ContentView = content.View

// SortOptions exports the content sort options.
type SortOptions = content.SortOptions

// ContactService exports the contact form contract.
type ContactService = contact.Service

// ContactInput exports the contact form payload.
type ContactInput = contact.Input

// LayoutResolver exports the slot resolver.
type LayoutResolver = *layout.Resolver

// ThemeSelector exports the theme selector.
type ThemeSelector = *themes.Selector

// MarkdownService exports the markdown loader and renderer.
type MarkdownService = *markdown.Service

// Option overrides a collaborator of the module.
type Option = di.Option

var (
	WithLoggerProvider    = di.WithLoggerProvider
	WithMailer            = di.WithMailer
	WithMarkdownParser    = di.WithMarkdownParser
	WithContentFS         = di.WithContentFS
	WithDocumentSource    = di.WithDocumentSource
	WithBunDB             = di.WithBunDB
	WithCache             = di.WithCache
	WithContactRepository = di.WithContactRepository
)

// Module is the top level site runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a Module from cfg.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Content returns the content tree service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Markdown returns the markdown service, or nil when a custom document source is wired.
func (m *Module) Markdown() MarkdownService {
	return m.container.MarkdownService()
}

// Layout returns the slot resolver.
func (m *Module) Layout() LayoutResolver {
	return m.container.LayoutResolver()
}

// Themes returns the theme selector.
func (m *Module) Themes() ThemeSelector {
	return m.container.ThemeSelector()
}

// Contact returns the contact form service.
func (m *Module) Contact() ContactService {
	return m.container.ContactService()
}

// Reload rebuilds the content tree from its source.
func (m *Module) Reload(ctx context.Context) error {
	return m.container.Warm(ctx)
}

// Close releases resources the module opened.
func (m *Module) Close() error {
	if m == nil {
		return nil
	}
	return m.container.Close()
}

// RegisterRoutes mounts the JSON API under Config.HTTP.BasePath.
func (m *Module) RegisterRoutes(mux *http.ServeMux) error {
	cfg := m.container.Config
	api := sitehttp.NewSiteAPI(
		sitehttp.WithBasePath(cfg.HTTP.BasePath),
		sitehttp.WithContentService(m.container.ContentService()),
		sitehttp.WithLayoutResolver(m.container.LayoutResolver()),
		sitehttp.WithThemeSelector(m.container.ThemeSelector()),
		sitehttp.WithContactHandler(m.container.ContactHandler()),
		sitehttp.WithFeaturedCodes(cfg.Featured.BookCodes),
		sitehttp.WithRecentLimit(cfg.Recent.Limit),
		sitehttp.WithSiteInfo(siteInfo(cfg)),
		sitehttp.WithLogger(logging.HTTPLogger(m.container.LoggerProvider())),
	)
	return api.Register(mux)
}

func siteInfo(cfg Config) sitehttp.SiteInfo {
	return sitehttp.SiteInfo{
		Name:           cfg.Site.Name,
		Slogan:         cfg.Site.Slogan,
		Description:    cfg.Site.Description,
		URL:            cfg.Site.URL,
		Locale:         cfg.Site.DefaultLocale,
		Copyright:      cfg.Site.Copyright,
		Theme:          cfg.Theme.Name,
		LayoutMode:     cfg.Layout.Mode,
		ContactEnabled: cfg.Contact.Enabled,
		Hero: sitehttp.HeroInfo{
			Title:        cfg.Hero.Title,
			Description:  cfg.Hero.Description,
			CTAPrimary:   cfg.Hero.CTAPrimary,
			CTASecondary: cfg.Hero.CTASecondary,
		},
		Author: sitehttp.AuthorInfo{
			Name:   cfg.Author.Name,
			Bio:    cfg.Author.Bio,
			Avatar: cfg.Author.Avatar,
		},
		Featured: sitehttp.FeaturedInfo{
			Section:   cfg.Featured.Section,
			BookCodes: cfg.Featured.BookCodes,
		},
	}
}

// SMTP returns the mail transport settings. The module never dials SMTP
// itself; hosts build the Mailer passed to WithMailer from these values.
func (m *Module) SMTP() SMTPConfig {
	return m.container.Config.Mail.SMTP
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(module string) interfaces.Logger {
	return logging.ModuleLogger(m.container.LoggerProvider(), "artia."+module)
}
