package di

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-artia/internal/commands"
	contactcmd "github.com/goliatone/go-artia/internal/commands/contact"
	"github.com/goliatone/go-artia/internal/contact"
	"github.com/goliatone/go-artia/internal/content"
	"github.com/goliatone/go-artia/internal/layout"
	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/internal/markdown"
	"github.com/goliatone/go-artia/internal/runtimeconfig"
	"github.com/goliatone/go-artia/internal/themes"
	"github.com/goliatone/go-artia/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
	"golang.org/x/text/language"
)

// Container wires the site services from a runtime configuration. Options
// replace individual collaborators, mostly for tests and embedding hosts.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	mailer         interfaces.Mailer
	parser         interfaces.MarkdownParser
	contentFS      fs.FS
	source         content.DocumentSource

	bunDB         *bun.DB
	ownsDB        bool
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	markdownSvc    *markdown.Service
	contentSvc     content.Service
	layoutResolver *layout.Resolver
	themeSelector  *themes.Selector
	contactRepo    contact.Repository
	contactSvc     contact.Service
	contactHandler *contactcmd.SubmitHandler
}

// Option mutates the container before services are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithMailer sets the transport used by the contact form.
func WithMailer(mailer interfaces.Mailer) Option {
	return func(c *Container) {
		c.mailer = mailer
	}
}

// WithMarkdownParser replaces the goldmark parser.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.parser = parser
	}
}

// WithContentFS reads markdown from filesystem instead of Config.Markdown.ContentDir.
func WithContentFS(filesystem fs.FS) Option {
	return func(c *Container) {
		c.contentFS = filesystem
	}
}

// WithDocumentSource bypasses the markdown service as the content tree source.
func WithDocumentSource(source content.DocumentSource) Option {
	return func(c *Container) {
		c.source = source
	}
}

// WithBunDB supplies an open database. The container never closes it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache supplies the cache used to wrap the bun repositories.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithContactRepository overrides submission storage.
func WithContactRepository(repo contact.Repository) Option {
	return func(c *Container) {
		c.contactRepo = repo
	}
}

// NewContainer validates cfg and builds every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	steps := []func() error{
		c.configureLogger,
		c.configureStorage,
		c.configureCache,
		c.configureContent,
		c.configurePresentation,
		c.configureContact,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

func (c *Container) configureLogger() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}
	provider, err := newLoggerProvider(c.Config.Logging, c.Config.Site.Name)
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureCache() error {
	if !c.Config.Cache.Enabled || !c.Config.Features.AdvancedCache {
		return nil
	}
	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.Config.Cache.DefaultTTL > 0 {
			cfg.TTL = c.Config.Cache.DefaultTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err != nil {
			return fmt.Errorf("di: cache service: %w", err)
		}
		c.cacheService = service
	}
	if c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
	return nil
}

func (c *Container) configureContent() error {
	mdCfg := c.Config.Markdown
	if c.source == nil {
		opts := []markdown.Option{
			markdown.WithLogger(logging.MarkdownLogger(c.loggerProvider)),
		}
		if c.parser != nil {
			opts = append(opts, markdown.WithParser(c.parser))
		}
		basePath := mdCfg.ContentDir
		if c.contentFS != nil {
			opts = append(opts, markdown.WithFS(c.contentFS))
			basePath = "."
		}
		svc, err := markdown.NewService(markdown.Config{
			BasePath:           basePath,
			Pattern:            mdCfg.Pattern,
			Recursive:          mdCfg.Recursive,
			PreserveWhitespace: mdCfg.PreserveWhitespace,
			TabWidth:           mdCfg.TabWidth,
			Parser: interfaces.ParseOptions{
				Extensions: mdCfg.Parser.Extensions,
				Sanitize:   mdCfg.Parser.Sanitize,
				HardWraps:  mdCfg.Parser.HardWraps,
				SafeMode:   mdCfg.Parser.SafeMode,
			},
		}, opts...)
		if err != nil {
			return err
		}
		c.markdownSvc = svc
		c.source = svc
	}

	contentOpts := []content.ServiceOption{
		content.WithLogger(logging.ContentLogger(c.loggerProvider)),
		content.WithDrafts(mdCfg.IncludeDrafts),
	}
	if locale := strings.TrimSpace(c.Config.Site.DefaultLocale); locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			contentOpts = append(contentOpts, content.WithLocale(tag))
		}
	}
	c.contentSvc = content.NewService(c.source, contentOpts...)
	return nil
}

func (c *Container) configurePresentation() error {
	lc := c.Config.Layout
	c.layoutResolver = layout.NewResolver(layout.Config{
		Mode:       lc.Mode,
		HomeTop:    lc.HomeTop,
		HomeLeft:   lc.HomeLeft,
		HomeCenter: lc.HomeCenter,
		HomeRight:  lc.HomeRight,
		HomeBottom: lc.HomeBottom,
		ReadTop:    lc.ReadTop,
		ReadLeft:   lc.ReadLeft,
		ReadCenter: lc.ReadCenter,
		ReadRight:  lc.ReadRight,
		ReadBottom: lc.ReadBottom,
	})

	tc := c.Config.Theme
	selectorCfg := themes.SelectorConfig{
		DefaultTheme:   tc.Name,
		DefaultVariant: tc.Variant,
		CSSPrefix:      tc.CSSPrefix,
	}
	if c.Config.Features.Themes {
		selectorCfg.BasePath = tc.BasePath
	}
	c.themeSelector = themes.NewSelector(selectorCfg, themes.WithLogger(logging.ThemesLogger(c.loggerProvider)))
	return nil
}

func (c *Container) configureContact() error {
	logger := logging.ContactLogger(c.loggerProvider)
	if c.contactRepo == nil {
		if c.bunDB != nil {
			c.contactRepo = contact.NewBunRepositoryWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.contactRepo = contact.NewMemoryRepository()
		}
	}

	mc := c.Config.Mail
	c.contactSvc = contact.NewService(contact.Config{
		Enabled:       c.Config.Contact.Enabled,
		To:            mc.To,
		FromName:      mc.FromName,
		FromEmail:     mc.FromEmail,
		SubjectPrefix: mc.SubjectPrefix,
	}, c.contactRepo, c.mailer, contact.WithLogger(logger))

	c.contactHandler = contactcmd.NewSubmitHandler(c.contactSvc, commands.CommandLogger(c.loggerProvider, "contact"))
	return nil
}

// Close releases the database when the container opened it.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	c.ownsDB = false
	return c.bunDB.Close()
}

// Warm loads the content tree eagerly so configuration errors surface at start-up.
func (c *Container) Warm(ctx context.Context) error {
	return c.contentSvc.Reload(ctx)
}

func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func (c *Container) MarkdownService() *markdown.Service {
	return c.markdownSvc
}

func (c *Container) ContentService() content.Service {
	return c.contentSvc
}

func (c *Container) LayoutResolver() *layout.Resolver {
	return c.layoutResolver
}

func (c *Container) ThemeSelector() *themes.Selector {
	return c.themeSelector
}

func (c *Container) ContactService() contact.Service {
	return c.contactSvc
}

func (c *Container) ContactHandler() *contactcmd.SubmitHandler {
	return c.contactHandler
}

func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}
