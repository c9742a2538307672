package contact

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goliatone/go-artia/internal/identity"
	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

const (
	DefaultFromName      = "Contact Form"
	DefaultSubjectPrefix = "[Contact]"
)

// Config controls whether the form accepts submissions and how the outbound
// mail is addressed.
type Config struct {
	Enabled       bool
	To            []string
	FromName      string
	FromEmail     string
	SubjectPrefix string
}

// Service accepts contact form submissions.
type Service interface {
	Enabled() bool
	Submit(ctx context.Context, input Input) (*Submission, error)
	List(ctx context.Context, limit int) ([]*Submission, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger overrides the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp submissions.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	cfg    Config
	repo   Repository
	mailer interfaces.Mailer
	logger interfaces.Logger
	now    func() time.Time
}

// NewService constructs a contact service. A nil repo stores submissions in
// memory and a nil mailer logs messages instead of sending them.
func NewService(cfg Config, repo Repository, mailer interfaces.Mailer, opts ...ServiceOption) Service {
	svc := &service{
		cfg:    normalizeConfig(cfg),
		repo:   repo,
		mailer: mailer,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	if svc.repo == nil {
		svc.repo = NewMemoryRepository()
	}
	if svc.mailer == nil {
		svc.mailer = LogMailer{Logger: svc.logger}
	}
	return svc
}

func normalizeConfig(cfg Config) Config {
	cfg.FromName = strings.TrimSpace(cfg.FromName)
	if cfg.FromName == "" {
		cfg.FromName = DefaultFromName
	}
	cfg.FromEmail = strings.TrimSpace(cfg.FromEmail)
	cfg.SubjectPrefix = strings.TrimSpace(cfg.SubjectPrefix)
	if cfg.SubjectPrefix == "" {
		cfg.SubjectPrefix = DefaultSubjectPrefix
	}
	recipients := make([]string, 0, len(cfg.To))
	for _, to := range cfg.To {
		if trimmed := strings.TrimSpace(to); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	cfg.To = recipients
	return cfg
}

func (s *service) Enabled() bool {
	return s.cfg.Enabled
}

// Submit validates input, stores it, and hands the composed mail to the
// mailer. The returned submission reflects the final delivery status.
func (s *service) Submit(ctx context.Context, input Input) (*Submission, error) {
	if !s.cfg.Enabled {
		return nil, ErrContactDisabled
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record := &Submission{
		ID:        identity.SubmissionUUID(input.Email, now.UnixNano()),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Subject:   strings.TrimSpace(input.Subject),
		Message:   input.Message,
		Status:    StatusPending,
		CreatedAt: now,
	}
	logger := logging.WithFields(s.logger, map[string]any{
		"submission_id": record.ID.String(),
	}).WithContext(ctx)

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		logger.Error("contact.submission.store_failed", "error", err)
		return nil, err
	}

	sendErr := s.deliver(ctx, created)
	if sendErr != nil {
		logger.Error("contact.submission.delivery_failed", "error", sendErr)
		created.Status = StatusFailed
		created.Error = sendErr.Error()
	} else {
		sentAt := s.now().UTC()
		created.Status = StatusSent
		created.SentAt = &sentAt
	}

	updated, err := s.repo.Update(ctx, created)
	if err != nil {
		logger.Warn("contact.submission.status_update_failed", "error", err)
		updated = created
	}
	if sendErr != nil {
		return updated, fmt.Errorf("%w: %w", ErrDeliveryFailed, sendErr)
	}
	logger.Info("contact.submission.sent")
	return updated, nil
}

func (s *service) List(ctx context.Context, limit int) ([]*Submission, error) {
	return s.repo.List(ctx, limit)
}

func (s *service) deliver(ctx context.Context, record *Submission) error {
	if len(s.cfg.To) == 0 {
		return ErrRecipientMissing
	}
	return s.mailer.Send(ctx, s.compose(record))
}

func (s *service) compose(record *Submission) interfaces.MailMessage {
	msg := interfaces.MailMessage{
		To:      slices.Clone(s.cfg.To),
		ReplyTo: record.Email,
		Subject: s.cfg.SubjectPrefix + " " + record.Subject,
		Text:    composeBody(record),
	}
	if s.cfg.FromEmail != "" {
		msg.From = fmt.Sprintf(`"%s" <%s>`, s.cfg.FromName, s.cfg.FromEmail)
	}
	return msg
}

func composeBody(record *Submission) string {
	var b strings.Builder
	b.WriteString("New contact form message\n\n")
	b.WriteString("Sender:\n")
	b.WriteString("- Name: " + record.Name + "\n")
	b.WriteString("- Email: " + record.Email + "\n\n")
	b.WriteString("Subject: " + record.Subject + "\n\n")
	b.WriteString("Message:\n")
	b.WriteString(record.Message + "\n\n")
	b.WriteString("---\n")
	b.WriteString("Sent automatically by the Artia contact form")
	return strings.TrimSpace(b.String())
}
