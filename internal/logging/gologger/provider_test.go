package gologger

import (
	"context"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
)

func TestNewProviderCreatesLogger(t *testing.T) {
	p, err := NewProvider(Config{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}

	logger := p.GetLogger("artia.test")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	logger.Debug("adapter.initialised")
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestAdapterDelegatesToUnderlyingLogger(t *testing.T) {
	stub := &stubLogger{}
	adapted := wrap(stub)

	adapted.Info("info")
	adapted.Error("error")

	fields := map[string]any{"slot": "home.left"}
	adapted.WithFields(fields)
	fields["slot"] = "read.right"
	if len(stub.fields) != 1 || stub.fields[0]["slot"] != "home.left" {
		t.Fatalf("expected cloned fields, got %#v", stub.fields)
	}

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	adapted.WithContext(ctx)
	if len(stub.contexts) != 1 || stub.contexts[0] != ctx {
		t.Fatalf("expected context propagation, got %#v", stub.contexts)
	}

	if len(stub.calls) != 2 || stub.calls[0] != "info" || stub.calls[1] != "error" {
		t.Fatalf("unexpected calls %v", stub.calls)
	}
}

func TestNewProviderAttachesSite(t *testing.T) {
	p, err := NewProvider(Config{Format: "json", Site: " Artia "})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if got := p.fields["site"]; got != "Artia" {
		t.Fatalf("expected trimmed site field, got %#v", p.fields)
	}

	bare, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("NewProvider returned error: %v", err)
	}
	if bare.fields != nil {
		t.Fatalf("expected no fields without site, got %#v", bare.fields)
	}
}

func TestFocusModules(t *testing.T) {
	got := FocusModules([]string{" content ", "artia.contact", "", "Content", "artia"})
	want := []string{"artia.content", "artia.contact", "artia"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNilProviderReturnsNoOp(t *testing.T) {
	var p *Provider
	if logger := p.GetLogger("artia.content"); logger == nil {
		t.Fatal("expected no-op logger from nil provider")
	}
}

func TestNormalizeLevel(t *testing.T) {
	if got := normalizeLevel("WARNING"); got != glog.Warn {
		t.Fatalf("expected warn level, got %q", got)
	}
	if got := normalizeLevel("verbose"); got != "" {
		t.Fatalf("expected empty level for unknown input, got %q", got)
	}
}

type stubLogger struct {
	calls    []string
	fields   []map[string]any
	contexts []context.Context
}

var _ glog.Logger = (*stubLogger)(nil)
var _ glog.FieldsLogger = (*stubLogger)(nil)

func (s *stubLogger) Trace(string, ...any) { s.calls = append(s.calls, "trace") }
func (s *stubLogger) Debug(string, ...any) { s.calls = append(s.calls, "debug") }
func (s *stubLogger) Info(string, ...any)  { s.calls = append(s.calls, "info") }
func (s *stubLogger) Warn(string, ...any)  { s.calls = append(s.calls, "warn") }
func (s *stubLogger) Error(string, ...any) { s.calls = append(s.calls, "error") }
func (s *stubLogger) Fatal(string, ...any) { s.calls = append(s.calls, "fatal") }

func (s *stubLogger) WithContext(ctx context.Context) glog.Logger {
	s.contexts = append(s.contexts, ctx)
	return s
}

func (s *stubLogger) WithFields(fields map[string]any) glog.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	s.fields = append(s.fields, copied)
	return s
}
