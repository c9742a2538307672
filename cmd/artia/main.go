package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goliatone/go-artia"
	"github.com/goliatone/go-artia/commands"
	contentcmd "github.com/goliatone/go-artia/internal/commands/content"
	"github.com/goliatone/go-command/dispatcher"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		envFiles   = flag.String("env", ".env", "Comma separated .env files loaded before reading ARTIA_* variables")
		addr       = flag.String("addr", "", "Listen address (overrides ARTIA_HTTP_ADDR)")
		contentDir = flag.String("content-dir", "", "Markdown content root (overrides ARTIA_MARKDOWN_CONTENT_DIR)")
	)
	flag.Parse()

	if err := run(*envFiles, *addr, *contentDir); err != nil {
		log.Fatalf("artia: %v", err)
	}
}

func run(envFiles, addr, contentDir string) error {
	if err := artia.LoadDotEnv(splitFiles(envFiles)...); err != nil {
		return err
	}
	cfg, err := artia.ConfigFromEnv()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.HTTP.Addr = addr
	}
	if contentDir != "" {
		cfg.Markdown.ContentDir = contentDir
	}

	module, err := artia.New(cfg)
	if err != nil {
		return err
	}
	defer module.Close()

	logger := module.Logger("server")
	if cfg.Contact.Enabled {
		smtp := module.SMTP()
		logger.Info("server.mail.transport", "smtp_host", smtp.Host, "smtp_port", smtp.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := module.Reload(ctx); err != nil {
		return err
	}

	registered, err := commands.RegisterContainerCommands(module.Container(), commands.RegistrationOptions{
		Dispatcher: commands.GlobalDispatcher{},
	})
	if err != nil {
		return err
	}
	defer func() {
		for _, sub := range registered.Subscriptions {
			sub.Unsubscribe()
		}
	}()

	mux := http.NewServeMux()
	if err := module.RegisterRoutes(mux); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hangup:
				if err := dispatcher.Dispatch(ctx, contentcmd.ReloadContentCommand{}); err != nil {
					logger.Error("server.reload.failed", "error", err)
					continue
				}
				logger.Info("server.reload.completed")
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server.listening", "addr", server.Addr, "base_path", cfg.HTTP.BasePath)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("server.shutdown")
	return server.Shutdown(shutdownCtx)
}

func splitFiles(raw string) []string {
	var files []string
	for part := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files
}
