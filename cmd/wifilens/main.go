package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/wifilens/internal/config"
	"github.com/HerbHall/wifilens/internal/facts"
	"github.com/HerbHall/wifilens/internal/metrics"
	"github.com/HerbHall/wifilens/internal/platform"
	"github.com/HerbHall/wifilens/internal/server"
	"github.com/HerbHall/wifilens/internal/version"
	"github.com/HerbHall/wifilens/pkg/models"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	format := flag.String("format", "", "output format: text or json (overrides config)")
	lang := flag.String("lang", "", "report language, e.g. es or en (overrides config)")
	capture := flag.String("capture", "", "write the current wifi state to this snapshot file and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wifilens: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.GetString("log.level"), cfg.GetBool("log.development"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "wifilens: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *format == "" {
		*format = cfg.GetString("format")
	}
	if err := validateFormat(*format); err != nil {
		logger.Fatal("invalid output format", zap.Error(err))
	}

	src, err := platform.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create wifi source", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *capture != "" {
		if err := captureSnapshot(ctx, src, *capture); err != nil {
			logger.Fatal("failed to capture snapshot", zap.Error(err))
		}
		logger.Info("snapshot written", zap.String("path", *capture))
		return
	}

	extractor := facts.NewExtractor(src, logger)

	if addr := cfg.GetString("server.addr"); addr != "" {
		if err := serve(ctx, cfg, extractor, logger); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	labels := facts.LabelsFor(*lang, cfg.GetString("locale"))
	if err := report(ctx, os.Stdout, extractor, *format, labels); err != nil {
		if errors.Is(err, platform.ErrPermissionDenied) {
			fmt.Fprintln(os.Stderr, labels.PermissionDenied)
			os.Exit(1)
		}
		logger.Fatal("failed to report wifi state", zap.Error(err))
	}
}

// newLogger builds a Zap logger at the given level.
func newLogger(level string, development bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if development {
		zcfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log.level %q: %w", level, err)
		}
		zcfg.Level = lvl
	}
	return zcfg.Build()
}

func validateFormat(format string) error {
	switch format {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// report collects the facts once and prints them. The format is checked
// before anything is read from the platform.
func report(ctx context.Context, w io.Writer, c server.Collector, format string, l facts.Labels) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	f, err := c.Collect(ctx, l)
	if err != nil {
		return err
	}
	return printFacts(w, format, f, l)
}

func printFacts(w io.Writer, format string, f models.NetworkFacts, l facts.Labels) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(w, facts.RenderText(f, l))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func captureSnapshot(ctx context.Context, src facts.Source, path string) error {
	snap, err := platform.Capture(ctx, src)
	if err != nil {
		return err
	}
	return platform.WriteSnapshot(path, snap)
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, cfg config.Config, extractor *facts.Extractor, logger *zap.Logger) error {
	collector, err := metrics.NewCollector(nil)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	srv := server.New(server.Options{
		Addr:         cfg.GetString("server.addr"),
		ReadTimeout:  cfg.GetDuration("server.read_timeout"),
		WriteTimeout: cfg.GetDuration("server.write_timeout"),
		RateLimit:    cfg.GetFloat64("server.rate_limit"),
		Burst:        cfg.GetInt("server.burst"),
		Locale:       cfg.GetString("locale"),
	}, extractor, collector, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("wifilens server ready",
		zap.String("addr", cfg.GetString("server.addr")),
		zap.String("version", version.Short()),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("wifilens server stopped")
	return nil
}
