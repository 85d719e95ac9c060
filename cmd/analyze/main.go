// Command analyze submits PDF documents to the document-analysis service
// once and prints the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/doc-analysis-client/config"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/domain"
	analysishttp "github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/http"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/render"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/analysis/service"
	"github.com/GoSim-25-26J-441/doc-analysis-client/internal/logging"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitRejected = 2
)

type options struct {
	mode    string
	persona string
	jobTask string
	url     string
	timeout time.Duration
	files   []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer, cfg *config.Config) (options, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: analyze [flags] file.pdf...")
		fs.PrintDefaults()
	}

	var o options
	fs.StringVar(&o.mode, "mode", string(domain.ModeStructure), "service mode: structure or persona")
	fs.StringVar(&o.persona, "persona", "", "persona description (persona mode)")
	fs.StringVar(&o.jobTask, "job-task", "", "job to be done (persona mode)")
	fs.StringVar(&o.url, "url", cfg.Analysis.Endpoint(), "analysis endpoint")
	fs.DurationVar(&o.timeout, "timeout", cfg.Analysis.Timeout, "request timeout, 0 for none")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.files = fs.Args()
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitRejected
	}

	logger := logging.New(loggerOptions(cfg))
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	o, err := parseFlags(args, stderr, cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitRejected
	}

	mode, err := domain.ParseServiceMode(o.mode)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitRejected
	}

	return submit(ctx, analysishttp.NewAnalysisClient(o.url, o.timeout), mode, o, stdout)
}

func loggerOptions(cfg *config.Config) logging.Options {
	return logging.Options{
		Level:      cfg.App.LogLevel,
		FilePath:   cfg.App.LogFile,
		Production: cfg.App.Environment == "production",
	}
}

// submit feeds the options to a fresh controller in the order a user would
// enter them and prints the outcome.
func submit(ctx context.Context, d service.Dispatcher, mode domain.ServiceMode, o options, stdout io.Writer) int {
	controller := service.NewController(d)
	controller.SetFiles(domain.PathFiles(o.files...))
	controller.SetMode(mode)
	controller.SetPersona(o.persona)
	controller.SetJobTask(o.jobTask)

	fmt.Fprintln(stdout, render.FileLabel(len(o.files)))

	st, err := controller.Submit(ctx)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return exitFailure
	}
	if err := render.WriteTerminal(stdout, st); err != nil {
		zap.L().Error("failed to write result", zap.Error(err))
		return exitFailure
	}

	switch st.Status {
	case domain.StatusSuccess:
		return exitOK
	case domain.StatusRejected:
		return exitRejected
	}
	return exitFailure
}
