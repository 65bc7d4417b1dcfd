package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daybook/internal/config"
	"daybook/internal/harness"
	"daybook/internal/progress"
	"daybook/internal/ratelimit"
	"daybook/internal/report"
	"daybook/internal/snapshot"
	"daybook/internal/task"
	"daybook/internal/universe"
)

const (
	ExitSuccess    = 0
	ExitIncomplete = 1
	ExitError      = 2
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (required)")
	dateFlag := flag.String("date", "", "snapshot date YYYY-MM-DD (default: today in the configured zone)")
	rounds := flag.Int("rounds", 0, "override harness.max_rounds")
	sleep := flag.Duration("sleep", -1, "override harness.sleep between rounds")
	output := flag.String("output", "text", "output format: text, json")
	quiet := flag.Bool("quiet", false, "suppress progress output during the run")
	verbose := flag.Bool("verbose", false, "enable debug output (collector launch/exit tracing)")
	flag.Parse()

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "error: --config is required")
		flag.Usage()
		os.Exit(ExitError)
	}
	if *output != "text" && *output != "json" {
		fmt.Fprintf(os.Stderr, "error: --output must be 'text' or 'json', got %q\n", *output)
		os.Exit(ExitError)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	// CLI flags override config file values
	if *rounds > 0 {
		cfg.Harness.MaxRounds = *rounds
	}
	if *sleep >= 0 {
		cfg.Harness.Sleep = *sleep
	}

	date, err := resolveDate(cfg, *dateFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	var debugLogger *task.DebugLogger
	if *verbose {
		debugLogger = task.NewDebugLogger(os.Stderr)
	}

	specs, err := buildSpecs(cfg, date, debugLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		if !*quiet {
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down...")
		}
		cancel()
	}()

	prog := progress.NewProgress(*quiet)
	recorder := report.NewRecorder()

	prog.Printf("Daybook starting: date %s, %d collectors, up to %d rounds",
		date, len(specs), cfg.Harness.MaxRounds)

	outcome, err := harness.Run(ctx, date, specs, harness.Options{
		MaxRounds: cfg.Harness.MaxRounds,
		Sleep:     cfg.Harness.Sleep,
		Reporter:  recorder,
		Progress:  prog,
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}

	rep := &report.RunReport{
		Date:    date.String(),
		Status:  outcome.Status.String(),
		Rounds:  outcome.Rounds,
		Summary: report.Summarize(recorder.Events()),
		Quorum:  outcome.Quorum,
	}
	if *output == "json" {
		report.FormatJSON(os.Stdout, rep)
	} else {
		report.FormatText(os.Stdout, rep)
	}

	if outcome.Status != harness.StatusSuccess {
		if *output == "text" {
			fmt.Fprintln(os.Stderr, "\nQuorum not reached!")
		}
		os.Exit(ExitIncomplete)
	}
	os.Exit(ExitSuccess)
}

func resolveDate(cfg *config.Config, flagValue string) (snapshot.Date, error) {
	if flagValue != "" {
		return snapshot.ParseDate(flagValue)
	}
	loc, err := cfg.Location()
	if err != nil {
		return "", err
	}
	return snapshot.Today(loc), nil
}

// buildSpecs turns collector configuration into harness specs: date-expanded
// output directories, exec-backed tasks sharing one launch limiter, and
// quorums defaulted from the universe file where unset.
func buildSpecs(cfg *config.Config, date snapshot.Date, debug *task.DebugLogger) ([]harness.Spec, error) {
	var limiter *ratelimit.Limiter
	if cfg.Harness.RatePerSec > 0 {
		limiter = ratelimit.New(cfg.Harness.RatePerSec)
	}

	universeSize := 0
	if needsUniverse(cfg) {
		tickers, err := universe.Load(snapshot.ExpandDir(cfg.Universe, date))
		if err != nil {
			return nil, err
		}
		universeSize = len(tickers)
	}

	specs := make([]harness.Spec, 0, len(cfg.Collectors))
	for _, col := range cfg.Collectors {
		quorum := col.Quorum
		if quorum == 0 {
			quorum = universeSize
		}
		specs = append(specs, harness.Spec{
			Name:     col.Name,
			OutDir:   snapshot.ExpandDir(col.OutDir, date),
			Quorum:   quorum,
			MinBytes: col.MinBytes,
			Task: &task.Command{
				Name:    col.Name,
				Program: col.Command,
				Args:    col.Args,
				Dir:     col.Dir,
				Env:     col.Env,
				Limiter: limiter,
				Debug:   debug,
			},
		})
	}
	return specs, nil
}

func needsUniverse(cfg *config.Config) bool {
	for _, col := range cfg.Collectors {
		if col.Quorum == 0 {
			return true
		}
	}
	return false
}
