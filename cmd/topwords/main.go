package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"topwords/internal/config"
	"topwords/internal/domain"
	"topwords/internal/loader"
	"topwords/internal/logging"
	"topwords/internal/ranker"
	"topwords/internal/reporter"
	"topwords/internal/service"
	"topwords/internal/tui"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on success,
// 2 on bad usage, 1 on any other failure.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("topwords", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfgPath string
		topK    int
		useTUI  bool
	)
	fs.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./topwords.yaml or ~/.config/topwords/config.yaml if present)")
	fs.IntVar(&topK, "k", 0, "Number of top words per dimension (overrides config)")
	fs.BoolVar(&useTUI, "tui", false, "Browse the ranking interactively instead of printing it")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: topwords [flags] vector_file\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	log := logging.New(stderr, "warn", "text")
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	vectorFile := fs.Arg(0)

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Errorf("failed to load config: %v", err)
		return 1
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Errorf("failed to load config: %v", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "k":
			cfg.Ranker.TopK = &topK
		case "tui":
			if useTUI {
				cfg.Reporter.Type = "tui"
			} else {
				cfg.Reporter.Type = "text"
			}
		}
	})
	log = logging.New(stderr, cfg.Log.Level, cfg.Log.Format)

	var rep domain.Reporter
	switch cfg.Reporter.Type {
	case "text", "":
		rep = reporter.NewText(stdout)
	case "tui":
		rep = tui.NewReporter("topwords: " + filepath.Base(vectorFile))
	default:
		log.Errorf("unknown reporter: %s", cfg.Reporter.Type)
		return 1
	}

	rk := ranker.NewTopK(cfg.Ranker.K(), ranker.Options{
		Exclude:  cfg.Ranker.ExcludeSubstring(),
		Backfill: cfg.Ranker.Backfill,
	}, log)

	svc := service.NewPipeline(loader.NewTextLoader(log), rk, rep, log)
	if err := svc.Run(vectorFile); err != nil {
		log.Errorf("topwords: %v", err)
		return 1
	}
	return 0
}
