package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"textmatch/internal/config"
	"textmatch/internal/corpus"
	"textmatch/internal/domain"
	"textmatch/internal/service"
	"textmatch/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, query string
	var verbose bool
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textmatch/config.yaml if not provided)")
	flag.StringVar(&query, "query", "", "One-shot query; omit for interactive mode")
	flag.BoolVar(&verbose, "verbose", false, "Print per-document distances and recognized query terms")
	flag.Parse()
	extraPaths := flag.Args()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           parseLevel(cfg.LogLevel),
	})
	if verbose || cfg.Search.Verbose {
		logger.SetLevel(log.DebugLevel)
		verbose = true
	}

	policy, err := domain.ParsePolicy(cfg.Index.Policy)
	if err != nil {
		logger.Fatal("invalid index policy", "err", err)
	}

	extra, err := loadExtraDocuments(cfg.Index.Documents, extraPaths)
	if err != nil {
		logger.Fatal("failed to read document", "err", err)
	}

	provider := corpus.NewProvider(cfg.Corpus.Dir, cfg.Corpus.FileType, cfg.Corpus.Limit, logger)
	matcher, err := service.New(provider, service.Options{
		Language: cfg.Language,
		Policy:   policy,
		Seeds:    cfg.Index.SeedTerms,
		Extra:    extra,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("indexing failed", "err", err)
	}
	logger.Info("index built",
		"documents", matcher.Len(),
		"vocabulary", matcher.Vocabulary().Len(),
		"language", cfg.Language,
	)

	if query != "" {
		runQuery(matcher, query, verbose)
		return
	}

	if _, err := tea.NewProgram(tui.New(matcher)).Run(); err != nil {
		logger.Fatal("tui failed", "err", err)
	}
}

func runQuery(matcher *service.Matcher, query string, verbose bool) {
	var match domain.Match
	var err error
	if verbose {
		match, err = matcher.SearchVerbose(query)
	} else {
		match, err = matcher.Search(query)
	}
	if err != nil {
		log.Fatal("search failed", "err", err)
	}
	if verbose {
		fmt.Printf("recognized terms: %v\n", match.Recognized)
		for _, dd := range match.Distances {
			fmt.Printf("%.5f for doc %s\n", dd.Distance, dd.ID)
		}
	}
	if !match.Found {
		fmt.Println("no document found")
		return
	}
	fmt.Printf("closest doc is %s with distance %.5f\n", match.DocumentID, match.Distance)
}

// loadExtraDocuments reads the caller-given documents for the separate
// and union policies: the config's id -> path mapping, plus any file
// paths given as CLI arguments (keyed by their path).
func loadExtraDocuments(configured map[string]string, paths []string) (map[string]string, error) {
	extra := make(map[string]string, len(configured)+len(paths))
	for id, path := range configured {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		extra[id] = string(data)
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		extra[path] = string(data)
	}
	return extra, nil
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
