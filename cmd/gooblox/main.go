package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gooblox/gooblox/pkg/answer"
	"github.com/gooblox/gooblox/pkg/config"
	"github.com/gooblox/gooblox/pkg/encyclopedia"
	"github.com/gooblox/gooblox/pkg/httpapi"
	"github.com/gooblox/gooblox/pkg/search"
	"github.com/gooblox/gooblox/pkg/spellcheck"
)

// Information to find out exactly which commit the server was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	log, err := cfg.Logging.Compile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logging: %v\n", err)
		os.Exit(1)
	}
	log.Info().
		Str("tag", Tag).Str("commit", Commit).Str("build_time", BuildTime).
		Msg("Starting gooblox")

	// Capability handles are built once here and shared read-only across
	// requests. The dictionary and encyclopedia are soft dependencies.
	dict, err := spellcheck.Load(cfg.Spellcheck)
	if err != nil {
		log.Warn().Err(err).Msg("Spell-check dictionary unavailable")
	}
	enc := encyclopedia.NewClient(cfg.Encyclopedia)
	if !enc.Available() {
		log.Info().Msg("Encyclopedia lookups disabled")
	}
	searcher, err := search.NewService(&cfg.Search)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build search providers")
	}
	log.Info().Strs("providers", searcher.Providers()).Msg("Search providers registered")

	server := httpapi.NewServer(httpapi.Options{
		Addr:      fmt.Sprintf(":%d", cfg.Port),
		Log:       *log,
		Handler:   httpapi.NewHandler(searcher, dict, answer.NewExtractor(enc)),
		Version:   Tag,
		RateLimit: cfg.RateLimit,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := server.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
	log.Info().Msg("Shutdown complete")
}
