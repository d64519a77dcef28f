package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/ideaforge-labs/ideaforge/internal/history"
	"github.com/ideaforge-labs/ideaforge/internal/httpapi"
	"github.com/ideaforge-labs/ideaforge/internal/ideagen"
)

func main() {
	_ = godotenv.Load()

	dbFlag := flag.String("history-db", "", "path to SQLite idea history file (overrides HISTORY_DB env var)")
	searchURL := flag.String("search-url", "", "story-search index base URL (overrides SEARCH_BASE_URL env var)")
	flag.Parse()

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	fetcher := ideagen.NewTrendFetcher(ideagen.TrendFetcherConfig{
		BaseURL: firstNonEmpty(*searchURL, os.Getenv("SEARCH_BASE_URL")),
	})

	var synth *ideagen.Synthesizer
	switch {
	case os.Getenv("OPENAI_API_KEY") != "":
		caller := ideagen.NewOpenAICaller(ideagen.OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   os.Getenv("OPENAI_MODEL"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		})
		synth = ideagen.NewSynthesizer(caller)
		log.Printf("ideaforge synthesis via openai model=%s", caller.ModelName())
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		caller := ideagen.NewAnthropicCaller(os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("ANTHROPIC_MODEL"))
		synth = ideagen.NewSynthesizer(caller)
		log.Printf("ideaforge synthesis via anthropic model=%s", caller.ModelName())
	default:
		log.Printf("ideaforge no completion credential configured, running in fallback mode")
	}

	pipeline := ideagen.NewPipeline(fetcher, synth)

	dbPath := firstNonEmpty(*dbFlag, os.Getenv("HISTORY_DB"))
	var hist *history.Store
	if dbPath != "" {
		h, err := history.Open(dbPath)
		if err != nil {
			log.Fatalf("failed to initialize history store (%s): %v", dbPath, err)
		}
		defer h.Close()
		hist = h
		log.Printf("ideaforge history store at %s", dbPath)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := &http.Server{Addr: addr, Handler: withCORS(httpapi.NewServer(pipeline, hist))}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	log.Printf("ideaforge listening on %s (mode=%s)", addr, pipeline.Mode())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func withCORS(h http.Handler) http.Handler {
	origins := []string{}
	for _, raw := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if v := strings.TrimSpace(raw); v != "" {
			origins = append(origins, v)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(h)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
