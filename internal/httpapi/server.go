package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/ideaforge-labs/ideaforge/internal/history"
	"github.com/ideaforge-labs/ideaforge/internal/ideagen"
)

const maxRequestBytes = 1 << 20

type Server struct {
	pipeline *ideagen.Pipeline
	history  *history.Store
	md       goldmark.Markdown
}

// NewServer builds the HTTP surface. hist may be nil when no history database
// is configured.
func NewServer(pipeline *ideagen.Pipeline, hist *history.Store) http.Handler {
	s := &Server{
		pipeline: pipeline,
		history:  hist,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate-ideas", s.handleGenerateIdeas)
	mux.HandleFunc("/api/report", s.handleReport)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/health", s.handleHealth)
	return recoverable(mux)
}

// recoverable is the outermost failure boundary: a panic becomes a JSON 500
// with a best-effort message, never a stack trace on the wire.
func recoverable(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("ideaforge panic recovered: %v", rec)
				writeJSON(w, http.StatusInternalServerError, map[string]any{
					"error":   "Unexpected server error.",
					"details": "internal failure",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func parseInt(value string, def int) int {
	if strings.TrimSpace(value) == "" {
		return def
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return v
}

func (s *Server) handleGenerateIdeas(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}

	blob, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Invalid JSON body. Expecting { answers: QuestionnaireData }.",
		})
		return
	}
	var body map[string]any
	if err := json.Unmarshal(blob, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Invalid JSON body. Expecting { answers: QuestionnaireData }.",
		})
		return
	}
	answers, ok := body["answers"].(map[string]any)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "Bad Request: Missing 'answers' object in request body.",
		})
		return
	}

	res, err := s.pipeline.Run(r.Context(), answers)
	if err != nil {
		writeSynthesisError(w, err)
		return
	}

	s.recordHistory(r, res)
	writeJSON(w, http.StatusOK, res)
}

// writeSynthesisError maps pipeline failures onto the wire contract. Trend
// failures never reach here; anything surfaced by synthesis is a 500 with
// diagnostic detail and no retry.
func writeSynthesisError(w http.ResponseWriter, err error) {
	var upstream *ideagen.UpstreamError
	if errors.As(err, &upstream) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "OpenAI API request failed.",
			"status":  upstream.Status,
			"details": upstream.Details,
		})
		return
	}
	if errors.Is(err, ideagen.ErrEmptyCompletion) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "OpenAI returned an empty response.",
		})
		return
	}
	var parse *ideagen.ParseError
	if errors.As(err, &parse) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Failed to parse model response as JSON.",
			"raw":   parse.Raw,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"error":   "Unexpected server error.",
		"details": err.Error(),
	})
}

func (s *Server) recordHistory(r *http.Request, res ideagen.Result) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(r.Context(), s.pipeline.Mode(), s.pipeline.ModelName(), res); err != nil {
		log.Printf("ideaforge history record failed: %v", err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	blob, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body."})
		return
	}
	var res ideagen.Result
	if err := json.Unmarshal(blob, &res); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body."})
		return
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(ideagen.BuildReportMarkdown(res)), &buf); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Unexpected server error.",
			"details": err.Error(),
		})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	if s.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error": "history not configured"})
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	entries, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Unexpected server error.",
			"details": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ideas": entries})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"mode": s.pipeline.Mode(),
	})
}
