package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/tylr-r/crossword-studio/engine"
)

//go:embed frontend
var frontendFS embed.FS

const maxBodySize = 1 << 20 // 1 MB of JSON is plenty for 25 entries

// rateLimiter is a simple per-IP token bucket rate limiter.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int           // tokens per interval
	interval time.Duration // refill interval
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}
	// Cleanup stale entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, b := range rl.visitors {
				if time.Since(b.lastSeen) > 5*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	// Refill tokens based on elapsed time.
	elapsed := time.Since(b.lastSeen)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		b.tokens += refill * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Server is the main HTTP server.
type Server struct {
	mux        *http.ServeMux
	store      *Store
	gemini     *GeminiClient
	sse        *Broadcaster
	generateRL *rateLimiter
	suggestRL  *rateLimiter
}

// NewServer creates a configured HTTP server.
func NewServer(store *Store, gemini *GeminiClient) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		store:      store,
		gemini:     gemini,
		sse:        NewBroadcaster(),
		generateRL: newRateLimiter(10, time.Minute), // 10 generations/min per IP
		suggestRL:  newRateLimiter(5, time.Minute),  // 5 AI calls/min per IP
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	// Word list API
	s.mux.HandleFunc("POST /api/wordlists", s.handleCreateWordList)
	s.mux.HandleFunc("GET /api/wordlists", s.handleListWordLists)
	s.mux.HandleFunc("GET /api/wordlists/{id}", s.handleGetWordList)
	s.mux.HandleFunc("DELETE /api/wordlists/{id}", s.handleDeleteWordList)

	// Generation API
	s.mux.HandleFunc("POST /api/puzzles", s.handleGenerate)
	s.mux.HandleFunc("GET /api/puzzles", s.handleListPuzzles)
	s.mux.HandleFunc("GET /api/puzzles/{id}", s.handleGetPuzzle)
	s.mux.HandleFunc("GET /api/puzzles/{id}/pdf", s.handlePuzzlePDF)
	s.mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	s.mux.HandleFunc("GET /api/jobs/{id}/events", s.handleJobEvents)

	// AI helper
	s.mux.HandleFunc("POST /api/suggest", s.handleSuggest)

	// Frontend static files
	frontendDir, _ := fs.Sub(frontendFS, "frontend")
	s.mux.Handle("GET /", http.FileServer(http.FS(frontendDir)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// --- Word list handlers ---

// POST /api/wordlists — normalize and save a list of (word, clue) pairs.
func (s *Server) handleCreateWordList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string          `json:"name"`
		Entries json.RawMessage `json:"entries"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Entries) == 0 {
		jsonError(w, "Field 'entries' required", http.StatusBadRequest)
		return
	}

	entries, err := engine.Normalize(req.Entries)
	if err != nil {
		engineError(w, err)
		return
	}

	wl := s.store.SaveWordList(&WordList{
		Name:    sanitizeName(req.Name),
		Entries: entries,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(wl)
}

// GET /api/wordlists — list all word lists.
func (s *Server) handleListWordLists(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.ListWordLists())
}

// GET /api/wordlists/{id} — get a single word list.
func (s *Server) handleGetWordList(w http.ResponseWriter, r *http.Request) {
	wl := s.store.GetWordList(r.PathValue("id"))
	if wl == nil {
		jsonError(w, "Word list not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wl)
}

// DELETE /api/wordlists/{id} — remove a word list.
func (s *Server) handleDeleteWordList(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteWordList(r.PathValue("id")) {
		jsonError(w, "Word list not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Generation handlers ---

// POST /api/puzzles — start a generation job from inline entries or a saved
// word list. Responds 202 with the job ID; progress and the result stream
// over /api/jobs/{id}/events.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.generateRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	var req struct {
		Name       string          `json:"name"`
		WordListID string          `json:"wordlist_id"`
		Entries    json.RawMessage `json:"entries"`
		Count      int             `json:"count"`
		Seed       int64           `json:"seed"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var entries []engine.Entry
	switch {
	case req.WordListID != "":
		wl := s.store.GetWordList(req.WordListID)
		if wl == nil {
			jsonError(w, "Word list not found", http.StatusNotFound)
			return
		}
		entries = wl.Entries
		if req.Name == "" {
			req.Name = wl.Name
		}
	case len(req.Entries) > 0:
		var err error
		entries, err = engine.Normalize(req.Entries)
		if err != nil {
			engineError(w, err)
			return
		}
	default:
		jsonError(w, "Either 'entries' or 'wordlist_id' is required", http.StatusBadRequest)
		return
	}

	count := req.Count
	if count == 0 {
		count = len(entries)
		if count > engine.MaxWords {
			count = engine.MaxWords
		}
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	job := s.store.CreateJob()
	go s.runGeneration(job, sanitizeName(req.Name), entries, count, seed)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"job_id": job.ID()})
}

// GET /api/jobs/{id} — poll a generation job.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job := s.store.GetJob(r.PathValue("id"))
	if job == nil {
		jsonError(w, "Job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// GET /api/jobs/{id}/events — SSE stream of generation progress.
func (s *Server) handleJobEvents(w http.ResponseWriter, r *http.Request) {
	job := s.store.GetJob(r.PathValue("id"))
	if job == nil {
		jsonError(w, "Job not found", http.StatusNotFound)
		return
	}

	s.sse.ServeSSE(w, r, job.ID(), func(c *client) {
		// Send current status on connect so late subscribers catch up.
		evt, _ := json.Marshal(map[string]any{
			"type": "job_state",
			"job":  job.Snapshot(),
		})
		c.ch <- string(evt)
	})
}

// GET /api/puzzles — list all puzzles.
func (s *Server) handleListPuzzles(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.ListPuzzles())
}

// GET /api/puzzles/{id} — get a finished puzzle with its layout.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "Puzzle not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// GET /api/puzzles/{id}/pdf — printable grid and clues; ?solution=1 fills
// the letters in.
func (s *Server) handlePuzzlePDF(w http.ResponseWriter, r *http.Request) {
	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "Puzzle not found", http.StatusNotFound)
		return
	}

	data, err := RenderPuzzlePDF(p, r.URL.Query().Get("solution") == "1")
	if err != nil {
		log.Printf("pdf render error: %v", err)
		jsonError(w, "Could not render the PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFileName(p)))
	w.Write(data)
}

// --- AI helper ---

// POST /api/suggest — ask Gemini for themed (word, clue) pairs.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if !s.suggestRL.allow(r.RemoteAddr) {
		jsonError(w, "Too many requests, try again later", http.StatusTooManyRequests)
		return
	}

	if s.gemini == nil {
		jsonError(w, "AI suggestions not configured", http.StatusServiceUnavailable)
		return
	}

	var req struct {
		Theme string `json:"theme"`
		Count int    `json:"count"`
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Theme) == "" {
		jsonError(w, "Field 'theme' required", http.StatusBadRequest)
		return
	}
	if req.Count < engine.MinWords || req.Count > engine.MaxWords {
		req.Count = 15
	}

	entries, err := s.gemini.SuggestEntries(r.Context(), req.Theme, req.Count)
	if err != nil {
		log.Printf("gemini suggest error: %v", err)
		jsonError(w, "Could not generate suggestions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"entries": entries})
}

// --- Helpers ---

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// engineError maps an engine error kind to an HTTP status, passing the
// message through verbatim.
func engineError(w http.ResponseWriter, err error) {
	kind := engine.KindOf(err)
	code := http.StatusBadRequest
	if kind == engine.KindUnplaceable {
		code = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error(), "kind": string(kind)})
}

func sanitizeName(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > 60 {
		s = string([]rune(s)[:60])
	}
	return s
}

func pdfFileName(p *Puzzle) string {
	name := p.Name
	if name == "" {
		name = "crossword-" + p.ID
	}
	name = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' {
			return r
		}
		return '-'
	}, name)
	return name + ".pdf"
}
