package transport

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iw2rmb/genkou/essay"
)

// ReviewFunc turns a submitted document into the document sent back.
type ReviewFunc func(doc essay.Document) (essay.Document, error)

// ServerConfig configures a Server.
type ServerConfig struct {
	// Review defaults to returning the submitted document unchanged.
	Review ReviewFunc
	Logger *slog.Logger
}

// Server accepts essay submissions.
type Server struct {
	review ReviewFunc
	log    *slog.Logger
}

func NewServer(cfg ServerConfig) *Server {
	s := &Server{review: cfg.Review, log: cfg.Logger}
	if s.review == nil {
		s.review = func(doc essay.Document) (essay.Document, error) { return doc, nil }
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Routes returns the HTTP handler:
//
//	GET  /health      liveness probe
//	POST /api/essays  submit a document, receive the reviewed document
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.HealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Post("/essays", s.SubmitEssay)
	})
	return r
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// SubmitEssay handles POST /api/essays. The response body is the reviewed
// document in the same JSON shape, with content in full width.
func (s *Server) SubmitEssay(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	doc, err := essay.DecodeJSON(data)
	if err != nil {
		s.log.Warn("rejected submission", "request_id", middleware.GetReqID(r.Context()), "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reviewed, err := s.review(doc)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, essay.ErrMalformedDocument) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	out, err := essay.EncodeJSON(reviewed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.log.Info("essay reviewed", "request_id", middleware.GetReqID(r.Context()), "sections", len(reviewed.Sections))
	w.Header().Set("Content-Type", essay.FormatJSON.MIMEType())
	w.Write(out)
}
