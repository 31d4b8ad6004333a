package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"investapi/internal/domain"
	"investapi/internal/ports"
)

// Server wires validators, services and the envelope builders into the
// HTTP surface.
type Server struct {
	companies ports.Companies
	health    ports.HealthChecker
	log       zerolog.Logger
}

func New(companies ports.Companies, health ports.HealthChecker, log zerolog.Logger) *Server {
	return &Server{
		companies: companies,
		health:    health,
		log:       log.With().Str("component", "http").Logger(),
	}
}

// Routes returns the router with the full middleware chain mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	}))

	// Unmatched routes and methods still render the envelope shape.
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "")
	})

	r.Handle("/ping", s.handle(s.handlePing))
	r.Handle("/health", s.handle(s.handleHealth))

	r.Method(http.MethodGet, "/companies/query", s.handle(s.handleCompanySearch))
	r.Method(http.MethodGet, "/companies/selection", s.handle(s.handleCompanySelection))
	r.Method(http.MethodGet, "/companies/{id}", s.handle(s.handleCompanyLookup))
	r.Method(http.MethodGet, "/regions", s.handle(s.handleRegions))

	return r
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle translates handler errors into envelopes. Validation failures
// are mapped before the generic fallback so they are never swallowed as
// 500s.
func (s *Server) handle(h handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			respondValidationFailed(w, verr.Fields)
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondError(w, http.StatusNotFound, "")
		default:
			s.requestLogger(r).Error().Err(err).Msg("Unhandled error")
			respondError(w, http.StatusInternalServerError, "")
		}
	})
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) error {
	respondOK(w, nil, "pong")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) error {
	if err := s.health.CheckHealth(r.Context()); err != nil {
		return err
	}
	respondOK(w, nil, "")
	return nil
}

func (s *Server) handleCompanyLookup(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	company, err := s.companies.GetByIdentifier(r.Context(), id)
	if err != nil {
		return err
	}
	respondOK(w, company, "")
	return nil
}

func (s *Server) handleCompanySearch(w http.ResponseWriter, r *http.Request) error {
	params, err := parseSearchParams(r.URL.Query())
	if err != nil {
		return err
	}

	found, err := s.companies.SearchByName(r.Context(), params.Name, params.Limit)
	if err != nil {
		return err
	}
	respondOK(w, found, "")
	return nil
}

func (s *Server) handleCompanySelection(w http.ResponseWriter, r *http.Request) error {
	sel, err := parseSelectionParams(r.URL.Query())
	if err != nil {
		return err
	}

	selected, err := s.companies.Select(r.Context(), sel)
	if err != nil {
		return err
	}
	respondOK(w, selected, "")
	return nil
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) error {
	regions, err := s.companies.Regions(r.Context())
	if err != nil {
		return err
	}
	respondOK(w, regions, "")
	return nil
}
