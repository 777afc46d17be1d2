package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/shusiwoo/scourt"
)

// Query parameter bounds for the JSON API.
const (
	defaultPageSize  = 10
	maxPageSize      = 50
	defaultStatPages = 3
	maxStatPages     = 10
)

// Server serves the notice JSON API.
type Server struct {
	service scourt.NoticeService
	router  *chi.Mux
}

// NewServer creates a Server exposing service over HTTP.
func NewServer(service scourt.NoticeService) *Server {
	s := &Server{service: service}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Get("/api/notices", s.handleNotices)
	r.Get("/api/notices/{detailID}", s.handleNoticeDetail)
	r.Get("/api/stats", s.handleStats)
	r.Get("/api/search", s.handleSearch)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "대법원 파산재산공고 API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"notices": "/api/notices",
			"detail":  "/api/notices/{detail_id}",
			"stats":   "/api/stats",
			"search":  "/api/search",
		},
		"source":    DefaultBaseURL + listPath,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleNotices(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageSize)
	if page < 1 {
		writeError(w, scourt.Errorf(scourt.EINVALID, "page must be >= 1"))
		return
	}
	if limit < 1 || limit > maxPageSize {
		writeError(w, scourt.Errorf(scourt.EINVALID, "limit must be between 1 and %d", maxPageSize))
		return
	}

	notices, err := s.service.Notices(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"page":        page,
		"limit":       limit,
		"count":       len(notices),
		"court_stats": scourt.CountByCourt(notices),
		"notices":     notices,
		"scraped_at":  time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleNoticeDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.service.NoticeDetail(r.Context(), chi.URLParam(r, "detailID"))
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{
		"success": true,
		"notice":  detail,
	}
	if formatted := scourt.FormatPrice(detail.BidInfo.MinimumPrice); formatted != "" {
		resp["minimum_price_formatted"] = formatted
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	pages := queryInt(r, "pages", defaultStatPages)
	if pages < 1 || pages > maxStatPages {
		writeError(w, scourt.Errorf(scourt.EINVALID, "pages must be between 1 and %d", maxStatPages))
		return
	}

	notices, err := s.service.CollectNotices(r.Context(), pages)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"total_count":   len(notices),
		"pages_scraped": pages,
		"court_stats":   scourt.CountByCourt(notices),
		"scraped_at":    time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		writeError(w, scourt.Errorf(scourt.EINVALID, "keyword is required"))
		return
	}
	pages := queryInt(r, "pages", defaultStatPages)
	if pages < 1 || pages > maxStatPages {
		writeError(w, scourt.Errorf(scourt.EINVALID, "pages must be between 1 and %d", maxStatPages))
		return
	}

	notices, err := s.service.CollectNotices(r.Context(), pages)
	if err != nil {
		writeError(w, err)
		return
	}

	matched := scourt.FilterNotices(notices, keyword)
	if matched == nil {
		matched = []scourt.NoticeSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"keyword":        keyword,
		"total_searched": len(notices),
		"match_count":    len(matched),
		"notices":        matched,
		"scraped_at":     time.Now().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain error codes onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch scourt.ErrorCode(err) {
	case scourt.EINVALID:
		status = http.StatusBadRequest
	case scourt.ENOTFOUND:
		status = http.StatusNotFound
	case scourt.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"success": false,
		"detail":  scourt.ErrorMessage(err),
	})
}

// queryInt reads an integer query parameter. Unparseable values return -1 so
// they fail the caller's range validation.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
