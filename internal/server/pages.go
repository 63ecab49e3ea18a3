package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dukapos-web/internal/common/metrics"
	"dukapos-web/internal/seo/resolver"
)

func (s *Server) handleHub(w http.ResponseWriter, r *http.Request) {
	s.renderDecision(w, r, s.resolver.Hub())
}

func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	s.renderDecision(w, r, s.resolver.Segment(chi.URLParam(r, "segment")))
}

func (s *Server) handleCitySegment(w http.ResponseWriter, r *http.Request) {
	s.renderDecision(w, r, s.resolver.CitySegment(
		chi.URLParam(r, "city"),
		chi.URLParam(r, "segment"),
	))
}

// renderDecision is the single render path: redirects go out as permanent
// moves so search engines consolidate onto the canonical URL; valid
// identities are assembled and rendered through the page shell.
func (s *Server) renderDecision(w http.ResponseWriter, r *http.Request, d resolver.Decision) {
	if d.IsRedirect() {
		metrics.PageRedirects.WithLabelValues("invalid_slug").Inc()
		http.Redirect(w, r, d.Redirect, http.StatusMovedPermanently)
		return
	}

	kind := d.Identity.Kind.String()
	start := time.Now()

	page := s.builder.Build(d.Identity)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, page); err != nil {
		s.log.WithError(err).Error("page render failed", map[string]interface{}{
			"path": r.URL.Path,
			"kind": kind,
		})
		return
	}

	metrics.PagesRendered.WithLabelValues(kind).Inc()
	metrics.PageRenderDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	s.obs.RecordPageServed(r.Context(), kind)
}
