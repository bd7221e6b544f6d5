// internal/httpserver/routes_daily.go
//
// HTTP route for the "board of the day".
//   - GET /boards/daily?size=&difficulty=&date= → today's board (or a given date)
//
// Deterministic board selection: the generator seed is derived from the UTC
// date and a server salt, so every player gets the same board for a date.

package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/boggle/internal/daily"
)

// mountDaily registers the daily route on the /boards router.
func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily", s.handleDaily)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := s.opts.Now().UTC()
	if v := q.Get("date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_date", "date must be YYYY-MM-DD")
			return
		}
		date = t
	}
	size := 0
	if v := q.Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_size", "size must be a number")
			return
		}
		size = n
	}
	s.generate(w, r, daily.Seed(date, s.opts.DailySalt), size, q.Get("difficulty"), daily.DateKey(date))
}
