package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Anton-Biryukov-Mig/course-work-1/internal/core"
	applog "github.com/Anton-Biryukov-Mig/course-work-1/internal/log"
	"github.com/Anton-Biryukov-Mig/course-work-1/internal/report"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// refDate parses the optional date query parameter; empty means now.
func (s *Server) refDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.now(), nil
	}
	return core.ParseReferenceDate(raw)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	at := s.now()
	// One cache slot per clock hour: greeting and quotes move on that scale.
	cacheKey := at.Format("2006-01-02T15")
	if s.dashboardCache != nil {
		if cached, ok := s.dashboardCache.Get(cacheKey); ok {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	txns, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load transactions", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}
	settings, err := s.settings.ReadSettings(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load settings", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}

	summary, err := s.assembler.Assemble(ctx, at, txns, core.GroupByCard(txns), settings)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to assemble dashboard", applog.FieldError, err)
		writeError(w, http.StatusBadGateway, "failed to assemble dashboard")
		return
	}

	if s.dashboardCache != nil {
		s.dashboardCache.Set(cacheKey, summary)
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeError(w, http.StatusBadRequest, "missing category parameter")
		return
	}
	s.handleReport(w, r, func(txns []core.Transaction, ref time.Time) (report.Report, error) {
		return report.SpendingByCategory(txns, category, ref)
	})
}

func (s *Server) handleWeekdayReport(w http.ResponseWriter, r *http.Request) {
	s.handleReport(w, r, report.SpendingByWeekday)
}

func (s *Server) handleWorkdayReport(w http.ResponseWriter, r *http.Request) {
	s.handleReport(w, r, report.SpendingByWorkday)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, aggregate func([]core.Transaction, time.Time) (report.Report, error)) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	ref, err := s.refDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date parameter, expected YYYY-MM-DD")
		return
	}

	txns, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load transactions", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to load transactions")
		return
	}

	rep, err := aggregate(txns, ref)
	if err != nil {
		logger.ErrorContext(ctx, "Aggregation failed", applog.FieldError, err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	records := make([]map[string]any, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		records = append(records, map[string]any{
			rep.KeyField:   row.Label,
			rep.ValueField: row.Amount,
		})
	}
	writeJSON(w, http.StatusOK, records)
}
