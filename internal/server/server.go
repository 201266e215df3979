// Package server exposes the planning engine over HTTP. Every endpoint is
// snapshot-in/snapshot-out JSON; the calculation packages stay pure and the
// plan store is the only stateful component.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/finance-planner/internal/config"
	"github.com/iwvelando/finance-planner/internal/plan"
	"github.com/iwvelando/finance-planner/internal/report"
	"github.com/iwvelando/finance-planner/pkg/constants"
	"github.com/iwvelando/finance-planner/pkg/finance"
	"github.com/iwvelando/finance-planner/pkg/mathutil"
	"github.com/iwvelando/finance-planner/pkg/projection"
	"github.com/iwvelando/finance-planner/pkg/splitbar"
	"github.com/iwvelando/finance-planner/pkg/strategy"
	"go.uber.org/zap"
)

type handler struct {
	logger        *zap.Logger
	store         *plan.Store
	builder       *report.Builder
	reportOpts    report.Options
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the planning API.
func NewHandler(logger *zap.Logger, store *plan.Store, conf *config.Configuration, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}
	if store == nil {
		store = plan.NewStore(logger)
	}

	maxUploadSize := conf.Server.MaxUploadSizeBytes
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:  logger,
		store:   store,
		builder: report.NewBuilder(logger),
		reportOpts: report.Options{
			ShortTermMonths: conf.Report.ShortTermMonths,
			LongTermMonths:  conf.Report.LongTermMonths,
			InflationRate:   conf.Report.InflationRate,
			ExtraAmounts:    conf.Report.ExtraPayments,
		},
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestLogger)

	r.Get("/api/version", h.handleVersion)
	r.Get("/api/report", h.handleReport)
	r.Get("/api/summary", h.handleSummary)
	r.Get("/api/strategies", h.handleStrategies)
	r.Get("/api/projections/compound", h.handleCompound)

	r.Post("/api/split/normalize", h.handleSplitNormalize)
	r.Post("/api/split/adjust", h.handleSplitAdjust)

	r.Route("/api/plan", func(r chi.Router) {
		r.Get("/export", h.handleExport)
		r.Post("/import", h.handleImport)
		r.Post("/reset", h.handleReset)
		r.Post("/strategy", h.handleSelectStrategy)
		r.Post("/custom-strategy", h.handleCustomStrategy)
	})

	r.Post("/api/incomes", h.handleAddIncome)
	r.Put("/api/incomes/{id}", h.handleUpdateIncome)
	r.Delete("/api/incomes/{id}", h.handleRemoveIncome)

	r.Post("/api/expenses", h.handleAddExpense)
	r.Put("/api/expenses/{id}", h.handleUpdateExpense)
	r.Delete("/api/expenses/{id}", h.handleRemoveExpense)

	r.Post("/api/debts", h.handleAddDebt)
	r.Put("/api/debts/{id}", h.handleUpdateDebt)
	r.Delete("/api/debts/{id}", h.handleRemoveDebt)

	return r
}

func (h *handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		h.logger.Debug("request served",
			zap.String("op", "server.requestLogger"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) handleReport(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.builder.Build(h.store.Snapshot(), h.reportOpts))
}

func (h *handler) handleSummary(w http.ResponseWriter, _ *http.Request) {
	data := h.store.Snapshot()
	h.writeJSON(w, http.StatusOK, finance.Summarize(data.Incomes, data.Expenses, data.Debts))
}

func (h *handler) handleStrategies(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, strategy.Catalog)
}

// handleCompound runs an investment projection from query parameters. Like
// every user-entered numeric field, unparseable values fall back to zero.
func (h *handler) handleCompound(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := projection.CompoundInterestParams{
		InitialAmount:       mathutil.ParseNum(query.Get("initialAmount")),
		MonthlyContribution: mathutil.ParseNum(query.Get("monthlyContribution")),
		AnnualReturn:        mathutil.ParseNum(query.Get("annualReturn")),
		InflationRate:       mathutil.ParseNum(query.Get("inflationRate")),
		Years:               int(mathutil.ParseNum(query.Get("years"))),
	}
	if params.Years <= 0 {
		h.writeError(w, http.StatusBadRequest, "years must be positive")
		return
	}

	points := projection.CompoundInterest(params)
	final := points[len(points)-1]
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"points": points,
		"roi":    projection.ROI(final.Principal, final.Interest),
	})
}

func (h *handler) handleSplitNormalize(w http.ResponseWriter, r *http.Request) {
	var body finance.SplitValues
	if !h.decode(w, r, &body) {
		return
	}
	h.writeJSON(w, http.StatusOK, splitbar.Normalize(body.Needs, body.Wants, body.Savings))
}

type splitAdjustRequest struct {
	Divider splitbar.Divider    `json:"divider"`
	Percent *int                `json:"percent,omitempty"`
	Delta   *int                `json:"delta,omitempty"`
	Current finance.SplitValues `json:"current"`
}

// handleSplitAdjust applies one split-bar transition: an absolute divider
// position (drag) or a relative nudge (keyboard).
func (h *handler) handleSplitAdjust(w http.ResponseWriter, r *http.Request) {
	var body splitAdjustRequest
	if !h.decode(w, r, &body) {
		return
	}
	if body.Divider != splitbar.Divider1 && body.Divider != splitbar.Divider2 {
		h.writeError(w, http.StatusBadRequest, "divider must be divider1 or divider2")
		return
	}

	var result finance.SplitValues
	switch {
	case body.Percent != nil:
		result = splitbar.FromDividerDrag(*body.Percent, body.Divider, body.Current)
	case body.Delta != nil:
		result = splitbar.FromKeyboardNudge(*body.Delta, body.Divider, body.Current)
	default:
		h.writeError(w, http.StatusBadRequest, "either percent or delta is required")
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleExport(w http.ResponseWriter, _ *http.Request) {
	raw, err := plan.Export(h.store.Snapshot())
	if err != nil {
		h.logger.Error("failed to export plan",
			zap.String("op", "server.handleExport"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "failed to export plan")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="plan.json"`)
	_, _ = w.Write(raw)
}

// handleImport replaces the whole plan with a validated, migrated snapshot.
// On failure the prior state is untouched.
func (h *handler) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadSize))
	if err != nil {
		h.writeError(w, http.StatusRequestEntityTooLarge, "plan snapshot too large")
		return
	}

	data, err := plan.Import(raw)
	if err != nil {
		h.logger.Warn("rejected plan import",
			zap.String("op", "server.handleImport"),
			zap.Error(err),
		)
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.store.Replace(data)
	h.writeJSON(w, http.StatusOK, data)
}

func (h *handler) handleReset(w http.ResponseWriter, _ *http.Request) {
	h.store.Reset()
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *handler) handleSelectStrategy(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if !h.decode(w, r, &body) {
		return
	}
	if body.ID != "" && body.ID != strategy.CustomID {
		if _, ok := strategy.Lookup(body.ID); !ok {
			h.writeError(w, http.StatusBadRequest, "unknown strategy id")
			return
		}
	}
	h.store.SelectStrategy(body.ID)
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *handler) handleCustomStrategy(w http.ResponseWriter, r *http.Request) {
	var body finance.SplitValues
	if !h.decode(w, r, &body) {
		return
	}
	if body.Sum() != constants.SplitTotal {
		h.writeError(w, http.StatusBadRequest, "custom strategy must sum to 100")
		return
	}
	h.store.SetCustomStrategy(body)
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *handler) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	var income finance.Income
	if !h.decode(w, r, &income) {
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.AddIncome(income))
}

func (h *handler) handleUpdateIncome(w http.ResponseWriter, r *http.Request) {
	var income finance.Income
	if !h.decode(w, r, &income) {
		return
	}
	income.ID = chi.URLParam(r, "id")
	if !h.store.UpdateIncome(income) {
		h.writeError(w, http.StatusNotFound, "income not found")
		return
	}
	h.writeJSON(w, http.StatusOK, income)
}

func (h *handler) handleRemoveIncome(w http.ResponseWriter, r *http.Request) {
	if !h.store.RemoveIncome(chi.URLParam(r, "id")) {
		h.writeError(w, http.StatusNotFound, "income not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var expense finance.Expense
	if !h.decode(w, r, &expense) {
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.AddExpense(expense))
}

func (h *handler) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var expense finance.Expense
	if !h.decode(w, r, &expense) {
		return
	}
	expense.ID = chi.URLParam(r, "id")
	if !h.store.UpdateExpense(expense) {
		h.writeError(w, http.StatusNotFound, "expense not found")
		return
	}
	h.writeJSON(w, http.StatusOK, expense)
}

func (h *handler) handleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	if !h.store.RemoveExpense(chi.URLParam(r, "id")) {
		h.writeError(w, http.StatusNotFound, "expense not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) handleAddDebt(w http.ResponseWriter, r *http.Request) {
	var debt finance.Debt
	if !h.decode(w, r, &debt) {
		return
	}
	h.writeJSON(w, http.StatusCreated, h.store.AddDebt(debt))
}

func (h *handler) handleUpdateDebt(w http.ResponseWriter, r *http.Request) {
	var debt finance.Debt
	if !h.decode(w, r, &debt) {
		return
	}
	debt.ID = chi.URLParam(r, "id")
	if !h.store.UpdateDebt(debt) {
		h.writeError(w, http.StatusNotFound, "debt not found")
		return
	}
	h.writeJSON(w, http.StatusOK, debt)
}

func (h *handler) handleRemoveDebt(w http.ResponseWriter, r *http.Request) {
	if !h.store.RemoveDebt(chi.URLParam(r, "id")) {
		h.writeError(w, http.StatusNotFound, "debt not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
