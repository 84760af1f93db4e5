package report

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"time"

	"github.com/de-tools/ipo-report/pkg/adapters"
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/de-tools/ipo-report/pkg/services/export"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc        report.Service
	serializer export.Serializer
	now        func() time.Time
}

func NewHandler(svc report.Service, serializer export.Serializer, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		svc:        svc,
		serializer: serializer,
		now:        now,
	}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, adapters.MapOverviewDomainToApi(h.svc.Overview()))
}

// ListGroups returns the group selector options, domain.GroupAll first.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups := append([]string{domain.GroupAll}, h.svc.Groups()...)
	writeJSON(w, r, groups)
}

func (h *Handler) GetCharts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, adapters.MapChartSetDomainToApi(h.svc.Charts()))
}

func (h *Handler) ListMissingRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, adapters.MapMissingRecordsDomainToApi(h.svc.MissingRecords()))
}

func (h *Handler) GetAccountRevenue(w http.ResponseWriter, r *http.Request) {
	sel, err := report.ParseAccountSelection(r.URL.Query().Get("group"), r.URL.Query().Get("sort"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, r, adapters.MapAccountRevenueDomainToApi(h.svc.AccountRevenue(sel)))
}

func (h *Handler) GetCommissionSummary(w http.ResponseWriter, r *http.Request) {
	group := report.ParseGroup(r.URL.Query().Get("group"))
	writeJSON(w, r, adapters.MapCommissionSummaryDomainToApi(h.svc.CommissionSummary(group)))
}

func (h *Handler) GetSpecialRange(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, adapters.MapSpecialRangeDomainToApi(h.svc.SpecialRange()))
}

// GetDetail answers 204 when the account is not in the requested list.
func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	detail, ok, err := h.lookupDetail(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, r, adapters.MapDetailDomainToApi(detail))
}

func (h *Handler) ExportAccountRevenue(w http.ResponseWriter, r *http.Request) {
	sel, err := report.ParseAccountSelection(r.URL.Query().Get("group"), r.URL.Query().Get("sort"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.writeTable(w, r, export.AccountRevenue(h.svc.AccountRevenue(sel)))
}

func (h *Handler) ExportCommissionSummary(w http.ResponseWriter, r *http.Request) {
	group := report.ParseGroup(r.URL.Query().Get("group"))
	h.writeTable(w, r, export.CommissionSummary(h.svc.CommissionSummary(group)))
}

func (h *Handler) ExportSpecialRange(w http.ResponseWriter, r *http.Request) {
	h.writeTable(w, r, export.SpecialRange(h.svc.SpecialRange()))
}

func (h *Handler) ExportDetail(w http.ResponseWriter, r *http.Request) {
	detail, ok, err := h.lookupDetail(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeTable(w, r, export.Detail(detail))
}

func (h *Handler) lookupDetail(r *http.Request) (domain.Detail, bool, error) {
	src, err := report.ParseDetailSource(r.URL.Query().Get("source"))
	if err != nil {
		return domain.Detail{}, false, err
	}
	detail, ok := h.svc.Detail(src, r.URL.Query().Get("account"))
	return detail, ok, nil
}

func (h *Handler) writeTable(w http.ResponseWriter, r *http.Request, t export.Table) {
	logger := zerolog.Ctx(r.Context())
	filename := t.Filename(h.now())

	var buf bytes.Buffer
	if err := h.serializer.Write(&buf, t); err != nil {
		logger.Error().
			Err(err).
			Str("filename", filename).
			Msg("failed to serialize export")
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.serializer.ContentType())
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Error().
			Err(err).
			Str("filename", filename).
			Msg("failed to write export")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
