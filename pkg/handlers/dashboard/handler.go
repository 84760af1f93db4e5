package dashboard

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/de-tools/ipo-report/pkg/adapters"
	"github.com/de-tools/ipo-report/pkg/format"
	"github.com/de-tools/ipo-report/pkg/models/domain"
	"github.com/de-tools/ipo-report/pkg/services/report"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"money": format.Money,
	"sign":  format.SignClass,
	"badge": format.RateBadge,
}

type Handler struct {
	svc       report.Service
	templates *template.Template
	charts    template.JS
}

// NewHandler parses the page templates and encodes the chart payload once.
func NewHandler(svc report.Service) (*Handler, error) {
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	payload, err := json.Marshal(adapters.MapChartSetDomainToApi(svc.Charts()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart payload: %w", err)
	}

	return &Handler{
		svc:       svc,
		templates: tmpl,
		charts:    template.JS(payload),
	}, nil
}

type dashboardPage struct {
	Overview     domain.Overview
	Groups       []string
	SortFields   []domain.SortField
	Accounts     domain.AccountRevenueView
	Commissions  domain.CommissionSummaryView
	SpecialRange domain.SpecialRangeView
	Missing      domain.MissingRecordsView
	Charts       template.JS
	LossEmpty    bool
	ExportQuery  template.URL
}

type detailPage struct {
	Title       string
	Detail      domain.Detail
	ExportQuery template.URL
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sel, err := report.ParseAccountSelection(q.Get("account_group"), q.Get("account_sort"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	commissionGroup := report.ParseGroup(q.Get("commission_group"))

	page := dashboardPage{
		Overview:     h.svc.Overview(),
		Groups:       append([]string{domain.GroupAll}, h.svc.Groups()...),
		SortFields:   []domain.SortField{domain.SortByRevenue, domain.SortByCommission, domain.SortByLoss},
		Accounts:     h.svc.AccountRevenue(sel),
		Commissions:  h.svc.CommissionSummary(commissionGroup),
		SpecialRange: h.svc.SpecialRange(),
		Missing:      h.svc.MissingRecords(),
		Charts:       h.charts,
		LossEmpty:    h.svc.Charts().LossEmpty,
		ExportQuery: template.URL(url.Values{
			"group": {sel.Group},
			"sort":  {string(sel.SortBy)},
		}.Encode()),
	}
	h.render(w, r, "dashboard.html", page)
}

// Detail shows one drill-down. Unknown accounts lead back to the dashboard
// without an error.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	src, err := report.ParseDetailSource(q.Get("source"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	detail, ok := h.svc.Detail(src, q.Get("account"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	title := detail.Account + " - commission detail"
	if src == domain.SourceSpecialRange {
		title = detail.Account + " - special range commission detail"
	}
	h.render(w, r, "detail.html", detailPage{
		Title:  title,
		Detail: detail,
		ExportQuery: template.URL(url.Values{
			"source":  {string(src)},
			"account": {detail.Account},
		}.Encode()),
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("template", name).
			Msg("failed to render page")
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
