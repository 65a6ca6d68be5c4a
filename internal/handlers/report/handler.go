package report

import (
	"bytes"
	"fmt"
	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/report/model/dto"
	"hotelbook/internal/domains/report/service"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/session"
	"hotelbook/shared/timezone"
	"hotelbook/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Report, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/reports", func(r chi.Router) {
		r.Get("/dashboard", handler.GetDashboard)
		r.Get("/series", handler.GetSeries)
		r.Get("/reviews", handler.GetReviewSummary)
		r.Get("/snapshots", handler.GetSnapshots)
		r.Get("/{kind}", handler.GetReport)
		r.Get("/{kind}/csv", handler.ExportReport)
	})
}

// GetDashboard
// @Summary Dashboard totals
// @Description Total bookings, revenue, active users and hotels listed.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetSeries
// @Summary Monthly revenue and booking counts
// @Description The trailing months ending with the current one, zero-filled. Cancelled bookings are included.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.SeriesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/series [get]
// @Security BearerAuth
func (handler *Handler) GetSeries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSeries")
	defer scope.End()

	series, err := handler.service.DashboardSeries(ctx, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard series")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, series)
}

// GetReviewSummary
// @Summary Review rating summary
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.ReviewSummaryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviewSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviewSummary")
	defer scope.End()

	summary, err := handler.service.ReviewSummary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get review summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetSnapshots
// @Summary List generated reports
// @Tags Report
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetSnapshotsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/admin/reports/snapshots [get]
// @Security BearerAuth
func (handler *Handler) GetSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSnapshots")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	snapshots, err := handler.service.Snapshots(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get report snapshots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, snapshots)
}

// GetReport
// @Summary Build a report table
// @Tags Report
// @Produce json
// @Param kind path string true "Report kind (revenue, bookings, hotels)"
// @Param from query string false "First check-in day (YYYY-MM-DD)"
// @Param to query string false "Last check-in day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.Table]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/admin/reports/{kind} [get]
// @Security BearerAuth
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	kind := chi.URLParam(r, constant.RequestParamKind)

	from, to, err := handler.period(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	table, err := handler.service.Report(ctx, kind, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to build report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, table)
}

// ExportReport streams a report as CSV and records the export.
// @Summary Export a report as CSV
// @Tags Report
// @Produce text/csv
// @Param kind path string true "Report kind (revenue, bookings, hotels)"
// @Param from query string false "First check-in day (YYYY-MM-DD)"
// @Param to query string false "Last check-in day (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/admin/reports/{kind}/csv [get]
// @Security BearerAuth
func (handler *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	kind := chi.URLParam(r, constant.RequestParamKind)

	from, to, err := handler.period(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	var buf bytes.Buffer

	if err = handler.service.ExportCSV(ctx, kind, from, to, &buf); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", kind).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	if _, err = handler.service.Snapshot(ctx, kind, from, to, session.Actor(ctx)); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("report exported without a snapshot")
	}

	filename := fmt.Sprintf("%s_%s_%s.csv", kind, from.Format(constant.DateOnlyFormat), to.Format(constant.DateOnlyFormat))

	response.WithCSV(w, filename, buf.Bytes())
}

func (handler *Handler) period(r *http.Request) (time.Time, time.Time, error) {
	query := r.URL.Query()

	from, to, err := dto.ParsePeriod(query.Get(constant.QueryParamFrom), query.Get(constant.QueryParamTo),
		timezone.Now(), handler.cfg.Report.TrailingMonths)
	if err != nil {
		return from, to, failure.InvalidInput("from and to must be dates in YYYY-MM-DD format") // nolint:wrapcheck
	}

	return from, to, nil
}
