package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/chart"
	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/shenikar/wildfire_dashboard/internal/geo"
	"github.com/shenikar/wildfire_dashboard/internal/ingest"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

const dateQueryLayout = "2006-01-02"

type Handler struct {
	dashboardService service.DashboardService
	uploads          *service.UploadScheduler
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, uploads *service.UploadScheduler, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		uploads:          uploads,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

func parseKind(c *gin.Context) (models.DatasetKind, bool) {
	kind := models.DatasetKind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dataset kind"})
		return "", false
	}
	return kind, true
}

// readUploadFile извлекает содержимое файла из multipart-формы
// или, при ее отсутствии, из тела запроса
func readUploadFile(c *gin.Context) (io.ReadCloser, error) {
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		return file, nil
	}
	if c.Request.Body == nil {
		return nil, errors.New("empty request body")
	}
	return c.Request.Body, nil
}

// @Summary Upload a dataset
// @Description Parse, validate and persist an uploaded CSV dataset. Requires API key.
// @Tags Datasets
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Dataset kind (statistics or predictions)"
// @Param file formData file true "CSV file with a header row"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} map[string]string "Invalid kind or missing required columns"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /datasets/{kind} [post]
func (h *Handler) uploadDataset(c *gin.Context) {
	log := h.logger.WithField("method", "uploadDataset")

	kind, ok := parseKind(c)
	if !ok {
		return
	}

	file, err := readUploadFile(c)
	if err != nil {
		log.WithError(err).Warn("Upload request carries no file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	rows, err := h.dashboardService.UploadDataset(c.Request.Context(), kind, file)
	if err != nil {
		var vErr *ingest.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":           vErr.Error(),
				"missing_columns": vErr.MissingColumns,
			})
			return
		}
		log.WithError(err).Error("Failed to ingest dataset in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{Kind: string(kind), Rows: rows})
}

// @Summary Get a stored dataset
// @Description Get the raw rows of a previously uploaded dataset.
// @Tags Datasets
// @Produce json
// @Param kind path string true "Dataset kind (statistics or predictions)"
// @Success 200 {array} object
// @Failure 400 {object} map[string]string "Invalid dataset kind"
// @Router /datasets/{kind} [get]
func (h *Handler) getDataset(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	rows, err := h.dashboardService.GetDataset(c.Request.Context(), kind)
	if err != nil {
		h.logger.WithField("method", "getDataset").WithError(err).Error("Failed to get dataset from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if rows == nil {
		rows = []models.RawRow{}
	}
	c.JSON(http.StatusOK, rows)
}

// @Summary Remove a stored dataset
// @Description Delete a previously uploaded dataset from the local store. Requires API key.
// @Tags Datasets
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Dataset kind (statistics or predictions)"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid dataset kind"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /datasets/{kind} [delete]
func (h *Handler) deleteDataset(c *gin.Context) {
	kind, ok := parseKind(c)
	if !ok {
		return
	}

	if err := h.dashboardService.RemoveDataset(c.Request.Context(), kind); err != nil {
		h.logger.WithField("method", "deleteDataset").WithError(err).Error("Failed to remove dataset in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove dataset"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Schedule a deferred dataset upload
// @Description Queue an upload that is persisted after a processing delay. Requires API key.
// @Tags Uploads
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param kind path string true "Dataset kind (statistics or predictions)"
// @Param file formData file true "CSV file with a header row"
// @Success 202 {object} UploadJobResponse
// @Failure 400 {object} map[string]string "Invalid kind or missing file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /datasets/{kind}/uploads [post]
func (h *Handler) scheduleUpload(c *gin.Context) {
	log := h.logger.WithField("method", "scheduleUpload")

	kind, ok := parseKind(c)
	if !ok {
		return
	}

	file, err := readUploadFile(c)
	if err != nil {
		log.WithError(err).Warn("Upload request carries no file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Warn("Failed to read uploaded file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	id := h.uploads.Schedule(kind, payload)
	job, _ := h.uploads.Status(id)
	c.JSON(http.StatusAccepted, jobToResponse(job))
}

// @Summary Get upload job status
// @Description Get the state of a deferred upload job.
// @Tags Uploads
// @Produce json
// @Param id path string true "Upload job ID"
// @Success 200 {object} UploadJobResponse
// @Failure 400 {object} map[string]string "Invalid upload ID"
// @Failure 404 {object} map[string]string "Upload job not found"
// @Router /uploads/{id} [get]
func (h *Handler) getUpload(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload ID"})
		return
	}

	job, ok := h.uploads.Status(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "upload job not found"})
		return
	}
	c.JSON(http.StatusOK, jobToResponse(job))
}

// @Summary Abort a pending upload job
// @Description Cancel a deferred upload before processing starts. Requires API key.
// @Tags Uploads
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Upload job ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid upload ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Upload is not pending"
// @Router /uploads/{id} [delete]
func (h *Handler) cancelUpload(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload ID"})
		return
	}

	if !h.uploads.Cancel(id) {
		c.JSON(http.StatusConflict, gin.H{"error": "upload is not pending"})
		return
	}
	c.Status(http.StatusNoContent)
}

func jobToResponse(job service.UploadJob) UploadJobResponse {
	return UploadJobResponse{
		ID:        job.ID,
		Kind:      string(job.Kind),
		Status:    string(job.Status),
		Rows:      job.Rows,
		Error:     job.Error,
		CreatedAt: job.CreatedAt,
	}
}

// @Summary Get the statistics report
// @Description Build a request from the stored dataset and settings, call the remote analysis service and return the final report.
// @Tags Reports
// @Produce json
// @Success 200 {object} models.ReportResult
// @Failure 502 {object} map[string]string "Analysis service unavailable"
// @Router /reports/statistics [get]
func (h *Handler) getStatisticsReport(c *gin.Context) {
	report, err := h.dashboardService.GetStatisticsReport(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getStatisticsReport").WithError(err).Error("Failed to get statistics report")
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis service unavailable"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) renderReportChart(c *gin.Context, build func(models.ReportResult) *chart.Renderer) {
	report, err := h.dashboardService.GetStatisticsReport(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "renderReportChart").WithError(err).Error("Failed to get statistics report")
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis service unavailable"})
		return
	}
	c.JSON(http.StatusOK, build(report).ViewModel())
}

// @Summary Get the response proportion chart
// @Description Full-circle chart of addressed versus missed fires.
// @Tags Charts
// @Produce json
// @Success 200 {object} chart.ViewModel
// @Failure 502 {object} map[string]string "Analysis service unavailable"
// @Router /charts/response [get]
func (h *Handler) getResponseChart(c *gin.Context) {
	h.renderReportChart(c, func(report models.ReportResult) *chart.Renderer {
		r := chart.NewRenderer(chart.KindProportion, false)
		_ = r.Render(ResponseChartData(report))
		return r
	})
}

// @Summary Get the cost comparison chart
// @Description Bar chart of operational costs versus damage costs.
// @Tags Charts
// @Produce json
// @Success 200 {object} chart.ViewModel
// @Failure 502 {object} map[string]string "Analysis service unavailable"
// @Router /charts/costs [get]
func (h *Handler) getCostChart(c *gin.Context) {
	h.renderReportChart(c, func(report models.ReportResult) *chart.Renderer {
		r := chart.NewRenderer(chart.KindComparison, true)
		_ = r.Render(CostChartData(report))
		return r
	})
}

// @Summary Get the severity breakdown chart
// @Description Grouped bar chart of low/medium/high severity for addressed and missed fires.
// @Tags Charts
// @Produce json
// @Success 200 {object} chart.ViewModel
// @Failure 502 {object} map[string]string "Analysis service unavailable"
// @Router /charts/severity [get]
func (h *Handler) getSeverityChart(c *gin.Context) {
	h.renderReportChart(c, func(report models.ReportResult) *chart.Renderer {
		r := chart.NewRenderer(chart.KindGrouped, false)
		_ = r.RenderGrouped(SeverityChartData(report))
		return r
	})
}

// @Summary Get filtered predictions
// @Description Call the remote prediction service, filter by inclusive date range and compute the map viewport.
// @Tags Predictions
// @Produce json
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Param selected_date query string false "Selected fire date"
// @Param selected_index query int false "Selected fire index within the date"
// @Success 200 {object} PredictionsResponse
// @Failure 400 {object} map[string]string "Invalid date format"
// @Failure 502 {object} map[string]string "Analysis service unavailable"
// @Router /predictions [get]
func (h *Handler) getPredictions(c *gin.Context) {
	log := h.logger.WithField("method", "getPredictions")

	start, ok := parseDateQuery(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end_date")
	if !ok {
		return
	}

	var sel *geo.Selection
	if date := c.Query("selected_date"); date != "" {
		index, err := strconv.Atoi(c.DefaultQuery("selected_index", "0"))
		if err != nil || index < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selected_index"})
			return
		}
		sel = &geo.Selection{Date: date, Index: index}
	}

	view, err := h.dashboardService.GetPredictions(c.Request.Context(), start, end, sel)
	if err != nil {
		log.WithError(err).Error("Failed to get predictions from service")
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis service unavailable"})
		return
	}
	c.JSON(http.StatusOK, PredictionsResponse{Days: view.Days, Viewport: view.Viewport})
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateQueryLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &t, true
}

// @Summary Get operational resource settings
// @Description Get saved operational units or the five defaults.
// @Tags Settings
// @Produce json
// @Success 200 {object} UnitsResponse
// @Router /settings/resources [get]
func (h *Handler) getResources(c *gin.Context) {
	units, custom, err := h.dashboardService.GetOperationalUnits(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getResources").WithError(err).Error("Failed to get operational units")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, UnitsResponse{Units: UnitsToDTO(units), Custom: custom})
}

// @Summary Save operational resource settings
// @Description Persist user-edited operational units; numeric fields are clamped to a minimum of 1. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param units body SaveUnitsRequest true "Operational units to save"
// @Success 200 {object} UnitsResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/resources [put]
func (h *Handler) saveResources(c *gin.Context) {
	var input SaveUnitsRequest
	log := h.logger.WithField("method", "saveResources")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.dashboardService.SaveOperationalUnits(c.Request.Context(), DTOToUnits(input.Units))
	if err != nil {
		log.WithError(err).Error("Failed to save operational units in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, UnitsResponse{Units: UnitsToDTO(saved), Custom: true})
}

// @Summary Reset operational resource settings
// @Description Delete the persisted units and return the defaults. Requires API key.
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UnitsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/resources [delete]
func (h *Handler) resetResources(c *gin.Context) {
	units, err := h.dashboardService.ResetOperationalUnits(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "resetResources").WithError(err).Error("Failed to reset operational units")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset settings"})
		return
	}
	c.JSON(http.StatusOK, UnitsResponse{Units: UnitsToDTO(units), Custom: false})
}

// @Summary Get damage cost settings
// @Description Get saved damage cost estimates or the defaults.
// @Tags Settings
// @Produce json
// @Success 200 {object} DamageCostsResponse
// @Router /settings/damage-costs [get]
func (h *Handler) getDamageCosts(c *gin.Context) {
	costs, custom, err := h.dashboardService.GetDamageCosts(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "getDamageCosts").WithError(err).Error("Failed to get damage costs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DamageCostsResponse{Low: costs.Low, Medium: costs.Medium, High: costs.High, Custom: custom})
}

// @Summary Save damage cost settings
// @Description Persist damage cost estimates; values below 1 are clamped. Requires API key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param costs body DamageCostsRequest true "Damage costs to save"
// @Success 200 {object} DamageCostsResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/damage-costs [put]
func (h *Handler) saveDamageCosts(c *gin.Context) {
	var input DamageCostsRequest
	log := h.logger.WithField("method", "saveDamageCosts")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.dashboardService.SaveDamageCosts(c.Request.Context(), models.DamageCosts{
		Low:    input.Low,
		Medium: input.Medium,
		High:   input.High,
	})
	if err != nil {
		log.WithError(err).Error("Failed to save damage costs in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, DamageCostsResponse{Low: saved.Low, Medium: saved.Medium, High: saved.High, Custom: true})
}

// @Summary Reset damage cost settings
// @Description Delete the persisted damage costs and return the defaults. Requires API key.
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} DamageCostsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/damage-costs [delete]
func (h *Handler) resetDamageCosts(c *gin.Context) {
	costs, err := h.dashboardService.ResetDamageCosts(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "resetDamageCosts").WithError(err).Error("Failed to reset damage costs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset settings"})
		return
	}
	c.JSON(http.StatusOK, DamageCostsResponse{Low: costs.Low, Medium: costs.Medium, High: costs.High, Custom: false})
}

// @Summary Get application health status
// @Description Health-check endpoint.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
