package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Изменяющие состояние маршруты защищаются API-ключом,
// когда ключи заданы в конфигурации.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	mutating := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		mutating.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}

	// Наборы данных: загрузка, чтение, удаление
	api.GET("/datasets/:kind", h.getDataset)
	mutating.POST("/datasets/:kind", h.uploadDataset)
	mutating.DELETE("/datasets/:kind", h.deleteDataset)

	// Отложенные загрузки с возможностью отмены
	mutating.POST("/datasets/:kind/uploads", h.scheduleUpload)
	api.GET("/uploads/:id", h.getUpload)
	mutating.DELETE("/uploads/:id", h.cancelUpload)

	// Отчет и построенные из него диаграммы
	api.GET("/reports/statistics", h.getStatisticsReport)
	charts := api.Group("/charts")
	{
		charts.GET("/response", h.getResponseChart)
		charts.GET("/costs", h.getCostChart)
		charts.GET("/severity", h.getSeverityChart)
	}

	// Предсказания с фильтром по датам и областью карты
	api.GET("/predictions", h.getPredictions)

	// Настройки: оперативные ресурсы и оценки ущерба
	settings := api.Group("/settings")
	{
		settings.GET("/resources", h.getResources)
		settings.GET("/damage-costs", h.getDamageCosts)
	}
	mutatingSettings := mutating.Group("/settings")
	{
		mutatingSettings.PUT("/resources", h.saveResources)
		mutatingSettings.DELETE("/resources", h.resetResources)
		mutatingSettings.PUT("/damage-costs", h.saveDamageCosts)
		mutatingSettings.DELETE("/damage-costs", h.resetDamageCosts)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
