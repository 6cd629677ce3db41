package analysis

import (
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/settings"
)

// StatisticsRequest - тело запроса к эндпоинту статистики.
// Необязательные поля полностью опускаются, когда пользовательские
// настройки не сохранены (null не отправляется).
type StatisticsRequest struct {
	RawData           []models.RawRow                  `json:"rawData"`
	CustomResources   map[string]models.ResourceConfig `json:"customResources,omitempty"`
	CustomDamageCosts *models.DamageCosts              `json:"customDamageCosts,omitempty"`
}

// PredictionsRequest - тело запроса к эндпоинту предсказаний
type PredictionsRequest struct {
	RawData []models.RawRow `json:"rawData"`
}

// BuildStatisticsRequest собирает исходящий запрос статистики из локального
// состояния. Корректность строк гарантируется валидацией при загрузке,
// здесь выполняется только чистое преобразование в проводной формат.
func BuildStatisticsRequest(rows []models.RawRow, units []models.OperationalUnit, costs *models.DamageCosts) StatisticsRequest {
	req := StatisticsRequest{RawData: rows}
	if len(units) > 0 {
		req.CustomResources = settings.ToServiceFormat(units)
	}
	if costs != nil {
		req.CustomDamageCosts = costs
	}
	return req
}

// BuildPredictionsRequest собирает исходящий запрос предсказаний
func BuildPredictionsRequest(rows []models.RawRow) PredictionsRequest {
	return PredictionsRequest{RawData: rows}
}
