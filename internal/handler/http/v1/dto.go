package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/geo"
)

// OperationalUnitDTO DTO оперативного ресурса.
// Принимает и пользовательский, и сервисный формат числовых ключей.
// @Description DTO оперативного ресурса
type OperationalUnitDTO struct {
	Name             string   `json:"name" validate:"required,min=2,max=255"`
	DeploymentTime   *float64 `json:"deploymentTime,omitempty"`
	CostPerOperation *float64 `json:"costPerOperation,omitempty"`
	UnitsAvailable   *float64 `json:"unitsAvailable,omitempty"`

	DeploymentTimeMinutes *float64 `json:"deployment_time_minutes,omitempty"`
	Cost                  *float64 `json:"cost,omitempty"`
	TotalUnits            *float64 `json:"total_units,omitempty"`
}

// SaveUnitsRequest DTO для сохранения оперативных ресурсов
// @Description DTO для сохранения оперативных ресурсов
type SaveUnitsRequest struct {
	Units []OperationalUnitDTO `json:"units" validate:"required,min=1,dive"`
}

// UnitsResponse DTO для ответа с оперативными ресурсами
// @Description DTO для ответа с оперативными ресурсами
type UnitsResponse struct {
	Units []OperationalUnitDTO `json:"units"`
	// Custom сообщает, сохранены ли пользовательские настройки
	Custom bool `json:"custom"`
}

// DamageCostsRequest DTO для сохранения оценок ущерба.
// Значения ниже 1 приводятся к 1, а не отклоняются.
// @Description DTO для сохранения оценок ущерба
type DamageCostsRequest struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// DamageCostsResponse DTO для ответа с оценками ущерба
// @Description DTO для ответа с оценками ущерба
type DamageCostsResponse struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
	Custom bool    `json:"custom"`
}

// UploadResponse DTO для ответа на синхронную загрузку набора данных
// @Description DTO для ответа на загрузку набора данных
type UploadResponse struct {
	Kind string `json:"kind"`
	Rows int    `json:"rows"`
}

// UploadJobResponse DTO для состояния отложенной загрузки
// @Description DTO для состояния отложенной загрузки
type UploadJobResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	Rows      int       `json:"rows,omitempty"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PredictionsResponse DTO для отфильтрованных предсказаний и карты
// @Description DTO для отфильтрованных предсказаний и области карты
type PredictionsResponse struct {
	Days     []geo.DatePredictions `json:"days"`
	Viewport *geo.Viewport         `json:"viewport,omitempty"`
}
