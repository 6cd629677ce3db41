package v1

import (
	"github.com/shenikar/wildfire_dashboard/internal/chart"
	"github.com/shenikar/wildfire_dashboard/internal/models"
)

// DTOToUnits преобразует DTO ресурсов в доменные модели
func DTOToUnits(dtos []OperationalUnitDTO) []models.OperationalUnit {
	units := make([]models.OperationalUnit, len(dtos))
	for i, d := range dtos {
		units[i] = models.OperationalUnit{
			Name:                  d.Name,
			DeploymentTime:        d.DeploymentTime,
			CostPerOperation:      d.CostPerOperation,
			UnitsAvailable:        d.UnitsAvailable,
			DeploymentTimeMinutes: d.DeploymentTimeMinutes,
			Cost:                  d.Cost,
			TotalUnits:            d.TotalUnits,
		}
	}
	return units
}

// UnitsToDTO преобразует доменные модели ресурсов в DTO для ответа
func UnitsToDTO(units []models.OperationalUnit) []OperationalUnitDTO {
	dtos := make([]OperationalUnitDTO, len(units))
	for i, u := range units {
		dtos[i] = OperationalUnitDTO{
			Name:                  u.Name,
			DeploymentTime:        u.DeploymentTime,
			CostPerOperation:      u.CostPerOperation,
			UnitsAvailable:        u.UnitsAvailable,
			DeploymentTimeMinutes: u.DeploymentTimeMinutes,
			Cost:                  u.Cost,
			TotalUnits:            u.TotalUnits,
		}
	}
	return dtos
}

// ResponseChartData - данные пропорциональной диаграммы: доли
// обработанных и пропущенных возгораний
func ResponseChartData(report models.ReportResult) []chart.Datum {
	return []chart.Datum{
		{Label: "addressed", Value: report.FiresAddressed},
		{Label: "missed", Value: report.FiresMissed},
	}
}

// CostChartData - данные сравнительной диаграммы: операционные
// затраты против ущерба
func CostChartData(report models.ReportResult) []chart.Datum {
	return []chart.Datum{
		{Label: "operational", Value: report.OperationalCosts},
		{Label: "damage", Value: report.DamageCosts},
	}
}

// SeverityChartData - данные сгруппированной диаграммы: разбивка
// по уровням серьезности для обработанных и пропущенных возгораний
func SeverityChartData(report models.ReportResult) []chart.GroupedDatum {
	return []chart.GroupedDatum{
		{
			Category: "addressed",
			Low:      report.SeverityReport.Addressed.Low,
			Medium:   report.SeverityReport.Addressed.Medium,
			High:     report.SeverityReport.Addressed.High,
		},
		{
			Category: "missed",
			Low:      report.SeverityReport.Missed.Low,
			Medium:   report.SeverityReport.Missed.Medium,
			High:     report.SeverityReport.Missed.High,
		},
	}
}
