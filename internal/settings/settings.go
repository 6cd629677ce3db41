package settings

import (
	"regexp"
	"strings"

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

// Литеральные значения по умолчанию для полей ресурса,
// отсутствующих в обоих форматах ключей
const (
	FallbackDeploymentTime = 30
	FallbackCost           = 5000
	FallbackTotalUnits     = 5
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DefaultUnits возвращает пять оперативных ресурсов по умолчанию.
// Значения взяты из действующих нормативов развертывания.
func DefaultUnits() []models.OperationalUnit {
	return []models.OperationalUnit{
		newUnit("Smoke Jumpers", 30, 5000, 5),
		newUnit("Fire Engines", 60, 2000, 10),
		newUnit("Helicopters", 45, 8000, 3),
		newUnit("Tanker Planes", 120, 15000, 2),
		newUnit("Ground Crews", 90, 3000, 8),
	}
}

// DefaultDamageCosts возвращает базовые оценки ущерба по уровням серьезности
func DefaultDamageCosts() models.DamageCosts {
	return models.DamageCosts{
		Low:    50000,
		Medium: 100000,
		High:   200000,
	}
}

func newUnit(name string, deployment, cost, units float64) models.OperationalUnit {
	return models.OperationalUnit{
		Name:             name,
		DeploymentTime:   &deployment,
		CostPerOperation: &cost,
		UnitsAvailable:   &units,
	}
}

// ServiceKey выводит ключ ресурса для сервисного формата:
// имя в нижнем регистре, последовательности пробелов заменены одним
// подчеркиванием ("Smoke Jumpers" -> "smoke_jumpers")
func ServiceKey(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// ToServiceFormat преобразует ресурсы в формат ключей удаленного сервиса.
// Коллизии ключей не дедуплицируются - последняя запись побеждает.
// Принимает записи и в пользовательском, и уже в сервисном формате.
func ToServiceFormat(units []models.OperationalUnit) map[string]models.ResourceConfig {
	out := make(map[string]models.ResourceConfig, len(units))
	for _, u := range units {
		out[ServiceKey(u.Name)] = models.ResourceConfig{
			DeploymentTimeMinutes: firstOf(u.DeploymentTime, u.DeploymentTimeMinutes, FallbackDeploymentTime),
			Cost:                  firstOf(u.CostPerOperation, u.Cost, FallbackCost),
			TotalUnits:            firstOf(u.UnitsAvailable, u.TotalUnits, FallbackTotalUnits),
		}
	}
	return out
}

// firstOf возвращает первое заданное значение из цепочки запасных вариантов
func firstOf(primary, secondary *float64, fallback float64) float64 {
	if primary != nil {
		return *primary
	}
	if secondary != nil {
		return *secondary
	}
	return fallback
}

// ClampUnit приводит все числовые поля ресурса к значению не меньше 1.
// Хранить и отображать значения ниже 1 нельзя независимо от ввода.
func ClampUnit(u models.OperationalUnit) models.OperationalUnit {
	u.DeploymentTime = clampPtr(u.DeploymentTime)
	u.CostPerOperation = clampPtr(u.CostPerOperation)
	u.UnitsAvailable = clampPtr(u.UnitsAvailable)
	u.DeploymentTimeMinutes = clampPtr(u.DeploymentTimeMinutes)
	u.Cost = clampPtr(u.Cost)
	u.TotalUnits = clampPtr(u.TotalUnits)
	return u
}

// ClampUnits применяет ClampUnit ко всем ресурсам
func ClampUnits(units []models.OperationalUnit) []models.OperationalUnit {
	clamped := make([]models.OperationalUnit, len(units))
	for i, u := range units {
		clamped[i] = ClampUnit(u)
	}
	return clamped
}

// ClampDamageCosts приводит оценки ущерба к значению не меньше 1
func ClampDamageCosts(c models.DamageCosts) models.DamageCosts {
	return models.DamageCosts{
		Low:    clamp(c.Low),
		Medium: clamp(c.Medium),
		High:   clamp(c.High),
	}
}

func clamp(v float64) float64 {
	if v < 1 {
		return 1
	}
	return v
}

func clampPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := clamp(*v)
	return &c
}
