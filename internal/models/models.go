package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DatasetKind определяет тип загружаемого набора данных
type DatasetKind string

const (
	KindStatistics  DatasetKind = "statistics"
	KindPredictions DatasetKind = "predictions"
)

// Valid проверяет, что тип набора данных поддерживается
func (k DatasetKind) Valid() bool {
	return k == KindStatistics || k == KindPredictions
}

// RequiredColumns возвращает обязательные колонки для типа набора данных
func (k DatasetKind) RequiredColumns() []string {
	switch k {
	case KindStatistics:
		return []string{"timestamp", "fire_start_time", "location", "severity"}
	case KindPredictions:
		return []string{
			"timestamp", "temperature", "humidity", "wind_speed",
			"precipitation", "vegetation_index", "human_activity_index",
			"latitude", "longitude",
		}
	}
	return nil
}

// ValueKind - тег скалярного варианта ячейки
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueString
	ValueBool
)

// Value - типизированное скалярное значение одной ячейки набора данных.
// Тип определяется динамически при разборе заголовка и строк.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
}

func Number(v float64) Value { return Value{Kind: ValueNumber, Num: v} }
func String(s string) Value  { return Value{Kind: ValueString, Str: s} }
func Boolean(b bool) Value   { return Value{Kind: ValueBool, Bool: b} }

// MarshalJSON сериализует значение как голый скаляр
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueBool:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON восстанавливает тегированный вариант из скаляра
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = Number(t)
	case bool:
		*v = Boolean(t)
	case string:
		*v = String(t)
	case nil:
		*v = String("")
	default:
		return fmt.Errorf("unsupported cell value type %T", raw)
	}
	return nil
}

// StringValue возвращает строковое представление значения для отображения
func (v Value) StringValue() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// RawRow - одна проверенная запись загруженного набора данных.
// Ключи - имена колонок из строки заголовка; пустые ячейки отсутствуют.
type RawRow map[string]Value

// OperationalUnit - редактируемый пользователем оперативный ресурс.
// Указатели позволяют принимать записи как в пользовательском,
// так и в сервисном формате ключей (см. settings.ToServiceFormat).
type OperationalUnit struct {
	Name             string   `json:"name"`
	DeploymentTime   *float64 `json:"deploymentTime,omitempty"`
	CostPerOperation *float64 `json:"costPerOperation,omitempty"`
	UnitsAvailable   *float64 `json:"unitsAvailable,omitempty"`

	// Сервисный формат ключей
	DeploymentTimeMinutes *float64 `json:"deployment_time_minutes,omitempty"`
	Cost                  *float64 `json:"cost,omitempty"`
	TotalUnits            *float64 `json:"total_units,omitempty"`
}

// ResourceConfig - запись ресурса в формате, ожидаемом удаленным сервисом анализа
type ResourceConfig struct {
	DeploymentTimeMinutes float64 `json:"deployment_time_minutes"`
	Cost                  float64 `json:"cost"`
	TotalUnits            float64 `json:"total_units"`
}

// DamageCosts - оценки ущерба по уровням серьезности
type DamageCosts struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// SeverityCounts - количество событий по уровням серьезности
type SeverityCounts struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// SeverityReport - разбивка обработанных и пропущенных событий
type SeverityReport struct {
	Addressed SeverityCounts `json:"addressed"`
	Missed    SeverityCounts `json:"missed"`
}

// ReportResult - итоговый отчет удаленного сервиса анализа.
// Все поля по умолчанию равны нулю, пока не получен успешный ответ.
type ReportResult struct {
	TotalEvents      float64        `json:"total_events"`
	FiresAddressed   float64        `json:"fires_addressed"`
	FiresMissed      float64        `json:"fires_missed"`
	OperationalCosts float64        `json:"operational_costs"`
	DamageCosts      float64        `json:"damage_costs"`
	SeverityReport   SeverityReport `json:"severity_report"`
}

// Location - географические координаты предсказания
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RiskFactors - факторы риска предсказанного возгорания
type RiskFactors struct {
	FireProbability float64 `json:"fire_probability"`
	Temperature     float64 `json:"temperature"`
	Humidity        float64 `json:"humidity"`
	WindSpeed       float64 `json:"wind_speed"`
}

// PredictionEntry - одно предсказание возгорания
type PredictionEntry struct {
	Time        string      `json:"time"`
	Location    Location    `json:"location"`
	RiskFactors RiskFactors `json:"risk_factors"`
}

// PredictionsByDate - предсказания, сгруппированные по ISO-дате
type PredictionsByDate map[string][]PredictionEntry
