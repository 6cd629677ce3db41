package geo

import (
	"sort"
	"time"

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

const (
	// Доля запаса вокруг минимальной охватывающей области карты
	boundsPadding = 0.10
	// Фиксированное приближение при выборе конкретного возгорания
	focusZoom = 13
)

const dateLayout = "2006-01-02"

// DatePredictions - предсказания одной даты в хронологическом порядке
type DatePredictions struct {
	Date    string                   `json:"date"`
	Entries []models.PredictionEntry `json:"entries"`
}

// FilterByDateRange фильтрует предсказания по диапазону дат включительно.
// Даты сравниваются как календарные моменты. Если любая из границ
// отсутствует, возвращаются все записи в исходном порядке ключей.
func FilterByDateRange(preds models.PredictionsByDate, start, end *time.Time) []DatePredictions {
	dates := make([]string, 0, len(preds))
	for date := range preds {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	out := make([]DatePredictions, 0, len(dates))
	for _, date := range dates {
		if start != nil && end != nil {
			d, err := time.Parse(dateLayout, date)
			if err != nil {
				continue
			}
			if d.Before(startOfDay(*start)) || d.After(startOfDay(*end)) {
				continue
			}
		}
		out = append(out, DatePredictions{Date: date, Entries: preds[date]})
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Bounds - минимальная прямоугольная область, покрывающая набор точек
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// BoundsOf вычисляет охватывающую область по всем точкам отфильтрованного
// набора. Второй результат false, когда точек нет.
func BoundsOf(filtered []DatePredictions) (Bounds, bool) {
	found := false
	var b Bounds
	for _, day := range filtered {
		for _, e := range day.Entries {
			loc := e.Location
			if !found {
				b = Bounds{MinLat: loc.Latitude, MaxLat: loc.Latitude, MinLon: loc.Longitude, MaxLon: loc.Longitude}
				found = true
				continue
			}
			if loc.Latitude < b.MinLat {
				b.MinLat = loc.Latitude
			}
			if loc.Latitude > b.MaxLat {
				b.MaxLat = loc.Latitude
			}
			if loc.Longitude < b.MinLon {
				b.MinLon = loc.Longitude
			}
			if loc.Longitude > b.MaxLon {
				b.MaxLon = loc.Longitude
			}
		}
	}
	return b, found
}

// Padded расширяет область на заданную долю ее размера с каждой стороны
func (b Bounds) Padded(frac float64) Bounds {
	latPad := (b.MaxLat - b.MinLat) * frac
	lonPad := (b.MaxLon - b.MinLon) * frac
	return Bounds{
		MinLat: b.MinLat - latPad,
		MaxLat: b.MaxLat + latPad,
		MinLon: b.MinLon - lonPad,
		MaxLon: b.MaxLon + lonPad,
	}
}

// Center возвращает центр области
func (b Bounds) Center() models.Location {
	return models.Location{
		Latitude:  (b.MinLat + b.MaxLat) / 2,
		Longitude: (b.MinLon + b.MaxLon) / 2,
	}
}

// Selection идентифицирует одно выделенное возгорание: дата и индекс
// записи внутри даты
type Selection struct {
	Date  string `json:"date"`
	Index int    `json:"index"`
}

// Selector хранит единственное текущее выделение. Выбор новой записи
// снимает предыдущее выделение.
type Selector struct {
	current *Selection
}

// Select выделяет запись, заменяя предыдущее выделение
func (s *Selector) Select(date string, index int) {
	s.current = &Selection{Date: date, Index: index}
}

// Clear снимает выделение
func (s *Selector) Clear() {
	s.current = nil
}

// Current возвращает текущее выделение или nil
func (s *Selector) Current() *Selection {
	return s.current
}

// IsSelected сообщает, выделена ли запись с данными датой и индексом
func (s *Selector) IsSelected(date string, index int) bool {
	return s.current != nil && s.current.Date == date && s.current.Index == index
}

// Viewport - область просмотра карты
type Viewport struct {
	// Fitted=true: показать охватывающую область; иначе центр и зум
	Fitted bool            `json:"fitted"`
	Bounds *Bounds         `json:"bounds,omitempty"`
	Center models.Location `json:"center"`
	Zoom   float64         `json:"zoom"`
}

// ProjectViewport вычисляет область просмотра карты. При явном выделении
// возгорания карта центрируется на его точке с фиксированным приближением,
// перекрывая подгонку по области; иначе подгоняется расширенная
// охватывающая область всех отфильтрованных точек.
func ProjectViewport(filtered []DatePredictions, sel *Selection) (Viewport, bool) {
	if sel != nil {
		if entry, ok := findEntry(filtered, sel); ok {
			return Viewport{Center: entry.Location, Zoom: focusZoom}, true
		}
	}

	bounds, ok := BoundsOf(filtered)
	if !ok {
		return Viewport{}, false
	}
	padded := bounds.Padded(boundsPadding)
	return Viewport{Fitted: true, Bounds: &padded, Center: padded.Center()}, true
}

func findEntry(filtered []DatePredictions, sel *Selection) (models.PredictionEntry, bool) {
	for _, day := range filtered {
		if day.Date != sel.Date {
			continue
		}
		if sel.Index >= 0 && sel.Index < len(day.Entries) {
			return day.Entries[sel.Index], true
		}
	}
	return models.PredictionEntry{}, false
}
