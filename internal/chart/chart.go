package chart

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kind - вид диаграммы
type Kind string

const (
	KindProportion Kind = "proportion"
	KindComparison Kind = "comparison"
	KindGrouped    Kind = "grouped"
)

// Фиксированная система координат всех диаграмм
const (
	Width  = 600.0
	Height = 400.0
)

// AnimationMillis - длительность входной анимации каждой фигуры
const AnimationMillis = 1000

// Фиксированное отображение меток серий в цвета
var seriesColors = map[string]string{
	"low":         "#2ecc71",
	"medium":      "#f39c12",
	"high":        "#e74c3c",
	"addressed":   "#27ae60",
	"missed":      "#c0392b",
	"operational": "#2980b9",
	"damage":      "#8e44ad",
}

const defaultColor = "#95a5a6"

// Color возвращает цвет серии из фиксированной карты
func Color(label string) string {
	if c, ok := seriesColors[label]; ok {
		return c
	}
	return defaultColor
}

// Datum - точка данных пропорциональной или сравнительной диаграммы
type Datum struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// GroupedDatum - точка данных сгруппированной диаграммы
type GroupedDatum struct {
	Category string  `json:"category"`
	Low      float64 `json:"low"`
	Medium   float64 `json:"medium"`
	High     float64 `json:"high"`
}

// LegendEntry - элемент легенды: цветовая метка и читаемое имя серии
type LegendEntry struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Bar - прямоугольная фигура диаграммы. Enter-поля задают нулевую
// базовую геометрию, из которой фигура анимируется к итоговой.
type Bar struct {
	Label       string  `json:"label"`
	Series      string  `json:"series"`
	Color       string  `json:"color"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	EnterY      float64 `json:"enter_y"`
	EnterHeight float64 `json:"enter_height"`
	Tooltip     string  `json:"tooltip"`
}

// Arc - сектор пропорциональной диаграммы. Углы в радианах от 12 часов.
type Arc struct {
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	Value      float64 `json:"value"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	// Встроенная числовая подпись опускается для нулевых значений
	ShowLabel bool   `json:"show_label"`
	Tooltip   string `json:"tooltip"`
}

var currencyPrinter = message.NewPrinter(language.English)

// FormatValue форматирует значение для всплывающей подсказки.
// Денежные серии получают знак доллара и разделители тысяч.
func FormatValue(v float64, currency bool) string {
	if currency {
		return currencyPrinter.Sprintf("$%.2f", v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TooltipContent собирает содержимое подсказки "<метка серии>: <значение>"
func TooltipContent(label string, value float64, currency bool) string {
	return label + ": " + FormatValue(value, currency)
}

// Capitalize поднимает регистр первой буквы программного ключа
// для отображения в легенде ("low" -> "Low")
func Capitalize(label string) string {
	if label == "" {
		return ""
	}
	r := []rune(label)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

// buildLegend создает по одному элементу легенды на серию в исходном порядке
func buildLegend(labels []string) []LegendEntry {
	legend := make([]LegendEntry, 0, len(labels))
	for _, l := range labels {
		legend = append(legend, LegendEntry{
			Label: Capitalize(l),
			Color: Color(l),
		})
	}
	return legend
}

// buildArcs делит полный круг на секторы пропорционально значениям
func buildArcs(data []Datum, currency bool) []Arc {
	total := 0.0
	for _, d := range data {
		total += d.Value
	}

	arcs := make([]Arc, 0, len(data))
	angle := 0.0
	for _, d := range data {
		sweep := 0.0
		if total > 0 {
			sweep = d.Value / total * 2 * math.Pi
		}
		arcs = append(arcs, Arc{
			Label:      d.Label,
			Color:      Color(d.Label),
			Value:      d.Value,
			StartAngle: angle,
			EndAngle:   angle + sweep,
			ShowLabel:  d.Value != 0,
			Tooltip:    TooltipContent(Capitalize(d.Label), d.Value, currency),
		})
		angle += sweep
	}
	return arcs
}

// buildBars строит столбцы сравнительной диаграммы по полосовой
// и линейной шкалам
func buildBars(data []Datum, currency bool) []Bar {
	labels := make([]string, 0, len(data))
	maxValue := 0.0
	for _, d := range data {
		labels = append(labels, d.Label)
		if d.Value > maxValue {
			maxValue = d.Value
		}
	}

	x := NewBandScale(labels, 0, Width, 0.2)
	y := NewLinearScale(maxValue, Height, 0)

	bars := make([]Bar, 0, len(data))
	for _, d := range data {
		pos, _ := x.Position(d.Label)
		top := y.Scale(d.Value)
		bars = append(bars, Bar{
			Label:       d.Label,
			Series:      d.Label,
			Color:       Color(d.Label),
			X:           pos,
			Y:           top,
			Width:       x.Bandwidth(),
			Height:      Height - top,
			EnterY:      Height,
			EnterHeight: 0,
			Tooltip:     TooltipContent(Capitalize(d.Label), d.Value, currency),
		})
	}
	return bars
}

var severitySeries = []string{"low", "medium", "high"}

// buildGroupedBars строит по три под-столбца на категорию, позиции
// внутри полосы категории задает вложенная полосовая шкала
func buildGroupedBars(data []GroupedDatum) []Bar {
	categories := make([]string, 0, len(data))
	maxValue := 0.0
	for _, d := range data {
		categories = append(categories, d.Category)
		maxValue = math.Max(maxValue, math.Max(d.Low, math.Max(d.Medium, d.High)))
	}

	outer := NewBandScale(categories, 0, Width, 0.2)
	inner := outer.Inner(severitySeries, 0.1)
	y := NewLinearScale(maxValue, Height, 0)

	bars := make([]Bar, 0, len(data)*len(severitySeries))
	for _, d := range data {
		base, _ := outer.Position(d.Category)
		values := map[string]float64{"low": d.Low, "medium": d.Medium, "high": d.High}
		for _, series := range severitySeries {
			offset, _ := inner.Position(series)
			v := values[series]
			top := y.Scale(v)
			bars = append(bars, Bar{
				Label:       d.Category,
				Series:      series,
				Color:       Color(series),
				X:           base + offset,
				Y:           top,
				Width:       inner.Bandwidth(),
				Height:      Height - top,
				EnterY:      Height,
				EnterHeight: 0,
				Tooltip:     TooltipContent(Capitalize(series), v, false),
			})
		}
	}
	return bars
}
