package chart

import (
	"fmt"
	"strconv"
)

// Renderer - движок отрисовки одного экземпляра диаграммы.
// Общая логика шкал, анимации, подсказки и легенды для всех трех видов.
type Renderer struct {
	kind        Kind
	currency    bool
	arcs        []Arc
	bars        []Bar
	legend      []LegendEntry
	interaction *Interaction
	tooltip     Tooltip
}

// NewRenderer создает движок для указанного вида диаграммы.
// currency включает денежное форматирование подсказок.
func NewRenderer(kind Kind, currency bool) *Renderer {
	return &Renderer{
		kind:        kind,
		currency:    currency,
		interaction: NewInteraction(),
	}
}

// Render отрисовывает набор данных пропорциональной или сравнительной
// диаграммы. Все ранее отрисованные фигуры и элементы легенды удаляются
// перед построением новых: повторная отрисовка идемпотентна.
func (r *Renderer) Render(data []Datum) error {
	if r.kind == KindGrouped {
		return fmt.Errorf("chart: grouped renderer requires RenderGrouped")
	}

	r.clear()
	labels := make([]string, 0, len(data))
	for _, d := range data {
		labels = append(labels, d.Label)
	}
	r.legend = buildLegend(labels)

	switch r.kind {
	case KindProportion:
		r.arcs = buildArcs(data, r.currency)
	case KindComparison:
		r.bars = buildBars(data, r.currency)
	}

	r.interaction.BeginRender()
	return nil
}

// RenderGrouped отрисовывает сгруппированную диаграмму: по три
// под-столбца low/medium/high внутри полосы каждой категории
func (r *Renderer) RenderGrouped(data []GroupedDatum) error {
	if r.kind != KindGrouped {
		return fmt.Errorf("chart: RenderGrouped requires grouped renderer, got %q", r.kind)
	}

	r.clear()
	r.legend = buildLegend(severitySeries)
	r.bars = buildGroupedBars(data)
	r.interaction.BeginRender()
	return nil
}

func (r *Renderer) clear() {
	r.arcs = nil
	r.bars = nil
	r.legend = nil
	r.tooltip = Tooltip{}
}

// CompleteAnimation помечает входную анимацию завершенной
// и открывает реакцию на наведение
func (r *Renderer) CompleteAnimation() bool {
	return r.interaction.AnimationComplete()
}

// State возвращает состояние машины взаимодействия
func (r *Renderer) State() State {
	return r.interaction.State()
}

// Hover показывает подсказку для фигуры по индексу в координатах указателя.
// Во время входной анимации наведение подавляется.
func (r *Renderer) Hover(shape int, x, y float64) bool {
	if !r.interaction.HoverAllowed() {
		return false
	}

	content := ""
	switch {
	case shape >= 0 && shape < len(r.arcs):
		content = r.arcs[shape].Tooltip
	case shape >= 0 && shape < len(r.bars):
		content = r.bars[shape].Tooltip
	default:
		return false
	}

	r.tooltip = Tooltip{Visible: true, X: x, Y: y, Content: content}
	return true
}

// Move перемещает видимую подсказку вслед за указателем
func (r *Renderer) Move(x, y float64) {
	if !r.tooltip.Visible {
		return
	}
	r.tooltip.X = x
	r.tooltip.Y = y
}

// Leave скрывает подсказку при уходе указателя
func (r *Renderer) Leave() {
	r.tooltip = Tooltip{}
}

// Tooltip возвращает текущее состояние подсказки
func (r *Renderer) Tooltip() Tooltip {
	return r.tooltip
}

// ShapeCount возвращает число отрисованных фигур
func (r *Renderer) ShapeCount() int {
	return len(r.arcs) + len(r.bars)
}

// Legend возвращает элементы легенды в порядке серий
func (r *Renderer) Legend() []LegendEntry {
	return r.legend
}

// HoverColor возвращает затемненный цвет фигуры для эффекта наведения
func HoverColor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	out := "#"
	for i := 1; i < 7; i += 2 {
		v, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return hex
		}
		out += fmt.Sprintf("%02x", uint8(float64(v)*0.8))
	}
	return out
}

// ViewModel - сериализуемое представление диаграммы для фронтенда
type ViewModel struct {
	Kind            Kind          `json:"kind"`
	Width           float64       `json:"width"`
	Height          float64       `json:"height"`
	AnimationMillis int           `json:"animation_millis"`
	Arcs            []Arc         `json:"arcs,omitempty"`
	Bars            []Bar         `json:"bars,omitempty"`
	Legend          []LegendEntry `json:"legend"`
}

// ViewModel возвращает текущее представление диаграммы
func (r *Renderer) ViewModel() ViewModel {
	return ViewModel{
		Kind:            r.kind,
		Width:           Width,
		Height:          Height,
		AnimationMillis: AnimationMillis,
		Arcs:            r.arcs,
		Bars:            r.bars,
		Legend:          r.legend,
	}
}
