package chart

import "math"

// BandScale - порядковая шкала с равными полосами.
// Порядок категорий значим: он задается порядком вставки входных данных
// и определяет порядок отрисовки слева направо.
type BandScale struct {
	domain   []string
	index    map[string]int
	rangeMin float64
	rangeMax float64
	padding  float64
}

// NewBandScale создает полосовую шкалу над категориями в исходном порядке
func NewBandScale(domain []string, rangeMin, rangeMax, padding float64) *BandScale {
	if padding < 0 {
		padding = 0
	}
	if padding > 0.9 {
		padding = 0.9
	}
	index := make(map[string]int, len(domain))
	ordered := make([]string, 0, len(domain))
	for _, label := range domain {
		if _, ok := index[label]; ok {
			continue
		}
		index[label] = len(ordered)
		ordered = append(ordered, label)
	}
	return &BandScale{
		domain:   ordered,
		index:    index,
		rangeMin: rangeMin,
		rangeMax: rangeMax,
		padding:  padding,
	}
}

// Domain возвращает категории шкалы в порядке отрисовки
func (s *BandScale) Domain() []string {
	out := make([]string, len(s.domain))
	copy(out, s.domain)
	return out
}

func (s *BandScale) step() float64 {
	if len(s.domain) == 0 {
		return 0
	}
	return (s.rangeMax - s.rangeMin) / float64(len(s.domain))
}

// Bandwidth возвращает ширину одной полосы с учетом отступов
func (s *BandScale) Bandwidth() float64 {
	return s.step() * (1 - s.padding)
}

// Position возвращает координату левого края полосы категории
func (s *BandScale) Position(label string) (float64, bool) {
	i, ok := s.index[label]
	if !ok {
		return 0, false
	}
	return s.rangeMin + float64(i)*s.step() + s.step()*s.padding/2, true
}

// Inner создает вложенную полосовую шкалу внутри полосы внешней шкалы.
// Используется для под-столбцов сгруппированной диаграммы.
func (s *BandScale) Inner(domain []string, padding float64) *BandScale {
	return NewBandScale(domain, 0, s.Bandwidth(), padding)
}

// LinearScale - линейная шкала от 0 до округленного вверх максимума
type LinearScale struct {
	domainMax float64
	rangeMin  float64
	rangeMax  float64
}

// NewLinearScale создает линейную шкалу [0, niceCeil(max)] -> [rangeMin, rangeMax]
func NewLinearScale(maxValue, rangeMin, rangeMax float64) *LinearScale {
	return &LinearScale{
		domainMax: niceCeil(maxValue),
		rangeMin:  rangeMin,
		rangeMax:  rangeMax,
	}
}

// DomainMax возвращает верхнюю границу области значений
func (s *LinearScale) DomainMax() float64 {
	return s.domainMax
}

// Scale отображает значение в координату
func (s *LinearScale) Scale(v float64) float64 {
	if s.domainMax == 0 {
		return s.rangeMin
	}
	return s.rangeMin + v/s.domainMax*(s.rangeMax-s.rangeMin)
}

// Ticks возвращает до n меток оси с удобными шагами
func (s *LinearScale) Ticks(n int) []float64 {
	if n < 2 || s.domainMax <= 0 {
		return nil
	}
	// Предпочтительные шаги: 1, 2, 2.5, 5, 10, масштабированные степенью десяти
	mag := math.Pow(10, math.Floor(math.Log10(s.domainMax/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(s.domainMax / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}

	ticks := []float64{}
	for v := 0.0; v <= s.domainMax+bestStep/2; v += bestStep {
		ticks = append(ticks, v)
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// niceCeil округляет значение вверх до "удобной" границы
// по порядку величины
func niceCeil(v float64) float64 {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/mag) * mag
}
