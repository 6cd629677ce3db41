package chart

// State - состояние машины взаимодействия экземпляра диаграммы
type State int

const (
	// StateIdle - данные еще не отрисованы
	StateIdle State = iota
	// StateAnimating - входная анимация фигур в полете,
	// реакция на наведение подавлена
	StateAnimating
	// StateInteractive - анимация завершена, наведение разрешено
	StateInteractive
)

func (s State) String() string {
	switch s {
	case StateAnimating:
		return "animating"
	case StateInteractive:
		return "interactive"
	default:
		return "idle"
	}
}

// Tooltip - единственный плавающий элемент подсказки диаграммы.
// Позиционируется по координатам указателя и скрывается при уходе.
type Tooltip struct {
	Visible bool    `json:"visible"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
}

// Interaction управляет переходами между состояниями диаграммы.
// Эффекты наведения достижимы только из interactive: это исключает
// артефакты взаимодействия на фигурах, еще не получивших размер.
type Interaction struct {
	state State
}

// NewInteraction создает машину в состоянии idle
func NewInteraction() *Interaction {
	return &Interaction{state: StateIdle}
}

// State возвращает текущее состояние
func (i *Interaction) State() State {
	return i.state
}

// BeginRender переводит машину в animating при каждой отрисовке данных
func (i *Interaction) BeginRender() {
	i.state = StateAnimating
}

// AnimationComplete фиксирует завершение входной анимации.
// Переход разрешен только из animating.
func (i *Interaction) AnimationComplete() bool {
	if i.state != StateAnimating {
		return false
	}
	i.state = StateInteractive
	return true
}

// HoverAllowed сообщает, разрешены ли эффекты наведения
func (i *Interaction) HoverAllowed() bool {
	return i.state == StateInteractive
}
