package app

import (
	"time"

	"ai-diagnostics/internal/domain/port"
)

const (
	// DefaultProgressSteps число шагов имитации обработки
	DefaultProgressSteps = 100
	// DefaultProgressStepDelay пауза между шагами
	DefaultProgressStepDelay = 10 * time.Millisecond
)

// Simulator имитирует обработку: никакой работы, только пауза и прогресс
type Simulator struct {
	Steps     int
	StepDelay time.Duration
	sleep     func(time.Duration)
}

// NewSimulator создаёт имитатор обработки
func NewSimulator(steps int, stepDelay time.Duration) *Simulator {
	if steps <= 0 {
		steps = DefaultProgressSteps
	}
	return &Simulator{
		Steps:     steps,
		StepDelay: stepDelay,
		sleep:     time.Sleep,
	}
}

// Run блокирует вызывающего на Steps*StepDelay и сообщает прогресс от 1 до 100.
// Отмены нет.
func (s *Simulator) Run(reporter port.ProgressReporter) {
	last := 0
	for i := 1; i <= s.Steps; i++ {
		if s.StepDelay > 0 {
			s.sleep(s.StepDelay)
		}
		percent := i * 100 / s.Steps
		if percent == last {
			continue
		}
		last = percent
		if reporter != nil {
			reporter.Report(percent)
		}
	}
}
