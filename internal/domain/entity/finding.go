package entity

import "fmt"

// Severity степень важности находки
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Icon возвращает маркер для отображения степени
func (s Severity) Icon() string {
	switch s {
	case SeverityHigh:
		return "🟥"
	case SeverityMedium:
		return "🟨"
	case SeverityLow:
		return "🟩"
	default:
		return "❔"
	}
}

// Finding статичная запись с вероятностью и степенью
type Finding struct {
	Name        string
	Probability float64 // в диапазоне [0, 1]
	Severity    Severity
}

// FormatProbability переводит вероятность в проценты с одним знаком после запятой
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Metric пара "название: значение" для блока с информацией об обработке
type Metric struct {
	Label string
	Value string
}
