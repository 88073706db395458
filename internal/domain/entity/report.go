package entity

// RenderedFinding находка, подготовленная к показу
type RenderedFinding struct {
	Finding
	Icon    string
	Percent string
}

// Report результат "анализа" для выбранной категории
type Report struct {
	Category        Category
	Findings        []RenderedFinding
	Metrics         []Metric
	Recommendations []string
}

// NewReport собирает отчёт из статичных таблиц
func NewReport(category Category, findings []Finding, metrics []Metric, recs []string) *Report {
	rendered := make([]RenderedFinding, 0, len(findings))
	for _, f := range findings {
		rendered = append(rendered, RenderedFinding{
			Finding: f,
			Icon:    f.Severity.Icon(),
			Percent: FormatProbability(f.Probability),
		})
	}

	return &Report{
		Category:        category,
		Findings:        rendered,
		Metrics:         metrics,
		Recommendations: recs,
	}
}
