package port

import (
	"context"

	"ai-diagnostics/internal/domain/entity"
)

// FindingsCatalog источник находок и рекомендаций по категории
type FindingsCatalog interface {
	// Findings возвращает находки категории в фиксированном порядке
	Findings(ctx context.Context, category entity.Category) ([]entity.Finding, error)

	// Recommendations возвращает рекомендации категории
	Recommendations(ctx context.Context, category entity.Category) ([]string, error)

	// Metrics возвращает блок с информацией об обработке
	Metrics() []entity.Metric
}
