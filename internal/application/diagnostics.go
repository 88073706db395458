package app

import (
	"context"
	"errors"
	"fmt"

	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

const (
	Title       = "AI Diagnostics"
	Subtitle    = "Powered by Machine Learning"
	Placeholder = "Upload a scan/image to get analysis results."
	// ProcessingLabel подпись индикатора прогресса
	ProcessingLabel = "Processing Image..."
)

// ViewInput всё, что нужно для одного рендера страницы
type ViewInput struct {
	Category         entity.Category
	Upload           *entity.UploadedImage // nil, если файл не загружен
	ShowPresentation bool
}

// CategoryOption пункт переключателя категорий
type CategoryOption struct {
	Category entity.Category
	Selected bool
}

// View результат рендера
type View struct {
	Title        string
	Subtitle     string
	Categories   []CategoryOption
	Category     entity.Category
	UploadPrompt string
	Image        *entity.UploadedImage
	ImageCaption string
	Report       *entity.Report // nil, если загрузки нет
	Placeholder  string         // заполнен, только если Report == nil
	Presentation *entity.Presentation
	// ShowPresentation состояние переключателя, которое надо вернуть в следующий запрос
	ShowPresentation bool
}

type DiagnosticsService struct {
	catalog   port.FindingsCatalog
	simulator *Simulator
}

// NewDiagnosticsService создаёт сервис, который "анализирует" изображения по статичным таблицам.
func NewDiagnosticsService(catalog port.FindingsCatalog, simulator *Simulator) *DiagnosticsService {
	if simulator == nil {
		simulator = NewSimulator(DefaultProgressSteps, DefaultProgressStepDelay)
	}
	return &DiagnosticsService{
		catalog:   catalog,
		simulator: simulator,
	}
}

// Analyze имитирует обработку и возвращает отчёт по категории
func (s *DiagnosticsService) Analyze(ctx context.Context, category entity.Category, upload *entity.UploadedImage, progress port.ProgressReporter) (*entity.Report, error) {
	if upload == nil {
		return nil, errors.New("no image uploaded")
	}
	if !category.Valid() {
		return nil, fmt.Errorf("analyze: %w: %q", entity.ErrUnknownCategory, category)
	}

	s.simulator.Run(progress)

	findings, err := s.catalog.Findings(ctx, category)
	if err != nil {
		return nil, err
	}
	recs, err := s.catalog.Recommendations(ctx, category)
	if err != nil {
		return nil, err
	}

	return entity.NewReport(category, findings, s.catalog.Metrics(), recs), nil
}

// Render строит страницу по входным данным одного взаимодействия
func (s *DiagnosticsService) Render(ctx context.Context, in ViewInput, progress port.ProgressReporter) (*View, error) {
	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	if !category.Valid() {
		return nil, fmt.Errorf("render: %w: %q", entity.ErrUnknownCategory, category)
	}

	view := &View{
		Title:            Title,
		Subtitle:         Subtitle,
		Categories:       categoryOptions(category),
		Category:         category,
		UploadPrompt:     category.UploadPrompt(),
		ShowPresentation: in.ShowPresentation,
	}

	if in.ShowPresentation {
		view.Presentation = entity.NewPresentation()
	}

	if in.Upload == nil {
		view.Placeholder = Placeholder
		return view, nil
	}

	view.Image = in.Upload
	view.ImageCaption = category.ImageCaption()

	report, err := s.Analyze(ctx, category, in.Upload, progress)
	if err != nil {
		return nil, err
	}
	view.Report = report

	return view, nil
}

// TogglePresentation переключает панель презентации
func TogglePresentation(shown bool) bool {
	return !shown
}

func categoryOptions(selected entity.Category) []CategoryOption {
	all := entity.Categories()
	out := make([]CategoryOption, 0, len(all))
	for _, c := range all {
		out = append(out, CategoryOption{Category: c, Selected: c == selected})
	}
	return out
}
