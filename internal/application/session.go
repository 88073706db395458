package app

import (
	"context"

	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

type SessionService struct {
	repo port.SessionRepository
}

func NewSessionService(repo port.SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) Get(ctx context.Context, chatID int64) (*entity.Session, error) {
	return s.repo.Get(ctx, chatID)
}

// SelectCategory разбирает название и сохраняет выбор
func (s *SessionService) SelectCategory(ctx context.Context, chatID int64, name string) (*entity.Session, error) {
	category, err := entity.ParseCategory(name)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	session.SetCategory(category)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *SessionService) TogglePresentation(ctx context.Context, chatID int64) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, chatID)
	if err != nil {
		return nil, err
	}

	session.ShowPresentation = TogglePresentation(session.ShowPresentation)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Reset возвращает сессию к значениям по умолчанию
func (s *SessionService) Reset(ctx context.Context, chatID int64) (*entity.Session, error) {
	session := entity.NewSession(chatID)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
