package entity

// Session состояние чата в боте: что выбрано и открыта ли презентация
type Session struct {
	ChatID           int64    // Telegram Chat ID
	Category         Category // Текущая категория
	ShowPresentation bool     // Показана ли панель презентации
}

// NewSession создаёт сессию с категорией по умолчанию
func NewSession(chatID int64) *Session {
	return &Session{
		ChatID:   chatID,
		Category: DefaultCategory,
	}
}

// SetCategory обновляет выбранную категорию
func (s *Session) SetCategory(c Category) {
	s.Category = c
}
