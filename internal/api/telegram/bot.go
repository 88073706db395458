package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pterm/pterm"

	app "ai-diagnostics/internal/application"
	"ai-diagnostics/internal/container"
	"ai-diagnostics/internal/domain/entity"
	"ai-diagnostics/internal/domain/port"
)

const (
	msgStart = `👋 Привет! Это демо AI Diagnostics.

1️⃣ Выберите область: /brain /heart /lungs /skin
2️⃣ Отправьте снимок (jpg, jpeg или png)
3️⃣ Получите список находок и рекомендации

📋 Команды:
/category <название> — выбрать область
/presentation — показать или скрыть презентацию
/help — справка
/cancel — сбросить выбор`

	msgHelp = `ℹ️ Результаты демонстрационные: модели нет, находки берутся из фиксированной таблицы.

📋 Команды:
/brain /heart /lungs /skin — выбрать область
/category <название> — выбрать область
/presentation — показать или скрыть презентацию
/cancel — сбросить выбор`

	msgCategoryUsage      = "Укажите область: /category Brain | Heart | Lungs | Skin"
	msgUnknownCategory    = "❓ Неизвестная область. Доступны: Brain, Heart, Lungs, Skin."
	msgCancelled          = "❌ Выбор сброшен. Область по умолчанию: Brain."
	msgUnknownCommand     = "❓ Неизвестная команда. Используйте /help для справки."
	msgPresentationHidden = "Презентация скрыта."
	msgUnsupportedFormat  = "⚠️ Поддерживаются только файлы jpg, jpeg и png."
	msgProcessingError    = "⚠️ Не удалось обработать изображение. Попробуйте другой файл."
	msgInternalError      = "⚠️ Что-то пошло не так. Попробуйте ещё раз."
)

// Bot представляет Telegram-бота
type Bot struct {
	api *tgbotapi.BotAPI
	app *container.Container
	log *pterm.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, log *pterm.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized", log.Args("account", api.Self.UserName))

	return &Bot{
		api: api,
		app: c,
		log: log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены ctx
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Фото всегда приходит в jpeg
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleUpload(ctx, msg.Chat.ID, photo.FileID, "photo.jpg")
		return
	}

	if msg.Document != nil {
		b.handleUpload(ctx, msg.Chat.ID, msg.Document.FileID, msg.Document.FileName)
		return
	}

	b.sendMessage(msg.Chat.ID, msgStart)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch cmd := msg.Command(); cmd {
	case "start":
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "brain", "heart", "lungs", "skin":
		b.selectCategory(ctx, chatID, cmd)

	case "category":
		name := strings.TrimSpace(msg.CommandArguments())
		if name == "" {
			b.sendMessage(chatID, msgCategoryUsage)
			return
		}
		b.selectCategory(ctx, chatID, name)

	case "presentation":
		session, err := b.app.SessionService.TogglePresentation(ctx, chatID)
		if err != nil {
			b.log.Error("toggle presentation", b.log.Args("chat", chatID, "error", err.Error()))
			b.sendMessage(chatID, msgInternalError)
			return
		}
		if !session.ShowPresentation {
			b.sendMessage(chatID, msgPresentationHidden)
			return
		}
		b.sendPresentation(chatID, entity.NewPresentation())

	case "cancel":
		if _, err := b.app.SessionService.Reset(ctx, chatID); err != nil {
			b.log.Error("reset session", b.log.Args("chat", chatID, "error", err.Error()))
			b.sendMessage(chatID, msgInternalError)
			return
		}
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

func (b *Bot) selectCategory(ctx context.Context, chatID int64, name string) {
	session, err := b.app.SessionService.SelectCategory(ctx, chatID, name)
	if errors.Is(err, entity.ErrUnknownCategory) {
		b.sendMessage(chatID, msgUnknownCategory)
		return
	}
	if err != nil {
		b.log.Error("select category", b.log.Args("chat", chatID, "error", err.Error()))
		b.sendMessage(chatID, msgInternalError)
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("✅ Область: %s\n📸 %s", session.Category, session.Category.UploadPrompt()))
}

// handleUpload скачивает файл, "анализирует" его и отправляет отчёт
func (b *Bot) handleUpload(ctx context.Context, chatID int64, fileID, filename string) {
	if err := entity.ValidateImageName(filename); err != nil {
		b.sendMessage(chatID, msgUnsupportedFormat)
		return
	}

	session, err := b.app.SessionService.Get(ctx, chatID)
	if err != nil {
		b.log.Error("get session", b.log.Args("chat", chatID, "error", err.Error()))
		b.sendMessage(chatID, msgInternalError)
		return
	}

	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.log.Warn("download file", b.log.Args("chat", chatID, "error", err.Error()))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	img, err := b.app.Decoder.Decode(ctx, filename, data)
	if err != nil {
		b.log.Warn("decode image", b.log.Args("chat", chatID, "file", filename, "error", err.Error()))
		b.sendMessage(chatID, uploadErrorMessage(err))
		return
	}

	progress := b.newProgressMessage(chatID)

	view, err := b.app.DiagnosticsService.Render(ctx, app.ViewInput{
		Category: session.Category,
		Upload:   img,
	}, progress)
	if err != nil {
		b.log.Error("render", b.log.Args("chat", chatID, "error", err.Error()))
		b.sendMessage(chatID, msgInternalError)
		return
	}

	b.log.Info("report sent", b.log.Args("chat", chatID, "category", string(view.Category), "bytes", len(data)))
	b.sendMessage(chatID, FormatView(view))
}

// uploadErrorMessage выбирает ответ на ошибку декодирования
func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrUnsupportedFormat):
		return msgUnsupportedFormat
	default:
		return msgProcessingError
	}
}

// newProgressMessage отправляет сообщение с прогрессом и обновляет его каждые 25%
func (b *Bot) newProgressMessage(chatID int64) port.ProgressReporter {
	sent, err := b.api.Send(tgbotapi.NewMessage(chatID, progressText(0)))
	if err != nil {
		b.log.Warn("send progress", b.log.Args("chat", chatID, "error", err.Error()))
		return nil
	}

	return port.ProgressFunc(func(p int) {
		if p%25 != 0 {
			return
		}
		edit := tgbotapi.NewEditMessageText(chatID, sent.MessageID, progressText(p))
		if _, err := b.api.Send(edit); err != nil {
			b.log.Debug("edit progress", b.log.Args("chat", chatID, "error", err.Error()))
		}
	})
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

func (b *Bot) sendPresentation(chatID int64, p *entity.Presentation) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(p.ImageURL))
	photo.Caption = p.ImageCaption
	if _, err := b.api.Send(photo); err != nil {
		b.log.Warn("send presentation image", b.log.Args("chat", chatID, "error", err.Error()))
	}
	b.sendMessage(chatID, FormatPresentation(p))
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send message", b.log.Args("chat", chatID, "error", err.Error()))
	}
}
