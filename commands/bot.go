package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	telegram "ai-diagnostics/internal/api/telegram"
	"ai-diagnostics/internal/domain/port"
	"ai-diagnostics/internal/infrastructure/storage"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.TelegramToken == "" {
			return errors.New("TELEGRAM_TOKEN is required")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Создаём хранилище сессий
		var sessions port.SessionRepository
		if cfg.RedisAddr != "" {
			redisRepo := storage.NewRedisSessionRepository(cfg.RedisAddr)
			defer redisRepo.Close()
			if err := redisRepo.Ping(ctx); err != nil {
				return err
			}
			log.Info("sessions in redis", log.Args("addr", cfg.RedisAddr))
			sessions = redisRepo
		} else {
			sessions = storage.NewMemorySessionRepository()
		}

		bot, err := telegram.NewBot(cfg.TelegramToken, newContainer(cfg, sessions), log)
		if err != nil {
			return err
		}

		log.Info("bot is running")
		return bot.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
