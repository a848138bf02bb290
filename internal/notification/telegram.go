package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/TableBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

// sender is the part of tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier sends owner notifications to the store's telegram chat.
type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, store *domain.Store, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Новая заявка на бронирование*\n\n"+"Заведение: %s\n"+"Гость: %s, %d чел.\n"+"Дата (время указано в UTC): %s, %d мин.",
		store.Name,
		booking.CustomerName,
		booking.PartySize,
		booking.BookedAt.Format(timeLayout),
		booking.DurationMinutes,
	)
	if booking.TableID == nil {
		text += "\nСтол не назначен."
	}
	n.send(ctx, store.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, store *domain.Store, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Заведение: %s\n"+"Гость: %s\n"+"Дата (время указано в UTC): %s",
		store.Name,
		booking.CustomerName,
		booking.BookedAt.Format(timeLayout),
	)
	n.send(ctx, store.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyPendingReminder(ctx context.Context, store *domain.Store, pending int) {
	text := fmt.Sprintf(
		"*Ожидают подтверждения: %d*\n\n"+"Заведение: %s",
		pending, store.Name,
	)
	n.send(ctx, store.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
