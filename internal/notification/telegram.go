package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/niksmo/slotkeeper/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes capacity and lifecycle alerts to an admin
// chat. With an empty token it degrades to a disabled sink.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) EmitThreshold(ctx context.Context, e domain.CapacityThresholdEvent) {
	var title string
	switch e.Kind {
	case domain.ThresholdLowAvailability:
		title = "Low availability"
	case domain.ThresholdNearlyFull:
		title = "Nearly full"
	case domain.ThresholdWaitlist:
		title = "Sold out, waitlist open"
	default:
		title = string(e.Kind)
	}

	text := fmt.Sprintf(
		"*%s*\n\nOccurrence: %s\nAvailable: %d of %d",
		title, e.OccurrenceID, e.Available, e.Capacity,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) EmitLifecycle(ctx context.Context, e domain.BookingLifecycleEvent) {
	// Only events an operator acts on reach the admin chat.
	if e.Kind != domain.LifecycleBookingConfirmed && e.Kind != domain.LifecycleHoldExpired {
		return
	}

	text := fmt.Sprintf(
		"*%s*\n\nOccurrence: %s\nSeats: %d",
		e.Kind, e.OccurrenceID, e.Quantity,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
