package notification

import (
	"context"
	"fmt"

	"github.com/emmaus-center/RetreatBooker/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking lifecycle events to the retreat office chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking %s*\n\nRetreat: %s\nGuest: %s (%s)\nAttendees: %d male, %d female\nPayment: %s",
		b.ID, b.RetreatTitle, b.FullName, b.Phone,
		b.MaleSeats, b.FemaleSeats, b.PaymentStatus,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking %s cancelled*\n\nRetreat: %s\nGuest: %s (%s)",
		b.ID, b.RetreatTitle, b.FullName, b.Phone,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingRescheduled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking %s rescheduled*\n\nNow on: %s\nGuest: %s (%s)",
		b.ID, b.RescheduledToRetreatTitle, b.FullName, b.Phone,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
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
