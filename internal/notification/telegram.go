package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HostelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// sender is the part of *tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

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

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, property *domain.Property, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*New reservation* at %s\n\n"+"Dates: %s - %s (%d nights)\n"+"Guests: %d\n"+"Total: %.2f %s\n"+"Status: %s",
		property.Name,
		r.CheckIn, r.CheckOut, r.Nights(),
		r.NumberOfGuests,
		r.TotalPrice, r.Currency,
		r.Status,
	)
	n.send(ctx, property.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, property *domain.Property, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation cancelled* at %s\n\n"+"Dates: %s - %s\n"+"Guests: %d\n"+"Beds released: %d",
		property.Name,
		r.CheckIn, r.CheckOut,
		r.NumberOfGuests,
		len(r.AssignedBeds),
	)
	n.send(ctx, property.TelegramChatID, text)
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
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
