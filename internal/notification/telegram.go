package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/FacilityBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
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

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation, f *domain.Facility) {
	text := fmt.Sprintf(
		"*Заявка на бронирование создана*\n\n"+"Помещение: %s\n"+"Начало (время указано в UTC): %s\n"+"Окончание: %s\n"+"Заявка ожидает подтверждения администратором.",
		f.Name,
		r.StartAt.Format(timeLayout),
		r.EndAt.Format(timeLayout),
	)
	n.send(ctx, r.NotifyChatID, text)
}

func (n *TelegramNotifier) NotifyReservationApproved(ctx context.Context, r *domain.Reservation, f *domain.Facility) {
	text := fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"Помещение: %s\n"+"Начало (время указано в UTC): %s\n"+"Окончание: %s",
		f.Name,
		r.StartAt.Format(timeLayout),
		r.EndAt.Format(timeLayout),
	)
	n.send(ctx, r.NotifyChatID, text)
}

func (n *TelegramNotifier) NotifyReservationRejected(ctx context.Context, r *domain.Reservation, f *domain.Facility) {
	text := fmt.Sprintf(
		"*Бронирование отклонено*\n\n"+"Помещение: %s\n"+"Начало (время указано в UTC): %s",
		f.Name,
		r.StartAt.Format(timeLayout),
	)
	n.send(ctx, r.NotifyChatID, text)
}

func (n *TelegramNotifier) NotifyReservationExpired(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Заявка отклонена автоматически*\n\n"+"Начало брони (время указано в UTC): %s\n"+"Заявка не была подтверждена до начала брони.",
		r.StartAt.Format(timeLayout),
	)
	n.send(ctx, r.NotifyChatID, text)
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
