package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"wedgram-api/internal/config"
	guestdomain "wedgram-api/internal/domain/guest"
	"wedgram-api/internal/domain/notification"
	"wedgram-api/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// GuestBinder links an inbound /start to the matching guest row.
type GuestBinder interface {
	BindChat(ctx context.Context, username, chatID string) (*guestdomain.Guest, error)
}

// Notifier records an in-app notification for an inviter.
type Notifier interface {
	Notify(ctx context.Context, accountID, notifType, title, body string) (*notification.Notification, error)
}

// Bot is both the outbound invitation channel and the inbound /start listener.
type Bot struct {
	api         *tgbotapi.BotAPI
	guests      GuestBinder
	notifier    Notifier
	pollTimeout int
	log         logger.Logger
}

func New(cfg config.TelegramConfig, log logger.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}

	timeout := int(cfg.PollTimeout.Seconds())
	if timeout < 1 {
		timeout = 30
	}

	return &Bot{
		api:         api,
		pollTimeout: timeout,
		log:         log,
	}, nil
}

// AttachHandlers wires the inbound /start flow. The bot is constructed before
// the guest service (which needs it as the outbound channel), so the binder
// arrives afterwards and must be set before Run.
func (b *Bot) AttachHandlers(guests GuestBinder, notifier Notifier) {
	b.guests = guests
	b.notifier = notifier
}

func (b *Bot) SendInvitation(ctx context.Context, chatID, name, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: bad chat id %q: %w", chatID, err)
	}

	text := fmt.Sprintf(
		"Dear %s, you are invited to our wedding! 💍\n\nOpen your personal invitation and tell us whether you can make it:\n%s",
		name, link,
	)
	msg := tgbotapi.NewMessage(id, text)
	msg.DisableWebPagePreview = false

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

// Run consumes bot updates until the context is cancelled. Only the /start
// command is meaningful; everything else gets a short hint.
func (b *Bot) Run(ctx context.Context) {
	b.log.Info("telegram: bot started", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info("telegram: bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message
	if !msg.IsCommand() || msg.Command() != "start" {
		b.reply(msg.Chat.ID, "Send /start to link your invitation.")
		return
	}

	if b.guests == nil {
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	username := msg.From.UserName
	if username == "" {
		b.reply(msg.Chat.ID, "Please set a Telegram username in your settings so we can find your invitation, then send /start again.")
		return
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	g, err := b.guests.BindChat(ctx, username, chatID)
	if err != nil {
		if errors.Is(err, guestdomain.ErrGuestNotFound) {
			b.reply(msg.Chat.ID, "We could not find an invitation for your username. Ask the couple to check the guest list.")
			return
		}
		b.log.InternalError("telegram: bind chat failed", err, "username", username)
		b.reply(msg.Chat.ID, "Something went wrong, please try again later.")
		return
	}

	b.reply(msg.Chat.ID, fmt.Sprintf("Welcome, %s! 🎉 Your invitation is linked, watch this chat for updates.", g.Name))

	if b.notifier != nil {
		_, err := b.notifier.Notify(ctx, g.InviterID, notification.TypeGuestJoined,
			"Guest joined the bot",
			fmt.Sprintf("%s (@%s) connected to the invitation bot.", g.Name, g.TelegramUsername))
		if err != nil {
			b.log.InternalError("telegram: notify inviter failed", err, "guest_id", g.ID)
		}
	}
}

func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.log.BusinessError("telegram: reply failed", err, "chat_id", chatID)
	}
}
