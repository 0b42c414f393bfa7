package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"plate-bot/internal/service"
)

const (
	msgReloading    = "Обновляю данные из таблицы..."
	msgReloadFailed = "Ошибка при обновлении: %v"
	msgReloadDone   = "Готово. Строк: %d, номеров: %d, телефонов: %d."
)

// Poller drives the bot: it long-polls for updates and routes each
// message either to a command handler or to the lookup dispatcher.
type Poller struct {
	client   *Client
	bot      *service.BotService
	registry *service.RegistryService
	admins   map[int64]struct{}
	timeout  int
	log      zerolog.Logger
}

func NewPoller(client *Client, bot *service.BotService, registry *service.RegistryService, adminIDs []int64, pollTimeout int, log zerolog.Logger) *Poller {
	admins := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}
	return &Poller{
		client:   client,
		bot:      bot,
		registry: registry,
		admins:   admins,
		timeout:  pollTimeout,
		log:      log,
	}
}

// Run polls until ctx is cancelled. Poll errors are logged and retried
// after a short pause so a flaky network never kills the bot.
func (p *Poller) Run(ctx context.Context) error {
	p.log.Info().Int("poll_timeout", p.timeout).Msg("starting telegram poller")

	var offset int64
	for {
		updates, err := p.client.GetUpdates(ctx, offset, p.timeout)
		if err != nil {
			if ctx.Err() != nil {
				p.log.Info().Msg("telegram poller stopped")
				return ctx.Err()
			}
			p.log.Warn().Err(err).Msg("getUpdates failed, retrying")
			select {
			case <-time.After(3 * time.Second):
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= offset {
				offset = update.UpdateID + 1
			}
			p.handleUpdate(ctx, update)
		}
	}
}

func (p *Poller) handleUpdate(ctx context.Context, update Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case strings.HasPrefix(text, "/start"):
		p.reply(ctx, msg.Chat.ID, service.MsgGreeting)
	case strings.HasPrefix(text, "/reload") && p.isAdmin(msg.From.ID):
		p.handleReload(ctx, msg)
	default:
		reply, ok := p.bot.HandleText(msg.From.ID, msg.Text)
		if ok {
			p.reply(ctx, msg.Chat.ID, reply)
		}
	}
}

func (p *Poller) handleReload(ctx context.Context, msg *Message) {
	p.log.Info().Int64("user_id", msg.From.ID).Msg("reload requested via bot command")
	p.reply(ctx, msg.Chat.ID, msgReloading)

	result, err := p.registry.Reload(ctx)
	if err != nil {
		p.reply(ctx, msg.Chat.ID, fmt.Sprintf(msgReloadFailed, err))
		return
	}
	p.reply(ctx, msg.Chat.ID, fmt.Sprintf(msgReloadDone, result.Rows, result.Plates, result.Phones))
}

func (p *Poller) isAdmin(userID int64) bool {
	_, ok := p.admins[userID]
	return ok
}

func (p *Poller) reply(ctx context.Context, chatID int64, text string) {
	if err := p.client.SendMessage(ctx, chatID, text); err != nil {
		p.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
	}
}
