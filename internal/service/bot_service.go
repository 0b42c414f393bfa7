package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"plate-bot/internal/repository"
	"plate-bot/internal/utils"
)

const (
	MsgGreeting = "Привет! Отправьте номер телефона, который вы указывали в анкете, " +
		"после проверки можно будет искать владельцев по госномеру (например: А643ЕЕ77)."
	msgPhonePrompt = "Отправьте номер телефона, который вы указывали в анкете, " +
		"чтобы получить доступ к поиску."
	msgWelcome = "Телефон подтверждён. Отправьте госномер (например: А643ЕЕ77), " +
		"а я верну имя и телефон владельца."
	msgNotFound = "По этому номеру ничего не найдено. Проверьте формат."
)

// BotService is the per-message dispatcher: it decides whether an incoming
// text is a phone-verification attempt or a plate query and produces the
// reply, if any.
type BotService struct {
	registry *RegistryService
	auth     *repository.AuthState
	log      zerolog.Logger
}

func NewBotService(registry *RegistryService, auth *repository.AuthState, log zerolog.Logger) *BotService {
	return &BotService{
		registry: registry,
		auth:     auth,
		log:      log,
	}
}

// HandleText processes one message from one user. The second return value
// is false when the bot should keep silent (free-form chatter from an
// authorized user is deliberately not answered).
func (b *BotService) HandleText(userID int64, raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	if !b.auth.IsAuthorized(userID) {
		return b.handlePhoneSubmission(userID, text)
	}

	if text == "" {
		return "", false
	}

	normalized := utils.NormalizePlate(text)
	if normalized == "" || !utils.IsValidPlate(normalized) {
		// Not plate-shaped: let chatter pass without a spurious error.
		return "", false
	}

	rec, ok := b.registry.Lookup(normalized)
	if !ok {
		b.log.Debug().Int64("user_id", userID).Str("plate", normalized).Msg("plate not found")
		return msgNotFound, true
	}

	b.log.Info().Int64("user_id", userID).Str("plate", normalized).Msg("plate lookup hit")
	return fmt.Sprintf("Номер: %s\nВладелец: %s\nТелефон: %s",
		normalized, utils.MaskOwnerName(rec.Name), rec.Phone), true
}

// handlePhoneSubmission is the only path that mutates authorization state.
func (b *BotService) handlePhoneSubmission(userID int64, text string) (string, bool) {
	if !utils.LooksLikePhone(text) {
		return msgPhonePrompt, true
	}
	if !b.registry.HasPhone(utils.NormalizePhone(text)) {
		b.log.Debug().Int64("user_id", userID).Msg("phone not in dataset")
		return msgPhonePrompt, true
	}

	b.auth.Authorize(userID)
	b.log.Info().Int64("user_id", userID).Msg("user authorized by phone")
	return msgWelcome, true
}
