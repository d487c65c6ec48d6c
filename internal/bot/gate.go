package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

type chatMemberGetter interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// SubscriptionGate проверяет подписку пользователя на канал перед каждым
// действием. Недоступность API трактуется как "не подписан" (fail-closed).
type SubscriptionGate struct {
	api     chatMemberGetter
	channel string
	logger  zerolog.Logger
}

func NewSubscriptionGate(api chatMemberGetter, channel string, logger zerolog.Logger) *SubscriptionGate {
	return &SubscriptionGate{
		api:     api,
		channel: channel,
		logger:  logger,
	}
}

func (g *SubscriptionGate) IsMember(userID int64) bool {
	member, err := g.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: g.channel,
			UserID:             userID,
		},
	})
	if err != nil {
		g.logger.Error().Err(err).Int64("user_id", userID).Msg("subscription check failed")
		return false
	}

	switch member.Status {
	case "member", "administrator", "creator":
		return true
	}

	return false
}
