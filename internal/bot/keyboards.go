package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	confirmSubmitButton  = "✅ Да, отправить"
	confirmRestartButton = "🔄 Заполнить заново"

	checkSubscriptionData = "check_subscription"
	tagDataPrefix         = "tag_"
	approveDataPrefix     = "approve_"
	rejectDataPrefix      = "reject_"
)

func SubscribeKeyboard(channel string) tgbotapi.InlineKeyboardMarkup {
	channelURL := "https://t.me/" + strings.TrimPrefix(channel, "@")

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("📢 Подписаться на канал", channelURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я подписался", checkSubscriptionData),
		),
	)
}

func RecheckKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Я подписался", checkSubscriptionData),
		),
	)
}

func TagKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(AllowedTags))
	for _, tag := range AllowedTags {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tag, tagDataPrefix+tag),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func ConfirmKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(confirmSubmitButton),
			tgbotapi.NewKeyboardButton(confirmRestartButton),
		),
	)
	kb.ResizeKeyboard = true

	return kb
}

func ModerationKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	id := strconv.FormatInt(userID, 10)

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Одобрить", approveDataPrefix+id),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отклонить", rejectDataPrefix+id),
		),
	)
}

func tagFromCallback(data string) string {
	return strings.TrimPrefix(data, tagDataPrefix)
}

func userIDFromCallback(data string) (int64, error) {
	parts := strings.SplitN(data, "_", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed callback data %q", data)
	}

	return strconv.ParseInt(parts[1], 10, 64)
}
