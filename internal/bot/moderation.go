package bot

import (
	"fmt"
	"strings"

	"github.com/AlekSi/pointer"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/frameslife/kadry_bot/internal/db"
)

const (
	approvedMarker = "✅ ОДОБРЕНО"
	rejectedMarker = "❌ ОТКЛОНЕНО"
)

// dispatchToModeration отправляет собранную заявку в чат модераторов.
// Неудача доставки не повторяется и не показывается пользователю,
// только логируется. Сессию удаляет вызывающий код в любом случае.
func (b *BotService) dispatchToModeration(from *tgbotapi.User, session *Session) {
	var username *string
	if from.UserName != "" {
		username = pointer.To(from.UserName)
	}

	sub := &db.Submission{
		TelegramUserID: session.UserID,
		Username:       username,
		PhoneModel:     session.PhoneModel,
		Location:       session.Location,
		Description:    session.Description,
		Tag:            session.Tag,
		PhotoFileID:    session.PhotoFileID,
	}

	// Заявка уходит модераторам даже без записи в БД: без строки
	// в submissions решение модератора будет отвергнуто как устаревшее.
	if err := b.submissions.Create(sub); err != nil {
		b.logger.Error().Err(err).Int64("user_id", session.UserID).Msg("cannot record submission")
	}

	photo := tgbotapi.NewPhoto(b.moderationChatID, tgbotapi.FileID(session.PhotoFileID))
	photo.Caption = moderationCaption(session, username)
	photo.ReplyMarkup = ModerationKeyboard(session.UserID)

	if _, err := b.api.Send(photo); err != nil {
		b.logger.Error().Err(err).Int64("user_id", session.UserID).Msg("moderation dispatch failed")
	}

	ack := tgbotapi.NewMessage(from.ID,
		"📨 Ваша заявка отправлена на модерацию!\n\n"+
			"Обычно проверка занимает от 1 до 24 часов. "+
			"Вы получите уведомление о результате.\n\n"+
			"Спасибо за участие! ✨")
	ack.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	b.send(ack)
}

func moderationCaption(session *Session, username *string) string {
	handle := "Без username"
	if username != nil {
		handle = "@" + *username
	}

	return fmt.Sprintf(
		"🆕 НОВАЯ ЗАЯВКА #%d\n\n👤 Автор: %s (ID: %d)\n📱 Телефон: %s\n📍 Локация: %s\n📝 Описание: %s\n🏷️ Тег: %s",
		session.UserID, handle, session.UserID,
		session.PhoneModel, session.Location, session.Description, session.Tag,
	)
}

// handleModerationDecision обрабатывает нажатие «Одобрить»/«Отклонить».
// Действует первое решение: если нерешенной заявки уже нет, модератор
// получает уведомление, а автору ничего не отправляется.
func (b *BotService) handleModerationDecision(query *tgbotapi.CallbackQuery) {
	userID, err := userIDFromCallback(query.Data)
	if err != nil {
		b.logger.Error().Err(err).Str("data", query.Data).Msg("bad decision callback")
		b.answerCallback(query.ID, "")
		return
	}

	approved := strings.HasPrefix(query.Data, approveDataPrefix)

	sub, err := b.submissions.GetLatestPending(userID)
	if err != nil {
		b.logger.Error().Err(err).Int64("user_id", userID).Msg("cannot load submission")
		b.answerCallback(query.ID, "Ошибка, попробуйте позже")
		return
	}

	if sub == nil {
		b.answerCallback(query.ID, "Заявка уже обработана")
		return
	}

	status := db.StatusRejected
	marker := rejectedMarker
	notification := "😔 К сожалению, ваше фото не подошло для публикации.\n\n" +
		"Это могло произойти по нескольким причинам:\n" +
		"• Не соответствует тематике канала\n" +
		"• Низкое качество изображения\n" +
		"• Нарушение правил\n\n" +
		"Не расстраивайтесь! Попробуйте отправить другую фотографию 📸"

	if approved {
		status = db.StatusApproved
		marker = approvedMarker
		notification = "🎉 Отличные новости! Ваше фото одобрено модераторами " +
			"и скоро будет опубликовано в канале «Кадры из жизни. Повседневная эстетика»!\n\n" +
			"Следите за публикациями! ✨\n\n" +
			"Хотите отправить еще одно фото? Просто пришлите его! 📸"
	}

	if err := b.submissions.Resolve(sub.ID, status); err != nil {
		b.logger.Error().Err(err).Int64("submission_id", sub.ID).Msg("cannot resolve submission")
		b.answerCallback(query.ID, "Ошибка, попробуйте позже")
		return
	}

	b.answerCallback(query.ID, "")

	// Уведомление автору не зависит от его текущей сессии.
	b.send(tgbotapi.NewMessage(userID, notification))

	if query.Message != nil {
		edit := tgbotapi.NewEditMessageCaption(
			query.Message.Chat.ID,
			query.Message.MessageID,
			marker+": "+query.Message.Caption,
		)
		b.send(edit)
	}

	if approved {
		if _, err := b.archive.ArchivePhoto(sub.PhotoFileID); err != nil {
			b.logger.Error().Err(err).Int64("submission_id", sub.ID).Msg("cannot archive photo")
		}
	}
}
