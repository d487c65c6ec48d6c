package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/frameslife/kadry_bot/internal/db"
	"github.com/frameslife/kadry_bot/internal/files"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type submissionStore interface {
	Create(sub *db.Submission) error
	GetLatestPending(telegramUserID int64) (*db.Submission, error)
	Resolve(submissionID int64, newStatus string) error
}

type photoArchiver interface {
	ArchivePhoto(fileID string) (string, error)
}

type BotService struct {
	botAPI           *tgbotapi.BotAPI
	api              telegramSender
	gate             *SubscriptionGate
	sessions         *SessionStore
	submissions      submissionStore
	archive          photoArchiver
	channel          string
	moderationChatID int64
	logger           zerolog.Logger
}

func New(
	botAPI *tgbotapi.BotAPI,
	gate *SubscriptionGate,
	sessions *SessionStore,
	submissions *db.SubmissionRepository,
	archive *files.PhotoArchive,
	channel string,
	moderationChatID int64,
	logger zerolog.Logger,
) *BotService {
	return &BotService{
		botAPI:           botAPI,
		api:              botAPI,
		gate:             gate,
		sessions:         sessions,
		submissions:      submissions,
		archive:          archive,
		channel:          channel,
		moderationChatID: moderationChatID,
		logger:           logger,
	}
}

func (b *BotService) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.botAPI.GetUpdatesChan(u)

	for update := range updates {
		b.HandleUpdate(update)
	}
}

// HandleUpdate обрабатывает одно входящее обновление. Ошибки одного
// пользователя не должны ронять цикл: все они гасятся на месте.
func (b *BotService) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message

	switch {
	case msg.IsCommand() && msg.Command() == "start":
		b.handleStart(msg.From.ID, msg.Chat.ID)
	case len(msg.Photo) > 0:
		b.handlePhoto(msg)
	case msg.Text != "":
		b.handleText(msg)
	}
}

func (b *BotService) handleCallback(query *tgbotapi.CallbackQuery) {
	switch {
	case query.Data == checkSubscriptionData:
		b.answerCallback(query.ID, "")
		b.handleSubscriptionRecheck(query)
	case strings.HasPrefix(query.Data, tagDataPrefix):
		b.answerCallback(query.ID, "")
		b.handleTagSelection(query)
	case strings.HasPrefix(query.Data, approveDataPrefix), strings.HasPrefix(query.Data, rejectDataPrefix):
		b.handleModerationDecision(query)
	}
}

func (b *BotService) handleStart(userID, chatID int64) {
	if !b.gate.IsMember(userID) {
		b.sendSubscribeRequired(chatID)
		return
	}

	b.sendWelcome(chatID)
}

func (b *BotService) handlePhoto(msg *tgbotapi.Message) {
	userID := msg.From.ID

	if !b.gate.IsMember(userID) {
		b.sendSubscribeRequired(msg.Chat.ID)
		return
	}

	// Самый большой размер - последний в списке.
	fileID := msg.Photo[len(msg.Photo)-1].FileID

	next, _ := Advance(b.sessions.Get(userID), userID, Event{Kind: EventPhoto, Value: fileID})
	b.sessions.Put(userID, next)

	reply := tgbotapi.NewMessage(msg.Chat.ID,
		"📱 На какую модель телефона снято фото?\n\n"+
			"Примеры:\n"+
			"• iPhone 15 Pro Max\n"+
			"• Samsung Galaxy S23 Ultra\n"+
			"• Xiaomi Redmi Note 12\n"+
			"• Google Pixel 7\n\n"+
			"➡️ Напишите модель вашего смартфона:")
	b.send(reply)
}

func (b *BotService) handleText(msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if !b.gate.IsMember(userID) {
		b.sendSubscribeRequired(chatID)
		return
	}

	session := b.sessions.Get(userID)

	ev := Event{Kind: EventText, Value: msg.Text}
	if session != nil && session.Step == StepAwaitingConfirmation {
		switch msg.Text {
		case confirmSubmitButton:
			ev = Event{Kind: EventConfirm}
		case confirmRestartButton:
			ev = Event{Kind: EventRestart}
		}
	}

	next, outcome := Advance(session, userID, ev)

	switch outcome {
	case OutcomeAskLocation:
		b.sessions.Put(userID, next)
		b.send(tgbotapi.NewMessage(chatID,
			"📍 Где было сделано фото?\n\n"+
				"Напишите место съемки кратко:\n"+
				"• «Центральный парк, аллея у фонтана»\n"+
				"• «Тихий двор в центре города»\n"+
				"• «Набережная реки, вечер»"))

	case OutcomeAskDescription:
		b.sessions.Put(userID, next)
		b.send(tgbotapi.NewMessage(chatID,
			"📝 Опишите фото или ваше настроение:\n\n"+
				"Примеры:\n"+
				"• «Утро, первый снег, пустынные улицы»\n"+
				"• «Кофейня с панорамными окнами, чувство уюта»\n"+
				"• «Грусть осеннего дня»"))

	case OutcomeAskTag:
		b.sessions.Put(userID, next)
		reply := tgbotapi.NewMessage(chatID,
			"🏷️ Выберите основной тег для фото:\n\n"+
				"• #городская_геометрия - линии, архитектура, паттерны\n"+
				"• #уличное_настроение - эмоции, люди, моменты\n"+
				"• #природная_эстетика - парки, деревья, вода, небо\n"+
				"• #интерьер_и_уют - кафе, дома, детали\n"+
				"• #ночная_магия - вечер, огни, сумерки\n"+
				"• #монохром - черно-белые фото")
		reply.ReplyMarkup = TagKeyboard()
		b.send(reply)

	case OutcomeDispatch:
		b.dispatchToModeration(msg.From, session)
		b.sessions.Delete(userID)

	case OutcomeRestart:
		b.sessions.Delete(userID)
		reply := tgbotapi.NewMessage(chatID,
			"🔄 Хорошо, начнем заполнение заново!\n\n➡️ Просто отправьте ваше фото:")
		reply.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		b.send(reply)

	default:
		b.sendStepGuidance(chatID, session)
	}
}

func (b *BotService) handleTagSelection(query *tgbotapi.CallbackQuery) {
	// Кнопка под слишком старым сообщением приходит без Message.
	if query.Message == nil {
		return
	}

	userID := query.From.ID
	chatID := query.Message.Chat.ID

	session := b.sessions.Get(userID)
	tag := tagFromCallback(query.Data)

	next, outcome := Advance(session, userID, Event{Kind: EventTag, Value: tag})
	if outcome != OutcomeAskConfirmation {
		b.sendStepGuidance(chatID, session)
		return
	}

	b.sessions.Put(userID, next)

	summary := "✅ Отлично! Ваша заявка собрана:\n\n" +
		"📱 Телефон: " + next.PhoneModel + "\n" +
		"📍 Место: " + next.Location + "\n" +
		"📝 Описание: " + next.Description + "\n" +
		"🏷️ Тег: " + next.Tag + "\n\n" +
		"❓ Всё верно? Отправляем на модерацию?"

	reply := tgbotapi.NewMessage(chatID, summary)
	reply.ReplyMarkup = ConfirmKeyboard()
	b.send(reply)
}

func (b *BotService) handleSubscriptionRecheck(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}

	userID := query.From.ID
	chatID := query.Message.Chat.ID

	if !b.gate.IsMember(userID) {
		reply := tgbotapi.NewMessage(chatID,
			"❌ Вы еще не подписались на канал!\n\nПожалуйста, подпишитесь и нажмите кнопку еще раз.")
		reply.ReplyMarkup = RecheckKeyboard()
		b.send(reply)
		return
	}

	b.sendWelcome(chatID)
}

// sendStepGuidance подсказывает, какое действие ожидается на текущем шаге.
func (b *BotService) sendStepGuidance(chatID int64, session *Session) {
	if session == nil {
		b.send(tgbotapi.NewMessage(chatID, "📸 Отправьте фото чтобы начать!"))
		return
	}

	var text string
	switch session.Step {
	case StepAwaitingPhoneModel:
		text = "📱 Напишите модель вашего смартфона текстом:"
	case StepAwaitingLocation:
		text = "📍 Напишите место съемки текстом:"
	case StepAwaitingDescription:
		text = "📝 Опишите фото текстом:"
	case StepAwaitingTag:
		text = "🏷️ Выберите тег кнопкой под сообщением выше"
	case StepAwaitingConfirmation:
		text = "❓ Выберите «" + confirmSubmitButton + "» или «" + confirmRestartButton + "»"
	default:
		text = "📸 Отправьте фото чтобы начать!"
	}

	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *BotService) sendWelcome(chatID int64) {
	text := "📸 Добро пожаловать в бот «Кадры из жизни. Повседневная эстетика»!\n\n" +
		"Я помогу вам отправить ваше фото с прогулки на модерацию.\n\n" +
		"📋 Процесс простой:\n" +
		"1. Вы отправляете фото\n" +
		"2. Отвечаете на 4 коротких вопроса\n" +
		"3. Ваша заявка поступает к модераторам\n\n" +
		"🎯 Требования к фото:\n" +
		"• Снято на смартфон\n" +
		"• Соответствует эстетике канала\n" +
		"• Хорошее качество и композиция\n\n" +
		"➡️ Чтобы начать, просто отправьте ваше фото!"

	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *BotService) sendSubscribeRequired(chatID int64) {
	reply := tgbotapi.NewMessage(chatID,
		"❌ Для использования бота необходимо быть подписчиком нашего канала!\n\n"+
			"📢 «Кадры из жизни. Повседневная эстетика» - сообщество любителей мобильной фотографии.\n\n"+
			"👉 Подпишитесь на канал и нажмите «✅ Я подписался»")
	reply.ReplyMarkup = SubscribeKeyboard(b.channel)
	b.send(reply)
}

func (b *BotService) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		b.logger.Error().Err(err).Msg("send failed")
	}
}

func (b *BotService) answerCallback(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		b.logger.Error().Err(err).Msg("answer callback failed")
	}
}
