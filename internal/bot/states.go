package bot

type Step string

const (
	StepAwaitingPhoneModel   Step = "awaiting_phone_model"
	StepAwaitingLocation     Step = "awaiting_location"
	StepAwaitingDescription  Step = "awaiting_description"
	StepAwaitingTag          Step = "awaiting_tag"
	StepAwaitingConfirmation Step = "awaiting_confirmation"
)

// Session хранит прогресс одной заявки. Живет только в памяти процесса:
// удаляется при отправке на модерацию или при перезапуске анкеты.
type Session struct {
	UserID      int64
	Step        Step
	PhotoFileID string
	PhoneModel  string
	Location    string
	Description string
	Tag         string
}

// AllowedTags - закрытый список тегов канала.
var AllowedTags = []string{
	"#городская_геометрия",
	"#уличное_настроение",
	"#природная_эстетика",
	"#интерьер_и_уют",
	"#ночная_магия",
	"#монохром",
}

func IsAllowedTag(tag string) bool {
	for _, t := range AllowedTags {
		if t == tag {
			return true
		}
	}

	return false
}
