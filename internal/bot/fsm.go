package bot

type EventKind int

const (
	EventPhoto EventKind = iota
	EventText
	EventTag
	EventConfirm
	EventRestart
)

type Event struct {
	Kind  EventKind
	Value string
}

type Outcome int

const (
	// OutcomeRejected: событие не подходит текущему шагу, сессия не изменена.
	OutcomeRejected Outcome = iota
	OutcomeAskPhoneModel
	OutcomeAskLocation
	OutcomeAskDescription
	OutcomeAskTag
	OutcomeAskConfirmation
	OutcomeDispatch
	OutcomeRestart
)

// Advance - чистая функция перехода анкеты: применяет событие к сессии
// (nil - анкета не начата) и возвращает новую сессию и исход.
// nil в результате означает, что сессия должна быть удалена.
// Исходная сессия не мутируется.
func Advance(s *Session, userID int64, ev Event) (*Session, Outcome) {
	// Новое фото перезапускает анкету из любого состояния.
	if ev.Kind == EventPhoto {
		return &Session{
			UserID:      userID,
			Step:        StepAwaitingPhoneModel,
			PhotoFileID: ev.Value,
		}, OutcomeAskPhoneModel
	}

	if s == nil {
		return nil, OutcomeRejected
	}

	next := *s

	switch s.Step {
	case StepAwaitingPhoneModel:
		if ev.Kind != EventText || ev.Value == "" {
			return s, OutcomeRejected
		}
		next.PhoneModel = ev.Value
		next.Step = StepAwaitingLocation
		return &next, OutcomeAskLocation

	case StepAwaitingLocation:
		if ev.Kind != EventText || ev.Value == "" {
			return s, OutcomeRejected
		}
		next.Location = ev.Value
		next.Step = StepAwaitingDescription
		return &next, OutcomeAskDescription

	case StepAwaitingDescription:
		if ev.Kind != EventText || ev.Value == "" {
			return s, OutcomeRejected
		}
		next.Description = ev.Value
		next.Step = StepAwaitingTag
		return &next, OutcomeAskTag

	case StepAwaitingTag:
		if ev.Kind != EventTag || !IsAllowedTag(ev.Value) {
			return s, OutcomeRejected
		}
		next.Tag = ev.Value
		next.Step = StepAwaitingConfirmation
		return &next, OutcomeAskConfirmation

	case StepAwaitingConfirmation:
		switch ev.Kind {
		case EventConfirm:
			return nil, OutcomeDispatch
		case EventRestart:
			return nil, OutcomeRestart
		}
		return s, OutcomeRejected
	}

	return s, OutcomeRejected
}
