package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSession(step Step) *Session {
	return &Session{
		UserID:      42,
		Step:        step,
		PhotoFileID: "photo-1",
		PhoneModel:  "Pixel 7",
		Location:    "Park",
		Description: "Morning",
		Tag:         "#монохром",
	}
}

func TestAdvance_PhotoStartsFlow(t *testing.T) {
	next, outcome := Advance(nil, 42, Event{Kind: EventPhoto, Value: "photo-1"})

	require.NotNil(t, next)
	assert.Equal(t, OutcomeAskPhoneModel, outcome)
	assert.Equal(t, StepAwaitingPhoneModel, next.Step)
	assert.Equal(t, "photo-1", next.PhotoFileID)
	assert.Equal(t, int64(42), next.UserID)
}

func TestAdvance_PhotoRestartsMidFlow(t *testing.T) {
	s := fullSession(StepAwaitingTag)

	next, outcome := Advance(s, 42, Event{Kind: EventPhoto, Value: "photo-2"})

	require.NotNil(t, next)
	assert.Equal(t, OutcomeAskPhoneModel, outcome)
	assert.Equal(t, StepAwaitingPhoneModel, next.Step)
	assert.Equal(t, "photo-2", next.PhotoFileID)
	assert.Empty(t, next.PhoneModel)
	assert.Empty(t, next.Location)
	assert.Empty(t, next.Description)
	assert.Empty(t, next.Tag)
}

func TestAdvance_HappyPath(t *testing.T) {
	s, outcome := Advance(nil, 42, Event{Kind: EventPhoto, Value: "photo-1"})
	require.Equal(t, OutcomeAskPhoneModel, outcome)

	s, outcome = Advance(s, 42, Event{Kind: EventText, Value: "Pixel 7"})
	require.Equal(t, OutcomeAskLocation, outcome)
	assert.Equal(t, "Pixel 7", s.PhoneModel)

	s, outcome = Advance(s, 42, Event{Kind: EventText, Value: "Park"})
	require.Equal(t, OutcomeAskDescription, outcome)
	assert.Equal(t, "Park", s.Location)

	s, outcome = Advance(s, 42, Event{Kind: EventText, Value: "Morning"})
	require.Equal(t, OutcomeAskTag, outcome)
	assert.Equal(t, "Morning", s.Description)

	s, outcome = Advance(s, 42, Event{Kind: EventTag, Value: "#монохром"})
	require.Equal(t, OutcomeAskConfirmation, outcome)
	assert.Equal(t, "#монохром", s.Tag)

	s, outcome = Advance(s, 42, Event{Kind: EventConfirm})
	assert.Equal(t, OutcomeDispatch, outcome)
	assert.Nil(t, s)
}

func TestAdvance_Restart(t *testing.T) {
	s := fullSession(StepAwaitingConfirmation)

	next, outcome := Advance(s, 42, Event{Kind: EventRestart})

	assert.Equal(t, OutcomeRestart, outcome)
	assert.Nil(t, next)
}

func TestAdvance_MismatchLeavesSessionUnchanged(t *testing.T) {
	tests := []struct {
		name string
		step Step
		ev   Event
	}{
		{"text while awaiting tag", StepAwaitingTag, Event{Kind: EventText, Value: "hello"}},
		{"tag while awaiting phone model", StepAwaitingPhoneModel, Event{Kind: EventTag, Value: "#монохром"}},
		{"confirm before confirmation", StepAwaitingLocation, Event{Kind: EventConfirm}},
		{"text while awaiting confirmation", StepAwaitingConfirmation, Event{Kind: EventText, Value: "да"}},
		{"empty text", StepAwaitingPhoneModel, Event{Kind: EventText, Value: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fullSession(tt.step)
			before := *s

			next, outcome := Advance(s, 42, tt.ev)

			assert.Equal(t, OutcomeRejected, outcome)
			require.NotNil(t, next)
			assert.Equal(t, before, *next)
			assert.Equal(t, before, *s)
		})
	}
}

func TestAdvance_NoSessionRejectsEverythingButPhoto(t *testing.T) {
	events := []Event{
		{Kind: EventText, Value: "Pixel 7"},
		{Kind: EventTag, Value: "#монохром"},
		{Kind: EventConfirm},
		{Kind: EventRestart},
	}

	for _, ev := range events {
		next, outcome := Advance(nil, 42, ev)
		assert.Equal(t, OutcomeRejected, outcome)
		assert.Nil(t, next)
	}
}

func TestAdvance_UnknownTagRejected(t *testing.T) {
	s := fullSession(StepAwaitingTag)
	s.Tag = ""

	next, outcome := Advance(s, 42, Event{Kind: EventTag, Value: "#свой_тег"})

	assert.Equal(t, OutcomeRejected, outcome)
	assert.Empty(t, next.Tag)
}

func TestIsAllowedTag(t *testing.T) {
	for _, tag := range AllowedTags {
		assert.True(t, IsAllowedTag(tag), tag)
	}

	assert.False(t, IsAllowedTag("#монохром "))
	assert.False(t, IsAllowedTag(""))
}
