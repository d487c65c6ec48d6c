package bot

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeMembers struct {
	status string
	err    error
	calls  int
}

func (f *fakeMembers) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	f.calls++
	if f.err != nil {
		return tgbotapi.ChatMember{}, f.err
	}

	return tgbotapi.ChatMember{Status: f.status}, nil
}

func TestSubscriptionGate_EligibleStatuses(t *testing.T) {
	for _, status := range []string{"member", "administrator", "creator"} {
		gate := NewSubscriptionGate(&fakeMembers{status: status}, "@kadry", zerolog.Nop())
		assert.True(t, gate.IsMember(42), status)
	}
}

func TestSubscriptionGate_IneligibleStatuses(t *testing.T) {
	for _, status := range []string{"left", "kicked", "restricted", ""} {
		gate := NewSubscriptionGate(&fakeMembers{status: status}, "@kadry", zerolog.Nop())
		assert.False(t, gate.IsMember(42), status)
	}
}

func TestSubscriptionGate_FailClosed(t *testing.T) {
	gate := NewSubscriptionGate(&fakeMembers{err: errors.New("api unreachable")}, "@kadry", zerolog.Nop())

	assert.False(t, gate.IsMember(42))
}

func TestSubscriptionGate_NoCaching(t *testing.T) {
	members := &fakeMembers{status: "member"}
	gate := NewSubscriptionGate(members, "@kadry", zerolog.Nop())

	assert.True(t, gate.IsMember(42))
	assert.True(t, gate.IsMember(42))
	assert.Equal(t, 2, members.calls)

	// Смена статуса видна сразу же, без кэша.
	members.status = "left"
	assert.False(t, gate.IsMember(42))
}
