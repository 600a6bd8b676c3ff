package domain

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

type CommunityBoard struct {
	api ports.MessageAPI
	log *logger.ZapLogger

	channel models.Channel
	email   string
	draft   string
	list    Collection[models.Message]
}

func NewCommunityBoard(api ports.MessageAPI, log *logger.ZapLogger) *CommunityBoard {
	b := &CommunityBoard{api: api, log: log}
	b.Reset()
	return b
}

func (b *CommunityBoard) Reset() {
	b.channel = models.ChannelGeneral
	b.email = ""
	b.draft = ""
	b.list.Reset()
}

func (b *CommunityBoard) Channel() models.Channel    { return b.channel }
func (b *CommunityBoard) Email() string              { return b.email }
func (b *CommunityBoard) Draft() string              { return b.draft }
func (b *CommunityBoard) Messages() []models.Message { return b.list.Items() }

func (b *CommunityBoard) SetEmail(email string) { b.email = email }
func (b *CommunityBoard) SetDraft(draft string) { b.draft = draft }

// Load replaces the list with the current channel's messages.
func (b *CommunityBoard) Load(ctx context.Context) error {
	channel := b.channel
	err := b.list.Refresh(ctx, func(ctx context.Context) ([]models.Message, error) {
		return b.api.ListMessages(ctx, channel)
	})
	if err != nil {
		logSwallowed(b.log, "messages load failed", err, map[string]any{"channel": channel})
	}
	return err
}

// SelectChannel switches channel and reloads. The draft is kept.
func (b *CommunityBoard) SelectChannel(ctx context.Context, channel models.Channel) error {
	b.channel = channel
	return b.Load(ctx)
}

// Post sends the message, clears the draft and reloads whether or not the
// create succeeded.
func (b *CommunityBoard) Post(ctx context.Context, email, content string) {
	b.email = email

	err := b.api.PostMessage(ctx, models.MessageInput{
		MemberEmail: email,
		Content:     content,
		Channel:     b.channel,
	})
	if err != nil {
		logSwallowed(b.log, "message post failed", err, map[string]any{"channel": b.channel})
	}

	b.draft = ""
	// перечитываем канал в любом случае
	_ = b.Load(ctx)
}
