package ports

import (
	"context"

	"github.com/Vovarama1992/salesacademy/internal/models"
)

type MembersAPI interface {
	RegisterMember(ctx context.Context, req models.RegisterRequest) error
	// ListMembers is privileged: adminEmail travels as x-admin-email.
	ListMembers(ctx context.Context, adminEmail string) ([]models.Member, error)
}

type SubscriptionAPI interface {
	Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.SubscribeResult, error)
}

type VideoAPI interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
	CreateVideo(ctx context.Context, adminEmail string, v models.VideoInput) error
}

type MessageAPI interface {
	ListMessages(ctx context.Context, channel models.Channel) ([]models.Message, error)
	PostMessage(ctx context.Context, msg models.MessageInput) error
}

type ResourceAPI interface {
	ListResources(ctx context.Context) ([]models.Resource, error)
	CreateResource(ctx context.Context, adminEmail string, r models.ResourceInput) error
}

type AdminAPI interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Backend is the external API every section talks to.
type Backend interface {
	MembersAPI
	SubscriptionAPI
	VideoAPI
	MessageAPI
	ResourceAPI
	AdminAPI
}
