package domain

import (
	"context"
	"sync"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"go.uber.org/zap"
)

func testLogger() *logger.ZapLogger {
	return logger.NewZapLogger(zap.NewNop().Sugar())
}

// fakeBackend records every call and answers with canned values.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	registerErr error

	subscribeReqs []models.SubscribeRequest
	subscribeRes  *models.SubscribeResult
	subscribeErr  error

	videos    []models.Video
	videosErr error

	messages    map[models.Channel][]models.Message
	messagesErr error
	messageReqs []models.Channel
	posted      []models.MessageInput
	postErr     error

	resources    []models.Resource
	resourcesErr error

	isAdmin    bool
	isAdminErr error

	members      []models.Member
	membersErr   error
	memberEmails []string
	videoInputs  []models.VideoInput
	videoErr     error
	resourceIns  []models.ResourceInput
	resourceErr  error
	adminHeaders []string
}

func (f *fakeBackend) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeBackend) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeBackend) RegisterMember(ctx context.Context, req models.RegisterRequest) error {
	f.record("register")
	return f.registerErr
}

func (f *fakeBackend) ListMembers(ctx context.Context, adminEmail string) ([]models.Member, error) {
	f.record("members")
	f.mu.Lock()
	f.memberEmails = append(f.memberEmails, adminEmail)
	f.mu.Unlock()
	return f.members, f.membersErr
}

func (f *fakeBackend) Subscribe(ctx context.Context, req models.SubscribeRequest) (*models.SubscribeResult, error) {
	f.record("subscribe")
	f.mu.Lock()
	f.subscribeReqs = append(f.subscribeReqs, req)
	f.mu.Unlock()
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	return f.subscribeRes, nil
}

func (f *fakeBackend) ListVideos(ctx context.Context) ([]models.Video, error) {
	f.record("videos")
	return f.videos, f.videosErr
}

func (f *fakeBackend) CreateVideo(ctx context.Context, adminEmail string, v models.VideoInput) error {
	f.record("video.create")
	f.mu.Lock()
	f.adminHeaders = append(f.adminHeaders, adminEmail)
	f.videoInputs = append(f.videoInputs, v)
	f.mu.Unlock()
	return f.videoErr
}

func (f *fakeBackend) ListMessages(ctx context.Context, channel models.Channel) ([]models.Message, error) {
	f.record("messages")
	f.mu.Lock()
	f.messageReqs = append(f.messageReqs, channel)
	f.mu.Unlock()
	if f.messagesErr != nil {
		return nil, f.messagesErr
	}
	return f.messages[channel], nil
}

func (f *fakeBackend) PostMessage(ctx context.Context, msg models.MessageInput) error {
	f.record("message.create")
	f.mu.Lock()
	f.posted = append(f.posted, msg)
	f.mu.Unlock()
	return f.postErr
}

func (f *fakeBackend) ListResources(ctx context.Context) ([]models.Resource, error) {
	f.record("resources")
	return f.resources, f.resourcesErr
}

func (f *fakeBackend) CreateResource(ctx context.Context, adminEmail string, r models.ResourceInput) error {
	f.record("resource.create")
	f.mu.Lock()
	f.adminHeaders = append(f.adminHeaders, adminEmail)
	f.resourceIns = append(f.resourceIns, r)
	f.mu.Unlock()
	return f.resourceErr
}

func (f *fakeBackend) IsAdmin(ctx context.Context, email string) (bool, error) {
	f.record("is_admin")
	return f.isAdmin, f.isAdminErr
}

type recordingOpener struct {
	urls []string
}

func (o *recordingOpener) Open(url string) {
	o.urls = append(o.urls, url)
}
