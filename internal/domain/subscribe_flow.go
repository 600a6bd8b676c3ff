package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/salesacademy/internal/domain/stations"
	"github.com/Vovarama1992/salesacademy/internal/models"
	"github.com/Vovarama1992/salesacademy/internal/ports"
)

type SubscribeState string

const (
	StateIdle               SubscribeState = "idle"
	StateRegistering        SubscribeState = "registering"
	StateRegistered         SubscribeState = "registered"
	StateRegistrationFailed SubscribeState = "registration_failed"
	StateSubscribing        SubscribeState = "subscribing"
	StateSubscribed         SubscribeState = "subscribed"
	StateSubscriptionFailed SubscribeState = "subscription_failed"
)

const (
	StatusRegistering        = "Registering..."
	StatusRegistered         = "Registered. Initiating subscription..."
	StatusRegisterFallback   = "Already registered or error"
	StatusError              = "Error"
	StatusSubscriptionFailed = "Subscription failed"
	StatusSubscribed         = "Subscription initiated"
	RedirectingSuffix        = " — redirecting"
)

var ErrSubscriptionFailed = errors.New("subscription failed")

// SubscribeFlow registers a member and then, with no further input, starts
// the subscription for the same email. Neither step is retried.
type SubscribeFlow struct {
	s1     *stations.S1Register
	s2     *stations.S2Subscribe
	opener ports.Opener
	log    *logger.ZapLogger

	name        string
	email       string
	provider    models.Provider
	state       SubscribeState
	status      string
	checkoutURL string
}

func NewSubscribeFlow(
	members ports.MembersAPI,
	subs ports.SubscriptionAPI,
	opener ports.Opener,
	log *logger.ZapLogger,
) *SubscribeFlow {
	f := &SubscribeFlow{
		s1:     stations.NewS1Register(members, log),
		s2:     stations.NewS2Subscribe(subs, log),
		opener: opener,
		log:    log,
	}
	f.Reset()
	return f
}

func (f *SubscribeFlow) Reset() {
	f.name = ""
	f.email = ""
	f.provider = models.ProviderStripe
	f.state = StateIdle
	f.status = ""
	f.checkoutURL = ""
}

func (f *SubscribeFlow) Name() string              { return f.name }
func (f *SubscribeFlow) Email() string             { return f.email }
func (f *SubscribeFlow) Provider() models.Provider { return f.provider }
func (f *SubscribeFlow) State() SubscribeState     { return f.state }
func (f *SubscribeFlow) Status() string            { return f.status }
func (f *SubscribeFlow) CheckoutURL() string       { return f.checkoutURL }

// Start runs register and then subscribe. The returned error only reports
// which step failed; the user-facing outcome is in Status.
func (f *SubscribeFlow) Start(ctx context.Context, name, email string, provider models.Provider) error {
	f.name = name
	f.email = email
	f.provider = provider

	f.state = StateRegistering
	f.status = StatusRegistering

	if err := f.s1.Run(ctx, name, email); err != nil {
		f.state = StateRegistrationFailed
		f.status = registrationStatus(err)
		return fmt.Errorf("register: %w", err)
	}

	f.state = StateRegistered
	f.status = StatusRegistered

	return f.startSubscription(ctx)
}

func (f *SubscribeFlow) startSubscription(ctx context.Context) error {
	f.state = StateSubscribing

	res, err := f.s2.Run(ctx, f.email, f.provider)
	if err != nil {
		f.state = StateSubscriptionFailed
		f.status = subscriptionStatus(err)
		return fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
	}

	f.state = StateSubscribed
	f.status = res.Message
	if f.status == "" {
		f.status = StatusSubscribed
	}

	if res.CheckoutURL != "" {
		f.status += RedirectingSuffix
		f.checkoutURL = res.CheckoutURL
		f.opener.Open(res.CheckoutURL)
	}
	return nil
}

func registrationStatus(err error) string {
	var apiErr *models.APIError
	if !errors.As(err, &apiErr) || !apiErr.BodyParsed {
		return StatusError
	}
	if apiErr.Detail != "" {
		return apiErr.Detail
	}
	return StatusRegisterFallback
}

func subscriptionStatus(err error) string {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Detail != "" {
			return apiErr.Detail
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return StatusSubscriptionFailed
}
