package contract

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient defines the interface for Slack operations
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	// GetUserInfoContext retrieves user information from Slack
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)

	// PostMessageContext sends a message to a Slack channel or, given a user ID, as a DM
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier pushes reminder messages out. Delivery is at-least-once.
type Notifier interface {
	PushToUser(ctx context.Context, userID, message string) error
	Broadcast(ctx context.Context, message string) error
}
