package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/attendance-reminder-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

var errNoBroadcastChannel = errors.New("no broadcast channel configured")

type slackNotifier struct {
	slackClient      contract.SlackClient
	broadcastChannel string
}

// NewNotifier sends personal reminders as direct messages from the bot and
// broadcasts to a single channel.
func NewNotifier(slackClient contract.SlackClient, broadcastChannel string) contract.Notifier {
	return &slackNotifier{
		slackClient:      slackClient,
		broadcastChannel: broadcastChannel,
	}
}

func (n *slackNotifier) PushToUser(ctx context.Context, userID, message string) error {
	// Posting to a user ID lands in the bot's DM with that user.
	if err := n.post(ctx, userID, message); err != nil {
		return fmt.Errorf("failed to message user %s: %w", userID, err)
	}
	return nil
}

func (n *slackNotifier) Broadcast(ctx context.Context, message string) error {
	if n.broadcastChannel == "" {
		return errNoBroadcastChannel
	}
	if err := n.post(ctx, n.broadcastChannel, message); err != nil {
		return fmt.Errorf("failed to broadcast to %s: %w", n.broadcastChannel, err)
	}
	return nil
}

func (n *slackNotifier) post(ctx context.Context, channelID, message string) error {
	_, _, err := n.slackClient.PostMessageContext(ctx, channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	return err
}
