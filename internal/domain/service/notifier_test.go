package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedMessage struct {
	channel string
	text    string
}

// newSlackAPI fakes chat.postMessage. Channels listed in failing get a
// channel_not_found error.
func newSlackAPI(t *testing.T, failing ...string) (*slack.Client, func() []postedMessage) {
	t.Helper()

	var (
		mu     sync.Mutex
		posted []postedMessage
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		channel := r.FormValue("channel")

		w.Header().Set("Content-Type", "application/json")
		for _, c := range failing {
			if c == channel {
				fmt.Fprint(w, `{"ok":false,"error":"channel_not_found"}`)
				return
			}
		}

		mu.Lock()
		posted = append(posted, postedMessage{channel: channel, text: r.FormValue("text")})
		mu.Unlock()
		fmt.Fprintf(w, `{"ok":true,"channel":%q,"ts":"1751245860.000100"}`, channel)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := slack.New("xoxb-test", slack.OptionAPIURL(server.URL+"/"))
	return client, func() []postedMessage {
		mu.Lock()
		defer mu.Unlock()
		return append([]postedMessage(nil), posted...)
	}
}

func TestSlackNotifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Should send a direct message to the user", func(t *testing.T) {
		client, posted := newSlackAPI(t)
		n := NewNotifier(client, "C-ATTENDANCE")

		require.NoError(t, n.PushToUser(ctx, "U1", "time to check out"))

		msgs := posted()
		require.Len(t, msgs, 1)
		assert.Equal(t, "U1", msgs[0].channel)
		assert.Equal(t, "time to check out", msgs[0].text)
	})

	t.Run("Should broadcast to the configured channel", func(t *testing.T) {
		client, posted := newSlackAPI(t)
		n := NewNotifier(client, "C-ATTENDANCE")

		require.NoError(t, n.Broadcast(ctx, "good morning"))

		msgs := posted()
		require.Len(t, msgs, 1)
		assert.Equal(t, "C-ATTENDANCE", msgs[0].channel)
	})

	t.Run("Should report Slack API errors", func(t *testing.T) {
		client, posted := newSlackAPI(t, "U404")
		n := NewNotifier(client, "C-ATTENDANCE")

		err := n.PushToUser(ctx, "U404", "hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "channel_not_found")
		assert.Empty(t, posted())
	})

	t.Run("Should refuse to broadcast without a channel", func(t *testing.T) {
		client, posted := newSlackAPI(t)
		n := NewNotifier(client, "")

		assert.ErrorIs(t, n.Broadcast(ctx, "good morning"), errNoBroadcastChannel)
		assert.Empty(t, posted())
	})
}
