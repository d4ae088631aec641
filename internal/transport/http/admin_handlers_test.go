package http

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/peerlink/relay/internal/proto"
)

func TestAdminChannelsAndUsers(t *testing.T) {
	ts := startTestServer(t)
	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "done")

	sendEvent(t, ctx, conn, proto.InboundTypeJoinChannel, proto.JoinChannelData{
		Channel: "lounge", VisibleID: "Ghost42", UserColor: "#f00",
	})
	// The userCount broadcast confirms the join landed.
	awaitOutbound(t, ctx, conn, proto.OutboundTypeUserCount, nil)

	resp, err := ts.Client().Get(ts.URL + "/admin/channels")
	if err != nil {
		t.Fatalf("admin channels: %v", err)
	}
	defer resp.Body.Close()

	var channels []ChannelInfo
	if err := json.NewDecoder(resp.Body).Decode(&channels); err != nil {
		t.Fatalf("decode channels: %v", err)
	}
	if len(channels) != 1 || channels[0].Name != "lounge" || channels[0].UserCount != 1 {
		t.Fatalf("unexpected channels: %+v", channels)
	}

	usersResp, err := ts.Client().Get(ts.URL + "/admin/users/lounge")
	if err != nil {
		t.Fatalf("admin users: %v", err)
	}
	defer usersResp.Body.Close()

	var users []proto.OnlineUser
	if err := json.NewDecoder(usersResp.Body).Decode(&users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 1 || users[0].VisibleID != "Ghost42" || users[0].RizzCount != 0 {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestAdminUsersUnknownChannelIsEmpty(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/admin/users/nowhere")
	if err != nil {
		t.Fatalf("admin users: %v", err)
	}
	defer resp.Body.Close()

	var users []proto.OnlineUser
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty list, got %+v", users)
	}
}
