package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/peerlink/relay/internal/core"
	"github.com/peerlink/relay/internal/proto"
)

func inbound(t *testing.T, eventType string, data any) proto.Inbound {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s: %v", eventType, err)
	}
	return proto.Inbound{Type: eventType, Data: raw}
}

func TestInboundToCommandJoin(t *testing.T) {
	cmd, err := inboundToCommand(inbound(t, proto.InboundTypeJoinChannel, proto.JoinChannelData{
		Channel:   "general-chat",
		VisibleID: "Ghost42",
		UserColor: "#f00",
	}))
	if err != nil || cmd == nil {
		t.Fatalf("expected command, got %v, %v", cmd, err)
	}
	if cmd.Kind != core.CommandJoinChannel || cmd.Channel != "general-chat" || cmd.Identity.VisibleID != "Ghost42" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestInboundToCommandDropsMalformed(t *testing.T) {
	tests := []struct {
		name      string
		eventType string
		data      any
	}{
		{"join without channel", proto.InboundTypeJoinChannel, proto.JoinChannelData{VisibleID: "x"}},
		{"join without visibleId", proto.InboundTypeJoinChannel, proto.JoinChannelData{Channel: "c"}},
		{"message without channel", proto.InboundTypeMessage, proto.MessageData{Text: "hi", VisibleID: "x"}},
		{"reaction without emoji", proto.InboundTypeAddReaction, proto.AddReactionData{MessageID: "m", VisibleID: "x", Channel: "c"}},
		{"typing without channel", proto.InboundTypeTyping, proto.TypingData{VisibleID: "x"}},
		{"giveRizz without target", proto.InboundTypeGiveRizz, proto.GiveRizzData{Channel: "c"}},
		{"requestRizz without visibleId", proto.InboundTypeRequestRizz, proto.RequestRizzData{}},
		{"unknown type", "selfDestruct", struct{}{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := inboundToCommand(inbound(t, tt.eventType, tt.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd != nil {
				t.Fatalf("expected drop, got %+v", cmd)
			}
		})
	}
}

func TestInboundToCommandMessagePayload(t *testing.T) {
	cmd, err := inboundToCommand(inbound(t, proto.InboundTypeMessage, proto.MessageData{
		Channel:   "general-chat",
		VisibleID: "Ghost42",
		UserColor: "#f00",
		Text:      "look at this",
		Timestamp: 1700000000000,
		Media: &proto.MediaData{
			URL: "/uploads/a.png", Name: "a.png", Type: "image", Size: 10,
		},
		ReplyTo: &proto.ReplyRefData{ID: "m9", VisibleID: "bob", Text: "original", Color: "#00f"},
		Sticker: &proto.StickerData{IsEmoji: true, Emoji: "🗿"},
	}))
	if err != nil || cmd == nil {
		t.Fatalf("expected command, got %v, %v", cmd, err)
	}
	msg := cmd.Message
	if msg.Media == nil || msg.Media.URL != "/uploads/a.png" {
		t.Fatalf("media not mapped: %+v", msg.Media)
	}
	if msg.Sticker == nil || !msg.Sticker.IsEmoji || msg.Sticker.Emoji != "🗿" {
		t.Fatalf("sticker not mapped: %+v", msg.Sticker)
	}
	if msg.ReplyTo == nil || msg.ReplyTo.ID != "m9" {
		t.Fatalf("replyTo not mapped: %+v", msg.ReplyTo)
	}
	if !msg.Timestamp.Equal(time.UnixMilli(1700000000000)) {
		t.Fatalf("timestamp not mapped: %v", msg.Timestamp)
	}
}

func TestOutboundFromEventRizzTier(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind:      core.EventRizzUpdate,
		VisibleID: "Ghost42",
		RizzCount: 42,
	})
	if out.Type != proto.OutboundTypeRizzUpdate {
		t.Fatalf("unexpected type %q", out.Type)
	}
	data, ok := out.Data.(proto.EventRizzUpdate)
	if !ok {
		t.Fatalf("unexpected data %T", out.Data)
	}
	if data.RizzCount != 42 || data.RizzTier != "gold" {
		t.Fatalf("unexpected payload: %+v", data)
	}
}

func TestOutboundFromEventUserCount(t *testing.T) {
	out := outboundFromEvent(&core.Event{Kind: core.EventUserCount, Count: 7})
	if out.Type != proto.OutboundTypeUserCount {
		t.Fatalf("unexpected type %q", out.Type)
	}
	if out.Data != 7 {
		t.Fatalf("unexpected data %v", out.Data)
	}
}

func TestOutboundFromEventOnlineUsers(t *testing.T) {
	out := outboundFromEvent(&core.Event{
		Kind: core.EventOnlineUsers,
		Users: []core.PresenceInfo{
			{VisibleID: "Ghost42", Color: "#f00", RizzCount: 3},
			{VisibleID: "SlayQueen7", Color: "#0f0", RizzCount: 120},
		},
	})
	users, ok := out.Data.([]proto.OnlineUser)
	if !ok {
		t.Fatalf("unexpected data %T", out.Data)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].RizzTier != "" {
		t.Fatalf("score 3 should carry no tier, got %q", users[0].RizzTier)
	}
	if users[1].RizzTier != "legendary" {
		t.Fatalf("score 120 should be legendary, got %q", users[1].RizzTier)
	}
}
