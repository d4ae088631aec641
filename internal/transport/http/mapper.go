package http

import (
	"encoding/json"
	"time"

	"github.com/peerlink/relay/internal/core"
	"github.com/peerlink/relay/internal/proto"
)

// inboundToCommand maps a wire event onto a core command. A nil command
// with a nil error means the event is unknown or missing required fields
// and must be dropped silently (fire-and-forget semantics).
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinChannel:
		var join proto.JoinChannelData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, err
		}
		if join.Channel == "" || join.VisibleID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:    core.CommandJoinChannel,
			Channel: join.Channel,
			Identity: core.Identity{
				VisibleID: join.VisibleID,
				Color:     join.UserColor,
			},
		}, nil
	case proto.InboundTypeLeaveChannel:
		var leave proto.LeaveChannelData
		if err := json.Unmarshal(inbound.Data, &leave); err != nil {
			return nil, err
		}
		if leave.Channel == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:    core.CommandLeaveChannel,
			Channel: leave.Channel,
		}, nil
	case proto.InboundTypeMessage:
		var msg proto.MessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		if msg.Channel == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:    core.CommandSendMessage,
			Channel: msg.Channel,
			Message: messageFromData(msg),
		}, nil
	case proto.InboundTypeAddReaction:
		var react proto.AddReactionData
		if err := json.Unmarshal(inbound.Data, &react); err != nil {
			return nil, err
		}
		if react.Channel == "" || react.MessageID == "" || react.Emoji == "" || react.VisibleID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:      core.CommandAddReaction,
			Channel:   react.Channel,
			MessageID: react.MessageID,
			Emoji:     react.Emoji,
			VisibleID: react.VisibleID,
		}, nil
	case proto.InboundTypeTyping, proto.InboundTypeStopTyping:
		var typing proto.TypingData
		if err := json.Unmarshal(inbound.Data, &typing); err != nil {
			return nil, err
		}
		if typing.Channel == "" || typing.VisibleID == "" {
			return nil, nil
		}
		kind := core.CommandTyping
		if inbound.Type == proto.InboundTypeStopTyping {
			kind = core.CommandStopTyping
		}
		return &core.Command{
			Kind:      kind,
			Channel:   typing.Channel,
			VisibleID: typing.VisibleID,
		}, nil
	case proto.InboundTypeGiveRizz:
		var give proto.GiveRizzData
		if err := json.Unmarshal(inbound.Data, &give); err != nil {
			return nil, err
		}
		if give.Channel == "" || give.TargetVisibleID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:     core.CommandGiveRizz,
			Channel:  give.Channel,
			TargetID: give.TargetVisibleID,
		}, nil
	case proto.InboundTypeRequestRizz:
		var req proto.RequestRizzData
		if err := json.Unmarshal(inbound.Data, &req); err != nil {
			return nil, err
		}
		if req.VisibleID == "" {
			return nil, nil
		}
		return &core.Command{
			Kind:      core.CommandRequestRizz,
			VisibleID: req.VisibleID,
		}, nil
	default:
		return nil, nil
	}
}

func messageFromData(data proto.MessageData) core.Message {
	msg := core.Message{
		Channel:   data.Channel,
		VisibleID: data.VisibleID,
		Color:     data.UserColor,
		Text:      data.Text,
	}
	if data.Timestamp != 0 {
		msg.Timestamp = time.UnixMilli(data.Timestamp)
	}
	if data.Media != nil {
		msg.Media = &core.Media{
			URL:  data.Media.URL,
			Name: data.Media.Name,
			Type: data.Media.Type,
			Size: data.Media.Size,
		}
	}
	if data.Sticker != nil {
		msg.Sticker = &core.Sticker{
			IsEmoji: data.Sticker.IsEmoji,
			Emoji:   data.Sticker.Emoji,
			URL:     data.Sticker.URL,
		}
	}
	if data.ReplyTo != nil {
		msg.ReplyTo = &core.ReplyRef{
			ID:        data.ReplyTo.ID,
			VisibleID: data.ReplyTo.VisibleID,
			Text:      data.ReplyTo.Text,
			Color:     data.ReplyTo.Color,
		}
	}
	return msg
}

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: messageToData(event.Message),
		}
	case core.EventUserJoined:
		return proto.Outbound{
			Type: proto.OutboundTypeUserJoined,
			Data: proto.EventUserJoined{
				VisibleID: event.VisibleID,
				UserColor: event.Color,
			},
		}
	case core.EventUserLeft:
		return proto.Outbound{
			Type: proto.OutboundTypeUserLeft,
			Data: proto.EventUserLeft{VisibleID: event.VisibleID},
		}
	case core.EventUserCount:
		return proto.Outbound{
			Type: proto.OutboundTypeUserCount,
			Data: event.Count,
		}
	case core.EventOnlineUsers:
		return proto.Outbound{
			Type: proto.OutboundTypeOnlineUsersList,
			Data: onlineUsersToData(event.Users),
		}
	case core.EventReactionUpdate:
		return proto.Outbound{
			Type: proto.OutboundTypeReactionUpdate,
			Data: proto.EventReactionUpdate{
				MessageID: event.MessageID,
				Reactions: event.Reactions,
			},
		}
	case core.EventTyping:
		return proto.Outbound{
			Type: proto.OutboundTypeTyping,
			Data: proto.EventTyping{VisibleID: event.VisibleID},
		}
	case core.EventStopTyping:
		return proto.Outbound{
			Type: proto.OutboundTypeStopTyping,
			Data: proto.EventTyping{VisibleID: event.VisibleID},
		}
	case core.EventRizzUpdate:
		return proto.Outbound{
			Type: proto.OutboundTypeRizzUpdate,
			Data: proto.EventRizzUpdate{
				VisibleID: event.VisibleID,
				RizzCount: event.RizzCount,
				RizzTier:  string(core.TierFor(event.RizzCount)),
			},
		}
	default:
		return proto.Outbound{Type: "unknown"}
	}
}

func messageToData(msg core.Message) proto.EventMessage {
	out := proto.EventMessage{
		ID:        msg.ID,
		Text:      msg.Text,
		VisibleID: msg.VisibleID,
		UserColor: msg.Color,
		Channel:   msg.Channel,
		Timestamp: msg.Timestamp.UnixMilli(),
	}
	if msg.Media != nil {
		out.Media = &proto.MediaData{
			URL:  msg.Media.URL,
			Name: msg.Media.Name,
			Type: msg.Media.Type,
			Size: msg.Media.Size,
		}
	}
	if msg.Sticker != nil {
		out.Sticker = &proto.StickerData{
			IsEmoji: msg.Sticker.IsEmoji,
			Emoji:   msg.Sticker.Emoji,
			URL:     msg.Sticker.URL,
		}
	}
	if msg.ReplyTo != nil {
		out.ReplyTo = &proto.ReplyRefData{
			ID:        msg.ReplyTo.ID,
			VisibleID: msg.ReplyTo.VisibleID,
			Text:      msg.ReplyTo.Text,
			Color:     msg.ReplyTo.Color,
		}
	}
	return out
}

func onlineUsersToData(users []core.PresenceInfo) []proto.OnlineUser {
	out := make([]proto.OnlineUser, 0, len(users))
	for _, u := range users {
		out = append(out, proto.OnlineUser{
			VisibleID: u.VisibleID,
			UserColor: u.Color,
			RizzCount: u.RizzCount,
			RizzTier:  string(core.TierFor(u.RizzCount)),
		})
	}
	return out
}
