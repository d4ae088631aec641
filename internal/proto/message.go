package proto

import "encoding/json"

// Inbound is the envelope for events coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Outbound is the envelope for events sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

const (
	InboundTypeJoinChannel  = "joinChannel"
	InboundTypeLeaveChannel = "leaveChannel"
	InboundTypeMessage      = "message"
	InboundTypeAddReaction  = "addReaction"
	InboundTypeTyping       = "typing"
	InboundTypeStopTyping   = "stopTyping"
	InboundTypeGiveRizz     = "giveRizz"
	InboundTypeRequestRizz  = "requestRizz"

	OutboundTypeMessage         = "message"
	OutboundTypeUserJoined      = "userJoined"
	OutboundTypeUserLeft        = "userLeft"
	OutboundTypeUserCount       = "userCount"
	OutboundTypeOnlineUsersList = "onlineUsersList"
	OutboundTypeReactionUpdate  = "reactionUpdate"
	OutboundTypeTyping          = "typing"
	OutboundTypeStopTyping      = "stopTyping"
	OutboundTypeRizzUpdate      = "rizzUpdate"
)

// JoinChannelData requests to join a channel under a display identity.
type JoinChannelData struct {
	Channel   string `json:"channel"`
	VisibleID string `json:"visibleId"`
	UserColor string `json:"userColor"`
}

// LeaveChannelData requests an explicit leave.
type LeaveChannelData struct {
	Channel string `json:"channel"`
}

// MediaData is the upload descriptor attached to a message.
type MediaData struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
	Size int64  `json:"size"`
}

// StickerData is either a unicode emoji or a custom sticker image.
type StickerData struct {
	IsEmoji bool   `json:"isEmoji"`
	Emoji   string `json:"emoji,omitempty"`
	URL     string `json:"url,omitempty"`
}

// ReplyRefData quotes the message being replied to.
type ReplyRefData struct {
	ID        string `json:"id"`
	VisibleID string `json:"visibleId"`
	Text      string `json:"text"`
	Color     string `json:"color"`
}

// MessageData is a chat message from the client. Timestamp is unix
// milliseconds; zero means the server stamps its own.
type MessageData struct {
	Text      string        `json:"text,omitempty"`
	Media     *MediaData    `json:"media,omitempty"`
	Sticker   *StickerData  `json:"sticker,omitempty"`
	ReplyTo   *ReplyRefData `json:"replyTo,omitempty"`
	VisibleID string        `json:"visibleId"`
	UserColor string        `json:"userColor"`
	Channel   string        `json:"channel"`
	Timestamp int64         `json:"timestamp,omitempty"`
}

// AddReactionData toggles an emoji reaction on a message.
type AddReactionData struct {
	MessageID string `json:"messageId"`
	Emoji     string `json:"emoji"`
	VisibleID string `json:"visibleId"`
	Channel   string `json:"channel"`
}

// TypingData marks the sender as typing (or no longer typing).
type TypingData struct {
	VisibleID string `json:"visibleId"`
	Channel   string `json:"channel"`
}

// GiveRizzData grants one reputation point to another identity.
type GiveRizzData struct {
	TargetVisibleID string `json:"targetVisibleId"`
	Channel         string `json:"channel"`
}

// RequestRizzData asks for the sender's own current score.
type RequestRizzData struct {
	VisibleID string `json:"visibleId"`
}

// EventMessage is the broadcast form of a chat message.
type EventMessage struct {
	ID        string        `json:"id"`
	Text      string        `json:"text,omitempty"`
	Media     *MediaData    `json:"media,omitempty"`
	Sticker   *StickerData  `json:"sticker,omitempty"`
	ReplyTo   *ReplyRefData `json:"replyTo,omitempty"`
	VisibleID string        `json:"visibleId"`
	UserColor string        `json:"userColor"`
	Channel   string        `json:"channel"`
	Timestamp int64         `json:"timestamp"`
}

// EventUserJoined notifies a channel that an identity joined.
type EventUserJoined struct {
	VisibleID string `json:"visibleId"`
	UserColor string `json:"userColor,omitempty"`
}

// EventUserLeft notifies a channel that an identity left.
type EventUserLeft struct {
	VisibleID string `json:"visibleId"`
}

// OnlineUser is one entry of the presence snapshot.
type OnlineUser struct {
	VisibleID string `json:"visibleId"`
	UserColor string `json:"userColor"`
	RizzCount int    `json:"rizzCount"`
	RizzTier  string `json:"rizzTier,omitempty"`
}

// EventReactionUpdate carries the full recomputed tally for one message.
type EventReactionUpdate struct {
	MessageID string         `json:"messageId"`
	Reactions map[string]int `json:"reactions"`
}

// EventRizzUpdate carries an identity's new reputation score.
type EventRizzUpdate struct {
	VisibleID string `json:"visibleId"`
	RizzCount int    `json:"rizzCount"`
	RizzTier  string `json:"rizzTier,omitempty"`
}

// EventTyping names the identity whose typing state changed.
type EventTyping struct {
	VisibleID string `json:"visibleId"`
}
