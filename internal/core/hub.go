package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTypingTTL is how long a typing mark survives without renewal.
const DefaultTypingTTL = 3 * time.Second

type submission struct {
	client *Client
	cmd    *Command
}

type typingExpiry struct {
	channel   string
	visibleID string
	connID    string
	token     uint64
}

type channelsSnapshotReq struct {
	reply chan []ChannelInfo
}

type usersSnapshotReq struct {
	channel string
	reply   chan []PresenceInfo
}

// ChannelInfo is an admin-facing view of one active channel.
type ChannelInfo struct {
	Name      string
	UserCount int
}

// Hub is the event router: every inbound command from every connection is
// serialized through its single Run goroutine, which is the only mutator of
// the presence registry, channel index, typing tracker, reaction ledger, and
// rizz store. Handlers run to completion, so the stores need no locks; the
// one asynchronous input is the typing-expiry timer, which posts back into
// the same loop.
type Hub struct {
	log       *zerolog.Logger
	typingTTL time.Duration

	presence  *PresenceRegistry
	channels  *ChannelIndex
	typing    *TypingTracker
	reactions *ReactionLedger
	rizz      *RizzStore

	clients map[string]*Client

	register     chan *Client
	unregister   chan *Client
	submissions  chan submission
	expirations  chan typingExpiry
	channelsReqs chan channelsSnapshotReq
	usersReqs    chan usersSnapshotReq
	done         chan struct{}
}

// NewHub constructs a hub with empty stores. A zero typingTTL falls back to
// the default.
func NewHub(logger *zerolog.Logger, typingTTL time.Duration) *Hub {
	if typingTTL <= 0 {
		typingTTL = DefaultTypingTTL
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Hub{
		log:          logger,
		typingTTL:    typingTTL,
		presence:     NewPresenceRegistry(),
		channels:     NewChannelIndex(),
		typing:       NewTypingTracker(),
		reactions:    NewReactionLedger(),
		rizz:         NewRizzStore(),
		clients:      make(map[string]*Client),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		submissions:  make(chan submission),
		expirations:  make(chan typingExpiry),
		channelsReqs: make(chan channelsSnapshotReq),
		usersReqs:    make(chan usersSnapshotReq),
		done:         make(chan struct{}),
	}
}

// RegisterClient hands a connection to the hub. The hub reads the client's
// Commands channel until it is closed.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient runs the full disconnect cleanup for a connection. Safe
// to call more than once.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// ChannelsSnapshot returns all channels with at least one member. Served by
// the hub loop, so it is consistent with in-flight mutations.
func (h *Hub) ChannelsSnapshot() []ChannelInfo {
	req := channelsSnapshotReq{reply: make(chan []ChannelInfo, 1)}
	select {
	case h.channelsReqs <- req:
		return <-req.reply
	case <-h.done:
		return nil
	}
}

// UsersSnapshot returns the presence list for one channel.
func (h *Hub) UsersSnapshot(channel string) []PresenceInfo {
	req := usersSnapshotReq{channel: channel, reply: make(chan []PresenceInfo, 1)}
	select {
	case h.usersReqs <- req:
		return <-req.reply
	case <-h.done:
		return nil
	}
}

// Run processes hub inputs until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c.ID] = c
			go h.pump(ctx, c)
		case c := <-h.unregister:
			h.handleDisconnect(c)
		case sub := <-h.submissions:
			h.dispatch(sub.client, sub.cmd)
		case exp := <-h.expirations:
			h.handleTypingExpiry(exp)
		case req := <-h.channelsReqs:
			req.reply <- h.channelsSnapshot()
		case req := <-h.usersReqs:
			req.reply <- h.presenceList(req.channel)
		}
	}
}

// pump forwards one client's commands into the serialized loop.
func (h *Hub) pump(ctx context.Context, c *Client) {
	for cmd := range c.Commands {
		select {
		case h.submissions <- submission{client: c, cmd: cmd}:
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) dispatch(client *Client, cmd *Command) {
	if _, registered := h.clients[client.ID]; !registered {
		return
	}
	switch cmd.Kind {
	case CommandJoinChannel:
		h.handleJoin(client, cmd.Identity, cmd.Channel)
	case CommandLeaveChannel:
		h.handleLeave(client, cmd.Channel)
	case CommandSendMessage:
		h.handleMessage(cmd.Message)
	case CommandAddReaction:
		h.handleReaction(cmd.Channel, cmd.MessageID, cmd.Emoji, cmd.VisibleID)
	case CommandTyping:
		h.handleTyping(client, cmd.Channel, cmd.VisibleID)
	case CommandStopTyping:
		h.handleStopTyping(client, cmd.Channel, cmd.VisibleID)
	case CommandGiveRizz:
		h.handleGiveRizz(cmd.Channel, cmd.TargetID)
	case CommandRequestRizz:
		h.handleRequestRizz(client, cmd.VisibleID)
	}
}

// handleJoin runs the join protocol: implicit leave of the previous channel
// first, then membership, then notifications to the new channel.
func (h *Hub) handleJoin(client *Client, identity Identity, channel string) {
	if channel == "" || identity.VisibleID == "" {
		return
	}

	if _, prev, ok := h.presence.Lookup(client.ID); ok && prev != "" {
		h.leaveChannel(client, prev)
	}

	h.presence.Register(client.ID, identity, channel)
	h.channels.Join(channel, client.ID)

	h.broadcastExcept(channel, client.ID, &Event{
		Kind:      EventUserJoined,
		Channel:   channel,
		VisibleID: identity.VisibleID,
		Color:     identity.Color,
	})
	h.broadcastPresence(channel)

	h.log.Debug().Str("user", identity.VisibleID).Str("channel", channel).Msg("joined channel")
}

func (h *Hub) handleLeave(client *Client, channel string) {
	if channel == "" {
		return
	}
	h.leaveChannel(client, channel)

	// The connection stays registered but is no longer in any channel.
	if identity, prev, ok := h.presence.Lookup(client.ID); ok && prev == channel {
		h.presence.Register(client.ID, identity, "")
	}
}

// leaveChannel removes the connection from a channel and notifies the
// remaining members, in this order: membership removal, userLeft, then the
// updated count and presence snapshot. Unknown channels are a no-op.
func (h *Hub) leaveChannel(client *Client, channel string) {
	if h.channels.Count(channel) == 0 {
		return
	}

	identity, _, known := h.presence.Lookup(client.ID)
	h.channels.Leave(channel, client.ID)

	if known {
		h.typing.Stop(channel, identity.VisibleID)
		h.broadcast(channel, &Event{
			Kind:      EventUserLeft,
			Channel:   channel,
			VisibleID: identity.VisibleID,
		})
	}
	h.broadcastPresence(channel)
}

func (h *Hub) handleDisconnect(client *Client) {
	if current, ok := h.clients[client.ID]; !ok || current != client {
		return
	}
	if _, channel, ok := h.presence.Lookup(client.ID); ok && channel != "" {
		h.leaveChannel(client, channel)
	}
	h.presence.Unregister(client.ID)
	delete(h.clients, client.ID)
	close(client.Events)
}

// handleMessage validates, sanitizes, stamps, and fans out a chat message
// to every member of its channel, sender included. Malformed messages are
// dropped with no reply.
func (h *Hub) handleMessage(msg Message) {
	if msg.Channel == "" || !msg.HasContent() {
		return
	}

	msg.ID = uuid.NewString()
	msg.Text = SanitizeText(msg.Text)
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	h.broadcast(msg.Channel, &Event{
		Kind:    EventMessage,
		Channel: msg.Channel,
		Message: msg,
	})
}

// handleReaction toggles the reaction and broadcasts the complete recomputed
// tally, never a delta, so clients stay consistent despite missed events.
func (h *Hub) handleReaction(channel, messageID, emoji, visibleID string) {
	if channel == "" || messageID == "" || emoji == "" || visibleID == "" {
		return
	}
	h.reactions.Toggle(channel, messageID, emoji, visibleID)
	h.broadcast(channel, &Event{
		Kind:      EventReactionUpdate,
		Channel:   channel,
		MessageID: messageID,
		Reactions: h.reactions.Tally(channel, messageID),
	})
}

func (h *Hub) handleTyping(client *Client, channel, visibleID string) {
	if channel == "" || visibleID == "" {
		return
	}
	token, _ := h.typing.Touch(channel, visibleID)
	h.broadcastExcept(channel, client.ID, &Event{
		Kind:      EventTyping,
		Channel:   channel,
		VisibleID: visibleID,
	})
	h.scheduleTypingExpiry(typingExpiry{
		channel:   channel,
		visibleID: visibleID,
		connID:    client.ID,
		token:     token,
	})
}

func (h *Hub) scheduleTypingExpiry(exp typingExpiry) {
	time.AfterFunc(h.typingTTL, func() {
		select {
		case h.expirations <- exp:
		case <-h.done:
		}
	})
}

// handleTypingExpiry fires on the hub loop; the tracker only clears the
// mark when the token is still current, so a renewed typing event survives
// its predecessor's timer.
func (h *Hub) handleTypingExpiry(exp typingExpiry) {
	if !h.typing.Expire(exp.channel, exp.visibleID, exp.token) {
		return
	}
	h.broadcastExcept(exp.channel, exp.connID, &Event{
		Kind:      EventStopTyping,
		Channel:   exp.channel,
		VisibleID: exp.visibleID,
	})
}

func (h *Hub) handleStopTyping(client *Client, channel, visibleID string) {
	if channel == "" || visibleID == "" {
		return
	}
	if !h.typing.Stop(channel, visibleID) {
		return
	}
	h.broadcastExcept(channel, client.ID, &Event{
		Kind:      EventStopTyping,
		Channel:   channel,
		VisibleID: visibleID,
	})
}

// handleGiveRizz bumps the target's score and refreshes the channel's
// reputation badges with a full presence snapshot. Self-gifting is left to
// the client-side guard, mirroring the inherited behavior.
func (h *Hub) handleGiveRizz(channel, targetID string) {
	if channel == "" || targetID == "" {
		return
	}
	score := h.rizz.Give(targetID)
	h.broadcast(channel, &Event{
		Kind:      EventRizzUpdate,
		Channel:   channel,
		VisibleID: targetID,
		RizzCount: score,
	})
	h.broadcast(channel, &Event{
		Kind:    EventOnlineUsers,
		Channel: channel,
		Users:   h.presenceList(channel),
	})
}

// handleRequestRizz replies to the requesting connection only; it never
// mutates state.
func (h *Hub) handleRequestRizz(client *Client, visibleID string) {
	if visibleID == "" {
		return
	}
	h.sendTo(client, &Event{
		Kind:      EventRizzUpdate,
		VisibleID: visibleID,
		RizzCount: h.rizz.Score(visibleID),
	})
}

func (h *Hub) broadcast(channel string, ev *Event) {
	for _, connID := range h.channels.Members(channel) {
		h.sendTo(h.clients[connID], ev)
	}
}

func (h *Hub) broadcastExcept(channel, exceptConnID string, ev *Event) {
	for _, connID := range h.channels.Members(channel) {
		if connID == exceptConnID {
			continue
		}
		h.sendTo(h.clients[connID], ev)
	}
}

// broadcastPresence sends the membership size and the full presence
// snapshot to every member of a channel. Always complete state, never a
// delta: clients that missed an event resynchronize from these.
func (h *Hub) broadcastPresence(channel string) {
	h.broadcast(channel, &Event{
		Kind:    EventUserCount,
		Channel: channel,
		Count:   h.channels.Count(channel),
	})
	h.broadcast(channel, &Event{
		Kind:    EventOnlineUsers,
		Channel: channel,
		Users:   h.presenceList(channel),
	})
}

func (h *Hub) presenceList(channel string) []PresenceInfo {
	members := h.channels.Members(channel)
	users := make([]PresenceInfo, 0, len(members))
	for _, connID := range members {
		identity, _, ok := h.presence.Lookup(connID)
		if !ok {
			continue
		}
		users = append(users, PresenceInfo{
			VisibleID: identity.VisibleID,
			Color:     identity.Color,
			RizzCount: h.rizz.Score(identity.VisibleID),
		})
	}
	return users
}

func (h *Hub) channelsSnapshot() []ChannelInfo {
	names := h.channels.Channels()
	out := make([]ChannelInfo, 0, len(names))
	for _, name := range names {
		out = append(out, ChannelInfo{Name: name, UserCount: h.channels.Count(name)})
	}
	return out
}

// sendTo delivers an event with a non-blocking send; slow consumers lose
// events rather than stalling the loop.
func (h *Hub) sendTo(c *Client, ev *Event) {
	if c == nil {
		return
	}
	select {
	case c.Events <- ev:
	default:
	}
}
