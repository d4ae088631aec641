package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventMessage carries a chat message to channel members, sender included.
	EventMessage EventKind = iota
	// EventUserJoined notifies a channel that an identity joined.
	EventUserJoined
	// EventUserLeft notifies a channel that an identity left.
	EventUserLeft
	// EventUserCount carries the channel's current membership size.
	EventUserCount
	// EventOnlineUsers carries the full presence snapshot for a channel.
	EventOnlineUsers
	// EventReactionUpdate carries the complete reaction tally for a message.
	EventReactionUpdate
	// EventTyping notifies a channel that an identity started typing.
	EventTyping
	// EventStopTyping notifies a channel that an identity stopped typing.
	EventStopTyping
	// EventRizzUpdate carries an identity's new reputation score.
	EventRizzUpdate
)

// PresenceInfo is one entry of the online-users snapshot.
type PresenceInfo struct {
	VisibleID string
	Color     string
	RizzCount int
}

// Event is sent to clients to describe what happened in the system.
// Fields beyond Kind and Channel are populated per kind.
type Event struct {
	Kind      EventKind
	Channel   string
	VisibleID string
	Color     string
	Count     int            // user count
	Users     []PresenceInfo // online users snapshot
	MessageID string         // reaction update
	Reactions map[string]int // full tally, zero-count emojis omitted
	RizzCount int            // rizz update
	Message   Message        // chat message
}
