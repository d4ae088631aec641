package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandJoinChannel subscribes the connection to a channel, implicitly
	// leaving its previous one.
	CommandJoinChannel CommandKind = iota
	// CommandLeaveChannel unsubscribes the connection from a channel.
	CommandLeaveChannel
	// CommandSendMessage delivers a chat message to channel members.
	CommandSendMessage
	// CommandAddReaction toggles an emoji reaction on a message.
	CommandAddReaction
	// CommandTyping marks the sender as typing in a channel.
	CommandTyping
	// CommandStopTyping clears the sender's typing state.
	CommandStopTyping
	// CommandGiveRizz grants one reputation point to another identity.
	CommandGiveRizz
	// CommandRequestRizz asks for the sender's own current score.
	CommandRequestRizz
)

// Command represents an action requested by a client. Fields beyond Kind
// are populated per kind; unset fields are ignored.
type Command struct {
	Kind      CommandKind
	Channel   string
	Identity  Identity // join
	Message   Message  // send message
	MessageID string   // reaction target
	Emoji     string   // reaction emoji
	VisibleID string   // typing, stopTyping, requestRizz
	TargetID  string   // giveRizz recipient
}
