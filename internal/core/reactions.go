package core

type reactionKey struct {
	channel   string
	messageID string
}

// ReactionLedger tracks, per (channel, message), which identities reacted
// with which emoji. Reacting twice with the same emoji toggles the reaction
// off rather than incrementing.
type ReactionLedger struct {
	reactions map[reactionKey]map[string]map[string]struct{} // emoji -> set of visibleIds
}

// NewReactionLedger constructs an empty ledger.
func NewReactionLedger() *ReactionLedger {
	return &ReactionLedger{reactions: make(map[reactionKey]map[string]map[string]struct{})}
}

// Toggle flips the (emoji, identity) membership for a message. Returns true
// if the reaction is now present, false if it was removed.
func (rl *ReactionLedger) Toggle(channel, messageID, emoji, visibleID string) bool {
	key := reactionKey{channel: channel, messageID: messageID}
	byEmoji, ok := rl.reactions[key]
	if !ok {
		byEmoji = make(map[string]map[string]struct{})
		rl.reactions[key] = byEmoji
	}
	users, ok := byEmoji[emoji]
	if !ok {
		users = make(map[string]struct{})
		byEmoji[emoji] = users
	}
	if _, reacted := users[visibleID]; reacted {
		delete(users, visibleID)
		if len(users) == 0 {
			delete(byEmoji, emoji)
		}
		if len(byEmoji) == 0 {
			delete(rl.reactions, key)
		}
		return false
	}
	users[visibleID] = struct{}{}
	return true
}

// Tally returns the complete emoji -> count map for a message. Emojis whose
// reactor set drained to zero are omitted, so the map is always broadcastable
// as-is.
func (rl *ReactionLedger) Tally(channel, messageID string) map[string]int {
	tally := make(map[string]int)
	byEmoji := rl.reactions[reactionKey{channel: channel, messageID: messageID}]
	for emoji, users := range byEmoji {
		if len(users) > 0 {
			tally[emoji] = len(users)
		}
	}
	return tally
}
