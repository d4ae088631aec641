package core

// TypingTracker holds the per-channel set of identities currently typing.
// Expiry is token-based: every typing event bumps the token for its
// (channel, visibleId) key, and a timer only clears the entry if its token
// is still current. A stale timer racing a renewed typing event therefore
// never wipes fresh state.
type TypingTracker struct {
	typing map[string]map[string]uint64 // channel -> visibleId -> token
}

// NewTypingTracker constructs an empty tracker.
func NewTypingTracker() *TypingTracker {
	return &TypingTracker{typing: make(map[string]map[string]uint64)}
}

// Touch marks an identity as typing in a channel and returns the token the
// caller must present at expiry, plus whether the identity was not already
// typing.
func (t *TypingTracker) Touch(channel, visibleID string) (token uint64, started bool) {
	users, ok := t.typing[channel]
	if !ok {
		users = make(map[string]uint64)
		t.typing[channel] = users
	}
	prev, active := users[visibleID]
	users[visibleID] = prev + 1
	return prev + 1, !active
}

// Expire clears the identity only if the token is still the latest one
// handed out by Touch. Returns true if the entry was removed.
func (t *TypingTracker) Expire(channel, visibleID string, token uint64) bool {
	users, ok := t.typing[channel]
	if !ok {
		return false
	}
	current, active := users[visibleID]
	if !active || current != token {
		return false
	}
	t.remove(channel, visibleID)
	return true
}

// Stop clears the identity unconditionally. Returns true if it was typing.
func (t *TypingTracker) Stop(channel, visibleID string) bool {
	users, ok := t.typing[channel]
	if !ok {
		return false
	}
	if _, active := users[visibleID]; !active {
		return false
	}
	t.remove(channel, visibleID)
	return true
}

func (t *TypingTracker) remove(channel, visibleID string) {
	users := t.typing[channel]
	delete(users, visibleID)
	if len(users) == 0 {
		delete(t.typing, channel)
	}
}
