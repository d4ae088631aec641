package core

// Client is a live connection as seen by the core layer. Identity is not
// carried here: it is supplied on every join and tracked by the presence
// registry, so a client has no display name until its first joinChannel.
type Client struct {
	ID       string
	Commands chan *Command
	Events   chan *Event
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 8),
	}
}
