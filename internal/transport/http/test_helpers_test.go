package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/peerlink/relay/internal/config"
	"github.com/peerlink/relay/internal/core"
	"github.com/peerlink/relay/internal/proto"
	"github.com/peerlink/relay/internal/store/sqlite"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()

	hub := core.NewHub(&logger, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	server := NewServer(hub, st, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		UploadDir:         t.TempDir(),
		UploadMaxBytes:    1 << 20,
		TypingTTL:         time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func sendEvent(t *testing.T, ctx context.Context, conn *websocket.Conn, eventType string, data any) {
	t.Helper()

	payload, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s: %v", eventType, err)
	}
	if err := wsjson.Write(ctx, conn, proto.Inbound{Type: eventType, Data: payload}); err != nil {
		t.Fatalf("send %s: %v", eventType, err)
	}
}

// awaitOutbound reads frames until one of the wanted type arrives and
// unmarshals its data into out (when out is non-nil).
func awaitOutbound(t *testing.T, ctx context.Context, conn *websocket.Conn, wantType string, out any) {
	t.Helper()

	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			t.Fatalf("read while waiting for %s: %v", wantType, err)
		}
		if outbound.Type != wantType {
			continue
		}
		if out == nil {
			return
		}
		raw, err := json.Marshal(outbound.Data)
		if err != nil {
			t.Fatalf("remarshal %s: %v", wantType, err)
		}
		if err := json.Unmarshal(raw, out); err != nil {
			t.Fatalf("unmarshal %s: %v", wantType, err)
		}
		return
	}
}
