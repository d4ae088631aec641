package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/peerlink/relay/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:5000/ws", "WebSocket address")
	user := flag.String("user", "smoke-tester", "visible id to join with")
	channel := flag.String("channel", "general-chat", "channel name")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(eventType string, data any) error {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", eventType, err)
		}
		if err := wsjson.Write(ctx, conn, proto.Inbound{Type: eventType, Data: payload}); err != nil {
			return fmt.Errorf("send %s: %w", eventType, err)
		}
		return nil
	}

	if err := send(proto.InboundTypeJoinChannel, proto.JoinChannelData{
		Channel:   *channel,
		VisibleID: *user,
		UserColor: "#4287f5",
	}); err != nil {
		return err
	}

	if err := send(proto.InboundTypeMessage, proto.MessageData{
		Channel:   *channel,
		VisibleID: *user,
		UserColor: "#4287f5",
		Text:      *text,
	}); err != nil {
		return err
	}

	if err := send(proto.InboundTypeRequestRizz, proto.RequestRizzData{VisibleID: *user}); err != nil {
		return err
	}

	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			return fmt.Errorf("read: %w", err)
		}

		fmt.Printf("Received outbound: type=%s data=%v\n", outbound.Type, outbound.Data)

		// The own-message echo closes the loop: join, broadcast, receive.
		if outbound.Type == proto.OutboundTypeMessage {
			fmt.Println("Smoke test passed: received own message echo")
			return nil
		}
	}
}
