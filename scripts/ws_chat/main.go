package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/peerlink/relay/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_chat: %v", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", "ws://localhost:5000/ws", "WebSocket address")
	user := flag.String("user", "cli-user", "visible id")
	color := flag.String("color", "#7a5cff", "avatar color")
	channel := flag.String("channel", "general-chat", "channel to join")
	flag.Parse()

	baseCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(baseCtx)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	send := func(eventType string, data any) {
		payload, marshalErr := json.Marshal(data)
		if marshalErr != nil {
			log.Printf("marshal %s: %v", eventType, marshalErr)
			return
		}
		if writeErr := wsjson.Write(ctx, conn, proto.Inbound{Type: eventType, Data: payload}); writeErr != nil {
			cancel()
			log.Printf("send: %v", writeErr)
		}
	}

	send(proto.InboundTypeJoinChannel, proto.JoinChannelData{
		Channel:   *channel,
		VisibleID: *user,
		UserColor: *color,
	})

	fmt.Printf("Connected to %s as %s in channel %s\n", *addr, *user, *channel)
	fmt.Println("Type messages and press Enter to send. '/rizz <user>' gives rizz. Ctrl+C to exit.")

	go func() {
		defer cancel()
		readLoop(ctx, conn)
	}()

	writeLoop(ctx, *channel, *user, *color, send)

	stop()
	cancel()
	_ = conn.Close(websocket.StatusNormalClosure, "bye")
	return nil
}

func readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var outbound proto.Outbound
		if err := wsjson.Read(ctx, conn, &outbound); err != nil {
			// Treat expected shutdowns quietly.
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				return
			}
			log.Printf("read error: %v", err)
			return
		}

		raw, err := json.Marshal(outbound.Data)
		if err != nil {
			log.Printf("marshal outbound data: %v", err)
			continue
		}

		switch outbound.Type {
		case proto.OutboundTypeMessage:
			var evt proto.EventMessage
			if err := json.Unmarshal(raw, &evt); err != nil {
				log.Printf("unmarshal message: %v", err)
				continue
			}
			fmt.Printf("[%s] %s: %s\n", evt.Channel, evt.VisibleID, evt.Text)
		case proto.OutboundTypeUserJoined:
			var evt proto.EventUserJoined
			if err := json.Unmarshal(raw, &evt); err != nil {
				log.Printf("unmarshal userJoined: %v", err)
				continue
			}
			fmt.Printf("* %s joined\n", evt.VisibleID)
		case proto.OutboundTypeUserLeft:
			var evt proto.EventUserLeft
			if err := json.Unmarshal(raw, &evt); err != nil {
				log.Printf("unmarshal userLeft: %v", err)
				continue
			}
			fmt.Printf("* %s left\n", evt.VisibleID)
		case proto.OutboundTypeUserCount:
			fmt.Printf("* %v online\n", outbound.Data)
		case proto.OutboundTypeRizzUpdate:
			var evt proto.EventRizzUpdate
			if err := json.Unmarshal(raw, &evt); err != nil {
				log.Printf("unmarshal rizzUpdate: %v", err)
				continue
			}
			fmt.Printf("* %s now has %d rizz (%s)\n", evt.VisibleID, evt.RizzCount, evt.RizzTier)
		case proto.OutboundTypeTyping:
			var evt proto.EventTyping
			if err := json.Unmarshal(raw, &evt); err != nil {
				continue
			}
			fmt.Printf("* %s is typing...\n", evt.VisibleID)
		case proto.OutboundTypeOnlineUsersList, proto.OutboundTypeStopTyping, proto.OutboundTypeReactionUpdate:
			// Quiet in the CLI view.
		default:
			fmt.Printf("type=%s data=%v\n", outbound.Type, outbound.Data)
		}
	}
}

func writeLoop(ctx context.Context, channel, user, color string, send func(string, any)) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			text := strings.TrimSpace(line)
			if text == "" {
				continue
			}

			if target, found := strings.CutPrefix(text, "/rizz "); found {
				send(proto.InboundTypeGiveRizz, proto.GiveRizzData{
					TargetVisibleID: strings.TrimSpace(target),
					Channel:         channel,
				})
				continue
			}

			send(proto.InboundTypeMessage, proto.MessageData{
				Channel:   channel,
				VisibleID: user,
				UserColor: color,
				Text:      text,
			})
		}
	}
}
