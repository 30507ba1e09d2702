//go:build tinygo

package peer

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/merliot/touchdeck/tinynet"
	mqtt "github.com/soypat/natiu-mqtt"
)

type natiuLink struct {
	client *mqtt.Client
	conn   net.Conn
	done   chan struct{}
}

// Listen subscribes to cfg.Topic and feeds every packet into mb.  Packets
// are read by a goroutine into a fixed buffer.
func Listen(cfg Config, mb *Mailbox) (Link, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := tinynet.Ready(); err != nil {
		return nil, fmt.Errorf("peer: %w", err)
	}

	addr := strings.TrimPrefix(cfg.Broker, "tcp://")
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("peer: dial %s: %w", addr, err)
	}

	var buf [PacketSize + 1]byte
	client := mqtt.NewClient(mqtt.ClientConfig{
		Decoder: mqtt.DecoderNoAlloc{UserBuffer: make([]byte, 256)},
		OnPub: func(_ mqtt.Header, _ mqtt.VariablesPublish, r io.Reader) error {
			n, _ := io.ReadFull(r, buf[:])
			if !mb.Receive(buf[:n]) {
				fmt.Printf("Dropping %d byte packet\r\n", n)
			}
			return nil
		},
	})

	var varConn mqtt.VariablesConnect
	varConn.SetDefaultMQTT([]byte(cfg.ClientID))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Connect(ctx, conn, &varConn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("peer: connect %s: %w", addr, err)
	}

	err = client.Subscribe(ctx, mqtt.VariablesSubscribe{
		PacketIdentifier: 1,
		TopicFilters: []mqtt.SubscribeRequest{
			{TopicFilter: []byte(cfg.Topic), QoS: mqtt.QoS0},
		},
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("peer: subscribe %s: %w", cfg.Topic, err)
	}

	l := &natiuLink{client: client, conn: conn, done: make(chan struct{})}
	go l.run()
	return l, nil
}

func (l *natiuLink) run() {
	for {
		select {
		case <-l.done:
			return
		default:
		}
		if err := l.client.HandleNext(); err != nil {
			fmt.Printf("Peer link: %s\r\n", err)
			return
		}
	}
}

func (l *natiuLink) Close() {
	close(l.done)
	l.conn.Close()
}
