//go:build !tinygo

package peer

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type pahoLink struct {
	client mqtt.Client
	topic  string
}

// Listen subscribes to cfg.Topic and feeds every packet into mb
func Listen(cfg Config, mb *Mailbox) (Link, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)

	handler := func(_ mqtt.Client, m mqtt.Message) {
		if !mb.Receive(m.Payload()) {
			fmt.Printf("Dropping %d byte packet on %s\r\n", len(m.Payload()), m.Topic())
		}
	}

	opts.OnConnect = func(c mqtt.Client) {
		// resubscribe after a reconnect
		if token := c.Subscribe(cfg.Topic, 0, handler); token.Wait() && token.Error() != nil {
			fmt.Printf("Subscribe %s failed: %s\r\n", cfg.Topic, token.Error())
		}
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		fmt.Printf("Lost %s: %s\r\n", cfg.Broker, err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("peer: connect %s: %w", cfg.Broker, token.Error())
	}

	return &pahoLink{client: client, topic: cfg.Topic}, nil
}

func (l *pahoLink) Close() {
	l.client.Unsubscribe(l.topic).WaitTimeout(time.Second)
	l.client.Disconnect(250)
}

// Publisher sends Env packets to a broker
type Publisher struct {
	client mqtt.Client
	topic  string
}

func NewPublisher(cfg Config) (*Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("peer: connect %s: %w", cfg.Broker, token.Error())
	}
	return &Publisher{client: client, topic: cfg.Topic}, nil
}

func (p *Publisher) Publish(e Env) error {
	token := p.client.Publish(p.topic, 0, false, e.Encode())
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("peer: publish to %s timed out", p.topic)
	}
	return token.Error()
}

func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
