package peer

import (
	"fmt"

	"github.com/merliot/touchdeck"
)

const (
	DefaultBroker = "tcp://localhost:1883"
	DefaultTopic  = "touchdeck/env"
)

// Config says where the sensor node publishes
type Config struct {
	Broker   string
	Topic    string
	ClientID string
}

// ConfigFromEnv reads TOUCHDECK_MQTT_BROKER and TOUCHDECK_MQTT_TOPIC,
// falling back to the defaults
func ConfigFromEnv(clientID string) Config {
	return Config{
		Broker:   touchdeck.GetEnv("TOUCHDECK_MQTT_BROKER", DefaultBroker),
		Topic:    touchdeck.GetEnv("TOUCHDECK_MQTT_TOPIC", DefaultTopic),
		ClientID: clientID,
	}
}

func (c Config) Validate() error {
	if c.Broker == "" {
		return fmt.Errorf("peer: no broker")
	}
	if c.Topic == "" {
		return fmt.Errorf("peer: no topic")
	}
	return nil
}

// Link is a running subscription feeding a Mailbox
type Link interface {
	Close()
}
