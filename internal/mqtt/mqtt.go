package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/clickaround/sadam-tools/internal/artifacts"
)

const timeout = 5 * time.Second

// Options holds broker connection settings.
type Options struct {
	Broker   string
	ClientID string
	QoS      byte
	Retain   bool
	Username string
	Password string
}

// Publish connects to the broker, publishes payload to topic, and
// disconnects. Each call uses a fresh connection; sadam runs once and exits.
func Publish(opts Options, topic string, payload []byte) error {
	if opts.QoS > 2 {
		return fmt.Errorf("mqtt: invalid qos %d", opts.QoS)
	}
	clientID := opts.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("sadam-%d", time.Now().UnixNano())
	}

	co := pahomqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout)
	if opts.Username != "" {
		co.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		co.SetPassword(opts.Password)
	}

	client := pahomqtt.NewClient(co)
	tok := client.Connect()
	if !tok.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: connect timeout")
	}
	if tok.Error() != nil {
		return fmt.Errorf("mqtt: connect: %w", tok.Error())
	}
	defer client.Disconnect(250)

	pub := client.Publish(topic, opts.QoS, opts.Retain, payload)
	if !pub.WaitTimeout(timeout) {
		return fmt.Errorf("mqtt: publish timeout")
	}
	if pub.Error() != nil {
		return fmt.Errorf("mqtt: publish: %w", pub.Error())
	}
	return nil
}

// Topic returns "<prefix>/<kind>" for an artifact.
func Topic(prefix string, kind artifacts.Kind) string {
	if prefix == "" {
		return string(kind)
	}
	return prefix + "/" + string(kind)
}

// Announce publishes a as JSON under prefix.
func Announce(opts Options, prefix string, a artifacts.Artifact) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("mqtt: encoding artifact: %w", err)
	}
	return Publish(opts, Topic(prefix, a.Kind), payload)
}
