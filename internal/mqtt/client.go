package mqtt

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/diyk/TeslaClient/internal/config"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
)

// baseTopic is the root of everything this bridge publishes. Vehicles
// hang off it by VIN: tesla2mqtt/<vin>/state and so on.
const baseTopic = "tesla2mqtt"

// Client wraps the paho MQTT client with URL scheme handling, timeouts
// and the topic layout used by the bridge.
type Client struct {
	client   mqtt.Client
	clientID string
	logger   *logrus.Logger
}

// NewClient connects to the broker given by mqttURL. ws, wss, mqtt and
// mqtts schemes are supported; credentials are taken from the URL when
// present.
func NewClient(mqttURL, clientID string, logger *logrus.Logger) (*Client, error) {
	parsedURL, err := url.Parse(mqttURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MQTT URL: %w", err)
	}

	opts := mqtt.NewClientOptions()

	var brokerURL string
	switch parsedURL.Scheme {
	case "ws":
		brokerURL = mqttURL
		logger.Debug("Using WebSocket MQTT connection")
	case "wss":
		brokerURL = mqttURL
		logger.Debug("Using secure WebSocket MQTT connection")
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	case "mqtt":
		brokerURL = strings.Replace(mqttURL, "mqtt://", "tcp://", 1)
		logger.Debug("Using standard MQTT connection (TCP)")
	case "mqtts":
		brokerURL = strings.Replace(mqttURL, "mqtts://", "ssl://", 1)
		logger.Debug("Using secure MQTT connection (SSL/TLS)")
		// Self-signed broker certs are common on home setups.
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	default:
		return nil, fmt.Errorf("unsupported protocol scheme: %s (supported: ws, wss, mqtt, mqtts)", parsedURL.Scheme)
	}

	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(1 * time.Second)
	opts.SetConnectTimeout(5 * time.Second)
	opts.SetMaxReconnectInterval(10 * time.Second)

	// Mark the bridge unavailable if we vanish without a clean
	// disconnect, so Home Assistant grays the entities out.
	opts.SetWill(AvailabilityTopic(), "offline", 1, true)

	if parsedURL.User != nil {
		username := parsedURL.User.Username()
		password, _ := parsedURL.User.Password()
		opts.SetUsername(username)
		opts.SetPassword(password)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.WithError(err).Warn("MQTT connection lost")
	})

	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		logger.Debug("MQTT reconnecting...")
	})

	firstConnect := true
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		if firstConnect {
			logger.Debug("MQTT connected")
			firstConnect = false
		} else {
			logger.Info("MQTT reconnected")
		}
	})

	client := mqtt.NewClient(opts)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	logger.WithFields(logrus.Fields{
		"broker":    cleanURL(mqttURL),
		"protocol":  parsedURL.Scheme,
		"client_id": clientID,
	}).Info("MQTT client connected")

	return &Client{
		client:   client,
		clientID: clientID,
		logger:   logger,
	}, nil
}

// Publish publishes a message to the specified topic.
func (c *Client) Publish(topic string, payload []byte, retained bool) error {
	qos := byte(1) // at least once
	token := c.client.Publish(topic, qos, retained, payload)

	// Wait with a timeout instead of indefinitely so a dead broker
	// cannot wedge the caller.
	if !token.WaitTimeout(config.MQTTTimeout) {
		return fmt.Errorf("publish to topic %s timed out after %s", topic, config.MQTTTimeout)
	}
	if token.Error() != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, token.Error())
	}

	c.logger.WithFields(logrus.Fields{
		"topic":    topic,
		"size":     len(payload),
		"retained": retained,
	}).Debug("Published MQTT message")

	return nil
}

// MessageHandler receives the payload of each message published to a
// subscribed topic. Handlers run on the client's network goroutine and
// must not block.
type MessageHandler func(topic string, payload []byte)

// Subscribe subscribes to a topic with a message handler.
func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	qos := byte(1)
	token := c.client.Subscribe(topic, qos, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})

	if !token.WaitTimeout(config.MQTTTimeout) {
		return fmt.Errorf("subscribe to topic %s timed out after %s", topic, config.MQTTTimeout)
	}
	if token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, token.Error())
	}

	c.logger.WithField("topic", topic).Debug("Subscribed to MQTT topic")
	return nil
}

// IsConnected returns true if the client is connected.
func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}

// Disconnect disconnects the client.
func (c *Client) Disconnect(quiesce uint) {
	c.client.Disconnect(quiesce)
	c.logger.Debug("MQTT client disconnected")
}

// PublishAvailability publishes the bridge availability status.
func (c *Client) PublishAvailability(online bool) error {
	status := "offline"
	if online {
		status = "online"
	}
	return c.Publish(AvailabilityTopic(), []byte(status), true)
}

// cleanURL removes credentials from a URL for logging.
func cleanURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if parsed.User != nil {
		parsed.User = url.UserPassword("***", "***")
	}
	return parsed.String()
}

// AvailabilityTopic returns the bridge-wide availability topic.
func AvailabilityTopic() string {
	return fmt.Sprintf("%s/availability", baseTopic)
}

// StateTopic returns the state topic for one vehicle.
func StateTopic(vin string) string {
	return fmt.Sprintf("%s/%s/state", baseTopic, vin)
}

// ChargeSetTopic returns the topic that switches charging on and off.
func ChargeSetTopic(vin string) string {
	return fmt.Sprintf("%s/%s/charge/set", baseTopic, vin)
}

// ChargeLimitSetTopic returns the topic that sets the charge limit.
func ChargeLimitSetTopic(vin string) string {
	return fmt.Sprintf("%s/%s/charge_limit/set", baseTopic, vin)
}

// ChargeRangeSetTopic returns the topic that selects the charge profile.
func ChargeRangeSetTopic(vin string) string {
	return fmt.Sprintf("%s/%s/charge_range/set", baseTopic, vin)
}

// CommandResultTopic returns the topic command outcomes are reported on.
func CommandResultTopic(vin string) string {
	return fmt.Sprintf("%s/%s/charge/result", baseTopic, vin)
}

// DiscoveryTopic returns the Home Assistant discovery topic for one
// entity of one vehicle.
func DiscoveryTopic(prefix, component, vin, objectID string) string {
	return fmt.Sprintf("%s/%s/tesla_%s/%s/config", prefix, component, vin, objectID)
}
