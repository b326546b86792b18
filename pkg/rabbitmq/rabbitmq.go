package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"recipebox/internal/services"

	amqp "github.com/streadway/amqp"
)

// DefaultQueue carries catalog change notifications.
const DefaultQueue = "recipe_events"

// channel is the part of *amqp.Channel the client uses.
type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel channel
	queue   string
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string // defaults to DefaultQueue
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c, err := newClient(ch, cfg.Queue)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func newClient(ch channel, queue string) (*Client, error) {
	if queue == "" {
		queue = DefaultQueue
	}
	if _, err := declare(ch, queue); err != nil {
		return nil, err
	}
	log.Printf("RabbitMQ client connected and %s declared.", queue)
	return &Client{channel: ch, queue: queue}, nil
}

func declare(ch channel, queue string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return amqp.Queue{}, fmt.Errorf("failed to declare %s: %w", queue, err)
	}
	return q, nil
}

// Queue returns the name of the event queue.
func (c *Client) Queue() string {
	return c.queue
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// EventMessage is the JSON body of a published catalog event.
type EventMessage struct {
	Kind       string    `json:"kind"`
	RecipeID   string    `json:"recipeId,omitempty"`
	RecipeName string    `json:"recipeName,omitempty"`
	Category   string    `json:"category,omitempty"`
	IsFavorite bool      `json:"isFavorite"`
	Count      int       `json:"count"`
	At         time.Time `json:"at"`
}

// NewEventMessage summarizes e. The recipe itself is not sent.
func NewEventMessage(e services.Event) EventMessage {
	msg := EventMessage{
		Kind:  string(e.Kind),
		Count: e.Count,
		At:    e.At.UTC(),
	}
	if e.Kind != services.EventLoaded {
		msg.RecipeID = e.Recipe.ID.String()
		msg.RecipeName = e.Recipe.MainInformation.Name
		msg.Category = e.Recipe.MainInformation.Category.String()
		msg.IsFavorite = e.Recipe.IsFavorite
	}
	return msg
}

// NewPublishing builds the persistent AMQP message for e.
func NewPublishing(e services.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(NewEventMessage(e))
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal event to JSON: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         string(e.Kind),
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.At,
	}, nil
}

// PublishRecipeEvent publishes e to the event queue through the default exchange.
func (c *Client) PublishRecipeEvent(e services.Event) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msg, err := NewPublishing(e)
	if err != nil {
		return err
	}
	if err := c.channel.Publish("", c.queue, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf(" [x] Sent recipe event: %s", msg.Body)
	return nil
}

// ConsumeRecipeEvents starts a goroutine that hands every delivery on the
// event queue to messageHandler. A delivery is acked when the handler returns
// nil and dropped otherwise, since a malformed event will not improve on retry.
func (c *Client) ConsumeRecipeEvents(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declare(c.channel, c.queue)
	if err != nil {
		return fmt.Errorf("failed to declare queue for consuming: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for recipe events on %s", queue.Name)

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}

// DecodeEventMessage parses a delivery body published by PublishRecipeEvent.
func DecodeEventMessage(body []byte) (EventMessage, error) {
	var msg EventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return EventMessage{}, fmt.Errorf("failed to decode recipe event: %w", err)
	}
	if msg.Kind == "" {
		return EventMessage{}, fmt.Errorf("failed to decode recipe event: missing kind")
	}
	return msg, nil
}

// HandleRecipeMessage logs a catalog event received from the queue.
func HandleRecipeMessage(msg amqp.Delivery) error {
	event, err := DecodeEventMessage(msg.Body)
	if err != nil {
		return err
	}
	if event.RecipeID == "" {
		log.Printf("Recipe event %s: catalog holds %d recipes", event.Kind, event.Count)
		return nil
	}
	log.Printf("Recipe event %s: %q (%s), catalog holds %d recipes", event.Kind, event.RecipeName, event.RecipeID, event.Count)
	return nil
}
