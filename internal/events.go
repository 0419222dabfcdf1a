package internal

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/DrGermanius/shabfood/internal/model"
)

const StatusChangedExchange = "order_status_changed"

type StatusChangedEvent struct {
	OrderID   string            `json:"order_id"`
	Role      model.Role        `json:"role"`
	ActorID   string            `json:"actor_id"`
	From      model.OrderStatus `json:"from"`
	To        model.OrderStatus `json:"to"`
	Label     string            `json:"label"`
	ChangedAt time.Time         `json:"changed_at"`
}

func NewStatusChangedEvent(t model.TransitionRecord) StatusChangedEvent {
	return StatusChangedEvent{
		OrderID:   t.OrderID,
		Role:      t.Role,
		ActorID:   t.ActorID,
		From:      t.From,
		To:        t.To,
		Label:     model.DisplayOf(t.To).Label,
		ChangedAt: t.AppliedAt,
	}
}

//go:generate mockgen -destination=mock/events.go -package=mock_internal . IEventPublisher

type IEventPublisher interface {
	PublishStatusChanged(context.Context, StatusChangedEvent) error
	Close() error
}

type RabbitPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.SugaredLogger
}

func NewRabbitPublisher(url string, logger *zap.SugaredLogger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		StatusChangedExchange,
		"fanout",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &RabbitPublisher{conn: conn, channel: ch, logger: logger}, nil
}

func (p *RabbitPublisher) PublishStatusChanged(ctx context.Context, e StatusChangedEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		StatusChangedExchange, "", false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    e.ChangedAt,
			Body:         body,
		})
}

func (p *RabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Errorf("Close error: %s", err.Error())
	}
	return p.conn.Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishStatusChanged(context.Context, StatusChangedEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
