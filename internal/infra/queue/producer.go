package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/ligue-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-cursos/internal/usecase"
)

// Producer publica escalamientos en la cola del asesor. Implementa
// usecase.AdvisorNotifier: el envío real de email lo hace el Worker.
type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

func (p *Producer) NotifyAdvisor(ctx context.Context, n usecase.AdvisorNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return &usecase.TechnicalError{
			Code:    "QUEUE_MARSHAL_ERROR",
			Message: "error al serializar escalamiento: " + err.Error(),
		}
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensaje persistido en disco
		},
	)
	if err != nil {
		middleware.IntegrationErrors.WithLabelValues("rabbitmq").Inc()
		return &usecase.TechnicalError{
			Code:    "QUEUE_PUBLISH_ERROR",
			Message: "falla al publicar en RabbitMQ: " + err.Error(),
		}
	}

	middleware.EscalationsTotal.Inc()
	return nil
}
