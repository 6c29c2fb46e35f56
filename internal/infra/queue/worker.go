package queue

import (
	"encoding/json"
	"log"

	"github.com/xavierca1/ligue-cursos/internal/usecase"
)

// AdvisorMailer define el contrato del canal saliente hacia el asesor.
type AdvisorMailer interface {
	SendAdvisorNotification(to string, n usecase.AdvisorNotification) error
}

// Worker consume la cola de escalamientos y dispara el email al asesor.
// Un fallo hace Nack sin requeue: el mensaje cae a la DLQ y el
// reconciliador se encarga después.
type Worker struct {
	Queue        *RabbitMQ
	Mailer       AdvisorMailer
	AdvisorEmail string
}

func NewWorker(q *RabbitMQ, mailer AdvisorMailer, advisorEmail string) *Worker {
	return &Worker{Queue: q, Mailer: mailer, AdvisorEmail: advisorEmail}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Queue.Ch.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual es más seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Printf("❌ Worker: no se pudo consumir %s: %v", queueName, err)
		return
	}

	log.Printf("👷 Worker de escalamientos escuchando %s", queueName)

	for msg := range msgs {
		var n usecase.AdvisorNotification
		if err := json.Unmarshal(msg.Body, &n); err != nil {
			log.Printf("❌ Worker: payload ilegible, descartando: %v", err)
			msg.Nack(false, false) // a la DLQ
			continue
		}

		if err := w.Mailer.SendAdvisorNotification(w.AdvisorEmail, n); err != nil {
			log.Printf("❌ Worker: email al asesor falló para %s: %v", n.UserID, err)
			msg.Nack(false, false) // a la DLQ, el reconciliador reintenta
			continue
		}

		log.Printf("✅ Worker: asesor notificado del lead %s (score %d)", n.UserID, n.InterestScore)
		msg.Ack(false)
	}
}
