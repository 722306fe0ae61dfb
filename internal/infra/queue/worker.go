package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
)

// ActivityRecorder grava o evento no feed de atividades.
type ActivityRecorder interface {
	Record(ctx context.Context, a *entity.Activity) error
}

// Consumer é o pedaço do canal AMQP que o worker usa.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel  Consumer
	Recorder ActivityRecorder
}

func NewWorker(ch Consumer, recorder ActivityRecorder) *Worker {
	return &Worker{
		Channel:  ch,
		Recorder: recorder,
	}
}

// Start consome a fila até o ctx acabar ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf("🐇 Worker aguardando eventos na fila '%s'", queueName)
	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Worker encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				log.Println("⚠️ Worker: canal de entregas fechado")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	if err := w.process(ctx, d.Body); err != nil {
		log.Printf("❌ Worker: evento rejeitado: %v", err)
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}

// process devolve erro só para mensagens que devem ir para a DLQ.
// Duplicatas (redelivery) são confirmadas normalmente.
func (w *Worker) process(ctx context.Context, body []byte) error {
	var event entity.Activity
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("json inválido: %w", err)
	}
	if event.EventID == "" || event.Kind == "" {
		return errors.New("evento sem event_id ou kind")
	}

	err := w.Recorder.Record(ctx, &event)
	if errors.Is(err, entity.ErrDuplicateActivity) {
		log.Printf("Worker: evento %s já registrado, ignorando", event.EventID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("falha ao registrar atividade %s: %w", event.EventID, err)
	}

	log.Printf("✅ Worker: %s registrado para o lead %s", event.Kind, event.LeadID)
	return nil
}
