// Package broker publica eventos de domínio no Kafka.
// A publicação é best effort: falha aqui não derruba a requisição que a originou.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/abastece/abastece-api/pkg/logger"
)

// Producer encapsula o writer Kafka com os parâmetros de entrega da aplicação.
type Producer struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewProducer cria o produtor para o tópico de pedidos.
func NewProducer(brokers []string, topic string, log *logger.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}
	return &Producer{writer: writer, log: log}
}

// Publish serializa o evento em JSON e o grava no tópico com a chave dada.
// Mensagens com a mesma chave (ID do pedido) preservam a ordem na partição.
func (p *Producer) Publish(ctx context.Context, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write kafka message: %w", err)
	}
	p.log.Debug().Str("key", key).Msg("evento publicado")
	return nil
}

// Close fecha o writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
