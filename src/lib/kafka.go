package lib

import (
	"context"
	"log"
	"os"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

func GetKafkaProducerConfig(clientId string) *kafka.ConfigMap {
	return &kafka.ConfigMap{
		"bootstrap.servers": os.Getenv("KAFKA_BROKER"),
		"client.id":         clientId,
		"acks":              "all",
	}
}

// KafkaPublisher produces one message per event, keyed by the event id.
type KafkaPublisher struct {
	producer *kafka.Producer
}

func NewKafkaPublisher(clientId string) (*KafkaPublisher, error) {
	log.Printf("Broker: %s\n", os.Getenv("KAFKA_BROKER"))
	p, err := kafka.NewProducer(GetKafkaProducerConfig(clientId))
	if err != nil {
		log.Printf("Error on producer: %s\n", err.Error())
		return nil, err
	}
	return &KafkaPublisher{producer: p}, nil
}

// Publish waits for the delivery report so broker failures reach the caller.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, payload any) error {
	evt, value, err := EncodeEvent(topic, payload)
	if err != nil {
		return err
	}
	delivery := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(evt.ID),
		Value:          value,
	}, delivery)
	if err != nil {
		log.Printf("[kafka] Error producing to %s: %s\n", topic, err.Error())
		return err
	}
	select {
	case e := <-delivery:
		if m, ok := e.(*kafka.Message); ok && m.TopicPartition.Error != nil {
			log.Printf("[kafka] Delivery failed for %s: %s\n", topic, m.TopicPartition.Error.Error())
			return m.TopicPartition.Error
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *KafkaPublisher) Close() {
	p.producer.Flush(5000)
	p.producer.Close()
}
