package aws

import (
	"alxtravel/src/lib"
	"context"
	"log"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the part of *sqs.Client the publisher uses.
type SQSAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher sends every event to a single queue. The topic travels as a
// message attribute.
type SQSPublisher struct {
	Name   string
	client SQSAPI

	mu       sync.Mutex
	queueUrl *string
}

func NewSQSPublisher(queue string, client SQSAPI) *SQSPublisher {
	return &SQSPublisher{Name: queue, client: client}
}

func (s *SQSPublisher) resolveQueueUrl(ctx context.Context) (*string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queueUrl != nil {
		return s.queueUrl, nil
	}
	qurl, err := s.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(s.Name),
	})
	if err != nil {
		log.Printf("Failed to retrieve queue URL for %s: %s\n", s.Name, err.Error())
		return nil, err
	}
	s.queueUrl = qurl.QueueUrl
	return s.queueUrl, nil
}

func (s *SQSPublisher) Publish(ctx context.Context, topic string, payload any) error {
	qurl, err := s.resolveQueueUrl(ctx)
	if err != nil {
		return err
	}
	evt, body, err := lib.EncodeEvent(topic, payload)
	if err != nil {
		return err
	}
	output, err := s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    qurl,
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"topic": {DataType: aws.String("String"), StringValue: aws.String(topic)},
		},
	})
	if err != nil {
		log.Printf("[SQS] Error sending event %s: %s\n", evt.ID, err.Error())
		return err
	}
	log.Printf("[SQS] Sent %s as message %s\n", topic, aws.ToString(output.MessageId))
	return nil
}
