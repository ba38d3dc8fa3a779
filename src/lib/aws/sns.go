package aws

import (
	"alxtravel/src/lib"
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher fans events out through one SNS topic. Subscribers filter on
// the "topic" message attribute.
type SNSPublisher struct {
	TopicArn string
	inner    SNSAPI
}

func NewSNSPublisher(topicArn string, client SNSAPI) *SNSPublisher {
	return &SNSPublisher{TopicArn: topicArn, inner: client}
}

func (s *SNSPublisher) Publish(ctx context.Context, topic string, payload any) error {
	evt, body, err := lib.EncodeEvent(topic, payload)
	if err != nil {
		return err
	}
	output, err := s.inner.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.TopicArn),
		Message:  aws.String(string(body)),
		Subject:  aws.String(topic),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"topic": {DataType: aws.String("String"), StringValue: aws.String(topic)},
		},
	})
	if err != nil {
		log.Printf("[SNS] Error publishing event %s: %s\n", evt.ID, err.Error())
		return err
	}
	log.Printf("[SNS] Published %s as message %s\n", topic, aws.ToString(output.MessageId))
	return nil
}
