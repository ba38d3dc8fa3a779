package boot

import (
	"alxtravel/src/common"
	"alxtravel/src/config"
	"alxtravel/src/db"
	"alxtravel/src/lib"
	libaws "alxtravel/src/lib/aws"
	"alxtravel/src/utils"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"
)

const (
	EVENTS_LOG   = "log"
	EVENTS_REDIS = "redis"
	EVENTS_KAFKA = "kafka"
	EVENTS_SQS   = "sqs"
	EVENTS_SNS   = "sns"
)

func InitDb() *gorm.DB {
	db := db.GetDb()
	if err := MigrateDb(db); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	return db
}

func MigrateDb(gormDB *gorm.DB) error {
	return db.Migrate(gormDB)
}

// InitPublisher builds the event publisher named by backend. Any failure
// falls back to logging events so that writes never depend on a broker.
func InitPublisher(ctx context.Context, backend string) common.Publisher {
	p, err := newPublisher(ctx, backend)
	if err != nil {
		log.Printf("Error initializing %s publisher, logging events instead: %s\n", backend, err.Error())
		return lib.NewLogPublisher(nil)
	}
	log.Printf("Publishing events with %s\n", backend)
	return p
}

func newPublisher(ctx context.Context, backend string) (common.Publisher, error) {
	switch backend {
	case EVENTS_LOG, "":
		return lib.NewLogPublisher(nil), nil
	case EVENTS_REDIS:
		client := lib.GetRedisClient()
		if client == nil {
			return nil, fmt.Errorf("redis client unavailable")
		}
		return lib.NewRedisPublisher(client), nil
	case EVENTS_KAFKA:
		return lib.NewKafkaPublisher("alxtravel-api")
	case EVENTS_SQS:
		client, err := lib.AWSGetSQSClient(ctx)
		if err != nil {
			return nil, err
		}
		return libaws.NewSQSPublisher(config.GetEnv("EVENTS_QUEUE", "alxtravel-events"), client), nil
	case EVENTS_SNS:
		topicArn := os.Getenv("EVENTS_TOPIC_ARN")
		if topicArn == "" {
			return nil, fmt.Errorf("EVENTS_TOPIC_ARN is not set")
		}
		client, err := lib.AWSGetSNSClient(ctx)
		if err != nil {
			return nil, err
		}
		return libaws.NewSNSPublisher(topicArn, client), nil
	}
	return nil, fmt.Errorf("unknown events backend %q", backend)
}

// SweepLapsedBookings cancels pending bookings whose check-in already passed.
func SweepLapsedBookings(svc *common.Service) {
	today := utils.Today()
	n, err := svc.CancelLapsedBookings(context.Background(), today)
	if err != nil {
		log.Printf("Error while processing lapsed bookings: %s\n", err.Error())
		return
	}
	if n > 0 {
		log.Printf("Canceled %d lapsed bookings\n", n)
	}
}

func InitScheduler(svc *common.Service, interval time.Duration) {
	if interval <= 0 {
		log.Println("Lapsed booking sweeper disabled")
		return
	}
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	if _, err := lib.CreateCronJob("lapsed-bookings", interval, SweepLapsedBookings, svc); err != nil {
		log.Printf("Error running job: %s\n", err.Error())
		return
	}
	log.Println("Jobs in queue:", len(sched.Jobs()))
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
