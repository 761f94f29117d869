package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rentdesk/property-management-api/internal/mailer"
	"github.com/rentdesk/property-management-api/internal/service/queue"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

// NotifierWorker drains the notification queue and delivers emails.
type NotifierWorker struct {
	sqsService   *queue.SQSService
	mailer       mailer.Mailer
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewNotifierWorker(
	sqsService *queue.SQSService,
	mailer mailer.Mailer,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *NotifierWorker {
	return &NotifierWorker{
		sqsService:   sqsService,
		mailer:       mailer,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *NotifierWorker) Start() {
	w.logger.Info("Starting notifier workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *NotifierWorker) Stop() {
	w.logger.Info("Stopping notifier workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All notifier workers stopped")
}

func (w *NotifierWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *NotifierWorker) processMessages(ctx context.Context) error {
	queueURL := w.sqsService.NotificationQueueURL()

	messages, err := w.sqsService.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		// Only delete the message once delivery succeeded
		if err := w.sqsService.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *NotifierWorker) processMessage(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.MessageTypeEmail:
		if msg.Recipient == "" {
			return fmt.Errorf("empty recipient for EMAIL message")
		}
		w.logger.Infof("Sending email to %s: %s", msg.Recipient, msg.Subject)
		return w.mailer.Send(ctx, msg.Recipient, msg.Subject, msg.Body)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
