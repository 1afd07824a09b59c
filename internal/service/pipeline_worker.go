package service

import (
	"context"
	"encoding/json"

	"interview-eval-be/internal/dto"
	"interview-eval-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPipelineWorker interface {
	Run(ctx context.Context) error
}

// pipelineWorker drains the pipeline topic with a bounded pool so a burst of
// submissions cannot spawn unbounded evaluator calls.
type pipelineWorker struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	workerCount       int
	processingService IInterviewProcessingService
	log               logger.ILogger
}

func NewPipelineWorker(
	pubSub *gochannel.GoChannel,
	topicName string,
	workerCount int,
	processingService IInterviewProcessingService,
	log logger.ILogger,
) IPipelineWorker {
	if workerCount <= 0 {
		workerCount = 5
	}
	return &pipelineWorker{
		pubSub:            pubSub,
		topicName:         topicName,
		workerCount:       workerCount,
		processingService: processingService,
		log:               log,
	}
}

func (w *pipelineWorker) Run(ctx context.Context) error {
	messages, err := w.pubSub.Subscribe(ctx, w.topicName)
	if err != nil {
		return err
	}

	for i := 0; i < w.workerCount; i++ {
		go w.loop(ctx, messages)
	}

	w.log.Info("pipeline_worker", "worker pool started", map[string]interface{}{
		"topic":   w.topicName,
		"workers": w.workerCount,
	})
	return nil
}

func (w *pipelineWorker) loop(ctx context.Context, messages <-chan *message.Message) {
	for msg := range messages {
		w.processMessage(ctx, msg)
	}
}

func (w *pipelineWorker) processMessage(ctx context.Context, msg *message.Message) {
	// A panicking job must not take its worker goroutine down with it.
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("pipeline_worker", "recovered from panic in pipeline job", map[string]interface{}{
				"message_id": msg.UUID,
				"panic":      r,
			})
			msg.Ack()
		}
	}()

	var payload dto.PipelineJobPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		w.log.Error("pipeline_worker", "failed to unmarshal pipeline message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	w.processingService.Process(ctx, payload.JobId, &payload.Request)
	msg.Ack()
}
