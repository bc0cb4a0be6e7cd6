package webhooks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eventbook/eventbook-api/internal/interfaces"
	"github.com/eventbook/eventbook-api/internal/logger"
	"github.com/eventbook/eventbook-api/internal/types/business"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"
)

// Processor settles refunds from provider events delivered by SQS.
type Processor struct {
	settlement interfaces.RefundSettlementService
	logger     *zap.Logger
}

func NewProcessor(settlement interfaces.RefundSettlementService, l *zap.Logger) *Processor {
	return &Processor{
		settlement: settlement,
		logger:     logger.ForComponent(l, logger.ComponentWorker),
	}
}

// HandleSQSEvent reports failed records individually so SQS only redelivers
// those. Undecodable messages are reported too and end up in the DLQ.
func (p *Processor) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	timer := logger.NewTimer(p.logger, "process_refund_events")
	var response events.SQSEventResponse

	for _, record := range event.Records {
		if err := p.processRecord(ctx, record); err != nil {
			p.logger.Error("Failed to process provider event",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	p.logger.Info("Processed provider events",
		zap.Int("record_count", len(event.Records)),
		zap.Int("failed_count", len(response.BatchItemFailures)))
	timer.StopWithResult(nil)
	return response, nil
}

func (p *Processor) processRecord(ctx context.Context, record events.SQSMessage) error {
	var providerEvent business.ProviderEvent
	if err := json.Unmarshal([]byte(record.Body), &providerEvent); err != nil {
		return fmt.Errorf("failed to unmarshal provider event: %w", err)
	}

	if err := p.settlement.HandleProviderEvent(ctx, providerEvent); err != nil {
		return fmt.Errorf("failed to settle provider event %s: %w", providerEvent.ID, err)
	}
	return nil
}
