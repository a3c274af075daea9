package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"org-roles-service/internal/config"
	"org-roles-service/internal/roles"
)

const topic = "org-members"

const (
	eventTypeRoleUpdate = "org-roles-service.member-role-update"
	eventTypeRemove     = "org-roles-service.member-remove"
)

type memberEvent struct {
	ID         string     `json:"id"`
	OrgID      string     `json:"orgId"`
	MemberID   string     `json:"memberId"`
	Role       string     `json:"role,omitempty"`
	ChangeType ChangeType `json:"changeType"`
	At         time.Time  `json:"at"`
}

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaNotifier) MemberRoleUpdate(ctx context.Context, orgID string, memberID string, role roles.Role) error {
	event := memberEvent{
		ID:         uuid.NewString(),
		OrgID:      orgID,
		MemberID:   memberID,
		Role:       string(role),
		ChangeType: ChangeTypeSet,
		At:         time.Now().UTC(),
	}

	if err := k.publishEvent(ctx, eventTypeRoleUpdate, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) MemberRemoved(ctx context.Context, orgID string, memberID string) error {
	event := memberEvent{
		ID:         uuid.NewString(),
		OrgID:      orgID,
		MemberID:   memberID,
		ChangeType: ChangeTypeRemove,
		At:         time.Now().UTC(),
	}

	if err := k.publishEvent(ctx, eventTypeRemove, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func (k *kafkaNotifier) publishEvent(ctx context.Context, eventType string, event memberEvent) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Key:     []byte(event.OrgID),
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Event-Type", Value: []byte(eventType)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
