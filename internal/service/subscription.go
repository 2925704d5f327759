package service

import (
	"context"
	"trading-signal-api/internal/dto"
	"trading-signal-api/pkg/logger"
	"trading-signal-api/pkg/metrics"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, req dto.SubscriptionRequest) error
	GetDetails(ctx context.Context, userID string) (*dto.SubscriptionDetails, error)
}

type subscriptionService struct {
	log     *logger.Logger
	metrics *metrics.Recorder
}

func NewSubscriptionService(log *logger.Logger, recorder *metrics.Recorder) SubscriptionService {
	return &subscriptionService{
		log:     log,
		metrics: recorder,
	}
}

// Subscribe acknowledges the subscription without storing it.
func (s *subscriptionService) Subscribe(ctx context.Context, req dto.SubscriptionRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "User subscribed to signals",
		logger.StringField("user_id", req.UserID),
		logger.StringField("signal_type", req.SignalType),
	)
	s.metrics.RecordSubscription(req.SignalType)
	return nil
}

// GetDetails echoes the user id with the default subscription list.
// TODO: read active subscriptions from postgres once a subscriptions table exists.
func (s *subscriptionService) GetDetails(ctx context.Context, userID string) (*dto.SubscriptionDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &dto.SubscriptionDetails{
		UserID:              userID,
		ActiveSubscriptions: dto.DefaultActiveSubscriptions(),
	}, nil
}
