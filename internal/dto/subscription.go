package dto

import "trading-signal-api/pkg/utils"

type SubscriptionRequest struct {
	UserID     string `json:"userId" validate:"required"`
	SignalType string `json:"signalType" validate:"required"`
}

// UnmarshalJSON only accepts the exact "userId" and "signalType" keys.
func (r *SubscriptionRequest) UnmarshalJSON(data []byte) error {
	return utils.DecodeExactKeys(data, map[string]interface{}{
		"userId":     &r.UserID,
		"signalType": &r.SignalType,
	})
}

type SubscriptionDetails struct {
	UserID              string   `json:"userId"`
	ActiveSubscriptions []string `json:"activeSubscriptions"`
}
