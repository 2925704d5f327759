package dto

import (
	"trading-signal-api/pkg/utils"

	"gorm.io/datatypes"
)

type TradingSignalRequest struct {
	Signal        datatypes.JSON `json:"signal" validate:"json_truthy"`
	WalletAddress string         `json:"walletAddress" validate:"required"`
}

// UnmarshalJSON only accepts the exact "signal" and "walletAddress" keys.
func (r *TradingSignalRequest) UnmarshalJSON(data []byte) error {
	return utils.DecodeExactKeys(data, map[string]interface{}{
		"signal":        &r.Signal,
		"walletAddress": &r.WalletAddress,
	})
}
