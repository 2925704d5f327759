package dto

const (
	MsgInsufficientPredictionData = "Insufficient data for prediction"
	MsgPredictionFailed           = "Error processing the prediction request"

	MsgMarketDataFailed = "Error fetching real-time market data"

	MsgSignalRequired = "Signal and wallet address are required"
	MsgSignalFailed   = "Error sending trading signal"
	MsgSignalSent     = "Trading signal sent to wallet %s"

	MsgSubscriptionRequired = "User ID and signal type are required"
	MsgSubscriptionFailed   = "Error processing subscription"
	MsgSubscribed           = "User %s successfully subscribed to %s signals"

	MsgSubscriptionDetailsFailed = "Error fetching subscription details"
)

const (
	SubscriptionPricePrediction = "price prediction"
	SubscriptionLiquidityAlert  = "liquidity alert"
)

// DefaultActiveSubscriptions is returned for every user until subscriptions are stored.
func DefaultActiveSubscriptions() []string {
	return []string{
		SubscriptionPricePrediction,
		SubscriptionLiquidityAlert,
	}
}

const (
	DatabaseUp       = "up"
	DatabaseDown     = "down"
	DatabaseDisabled = "disabled"
)
