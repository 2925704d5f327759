package dto

import "time"

// ISO8601Milli matches the millisecond precision UTC format used for timestamps.
const ISO8601Milli = "2006-01-02T15:04:05.000Z07:00"

type MarketSnapshot struct {
	Price     float64 `json:"price"`
	Liquidity float64 `json:"liquidity"`
	Volume    float64 `json:"volume"`
	Timestamp string  `json:"timestamp"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601Milli)
}
