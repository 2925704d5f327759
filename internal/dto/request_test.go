package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    SubscriptionRequest
		wantErr bool
	}{
		{
			name: "exact keys",
			body: `{"userId":"u1","signalType":"price-alert"}`,
			want: SubscriptionRequest{UserID: "u1", SignalType: "price-alert"},
		},
		{
			name: "upper case keys are not fields",
			body: `{"USERID":"u1","SIGNALTYPE":"price-alert"}`,
		},
		{
			name: "folded duplicate does not overwrite",
			body: `{"userId":"u1","signalType":"price-alert","userid":""}`,
			want: SubscriptionRequest{UserID: "u1", SignalType: "price-alert"},
		},
		{
			name:    "non string user id",
			body:    `{"userId":42,"signalType":"price-alert"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SubscriptionRequest
			err := json.Unmarshal([]byte(tt.body), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTradingSignalRequest_UnmarshalJSON(t *testing.T) {
	var req TradingSignalRequest
	require.NoError(t, json.Unmarshal([]byte(`{"SIGNAL":"BUY","WALLETADDRESS":"0xabc"}`), &req))
	assert.Empty(t, req.Signal)
	assert.Empty(t, req.WalletAddress)
	assert.Error(t, NewValidator().Struct(req))

	req = TradingSignalRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"signal":{"action":"BUY"},"walletAddress":"0xabc"}`), &req))
	assert.JSONEq(t, `{"action":"BUY"}`, string(req.Signal))
	assert.Equal(t, "0xabc", req.WalletAddress)
}
