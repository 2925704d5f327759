package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthyJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "empty input", raw: "", want: false},
		{name: "whitespace", raw: "  ", want: false},
		{name: "null", raw: "null", want: false},
		{name: "false", raw: "false", want: false},
		{name: "true", raw: "true", want: true},
		{name: "zero", raw: "0", want: false},
		{name: "non zero number", raw: "1.5", want: true},
		{name: "empty string", raw: `""`, want: false},
		{name: "string", raw: `"BUY"`, want: true},
		{name: "empty object", raw: "{}", want: true},
		{name: "empty array", raw: "[]", want: true},
		{name: "object", raw: `{"action":"SELL","size":2}`, want: true},
		{name: "invalid json", raw: "{", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTruthyJSON([]byte(tt.raw)))
		})
	}
}

func TestDecodeExactKeys(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantName  string
		wantCount int
		wantErr   bool
	}{
		{name: "exact keys", data: `{"name":"a","count":2}`, wantName: "a", wantCount: 2},
		{name: "case folded keys ignored", data: `{"NAME":"a","Count":2}`},
		{name: "exact key wins over folded duplicate", data: `{"name":"a","NAME":""}`, wantName: "a"},
		{name: "null value", data: `{"name":null}`},
		{name: "wrong type", data: `{"name":1}`, wantErr: true},
		{name: "not an object", data: `["name"]`, wantErr: true},
		{name: "malformed", data: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var name string
			var count int
			err := DecodeExactKeys([]byte(tt.data), map[string]interface{}{
				"name":  &name,
				"count": &count,
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}
