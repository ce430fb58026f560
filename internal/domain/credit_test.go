package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditFromUnits(t *testing.T) {
	assert.Equal(t, Credit(5), CreditFromUnits(0, 5))
	assert.Equal(t, Credit(100), CreditFromUnits(1, 0))
	assert.Equal(t, Credit(1234), CreditFromUnits(12, 34))
}

func TestCreditString(t *testing.T) {
	tests := []struct {
		name     string
		credit   Credit
		expected string
	}{
		{"zero", Credit(0), "0.00"},
		{"single click credit", Credit(5), "0.05"},
		{"tenths", Credit(10), "0.10"},
		{"whole units", Credit(100), "1.00"},
		{"mixed", Credit(1234), "12.34"},
		{"negative", Credit(-205), "-2.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.credit.String())
		})
	}
}

func TestCreditMarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Credit{"earnings": 15})
	require.NoError(t, err)
	assert.JSONEq(t, `{"earnings":0.15}`, string(data))
}

func TestCreditUnmarshalJSON(t *testing.T) {
	var c Credit
	require.NoError(t, json.Unmarshal([]byte(`0.05`), &c))
	assert.Equal(t, Credit(5), c)

	require.NoError(t, json.Unmarshal([]byte(`1.5`), &c))
	assert.Equal(t, Credit(150), c)

	assert.Error(t, json.Unmarshal([]byte(`"not a number"`), &c))
}

func TestCreditRoundTrip(t *testing.T) {
	original := Credit(35)
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Credit
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}
