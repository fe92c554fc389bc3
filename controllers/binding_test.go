package controllers

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooseFloatUnmarshal(t *testing.T) {
	var payload struct {
		Weight looseFloat `json:"weight"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"weight":70.5}`), &payload))
	require.Equal(t, looseFloat(70.5), payload.Weight)

	require.NoError(t, json.Unmarshal([]byte(`{"weight":"70.5"}`), &payload))
	require.Equal(t, looseFloat(70.5), payload.Weight)

	require.NoError(t, json.Unmarshal([]byte(`{"weight":"abc"}`), &payload))
	require.True(t, math.IsNaN(float64(payload.Weight)))

	require.NoError(t, json.Unmarshal([]byte(`{"weight":null}`), &payload))
	require.True(t, math.IsNaN(float64(payload.Weight)))
}

func TestLooseBoolUnmarshal(t *testing.T) {
	var payload struct {
		Flag looseBool `json:"flag"`
	}

	cases := []struct {
		raw  string
		want looseBool
	}{
		{`{"flag":true}`, true},
		{`{"flag":false}`, false},
		{`{"flag":"true"}`, true},
		{`{"flag":"false"}`, false},
		{`{"flag":"yes"}`, false},
		{`{"flag":1}`, false},
		{`{"flag":null}`, false},
	}
	for _, tc := range cases {
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &payload), tc.raw)
		require.Equal(t, tc.want, payload.Flag, tc.raw)
	}
}

func TestParseQueryFloat(t *testing.T) {
	require.Equal(t, 70.0, parseQueryFloat("70"))
	require.True(t, math.IsNaN(parseQueryFloat("")))
	require.True(t, math.IsNaN(parseQueryFloat("abc")))
}
