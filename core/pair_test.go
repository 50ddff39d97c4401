// SPDX-License-Identifier: MIT

package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/core"
)

func TestParsePair(t *testing.T) {
	for in, want := range map[string]core.Pair{
		"(14319, 14320)": {U: 14319, V: 14320},
		"[1,2]":          {U: 1, V: 2},
		" 3 , 3 ":        {U: 3, V: 3},
		"(-4, 5)":        {U: -4, V: 5},
	} {
		got, err := core.ParsePair(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "(1)", "(1, 2, 3)", "(a, 2)", "(1, 2.5)"} {
		_, err := core.ParsePair(bad)
		assert.ErrorIs(t, err, core.ErrMalformedPair, bad)
	}
}

func TestPair_TextRoundTrip(t *testing.T) {
	raw, err := json.Marshal([]core.Pair{{U: 1, V: 2}})
	require.NoError(t, err)
	assert.JSONEq(t, `["(1, 2)"]`, string(raw))

	var back []core.Pair
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, []core.Pair{{U: 1, V: 2}}, back)

	assert.Error(t, json.Unmarshal([]byte(`["nope"]`), &back))
}
