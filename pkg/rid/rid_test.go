/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package rid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasicUsage_RecordID(t *testing.T) {
	require := require.New(t)

	id := New(12, 3)
	require.Equal(int32(12), id.Cluster())
	require.Equal(int64(3), id.Position())
	require.Equal("#12:3", id.String())
	require.False(id.IsNull())

	for _, s := range []string{"#12:3", "12:3", " #12:3 "} {
		parsed, err := Parse(s)
		require.NoError(err, s)
		require.Equal(id, parsed, s)
	}
}

func TestLooksLike(t *testing.T) {
	tests := []struct {
		s           string
		requireHash bool
		want        bool
	}{
		{"#1:2", true, true},
		{"1:2", true, false},
		{"1:2", false, true},
		{"#123456:2", false, false},
		{"#1:", false, false},
		{"abc", false, false},
		{"#-1:2", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			require.Equal(t, tt.want, LooksLike(tt.s, tt.requireHash))
		})
	}
}

func TestParseErrors(t *testing.T) {
	require := require.New(t)

	_, err := Parse("#1")
	require.ErrorIs(err, ErrMalformed)

	_, err = Parse("#99999:1")
	require.ErrorIs(err, ErrOutOfRange)

	_, err = Parse("#-1:1")
	require.ErrorIs(err, ErrOutOfRange)

	_, err = Parse("#1:-5")
	require.ErrorIs(err, ErrOutOfRange)

	require.Panics(func() { MustParse("x") })
	require.Panics(func() { New(-2, 0) })
}

func TestRecordID_JSON(t *testing.T) {
	require := require.New(t)

	src := map[string]RecordID{"out": New(1, 2)}
	b, err := json.Marshal(src)
	require.NoError(err)
	require.JSONEq(`{"out":"#1:2"}`, string(b))

	var dst map[string]RecordID
	require.NoError(json.Unmarshal(b, &dst))
	require.Equal(src, dst)

	require.Error(json.Unmarshal([]byte(`{"out":"bad"}`), &dst))
}
