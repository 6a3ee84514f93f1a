package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStateJSONShape(t *testing.T) {
	state := []BodySnapshot{
		{ID: 0, X: 1.5, Y: 2, Radius: 10, Color: "#89ABCD"},
		{ID: 1, X: 0, Y: 0, Radius: 12, Color: "#FFFFFF"},
	}

	b, err := EncodeState(JSON, state)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Len(t, raw, 2)
	for _, entry := range raw {
		assert.Len(t, entry, 5)
		for _, key := range []string{"id", "x", "y", "radius", "color"} {
			assert.Contains(t, entry, key)
		}
	}
	assert.Equal(t, "#89ABCD", raw[0]["color"])
}

func TestEncodeStateMsgpack(t *testing.T) {
	state := []BodySnapshot{{ID: 4, X: 10, Y: 20, Radius: 15, Color: "#ABCDEF"}}

	b, err := EncodeState(Msgpack, state)
	require.NoError(t, err)

	got, err := Decode[[]BodySnapshot](Msgpack, b)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestEncodeStateRejectsNil(t *testing.T) {
	_, err := EncodeState(JSON, nil)
	assert.Error(t, err)
}

func TestDecodeEmptyPayload(t *testing.T) {
	_, err := Decode[[]BodySnapshot](JSON, nil)
	assert.Error(t, err)
}

func TestCodecByName(t *testing.T) {
	c, err := CodecByName("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())
	assert.False(t, c.Binary())

	c, err = CodecByName("msgpack")
	require.NoError(t, err)
	assert.True(t, c.Binary())

	_, err = CodecByName("xml")
	assert.Error(t, err)
}
