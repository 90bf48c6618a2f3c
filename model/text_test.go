package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare string",
			raw:  `"hello world"`,
			want: "hello world",
		},
		{
			name: "empty string",
			raw:  `""`,
			want: "",
		},
		{
			name: "array of strings",
			raw:  `["hello ", "world"]`,
			want: "hello world",
		},
		{
			name: "array mixing strings and entities",
			raw:  `["see ", {"type": "link", "text": "https://example.com"}, " now"]`,
			want: "see https://example.com now",
		},
		{
			name: "array of entities only",
			raw:  `[{"type": "bold", "text": "Hi"}, {"type": "mention", "text": "@alice"}]`,
			want: "Hi@alice",
		},
		{
			name: "unknown element shapes contribute nothing",
			raw:  `["a", 42, ["nested"], "b"]`,
			want: "ab",
		},
		{
			name: "null",
			raw:  `null`,
			want: "",
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &text))
			assert.Equal(t, tt.want, text.Plain)
		})
	}
}

func TestText_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Text{Plain: "hi there"})
	require.NoError(t, err)
	assert.Equal(t, `"hi there"`, string(data))
}

func TestMessage_TextContent_Absent(t *testing.T) {
	var msg Message
	assert.Equal(t, "", msg.TextContent())
}
