package graindomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractShareURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected *string
	}{
		{
			name:     "Payload com chave preferencial",
			raw:      map[string]any{"shareUrl": "https://grain.com/share/recording/rec-1/tok"},
			expected: stringPtr("https://grain.com/share/recording/rec-1/tok"),
		},
		{
			name: "Chave preferencial vazia cai para a próxima",
			raw: map[string]any{
				"shareUrl":  "  ",
				"share_url": "https://grain.com/share/recording/rec-2/tok",
			},
			expected: stringPtr("https://grain.com/share/recording/rec-2/tok"),
		},
		{
			name: "Valor não-string é ignorado",
			raw: map[string]any{
				"shareUrl":   42,
				"shareLink":  "https://grain.com/share/recording/rec-3/tok",
				"share_link": "https://grain.com/share/recording/ignorado/tok",
			},
			expected: stringPtr("https://grain.com/share/recording/rec-3/tok"),
		},
		{
			name:     "Link com espaços é normalizado",
			raw:      map[string]any{"recordingUrl": " https://grain.com/share/recording/rec-4/tok "},
			expected: stringPtr("https://grain.com/share/recording/rec-4/tok"),
		},
		{
			name:     "Payload sem link conhecido",
			raw:      map[string]any{"title": "Demo"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractShareURL(tt.raw)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func stringPtr(s string) *string {
	return &s
}
