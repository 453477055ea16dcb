package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentDraft_Normalize(t *testing.T) {
	d := CommentDraft{Text: "  nice event  ", Name: "  "}
	d.Normalize()
	assert.Equal(t, "nice event", d.Text)
	assert.Equal(t, AnonymousName, d.Name)
}

func TestCommentDraft_Validate(t *testing.T) {
	tests := []struct {
		name      string
		draft     CommentDraft
		wantField string
	}{
		{"valid", CommentDraft{Text: "see you there", Name: "taro"}, ""},
		{"empty text", CommentDraft{Text: "   ", Name: "taro"}, "text"},
		{"text at limit", CommentDraft{Text: strings.Repeat("あ", 140), Name: "taro"}, ""},
		{"text too long", CommentDraft{Text: strings.Repeat("x", 141), Name: "taro"}, "text"},
		{"name too long", CommentDraft{Text: "hi", Name: strings.Repeat("x", 11)}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.draft
			d.Normalize()
			err := d.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}
