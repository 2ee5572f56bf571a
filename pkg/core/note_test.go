package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/jot/pkg/core"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		title string
		text  string
		want  core.ValidationResult
	}{
		{"empty title", "", "", core.TitleTooShort},
		{"two char title", "ab", "x", core.TitleTooShort},
		{"min title", "abc", "", core.Valid},
		{"max title", strings.Repeat("t", core.TitleMaxLen), "", core.Valid},
		{"title over max", strings.Repeat("t", core.TitleMaxLen+1), "", core.TitleTooLong},
		{"max text", "Test 1", strings.Repeat("x", core.TextMaxLen), core.Valid},
		{"text over max", "Test 1", strings.Repeat("x", core.TextMaxLen+1), core.TextTooLong},
		{"short title wins over long text", "ab", strings.Repeat("x", 200), core.TitleTooShort},
		{"long title wins over long text", strings.Repeat("t", 60), strings.Repeat("x", 200), core.TitleTooLong},
		{"runes not bytes", "äöü", strings.Repeat("é", core.TextMaxLen), core.Valid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.Validate(tt.title, tt.text))
		})
	}
}

func TestValidationResult_Err(t *testing.T) {
	assert.NoError(t, core.Valid.Err())
	assert.ErrorIs(t, core.TitleTooShort.Err(), core.ErrTitleTooShort)
	assert.ErrorIs(t, core.TitleTooLong.Err(), core.ErrTitleTooLong)
	assert.ErrorIs(t, core.TextTooLong.Err(), core.ErrTextTooLong)

	assert.True(t, core.IsValidation(core.TextTooLong.Err()))
	assert.False(t, core.IsValidation(core.ErrNotFound))
}

func TestValidationResult_String(t *testing.T) {
	assert.Equal(t, "valid", core.Valid.String())
	assert.Equal(t, "title too short", core.TitleTooShort.String())
	assert.Equal(t, "unknown", core.ValidationResult(42).String())
}
