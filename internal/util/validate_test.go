package util

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Caption   string `form:"caption" binding:"required"`
	CaptionEn string `form:"caption_en" binding:"required"`
	Type      int    `form:"type" binding:"oneof=0 1"`
}

func TestBindingErrorsFieldNames(t *testing.T) {
	err := binding.Validator.ValidateStruct(&sampleForm{Type: 5})
	require.Error(t, err)

	fields := BindingErrors(err)
	assert.Equal(t, "This field is required.", fields["caption"])
	assert.Equal(t, "This field is required.", fields["caption_en"])
	assert.Equal(t, "Invalid choice.", fields["type"])
}

func TestBindingErrorsNonValidator(t *testing.T) {
	fields := BindingErrors(assert.AnError)
	assert.Contains(t, fields, "form")
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "caption_en", snakeCase("CaptionEn"))
	assert.Equal(t, "sequence", snakeCase("Sequence"))
	assert.Equal(t, "quiz_question_id", snakeCase("QuizQuestionID"))
}
