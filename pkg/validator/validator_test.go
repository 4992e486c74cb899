package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type input struct {
	Name  string `json:"name" validate:"required,max=5"`
	Level string `json:"level" validate:"omitempty,oneof=DEBUG INFO"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	errs, ok := v.Validate(input{Name: "abc", Level: "INFO"})
	assert.True(t, ok)
	assert.Empty(t, errs)

	errs, ok = v.Validate(input{Name: "", Level: "TRACE"})
	assert.False(t, ok)
	assert.Equal(t, []ValidationError{
		{Field: "name", Code: "REQUIRED", Message: "name is required"},
		{Field: "level", Code: "ONEOF", Message: "level must be one of: DEBUG INFO"},
	}, errs)

	errs, ok = v.Validate(input{Name: "toolong"})
	assert.False(t, ok)
	assert.Equal(t, "name must not exceed 5 characters", errs[0].Message)
}
