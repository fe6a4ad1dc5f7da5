package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type dateParams struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"omitempty,datetime=2006-01-02"`
}

func TestValidate(t *testing.T) {
	v := NewEchoValidator()

	assert.NoError(t, v.Validate(dateParams{Start: "2017-01-01"}))
	assert.NoError(t, v.Validate(dateParams{Start: "2017-01-01", End: "2017-12-31"}))

	for _, invalid := range []dateParams{
		{Start: "not-a-date"},
		{Start: "2017-1-1"},
		{Start: "2017-02-30"},
		{Start: "2017-01-01", End: "31-12-2017"},
		{},
	} {
		assert.Error(t, v.Validate(invalid), "%+v", invalid)
	}
}

func TestFirstInvalidValue(t *testing.T) {
	err := NewEchoValidator().Validate(dateParams{Start: "2017-01-01", End: "tomorrow"})

	assert.Equal(t, "tomorrow", FirstInvalidValue(err))
	assert.Equal(t, "", FirstInvalidValue(errors.New("other")))
}
