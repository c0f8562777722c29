package derrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	err := New(CodeCFInvalidFormat, "not sixteen characters")
	assert.EqualError(t, err, "tax_id_cf_invalid_format: not sixteen characters")

	err = Newf(CodeGenInvalidGender, "gender must be M or F, got %q", "X")
	assert.EqualError(t, err, `cf_gen_invalid_gender: gender must be M or F, got "X"`)

	cause := errors.New("boom")
	err = Wrap(cause, CodePIvaInvalidLength, "normalization failed")
	assert.EqualError(t, err, "tax_id_piva_invalid_length: normalization failed: boom")
	assert.True(t, errors.Is(err, cause))
}

func TestHasCode(t *testing.T) {
	err := New(CodeCFUnderage, "too young")
	assert.True(t, HasCode(err, CodeCFUnderage))
	assert.False(t, HasCode(err, CodeCFInvalidFormat))
	assert.False(t, HasCode(errors.New("plain"), CodeCFUnderage))
	assert.False(t, HasCode(nil, CodeCFUnderage))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeCFCannotDecodeBirthdate, CodeOf(New(CodeCFCannotDecodeBirthdate, "no such date")))
	assert.Equal(t, Code(""), CodeOf(errors.New("plain")))
	assert.Equal(t, Code(""), CodeOf(nil))

	// Wrapping in plain fmt-style chains must not hide the code.
	wrapped := Wrap(New(CodeCFUnderage, "too young"), CodeCFInvalidFormat, "outer")
	assert.Equal(t, CodeCFInvalidFormat, CodeOf(wrapped))
}
