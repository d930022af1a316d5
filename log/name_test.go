package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		want    error
		message string
		cause   string
	}{
		{name: "a"},
		{name: "Lorikeet"},
		{name: "github.com/ardnew/logfront/log.Base"},
		{name: " ~!@#$%^&*()_+`-={}[]|\\:;\"'<>,.?/\x00\x7f"},
		{name: "", want: ErrNameEmpty, message: "Logger name must not be empty"},
		{
			name:    "Touché",
			want:    ErrNameIllegal,
			message: "Illegal character in Logger name",
			cause:   "U+00E9 LATIN SMALL LETTER E WITH ACUTE at offset 5",
		},
		{
			name:    "\xffbad",
			want:    ErrNameIllegal,
			message: "Illegal character in Logger name",
			cause:   "invalid UTF-8 byte 0xff at offset 0",
		},
		{
			name:    "ok�",
			want:    ErrNameIllegal,
			message: "Illegal character in Logger name",
			cause:   "U+FFFD REPLACEMENT CHARACTER at offset 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.want == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, ErrCreation)
			assert.Equal(t, tt.message, err.Error())

			var ce *CreationError
			require.True(t, errors.As(err, &ce))

			if tt.cause == "" {
				assert.NoError(t, ce.Cause)
			} else {
				assert.EqualError(t, ce.Cause, tt.cause)
			}
		})
	}
}

func TestValidateNamePtr(t *testing.T) {
	err := ValidateNamePtr(nil)
	require.ErrorIs(t, err, ErrNameAbsent)
	assert.Equal(t, "Logger name must not be null", err.Error())

	name := "present"
	require.NoError(t, ValidateNamePtr(&name))

	name = ""
	require.ErrorIs(t, ValidateNamePtr(&name), ErrNameEmpty)
}

func TestCreationErrorIs(t *testing.T) {
	cause := errors.New("low level")
	err := NewCreationError(ErrNameIllegal.Message, cause)

	assert.ErrorIs(t, err, ErrNameIllegal)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNameEmpty)
	assert.NotErrorIs(t, errors.New("Illegal character in Logger name"), ErrNameIllegal)
}
