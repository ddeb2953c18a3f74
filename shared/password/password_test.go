package password_test

import (
	"servicehub/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid", input: "correct horse battery"},
		{name: "empty", input: "", wantErr: password.ErrEmptyPassword},
		{name: "at the bcrypt limit", input: strings.Repeat("a", 72)},
		{name: "past the bcrypt limit", input: strings.Repeat("a", 73), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := password.Hash(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hashed)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.input, hashed)
			assert.NoError(t, password.Verify(tt.input, hashed))
		})
	}
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("same-password")
	require.NoError(t, err)

	second, err := password.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("s3cret-pass")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hashed  string
		wantErr bool
		invalid bool
	}{
		{name: "match", plain: "s3cret-pass", hashed: hashed},
		{name: "wrong password", plain: "S3cret-pass", hashed: hashed, wantErr: true, invalid: true},
		{name: "empty password", plain: "", hashed: hashed, wantErr: true, invalid: true},
		{name: "empty hash", plain: "s3cret-pass", hashed: "", wantErr: true, invalid: true},
		{name: "malformed hash", plain: "s3cret-pass", hashed: "not-a-bcrypt-hash", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hashed)
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.invalid, err == password.ErrInvalidPassword)
		})
	}
}
