package models

import (
	"testing"

	"user-service/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		wantMsgs []string
	}{
		{"Valid", User{Name: "alice", Email: "alice@example.com"}, nil},
		{"Missing Name", User{Email: "alice@example.com"}, []string{"User name is required"}},
		{"Missing Email", User{Name: "alice"}, []string{"Email is required"}},
		{"Missing Both", User{}, []string{"User name is required", "Email is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantMsgs == nil {
				assert.NoError(t, err)
				return
			}

			var ve *validation.ValidationError
			require.ErrorAs(t, err, &ve)
			var msgs []string
			for _, v := range ve.Violations {
				msgs = append(msgs, v.Message)
			}
			assert.Equal(t, tt.wantMsgs, msgs)
		})
	}
}

func TestUpdateUserRequest_Apply(t *testing.T) {
	email := "new@example.com"
	u := &User{Name: "alice", Email: "alice@example.com"}

	UpdateUserRequest{Email: &email}.Apply(u)

	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "new@example.com", u.Email)
}

func TestUser_TableName(t *testing.T) {
	assert.Equal(t, "users", User{}.TableName())
}
