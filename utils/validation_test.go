package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junaidrashid-git/storefront-api/utils"
)

func validInput() utils.RegistrationInput {
	return utils.RegistrationInput{
		Name:     "Jane Doe",
		Username: "janedoe1",
		Password: "Password1",
		Whatsapp: "62812345678",
		Role:     "customer",
	}
}

func TestValidateRegistrationOK(t *testing.T) {
	errs := utils.ValidateRegistration(validInput())
	assert.Empty(t, errs)
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*utils.RegistrationInput)
		wantField   string
		wantMessage string
	}{
		{
			name:        "missing name",
			mutate:      func(in *utils.RegistrationInput) { in.Name = "" },
			wantField:   "name",
			wantMessage: "Name is required",
		},
		{
			name:        "name with digits",
			mutate:      func(in *utils.RegistrationInput) { in.Name = "Jane 2" },
			wantField:   "name",
			wantMessage: "Name must contain only letters and spaces",
		},
		{
			name:        "name not proper case",
			mutate:      func(in *utils.RegistrationInput) { in.Name = "jane Doe" },
			wantField:   "name",
			wantMessage: "Name must be in proper case",
		},
		{
			name:        "name with inner capitals",
			mutate:      func(in *utils.RegistrationInput) { in.Name = "JAne Doe" },
			wantField:   "name",
			wantMessage: "Name must be in proper case",
		},
		{
			name:        "username with capitals",
			mutate:      func(in *utils.RegistrationInput) { in.Username = "JaneDoe" },
			wantField:   "username",
			wantMessage: "Username must be lowercase letters and numbers only",
		},
		{
			name:        "missing username",
			mutate:      func(in *utils.RegistrationInput) { in.Username = "" },
			wantField:   "username",
			wantMessage: "Username is required",
		},
		{
			name:        "password too short",
			mutate:      func(in *utils.RegistrationInput) { in.Password = "Pw1" },
			wantField:   "password",
			wantMessage: "Password must be at least 6 characters",
		},
		{
			name:        "password too long",
			mutate:      func(in *utils.RegistrationInput) { in.Password = "Abcdefghij1234567890x" },
			wantField:   "password",
			wantMessage: "Password must not exceed 20 characters",
		},
		{
			name:        "password without uppercase",
			mutate:      func(in *utils.RegistrationInput) { in.Password = "password1" },
			wantField:   "password",
			wantMessage: "Password must contain at least one uppercase letter",
		},
		{
			name:        "password without lowercase",
			mutate:      func(in *utils.RegistrationInput) { in.Password = "PASSWORD1" },
			wantField:   "password",
			wantMessage: "Password must contain at least one lowercase letter",
		},
		{
			name:        "password without digits",
			mutate:      func(in *utils.RegistrationInput) { in.Password = "Passwords" },
			wantField:   "password",
			wantMessage: "Password must contain at least one number",
		},
		{
			name:        "whatsapp with wrong prefix",
			mutate:      func(in *utils.RegistrationInput) { in.Whatsapp = "0812345678" },
			wantField:   "whatsapp",
			wantMessage: "WhatsApp number must start with 628 and be 11-14 digits total",
		},
		{
			name:        "whatsapp too long",
			mutate:      func(in *utils.RegistrationInput) { in.Whatsapp = "628123456789012" },
			wantField:   "whatsapp",
			wantMessage: "WhatsApp number must start with 628 and be 11-14 digits total",
		},
		{
			name:        "role other than customer",
			mutate:      func(in *utils.RegistrationInput) { in.Role = "admin" },
			wantField:   "role",
			wantMessage: "Role must be customer",
		},
		{
			name:        "missing role",
			mutate:      func(in *utils.RegistrationInput) { in.Role = "" },
			wantField:   "role",
			wantMessage: "Role is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := utils.ValidateRegistration(in)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantMessage, errs[tt.wantField])
		})
	}
}
