// Package utils carries the registration and login field rules, ported from
// the storefront's form validation schema.
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/junaidrashid-git/storefront-api/models"
)

var (
	nameRe     = regexp.MustCompile(`^[A-Za-z\s]+$`)
	usernameRe = regexp.MustCompile(`^[a-z0-9]+$`)
	whatsappRe = regexp.MustCompile(`^628\d{8,11}$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

type RegistrationInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Whatsapp string `json:"whatsapp"`
	Role     string `json:"role"`
}

// ValidateRegistration checks every field and returns a map of field name to
// message, empty when the input is valid.
func ValidateRegistration(in RegistrationInput) map[string]string {
	errs := make(map[string]string)

	switch {
	case in.Name == "":
		errs["name"] = "Name is required"
	case !nameRe.MatchString(in.Name):
		errs["name"] = "Name must contain only letters and spaces"
	case !isProperCase(in.Name):
		errs["name"] = "Name must be in proper case"
	}

	switch {
	case in.Username == "":
		errs["username"] = "Username is required"
	case !usernameRe.MatchString(in.Username):
		errs["username"] = "Username must be lowercase letters and numbers only"
	}

	switch {
	case in.Password == "":
		errs["password"] = "Password is required"
	case len(in.Password) < 6:
		errs["password"] = "Password must be at least 6 characters"
	case len(in.Password) > 20:
		errs["password"] = "Password must not exceed 20 characters"
	case !upperRe.MatchString(in.Password):
		errs["password"] = "Password must contain at least one uppercase letter"
	case !lowerRe.MatchString(in.Password):
		errs["password"] = "Password must contain at least one lowercase letter"
	case !digitRe.MatchString(in.Password):
		errs["password"] = "Password must contain at least one number"
	}

	switch {
	case in.Whatsapp == "":
		errs["whatsapp"] = "WhatsApp number is required"
	case !whatsappRe.MatchString(in.Whatsapp):
		errs["whatsapp"] = "WhatsApp number must start with 628 and be 11-14 digits total"
	}

	switch {
	case in.Role == "":
		errs["role"] = "Role is required"
	case in.Role != models.RoleCustomer:
		errs["role"] = "Role must be customer"
	}

	return errs
}

// isProperCase requires each word to start uppercase and continue lowercase.
func isProperCase(name string) bool {
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			return false
		}
		for _, r := range runes[1:] {
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return true
}
