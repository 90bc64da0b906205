package services

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// webURLSchemes are the schemes a photo's image_url may use.
var webURLSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("web_url", isWebURL); err != nil {
		panic(err)
	}
	return v
}

// isWebURL accepts absolute http, https and ftp URLs with a host.
func isWebURL(fl validator.FieldLevel) bool {
	u, err := url.ParseRequestURI(fl.Field().String())
	if err != nil {
		return false
	}
	return webURLSchemes[strings.ToLower(u.Scheme)] && u.Host != ""
}

// rule pairs a validator tag with the message reported when it fails.
type rule struct {
	tag     string
	message string
}

// check runs every rule against value and returns the messages of the ones that failed.
// Rules are not short-circuited so a single field can report several problems.
func check(value string, rules ...rule) []string {
	var failed []string
	for _, r := range rules {
		if err := validate.Var(value, r.tag); err != nil {
			failed = append(failed, r.message)
		}
	}
	return failed
}

var (
	titleRules = []rule{
		{"required", "Title cannot be an empty string"},
	}
	imageURLRules = []rule{
		{"required", "Image URL cannot be an empty string"},
		{"web_url", "Wrong URL format"},
	}
	usernameRules = []rule{
		{"required", "Username cannot be an empty string"},
	}
	emailRules = []rule{
		{"required", "Email cannot be an empty string"},
		{"email", "Wrong email format"},
	}
	passwordRules = []rule{
		{"min=6", "Password must be at least 6 characters"},
	}
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
