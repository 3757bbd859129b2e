package helper

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var rePhone = regexp.MustCompile(`^\+?1?\d{9,15}$`)

const nonFieldKey = "non_field_errors"

// Validate dipakai bersama oleh semua controller (validator aman untuk concurrent use).
var Validate = NewValidator()

// NewValidator membangun validator dengan aturan tambahan:
//   - phone : ^\+?1?\d{9,15}$
//   - link  : URL http(s) absolut, anchor "#..." atau path "/..."
//
// Nama field di error mengikuti tag json.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return IsPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
		return IsLink(fl.Field().String())
	})
	return v
}

func IsPhone(s string) bool {
	return rePhone.MatchString(s)
}

func IsLink(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "#") || (strings.HasPrefix(s, "/") && !strings.HasPrefix(s, "//")) {
		return !strings.ContainsAny(s, " \t\n")
	}
	return IsHTTPURL(s)
}

func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateStruct menjalankan validasi dan mengembalikan map field → pesan.
// nil berarti valid.
func ValidateStruct(v any) map[string][]string {
	if err := Validate.Struct(v); err != nil {
		return ValidationErrors(err)
	}
	return nil
}

// ValidationErrors mengubah error validator jadi pesan per field.
func ValidationErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out[nonFieldKey] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		key := fe.Field()
		if key == "" {
			key = nonFieldKey
		}
		out[key] = append(out[key], fieldMessage(fe))
	}
	return out
}

// AddFieldError untuk error yang tidak bisa diekspresikan lewat tag.
func AddFieldError(errs map[string][]string, field, msg string) map[string][]string {
	if errs == nil {
		errs = map[string][]string{}
	}
	errs[field] = append(errs[field], msg)
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if isText {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if isText {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Select a valid choice. Allowed: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "phone":
		return "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed."
	case "link":
		return "Enter a valid URL, an anchor like '#section' or a path like '/page'."
	case "url", "http_url":
		return "Enter a valid URL."
	case "hexcolor":
		return "Enter a valid hex color, e.g. #2a9dff."
	case "eqfield":
		return "The two password fields didn't match."
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
