package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"checkmate/internal/shared/errors"
)

var validate *validator.Validate

// fenRegex matches the six space-separated fields of Forsyth-Edwards
// Notation: piece placement, side to move, castling rights, en passant
// square, halfmove clock and fullmove number.
var fenRegex = regexp.MustCompile(`^([pnbrqkPNBRQK1-8]+/){7}[pnbrqkPNBRQK1-8]+ [wb] (K?Q?k?q?|-) ([a-h][36]|-) \d+ \d+$`)

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("fen", func(fl validator.FieldLevel) bool {
		return IsValidFEN(fl.Field().String())
	})
}

// RegisterGinValidators hooks the custom validators into gin's binding
// engine so request structs can use them in binding tags.
func RegisterGinValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fen", func(fl validator.FieldLevel) bool {
			return IsValidFEN(fl.Field().String())
		})
	}
}

// IsValidFEN reports whether the string looks like a legal FEN record.
// It validates structure, not chess legality.
func IsValidFEN(fen string) bool {
	if !fenRegex.MatchString(fen) {
		return false
	}
	// Each rank must describe exactly eight squares.
	placement := strings.SplitN(fen, " ", 2)[0]
	for _, rank := range strings.Split(placement, "/") {
		squares := 0
		for _, r := range rank {
			if r >= '1' && r <= '8' {
				squares += int(r - '0')
			} else {
				squares++
			}
		}
		if squares != 8 {
			return false
		}
	}
	return true
}

// ValidateStruct validates a struct and returns a user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return errors.NewValidationError("Validation failed")
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, fieldErrorMessage(fieldError))
	}

	return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "fen":
		return fmt.Sprintf("%s must be a valid FEN position", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
