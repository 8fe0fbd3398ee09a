// Package bind decodes and validates request input
//
// failures come back as project errors: malformed bodies are ErrorCodeJSON,
// rule violations are ErrorCodeValidation naming the first offending json field
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// maxBody caps a decoded request body
var maxBody int64 = 1 << 20

type rules struct {
	v     *validator.Validate
	trans ut.Translator
}

// validation is built once: english messages, json field names and the hashkey tag
var validation = sync.OnceValue(func() rules {
	loc := en.New()
	trans, _ := ut.New(loc, loc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterValidation("hashkey", printableASCII)

	for tag, text := range map[string]string{
		"min":     "{0} must be at least {1}",
		"max":     "{0} must be at most {1}",
		"hashkey": "{0} must be printable ascii without spaces",
	} {
		_ = v.RegisterTranslation(tag, trans,
			func(t ut.Translator) error { return t.Add(tag, text, true) },
			func(t ut.Translator, fe validator.FieldError) string {
				msg, _ := t.T(tag, fe.Field(), fe.Param())
				return msg
			},
		)
	}
	return rules{v: v, trans: trans}
})

// jsonName reports fields by their json key; untagged and "-" fields keep the Go name
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// printableASCII is the hashkey rule: bytes 0x21 to 0x7e only
func printableASCII(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), func(r rune) bool { return r < 0x21 || r > 0x7e })
}

// ParseJSON decodes exactly one JSON value of type T from the body, rejecting
// unknown fields and anything after the value, then validates it
func ParseJSON[T any](r *http.Request) (T, error) {
	var dst T
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBody))
	dec.DisallowUnknownFields()

	var tooBig *http.MaxBytesError
	switch err := dec.Decode(&dst); {
	case errors.Is(err, io.EOF):
		return dst, perr.JSONErrf("empty body")
	case errors.As(err, &tooBig):
		return dst, perr.JSONErrf("body exceeds %d bytes", tooBig.Limit)
	case err != nil:
		return dst, perr.JSONErrf("invalid JSON: %v", err)
	}
	if dec.More() {
		return dst, perr.JSONErrf("unexpected trailing data")
	}
	return dst, Struct(dst)
}

// Struct validates v; the error names the first failing field
func Struct(v any) error {
	err := validation().v.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Wrap(inv, perr.ErrorCodeJSON, "validation error")
	}
	field, msg := firstFailure(err)
	return perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, msg), field)
}

// Missing lists the fields that failed a required check, in declaration order
func Missing(err error) []string {
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return nil
	}
	var out []string
	for _, fe := range failures {
		if fe.Tag() == "required" {
			out = append(out, fe.Field())
		}
	}
	return out
}

func firstFailure(err error) (field, message string) {
	var failures validator.ValidationErrors
	if errors.As(err, &failures) && len(failures) > 0 {
		return failures[0].Field(), failures[0].Translate(validation().trans)
	}
	return "", err.Error()
}
