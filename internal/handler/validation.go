package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/eventforge/backend/internal/apierror"
	"github.com/eventforge/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"
)

// ValidationError is a rejected request body.
type ValidationError struct {
	Message string
	Fields  []apierror.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %d field error(s)", e.Message, len(e.Fields))
}

var (
	validatorOnce sync.Once
	translator    ut.Translator
)

// setupValidator makes gin's validator report JSON field names and
// registers the English messages.
func setupValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		english := en.New()
		translator, _ = ut.New(english, english).GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, translator); err != nil {
			logger.Log.Warn("Validation messages fall back to untranslated text",
				zap.Error(err),
			)
		}
	})
}

// normalizer trims and cleans a decoded request before validation.
type normalizer interface {
	normalize()
}

// bindJSON decodes the body, normalizes it and validates the binding tags.
// Every failure is a *ValidationError carrying message.
func bindJSON(c *gin.Context, req normalizer, message string) error {
	setupValidator()

	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return &ValidationError{Message: message, Fields: []apierror.FieldError{{Field: "body", Message: "request body is required"}}}
	}

	if err := json.NewDecoder(c.Request.Body).Decode(req); err != nil {
		return decodeError(err, message)
	}

	req.normalize()

	if err := binding.Validator.ValidateStruct(req); err != nil {
		return translateValidation(err, message)
	}
	return nil
}

func decodeError(err error, message string) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		return &ValidationError{Message: message, Fields: []apierror.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
		}}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		return &ValidationError{Message: message, Fields: []apierror.FieldError{{
			Field:   "body",
			Message: "request body must be valid JSON",
		}}}
	default:
		return &ValidationError{Message: message, Fields: []apierror.FieldError{{
			Field:   "body",
			Message: err.Error(),
		}}}
	}
}

func translateValidation(err error, message string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Message: message, Fields: []apierror.FieldError{{Field: "body", Message: err.Error()}}}
	}

	fields := make([]apierror.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Error()
		if translator != nil {
			msg = fe.Translate(translator)
		}
		fields = append(fields, apierror.FieldError{Field: fe.Field(), Message: msg})
	}
	return &ValidationError{Message: message, Fields: fields}
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// TagList accepts a JSON array or a comma-separated string.
type TagList []string

func (l *TagList) UnmarshalJSON(b []byte) error {
	items, err := decodeList(b, ",")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// LineList accepts a JSON array or a newline-delimited string.
type LineList []string

func (l *LineList) UnmarshalJSON(b []byte) error {
	items, err := decodeList(b, "\n")
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// decodeList returns nil for JSON null so a patch can tell "absent" from "empty".
func decodeList(b []byte, sep string) ([]string, error) {
	if string(b) == "null" {
		return nil, nil
	}

	var items []string
	if err := json.Unmarshal(b, &items); err != nil {
		var joined string
		if json.Unmarshal(b, &joined) != nil {
			return nil, &json.UnmarshalTypeError{Value: "value", Type: reflect.TypeOf(items)}
		}
		items = strings.Split(joined, sep)
	}
	return cleanList(items), nil
}

func cleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// trimOptional trims s and turns a blank value into nil.
func trimOptional(s **string) {
	if *s == nil {
		return
	}
	v := strings.TrimSpace(**s)
	if v == "" {
		*s = nil
		return
	}
	*s = &v
}
