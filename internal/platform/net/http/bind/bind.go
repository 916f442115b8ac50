// Package bind provides JSON bind and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "scriptdrill/internal/platform/errors"
	"scriptdrill/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")
		registerShort(v, trans, "oneof", "{0} must be one of [{1}]")

		_ = v.RegisterValidation("script_tag", scriptTag)
		registerShort(v, trans, "script_tag", "{0} must be a script name such as Deva, Taml or ISO")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	return Init()
}

// RegisterValidation registers a custom tag
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions controls parsing behavior
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: true,
		AllowEmptyBody:  false,
	}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
// Safe methods (GET, HEAD, DELETE, OPTIONS) may omit the body; the zero T is then validated as is,
// so required fields still fail with a validation error
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	var dst T
	empty, err := decode(r, o, &dst)
	if err != nil {
		return zero, err
	}
	if empty {
		switch {
		case o.AllowEmptyBody:
			return dst, nil
		case r.Method == http.MethodGet, r.Method == http.MethodHead,
			r.Method == http.MethodDelete, r.Method == http.MethodOptions:
		default:
			return zero, perr.JSONErrf("empty body")
		}
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		field, msg := ValidationFieldAndMessage(err)
		return zero, perr.WithField(perr.Validationf("%s", msg), field)
	}
	return dst, nil
}

// decode reads the body into dst, reporting empty=true when there was nothing to read
func decode(r *http.Request, o JSONOptions, dst any) (empty bool, err error) {
	if r.Body == nil {
		return true, nil
	}

	// peek one byte so an empty body is told apart from malformed JSON
	buf := make([]byte, 1)
	n, _ := r.Body.Read(buf)
	if n == 0 {
		return true, nil
	}
	var reader io.Reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return false, perr.JSONErrf("unexpected trailing data")
	}
	return false, nil
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// scriptTag accepts ISO 15924 codes ("Deva") and engine scheme names ("ISO", "IAST", "RomanReadable")
func scriptTag(fl FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 2 || len(s) > 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '_' || c == '-'):
		default:
			return false
		}
	}
	return true
}

// registerShort overrides a tag translation with a compact message
func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error {
			return t.Add(tag, text, true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
