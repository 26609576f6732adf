package binder

import (
	"net/url"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/dirview/dirview/pkg/errcodes"
	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DisallowUnknownParams is the context key handlers set to false when the
// query string is shared with parameters the bound struct doesn't declare.
const DisallowUnknownParams = "disallow_unknown_params"

// Binder is a custom struct that implements the Echo Binder interface. It binds
// query params to a struct, uses mold to clean up the params, and validator to
// validate them.
type Binder struct {
	queryDecoder        *schema.Decoder
	lenientQueryDecoder *schema.Decoder
	conform             *mold.Transformer
	validate            *validator.Validate
}

// New initializes a new Binder instance with the appropriate validation
// functions registered.
func New() (*Binder, error) {
	queryDecoder := schema.NewDecoder()
	queryDecoder.SetAliasTag("query")
	lenientQueryDecoder := schema.NewDecoder()
	lenientQueryDecoder.SetAliasTag("query")
	lenientQueryDecoder.IgnoreUnknownKeys(true)
	conform := modifiers.New()
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("sortspec", sortSpecValidator); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Binder{queryDecoder, lenientQueryDecoder, conform, validate}, nil
}

// Bind binds, modifies, and validates query params against the given struct.
// Every route in this server reads its input from the query string, so
// request bodies are ignored.
func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()

	decoder := b.queryDecoder
	if disallow, ok := c.Get(DisallowUnknownParams).(bool); ok && !disallow {
		decoder = b.lenientQueryDecoder
	}

	if err := b.decodeQuery(i, c.QueryParams(), decoder); err != nil {
		return errors.WithStack(err)
	}

	if err := b.conform.Struct(req.Context(), i); err != nil {
		return errors.WithStack(err)
	}

	if err := defaults.Set(i); err != nil {
		return errors.WithStack(err)
	}

	if err := b.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}
		msg := formatValidationError(errs[0])
		return errcodes.ValidationError(msg)
	}
	return nil
}

func (b *Binder) decodeQuery(i interface{}, params url.Values, decoder *schema.Decoder) error {
	if err := decoder.Decode(i, params); err != nil {
		if errs, ok := err.(schema.MultiError); ok {
			var err error
			for _, err = range errs {
				break
			}

			if err, ok := err.(schema.ConversionError); ok {
				msg := formatSchemaConversionError(err)
				return errcodes.ValidationTypeError(msg)
			}
			if err, ok := err.(schema.UnknownKeyError); ok {
				return errcodes.UnknownParameter(err.Key)
			}

			return errors.WithStack(err)
		}
		return errors.WithStack(err)
	}
	return nil
}
