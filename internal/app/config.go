package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DefaultDataDir is the data directory used when none is given.
const DefaultDataDir = "data"

// DefaultSettingsFile is looked up in the data directory when no settings file
// is given explicitly.
const DefaultSettingsFile = "notes.hcl"

// Config holds all the necessary configuration for an App instance to run.
// Empty optional fields defer to the settings file and its defaults. The flag
// tag names the command-line flag that sets each field.
type Config struct {
	DataDir    string `flag:"data-dir" validate:"required"`
	ConfigPath string `flag:"config"` // hcl settings file

	Courses []string `flag:"courses" validate:"dive,required"`
	All     bool     `flag:"all"` // also merge every grade file found in DataDir

	Strategy  string `flag:"strategy" validate:"omitempty,oneof=linear binary merge hash"`
	Output    string `flag:"output"`
	Format    string `flag:"format" validate:"omitempty,oneof=csv xlsx"`
	Separator string `flag:"separator" validate:"omitempty,len=1"`
	Encoding  string `flag:"encoding"`

	LogFormat string `flag:"log-format" validate:"oneof=text json"`
	LogLevel  string `flag:"log-level" validate:"oneof=debug info warn error"`
}

var (
	validate = validator.New(validator.WithRequiredStructEnabled())
	trans    ut.Translator
)

func init() {
	// Name fields after their flags in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Errorf("failed to register validation translations: %w", err))
	}
}

func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, describe(err)
	}
	if len(cfg.Courses) == 0 && !cfg.All {
		return nil, errors.New("invalid configuration: at least one course is required unless -all is set")
	}
	return &cfg, nil
}

// describe joins the translated validation errors into one message.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(trans))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
