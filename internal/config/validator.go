package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/shadeforge/internal/stylesheet"
	"github.com/alexisbeaulieu97/shadeforge/internal/theme"
	sferrors "github.com/alexisbeaulieu97/shadeforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Characters that would let a font name escape its quoted CSS string.
const fontForbidden = `'";{}`

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("seed_color", func(fl validator.FieldLevel) bool {
			_, err := theme.ResolveSeed(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("font_family", func(fl validator.FieldLevel) bool {
			font := fl.Field().String()
			return strings.TrimSpace(font) != "" && !strings.ContainsAny(font, fontForbidden)
		})

		_ = v.RegisterValidation("css_block", func(fl validator.FieldLevel) bool {
			_, err := stylesheet.ParseBlock(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks the schema of cfg.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return sferrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return sferrors.NewValidationError("config", err.Error(), err)
	}

	ve := ves[0]
	field := yamlishFieldName(ve)
	return sferrors.NewValidationError(field, describe(ve), err)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "seed_color":
		return fmt.Sprintf("%q is neither a #rrggbb color nor a preset name", fe.Value())
	case "font_family":
		return fmt.Sprintf("font family must be non-empty and free of %s", fontForbidden)
	case "css_block":
		return fmt.Sprintf("%q is not a css block (want theme or root)", fe.Value())
	case "eq":
		return fmt.Sprintf("unsupported version %v (want %s)", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

// yamlishFieldName turns Config.Output.Path into config.output.path.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
