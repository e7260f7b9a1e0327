package validate

import (
	"reflect"
	"strings"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
)

type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Registering english translator
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, trans)

	// Registering field name translation
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerModuleTag(validate, trans)

	return &Validator{
		validate: validate,
		trans:    trans,
	}
}

// registerModuleTag adds the "cefr_module" tag, which accepts any module
// name cefr.ParseModule knows, in any case.
func registerModuleTag(validate *validator.Validate, trans ut.Translator) {
	_ = validate.RegisterValidation("cefr_module", func(fl validator.FieldLevel) bool {
		_, err := cefr.ParseModule(strings.ToLower(strings.TrimSpace(fl.Field().String())))
		return err == nil
	})
	_ = validate.RegisterTranslation("cefr_module", trans,
		func(ut ut.Translator) error {
			return ut.Add("cefr_module", "{0} must be a known learning module", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("cefr_module", fe.Field())
			return t
		},
	)
}

func (v *Validator) ParseAndValidate(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return err
	}

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	errors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Request body is not valid")
	}

	return NewFieldsError(v.translateError(errors))
}

func (v *Validator) translateError(errs validator.ValidationErrors) (fields map[string]string) {
	fields = make(map[string]string)
	for _, e := range errs {
		fields[e.Field()] = e.Translate(v.trans)
	}
	return fields
}
