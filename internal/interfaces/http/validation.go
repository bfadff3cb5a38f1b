package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"atelier/internal/domain/catalog"
)

// registerValidations adds the catalog-aware binding tags so request structs
// can declare `binding:"tier"` and `binding:"level"` instead of re-checking
// in every handler.
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		_, err := catalog.ParseTier(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		_, err := catalog.ParseLevel(fl.Field().String())
		return err == nil
	})
}
