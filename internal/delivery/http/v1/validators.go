package v1

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
)

// registerValidators hooks the catalog enums into gin's binding engine so
// request structs can tag fields with `jobtype` and `experience`.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return domain.ValidJobType(fl.Field().String())
	})
	v.RegisterValidation("experience", func(fl validator.FieldLevel) bool {
		return domain.ValidExperience(fl.Field().String())
	})
}
