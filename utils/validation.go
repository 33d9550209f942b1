package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// HandleValidationErrors converts a ctx.ReadJSON failure into a 400. When the
// app validator produced field errors they are listed so the form can mark
// the offending inputs; any other decode failure gets a generic message.
func HandleValidationErrors(err error, ctx iris.Context) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]iris.Map, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
			})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":  "Vul alle verplichte velden in.",
			"fields": fields,
		})
		return
	}
	ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{"error": "Ongeldige aanvraag."})
}
