package utils

import (
	"errors"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StatusCode(statusCode)
	ctx.JSON(iris.Map{"error": title, "message": detail})
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found", ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", ctx)
}

func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusConflict, "Conflict", "Email already registered", ctx)
}

// HandleValidationErrors renders validator.v10 field errors, falling back to
// a generic bad request for malformed JSON.
func HandleValidationErrors(err error, ctx iris.Context) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]iris.Map, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, iris.Map{
				"field": fieldErr.Field(),
				"tag":   fieldErr.Tag(),
				"param": fieldErr.Param(),
			})
		}
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{
			"error":   "Validation Error",
			"message": "One or more fields failed validation",
			"fields":  fields,
		})
		return
	}
	CreateError(iris.StatusBadRequest, "Bad Request", "Invalid request payload", ctx)
}

// HandleCoreError maps the core error taxonomy onto HTTP statuses:
// Unauthenticated 401, Forbidden and ownership failures 403, NotFound 404,
// anything else 500.
func HandleCoreError(err error, ctx iris.Context) {
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		CreateError(iris.StatusUnauthorized, "Unauthenticated", "You must be logged in", ctx)
	case errors.Is(err, core.ErrForbidden):
		CreateError(iris.StatusForbidden, "Forbidden", core.ForbiddenReason(err), ctx)
	case errors.Is(err, core.ErrNotYourResource):
		CreateError(iris.StatusForbidden, "Forbidden", "Listing does not belong to host", ctx)
	case errors.Is(err, core.ErrNotFound):
		CreateError(iris.StatusNotFound, "Not Found", err.Error(), ctx)
	default:
		CreateInternalServerError(ctx)
	}
}
