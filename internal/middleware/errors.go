package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/apperrors"
	"github.com/franciscosanchezn/gin-pizza-menu/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders the last error a handler attached with c.Error as an
// APIError body. Internal error text is only exposed when exposeDetails is set.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := classify(err, exposeDetails)

		entry := log.WithFields(logrus.Fields{
			"status":     status,
			"code":       body.Code,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(RequestIDKey),
		})
		if status >= http.StatusInternalServerError {
			entry.WithError(err).Error("Request failed")
		} else {
			entry.WithError(err).Debug("Request rejected")
		}

		c.AbortWithStatusJSON(status, body)
	}
}

func classify(err error, exposeDetails bool) (int, models.APIError) {
	var (
		validationErrs validator.ValidationErrors
		itemErrs       apperrors.ItemErrors
		syntaxErr      *json.SyntaxError
		typeErr        *json.UnmarshalTypeError
	)

	switch {
	case errors.As(err, &itemErrs):
		fields := map[string]string{}
		for _, itemErr := range itemErrs {
			var itemValidation validator.ValidationErrors
			if errors.As(itemErr, &itemValidation) {
				for field, msg := range fieldErrors(fmt.Sprintf("[%d]", itemErr.Index), itemValidation) {
					fields[field] = msg
				}
			}
		}
		return http.StatusBadRequest, validationError(fields)
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationError(fieldErrors("", validationErrs))
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, models.NewAPIError(string(apperrors.ErrCodeInvalidRequest), "malformed JSON request body")
	case errors.As(err, &typeErr):
		msg := fmt.Sprintf("field %q must be of type %s", typeErr.Field, typeErr.Type)
		return http.StatusBadRequest, models.NewAPIError(string(apperrors.ErrCodeInvalidRequest), msg)
	}

	if appErr, ok := apperrors.As(err); ok {
		status := appErr.HTTPStatus()
		message := appErr.Message
		if status >= http.StatusInternalServerError && !exposeDetails {
			message = "internal server error"
		}
		return status, models.NewAPIError(string(appErr.Code), message, appErr.Details)
	}

	message := "internal server error"
	if exposeDetails {
		message = err.Error()
	}
	return http.StatusInternalServerError, models.NewAPIError(string(apperrors.ErrCodeInternal), message)
}

func validationError(fields map[string]string) models.APIError {
	return models.NewAPIError(string(apperrors.ErrCodeValidation), "request validation failed", map[string]any{"fields": fields})
}

// fieldErrors maps each failing field, named by its JSON path, to a readable message
func fieldErrors(prefix string, errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		name := fe.Namespace()
		// drop the root struct name
		if _, rest, ok := strings.Cut(name, "."); ok {
			name = rest
		}
		if prefix != "" {
			name = prefix + "." + name
		}
		fields[name] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
