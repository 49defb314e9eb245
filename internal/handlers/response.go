package handlers

import (
	"errors"
	"net/http"

	"shopsphere-be/internal/helpers"
	"shopsphere-be/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates workflow errors into status codes: failed
// lookups become 404, business-rule violations 400, anything else 500.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.ResourceNotFoundError
	if errors.As(err, &notFound) {
		helpers.RespondWithError(c, http.StatusNotFound, notFound.Error())
		return
	}

	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		helpers.RespondWithError(c, http.StatusBadRequest, apiErr.Error())
		return
	}

	helpers.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
