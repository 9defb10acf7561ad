package controllers

import (
	"errors"
	"log"
	"net/http"

	"gym-backend/services"
	"gym-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates the service error taxonomy into HTTP
// statuses: validation -> 400, not found -> 404, conflict/duplicate -> 409.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError
	var duplicateErr *services.DuplicateError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &duplicateErr):
		utils.JSONError(c, http.StatusConflict, duplicateErr.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
