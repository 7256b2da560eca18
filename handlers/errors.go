package handlers

import (
	"errors"
	"strconv"

	"MedClinic/utils"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// respondError maps domain errors onto HTTP statuses: validation failures
// are 400, missing rows are 404, conflicts with existing data are 409.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *utils.ValidationError
		notFoundErr   *utils.NotFoundError
		doubleBooking *utils.DoubleBookingError
		constraint    *utils.ConstraintViolation
		referential   *utils.ReferentialIntegrityError
	)
	switch {
	case errors.As(err, &validationErr):
		var fields validation.Errors
		if errors.As(validationErr.Err, &fields) {
			c.JSON(400, gin.H{"error": validationErr.Error(), "fields": fields})
			return
		}
		c.JSON(400, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(404, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &doubleBooking):
		c.JSON(409, gin.H{"error": doubleBooking.Error(), "code": "double_booking"})
	case errors.As(err, &constraint):
		c.JSON(409, gin.H{"error": constraint.Error(), "field": constraint.Field})
	case errors.As(err, &referential):
		c.JSON(409, gin.H{"error": referential.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

// paramUint parses a numeric path parameter. A zero return with false
// means the handler already wrote the 400 response.
func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(value), true
}
