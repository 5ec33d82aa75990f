package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"time"

	"shopadmin/internal/apierror"
	"shopadmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

// bindQueryAndValidate is the query-string counterpart of bindAndValidate.
func bindQueryAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid query parameters: "+err.Error()))
		return false
	}
	return runValidation(c, req)
}

func runValidation(c *gin.Context, req interface{}) bool {
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseIDParam reads an integer path parameter. Writes a 400 and returns
// false on malformed input.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid ID"))
		return 0, false
	}
	return uint(id), true
}

// parseTimeValue accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func parseTimeValue(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// parseOptionalTime converts an optional query value into a time pointer.
// An empty value yields nil (the predicate is dropped, not the results).
func parseOptionalTime(c *gin.Context, name, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := parseTimeValue(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+" — expected RFC 3339 or YYYY-MM-DD"))
		return nil, false
	}
	return &t, true
}

// parseRequiredTime is parseOptionalTime for parameters that must be present.
func parseRequiredTime(c *gin.Context, name, value string) (time.Time, bool) {
	t, err := parseTimeValue(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid "+name+" — expected RFC 3339 or YYYY-MM-DD"))
		return time.Time{}, false
	}
	return t, true
}

// respondError maps service errors onto the HTTP taxonomy: missing entities
// are 404, constraint conflicts 400, anything else a sanitized 500.
func respondError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	var conflict *service.ConflictError
	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
