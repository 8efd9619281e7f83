package pkg

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/estatehub/estatehub/internal/domain"
)

// Response is the standard JSON envelope for successful API responses.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
	Meta    any    `json:"meta,omitempty"`
}

// ErrorBody carries the machine-readable error details inside ErrorResponse.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse is the standard JSON envelope for error responses.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ListMeta is the pagination metadata block attached to list responses.
type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Success sends a 200 envelope with the given data.
func Success(c *gin.Context, data any) {
	SuccessMsg(c, data, "Success")
}

// SuccessMsg sends a 200 envelope with the given data and message.
func SuccessMsg(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 envelope with the given data.
func Created(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List sends a 200 envelope with items and pagination metadata.
func List(c *gin.Context, items any, meta any, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    items,
		Meta:    meta,
	})
}

// PageMeta builds the ListMeta for a PageResult.
func PageMeta[T any](result *domain.PageResult[T]) ListMeta {
	return ListMeta{
		Page:       result.Page,
		Limit:      result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}
}

// Error sends a JSON error envelope. If err is a *domain.AppError, its
// code maps to the HTTP status and to the wire code; otherwise a generic
// 500 INTERNAL_ERROR is returned. Internal details are never leaked to
// the client.
func Error(c *gin.Context, err error) {
	status := domain.HTTPStatusCode(err)

	msg := "Internal server error"
	var appErr *domain.AppError
	if errors.As(err, &appErr) && appErr.Code != domain.CodeInternal {
		msg = appErr.Message
	}

	c.JSON(status, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    domain.WireCode(err),
			Message: msg,
		},
	})
}

// Fail sends an explicit error envelope with the given status and wire code.
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it automatically sends a validation error envelope and
// returns false. Because obj is available, JSON struct tags are used
// for field names when possible. Usage in handlers:
//
//	if !pkg.BindAndValidate(c, &req) { return }
func BindAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		validationError(c, err, obj)
		return false
	}
	return true
}

// validationError sends a 400 error envelope. For validator errors the
// details block carries a field → constraint map; when obj is non-nil,
// struct fields are reported under their JSON tag names.
func validationError(c *gin.Context, err error, obj any) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Not a validation error; send a generic bad request.
		Fail(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	jsonTags := buildJSONTagMap(obj)

	fieldErrors := make(map[string]string, len(ve))
	for _, fe := range ve {
		name := fe.Field()
		if tag, ok := jsonTags[fe.StructField()]; ok {
			name = tag
		} else {
			name = strings.ToLower(name)
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fieldErrors[name] = msg
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    "VALIDATION_ERROR",
			Message: "validation error",
			Details: fieldErrors,
		},
	})
}

// buildJSONTagMap returns a map from struct field name to its JSON tag name.
// If obj is nil or not a struct (pointer), it returns an empty map.
func buildJSONTagMap(obj any) map[string]string {
	if obj == nil {
		return nil
	}
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	m := make(map[string]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if name := parseJSONTagName(tag); name != "" {
			m[f.Name] = name
		}
	}
	return m
}

// parseJSONTagName extracts the field name from a JSON struct tag value.
func parseJSONTagName(tag string) string {
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}
