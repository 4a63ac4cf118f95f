// file: internals/helpers/json_response.go
package helper

import (
	"reflect"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Pagination (cursor style)
=================================*/

type Pagination struct {
	PerPage    int     `json:"per_page"`
	Count      int     `json:"count"` // jumlah item di halaman ini
	NextCursor *string `json:"next_cursor,omitempty"`
	HasNext    bool    `json:"has_next"`
}

func BuildCursorPagination(perPage, count int, nextCursor string) Pagination {
	p := Pagination{PerPage: perPage, Count: count}
	if nextCursor != "" {
		p.NextCursor = &nextCursor
		p.HasNext = true
	}
	return p
}

func lenOf(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return rv.Len()
	default:
		return 0
	}
}

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code,omitempty"`
	Errors    map[string]string   `json:"errors,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

// JsonValidationError: khusus error validasi (422), field → pesan
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success:   false,
		Message:   "validation failed",
		ErrorCode: "VALIDATION_ERROR",
		Errors:    fieldErrors,
	})
}

// FromFiberError: ubah *fiber.Error hasil Transaction jadi response konsisten.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}

/* ===============================
   JSON responses (standard success)
=================================*/

// JsonList: list + pagination (GET /list dsb)
func JsonList(c *fiber.Ctx, message string, data any, pagination Pagination) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	if pagination.Count == 0 {
		pagination.Count = lenOf(data)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"message":    message,
		"data":       data,
		"pagination": pagination,
	})
}

// JsonOK: sukses generic (GET detail, aggregate, dsb)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JsonDeleted(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}
