package handlers

import (
	"career-bridge/domain"
	"encoding/json"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPage         = 1
	defaultLimit        = 20
	defaultHistoryLimit = 10
	maxLimit            = 100
)

func pagination(c *fiber.Ctx) (int, int) {
	return paginationWithLimit(c, defaultLimit)
}

func paginationWithLimit(c *fiber.Ctx, fallback int) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(fallback)))
	if err != nil || limit < 1 {
		limit = fallback
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func currentUser(c *fiber.Ctx) (string, string) {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return userID, role
}

// parseFormData decodes the JSON carried in the multipart "data" field.
func parseFormData(c *fiber.Ctx, dst any) error {
	raw := c.FormValue("data")
	if raw == "" {
		return domain.ErrFormDataRequired
	}
	return json.Unmarshal([]byte(raw), dst)
}

// optionalFile returns nil when the form has no file under name.
func optionalFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}

// nameParam decodes names such as "PSG College" sent percent-encoded in the path.
func nameParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

// formResponse flattens the points award next to the saved record.
type formResponse struct {
	Record any `json:"record"`
	domain.PointsAward
}

type listResponse struct {
	Items      any                       `json:"items"`
	Count      int                       `json:"count"`
	Pagination *domain.PaginationResponse `json:"pagination,omitempty"`
}

func paged(items any, count int, page, limit int, total int64) listResponse {
	p := domain.NewPaginationResponse(page, limit, total)
	return listResponse{Items: items, Count: count, Pagination: &p}
}

func listed(items any, count int) listResponse {
	return listResponse{Items: items, Count: count}
}
