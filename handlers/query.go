package handlers

import (
	"strconv"

	"yournews/helper"
	"yournews/models"

	"github.com/gin-gonic/gin"
)

// contentQuery reads page and status. It writes the 400 itself.
func contentQuery(c *gin.Context, h *helper.HTTPHelper, pageSize int) (models.ContentQuery, bool) {
	query := models.ContentQuery{
		Page:     1,
		PageSize: pageSize,
		Status:   models.ArticleStatus(c.Query("status")),
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			h.SendBadRequest(c, "invalid page", h.EmptyJsonMap())
			return query, false
		}
		query.Page = page
	}
	return query, true
}

// requiredQueryID reads a mandatory numeric query parameter.
func requiredQueryID(c *gin.Context, h *helper.HTTPHelper, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		h.SendBadRequest(c, name+" is required", h.EmptyJsonMap())
		return nil, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		h.SendBadRequest(c, "invalid "+name, h.EmptyJsonMap())
		return nil, false
	}
	value := uint(id)
	return &value, true
}
