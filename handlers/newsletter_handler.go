package handlers

import (
	"yournews/helper"
	"yournews/middleware"
	"yournews/models"
	"yournews/services"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterService services.NewsletterService
	Helper            *helper.HTTPHelper
	pageSize          int
}

func NewNewsletterHandler(newsletterService services.NewsletterService, h *helper.HTTPHelper, pageSize int) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService, Helper: h, pageSize: pageSize}
}

func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	var req models.ContentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	result, err := h.newsletterService.CreateNewsletter(c.Request.Context(), middleware.GetViewer(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Newsletter published", result)
}

func (h *NewsletterHandler) GetNewsletters(c *gin.Context) {
	query, ok := contentQuery(c, h.Helper, h.pageSize)
	if !ok {
		return
	}
	// newsletters have no status
	query.Status = ""

	newsletters, total, err := h.newsletterService.GetNewsletters(c.Request.Context(), middleware.GetViewer(c), query)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	items := make([]models.NewsletterListItem, 0, len(newsletters))
	for _, n := range newsletters {
		items = append(items, n.ListItem())
	}

	h.Helper.SendSuccess(c, "Newsletters", map[string]interface{}{
		"newsletters": items,
		"pagination":  h.Helper.GeneratePaging(c, query.PageSize, query.Page, total),
	})
}

func (h *NewsletterHandler) GetNewsletter(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	newsletter, err := h.newsletterService.GetNewsletter(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter", newsletter)
}

func (h *NewsletterHandler) UpdateNewsletter(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}
	var req models.ContentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	newsletter, err := h.newsletterService.UpdateNewsletter(c.Request.Context(), middleware.GetViewer(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter updated", newsletter)
}

func (h *NewsletterHandler) DeleteNewsletter(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.newsletterService.DeleteNewsletter(c.Request.Context(), middleware.GetViewer(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Newsletter deleted", h.Helper.EmptyJsonMap())
}
