package handlers

import (
	"yournews/helper"
	"yournews/middleware"
	"yournews/models"
	"yournews/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
	pageSize       int
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper, pageSize int) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h, pageSize: pageSize}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.ContentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), middleware.GetViewer(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Article submitted for review", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	query, ok := contentQuery(c, h.Helper, h.pageSize)
	if !ok {
		return
	}
	h.list(c, query)
}

func (h *ArticleHandler) GetArticlesByJournalist(c *gin.Context) {
	query, ok := contentQuery(c, h.Helper, h.pageSize)
	if !ok {
		return
	}
	if query.JournalistID, ok = requiredQueryID(c, h.Helper, "journalist_id"); !ok {
		return
	}
	h.list(c, query)
}

func (h *ArticleHandler) GetArticlesByPublisher(c *gin.Context) {
	query, ok := contentQuery(c, h.Helper, h.pageSize)
	if !ok {
		return
	}
	if query.PublisherID, ok = requiredQueryID(c, h.Helper, "publisher_id"); !ok {
		return
	}
	h.list(c, query)
}

func (h *ArticleHandler) list(c *gin.Context, query models.ContentQuery) {
	articles, total, err := h.articleService.GetArticles(c.Request.Context(), middleware.GetViewer(c), query)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	items := make([]models.ArticleListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, a.ListItem())
	}

	h.Helper.SendSuccess(c, "Articles", map[string]interface{}{
		"articles":   items,
		"pagination": h.Helper.GeneratePaging(c, query.PageSize, query.Page, total),
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), middleware.GetViewer(c), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}
	var req models.ContentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), middleware.GetViewer(c), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article updated", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), middleware.GetViewer(c), id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) ApproveArticle(c *gin.Context) {
	h.review(c, models.StatusApproved, "Article approved")
}

func (h *ArticleHandler) RejectArticle(c *gin.Context) {
	h.review(c, models.StatusRejected, "Article rejected")
}

func (h *ArticleHandler) review(c *gin.Context, decision models.ArticleStatus, message string) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.articleService.ReviewArticle(c.Request.Context(), middleware.GetViewer(c), id, decision)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, result)
}
