package handlers

import (
	"yournews/helper"
	"yournews/services"

	"github.com/gin-gonic/gin"
)

type DirectoryHandler struct {
	directoryService services.DirectoryService
	Helper           *helper.HTTPHelper
}

func NewDirectoryHandler(directoryService services.DirectoryService, h *helper.HTTPHelper) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService, Helper: h}
}

func (h *DirectoryHandler) GetPublishers(c *gin.Context) {
	publishers, err := h.directoryService.GetPublishers(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Publishers", publishers)
}

func (h *DirectoryHandler) GetPublisher(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}
	publisher, err := h.directoryService.GetPublisher(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Publisher", publisher)
}

func (h *DirectoryHandler) GetJournalists(c *gin.Context) {
	journalists, err := h.directoryService.GetJournalists(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Journalists", journalists)
}

func (h *DirectoryHandler) GetJournalist(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}
	journalist, err := h.directoryService.GetJournalist(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, "Journalist", journalist)
}
