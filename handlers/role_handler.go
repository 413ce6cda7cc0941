package handlers

import (
	"yournews/helper"
	"yournews/middleware"
	"yournews/models"
	"yournews/services"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService services.RoleService
	Helper      *helper.HTTPHelper
}

func NewRoleHandler(roleService services.RoleService, h *helper.HTTPHelper) *RoleHandler {
	return &RoleHandler{roleService: roleService, Helper: h}
}

func (h *RoleHandler) Apply(c *gin.Context) {
	var req models.RoleApplicationRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	app, err := h.roleService.Apply(c.Request.Context(), middleware.GetViewer(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Application submitted", app)
}

func (h *RoleHandler) GetApplications(c *gin.Context) {
	apps, err := h.roleService.GetApplications(c.Request.Context(), models.ApplicationStatus(c.Query("status")))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Role applications", apps)
}

func (h *RoleHandler) ApproveApplication(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	var req models.ApproveApplicationRequest
	// the body is optional for publisher applications
	if c.Request.ContentLength != 0 && !h.Helper.BindJSON(c, &req) {
		return
	}

	result, err := h.roleService.ApproveApplication(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Application approved", result)
}

func (h *RoleHandler) RejectApplication(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	result, err := h.roleService.RejectApplication(c.Request.Context(), id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Application rejected", result)
}

func (h *RoleHandler) ChangeRole(c *gin.Context) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}
	var req models.ChangeRoleRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	user, err := h.roleService.ChangeRole(c.Request.Context(), id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Role updated", user)
}
