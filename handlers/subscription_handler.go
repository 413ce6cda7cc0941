package handlers

import (
	"yournews/helper"
	"yournews/middleware"
	"yournews/models"
	"yournews/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionService services.SubscriptionService
	Helper              *helper.HTTPHelper
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService, h *helper.HTTPHelper) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService, Helper: h}
}

func (h *SubscriptionHandler) GetSubscriptions(c *gin.Context) {
	resp, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), middleware.GetViewer(c))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscriptions", resp)
}

func (h *SubscriptionHandler) SubscribeJournalist(c *gin.Context) {
	h.subscribe(c, models.TargetJournalist)
}

func (h *SubscriptionHandler) SubscribePublisher(c *gin.Context) {
	h.subscribe(c, models.TargetPublisher)
}

func (h *SubscriptionHandler) UnsubscribeJournalist(c *gin.Context) {
	h.unsubscribe(c, models.TargetJournalist)
}

func (h *SubscriptionHandler) UnsubscribePublisher(c *gin.Context) {
	h.unsubscribe(c, models.TargetPublisher)
}

func (h *SubscriptionHandler) subscribe(c *gin.Context, targetType models.TargetType) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	target := models.Target{Type: targetType, ID: id}
	if err := h.subscriptionService.Subscribe(c.Request.Context(), middleware.GetViewer(c), target); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Subscribed", map[string]interface{}{
		"target_type": target.Type,
		"target_id":   target.ID,
		"active":      true,
	})
}

func (h *SubscriptionHandler) unsubscribe(c *gin.Context, targetType models.TargetType) {
	id, ok := h.Helper.ParseID(c, "id")
	if !ok {
		return
	}

	target := models.Target{Type: targetType, ID: id}
	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), middleware.GetViewer(c), target); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Unsubscribed", map[string]interface{}{
		"target_type": target.Type,
		"target_id":   target.ID,
		"active":      false,
	})
}
