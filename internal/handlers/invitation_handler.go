package handlers

import (
	"net/http"

	"grindup_backend/internal/middleware"
	"grindup_backend/internal/models"
	"grindup_backend/internal/services"
	"grindup_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	*BaseHandler
	invitationService services.InvitationService
}

func NewInvitationHandler(base *BaseHandler, invitationService services.InvitationService) *InvitationHandler {
	return &InvitationHandler{BaseHandler: base, invitationService: invitationService}
}

func (h *InvitationHandler) RegisterRoutes(r *gin.RouterGroup) {
	company := r.Group("/invitations")
	company.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		company.POST("", h.SendInvitation)
		company.GET("/sent", h.ListSentInvitations)
		company.DELETE("/:invitationId", h.DeleteInvitation)
	}

	college := r.Group("/invitations")
	college.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCollege))
	{
		college.GET("/my", h.ListMyInvitations)
		college.POST("/:invitationId/accept", h.AcceptInvitation)
		college.POST("/:invitationId/decline", h.DeclineInvitation)
	}
}

func (h *InvitationHandler) SendInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.SendInvitationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	invitation, err := h.invitationService.SendInvitation(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	resp, err := h.invitationService.AcceptInvitation(userID, c.Param("invitationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InvitationHandler) DeclineInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	invitation, err := h.invitationService.DeclineInvitation(userID, c.Param("invitationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitation)
}

func (h *InvitationHandler) DeleteInvitation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.invitationService.DeleteInvitation(userID, c.Param("invitationId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invitation deleted"})
}

func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	invitations, err := h.invitationService.ListMyInvitations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}

func (h *InvitationHandler) ListSentInvitations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	invitations, err := h.invitationService.ListSentInvitations(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invitations": invitations})
}
