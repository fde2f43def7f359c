package handlers

import (
	"net/http"

	"grindup_backend/internal/middleware"
	"grindup_backend/internal/models"
	"grindup_backend/internal/services"
	"grindup_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	college := r.Group("")
	college.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCollege))
	{
		college.POST("/jobs/:jobId/applications", h.Apply)
		college.GET("/applications/my", h.ListMyApplications)
		college.POST("/applications/:applicationId/withdraw", h.Withdraw)
	}

	company := r.Group("")
	company.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		company.GET("/jobs/:jobId/applications", h.ListJobApplications)
		company.PUT("/applications/:applicationId/status", h.UpdateStatus)
	}

	authed := r.Group("/applications")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("/:applicationId", h.GetApplication)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.ApplyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	application, err := h.applicationService.ApplyDirectly(userID, c.Param("jobId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	application, err := h.applicationService.UpdateStatus(userID, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.WithdrawRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	application, err := h.applicationService.Withdraw(userID, c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role := middleware.GetUserRole(c)
	application, err := h.applicationService.GetApplication(userID, role, c.Param("applicationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applications, err := h.applicationService.ListMyApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	applications, err := h.applicationService.ListJobApplications(userID, c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": applications})
}
