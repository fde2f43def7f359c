package handlers

import (
	"net/http"

	"grindup_backend/internal/middleware"
	"grindup_backend/internal/models"
	"grindup_backend/internal/services"
	"grindup_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, adminService: adminService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/colleges", h.ListColleges)
		admin.GET("/companies", h.ListCompanies)
		admin.POST("/colleges/:id/approval", h.SetCollegeApproval)
		admin.POST("/companies/:id/approval", h.SetCompanyApproval)
	}
}

func (h *AdminHandler) ListColleges(c *gin.Context) {
	status := models.ApprovalStatus(c.Query("status"))
	page, pageSize := ParsePagination(c)
	resp, err := h.adminService.ListColleges(status, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	status := models.ApprovalStatus(c.Query("status"))
	page, pageSize := ParsePagination(c)
	resp, err := h.adminService.ListCompanies(status, pageSize, (page-1)*pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetCollegeApproval(c *gin.Context) {
	var req dto.ApprovalRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	if err := h.adminService.SetCollegeApproval(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approval decision recorded"})
}

func (h *AdminHandler) SetCompanyApproval(c *gin.Context) {
	var req dto.ApprovalRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	if err := h.adminService.SetCompanyApproval(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approval decision recorded"})
}
