package handlers

import (
	"net/http"

	"grindup_backend/internal/middleware"
	"grindup_backend/internal/models"
	"grindup_backend/internal/services"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// maxPlacementRecordSize caps uploaded placement record documents.
const maxPlacementRecordSize = 10 << 20

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/profiles")
	{
		public.GET("/colleges/:id", h.GetCollegeProfile)
		public.GET("/companies/:id", h.GetCompanyProfile)
	}

	// Deletion is authorized in the service: the owner or an admin.
	authed := r.Group("/profiles")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.DELETE("/colleges/:id", h.DeleteCollegeProfile)
		authed.DELETE("/companies/:id", h.DeleteCompanyProfile)
	}

	college := r.Group("/profiles/college")
	college.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCollege))
	{
		college.GET("/me", h.GetMyCollegeProfile)
		college.PUT("/me", h.UpdateCollegeProfile)
		college.POST("/me/placement-record", h.UploadPlacementRecord)
	}

	company := r.Group("/profiles/company")
	company.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		company.GET("/me", h.GetMyCompanyProfile)
		company.PUT("/me", h.UpdateCompanyProfile)
	}
}

func (h *ProfileHandler) GetMyCollegeProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetMyCollegeProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetMyCompanyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetMyCompanyProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateCollegeProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCollegeProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	profile, err := h.profileService.UpdateCollegeProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateCompanyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	profile, err := h.profileService.UpdateCompanyProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadPlacementRecord(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("A file field is required"))
		return
	}
	if fileHeader.Size > maxPlacementRecordSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	profile, err := h.profileService.UploadPlacementRecord(
		c.Request.Context(), userID, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), file,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) DeleteCollegeProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.profileService.DeleteCollegeProfile(userID, middleware.GetUserRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

func (h *ProfileHandler) DeleteCompanyProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	if err := h.profileService.DeleteCompanyProfile(userID, middleware.GetUserRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}

func (h *ProfileHandler) GetCollegeProfile(c *gin.Context) {
	profile, err := h.profileService.GetCollegeProfile(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetCompanyProfile(c *gin.Context) {
	profile, err := h.profileService.GetCompanyProfile(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
