package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/internal/storage"
	"grindup_backend/pkg/apperrors"
)

type ProfileService interface {
	GetMyCollegeProfile(userID string) (*models.CollegeProfile, error)
	GetMyCompanyProfile(userID string) (*models.CompanyProfile, error)
	UpdateCollegeProfile(userID string, req *dto.UpdateCollegeProfileRequest) (*models.CollegeProfile, error)
	UpdateCompanyProfile(userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error)
	UploadPlacementRecord(ctx context.Context, userID, filename, contentType string, reader io.Reader) (*models.CollegeProfile, error)
	GetCollegeProfile(id string) (*models.CollegeProfile, error)
	GetCompanyProfile(id string) (*models.CompanyProfile, error)
	DeleteCollegeProfile(requesterUserID string, requesterRole models.UserRole, profileID string) error
	DeleteCompanyProfile(requesterUserID string, requesterRole models.UserRole, profileID string) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	store       storage.Storage
}

func NewProfileService(profileRepo repositories.ProfileRepository, store storage.Storage) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo, store: store}
}

func (s *ProfileServiceImpl) GetMyCollegeProfile(userID string) (*models.CollegeProfile, error) {
	profile, err := s.profileRepo.FindCollegeProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetMyCompanyProfile(userID string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfileByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateCollegeProfile edits business fields. ApprovalStatus is not
// touchable here; only admin approval flips it.
func (s *ProfileServiceImpl) UpdateCollegeProfile(userID string, req *dto.UpdateCollegeProfileRequest) (*models.CollegeProfile, error) {
	profile, err := s.GetMyCollegeProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.CollegeName != nil {
		profile.CollegeName = *req.CollegeName
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.ContactPerson != nil {
		profile.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}
	if req.PlacementStats != nil {
		profile.SetPlacementStats(req.PlacementStats)
	}

	if err := s.profileRepo.UpdateCollegeProfile(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrConflict("profile", "College name is already registered")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCompanyProfile(userID string, req *dto.UpdateCompanyProfileRequest) (*models.CompanyProfile, error) {
	profile, err := s.GetMyCompanyProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.CompanySize != nil {
		profile.CompanySize = *req.CompanySize
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Website != nil {
		profile.Website = *req.Website
	}
	if req.ContactPerson != nil {
		profile.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}

	if err := s.profileRepo.UpdateCompanyProfile(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrConflict("profile", "Company name is already registered")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UploadPlacementRecord stores the document and records its URL on the
// profile. A storage failure surfaces as unavailable; the profile is
// untouched.
func (s *ProfileServiceImpl) UploadPlacementRecord(ctx context.Context, userID, filename, contentType string, reader io.Reader) (*models.CollegeProfile, error) {
	profile, err := s.GetMyCollegeProfile(userID)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("placement-records/%s/%d%s", profile.ID, time.Now().UnixNano(), filepath.Ext(filename))
	if err := s.store.Save(ctx, path, reader, contentType); err != nil {
		return nil, apperrors.ErrUnavailable(err, "profile", "Document storage is unavailable")
	}
	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.ErrUnavailable(err, "profile", "Document storage is unavailable")
	}

	profile.PlacementRecordURL = url
	if err := s.profileRepo.UpdateCollegeProfile(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// DeleteCollegeProfile removes a college profile. Only the owning
// account or an admin may delete it.
func (s *ProfileServiceImpl) DeleteCollegeProfile(requesterUserID string, requesterRole models.UserRole, profileID string) error {
	profile, err := s.GetCollegeProfile(profileID)
	if err != nil {
		return err
	}
	if requesterRole != models.UserRoleAdmin && profile.UserID != requesterUserID {
		return apperrors.NewForbiddenError("Profile belongs to another account")
	}
	if err := s.profileRepo.DeleteCollegeProfile(profile.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) DeleteCompanyProfile(requesterUserID string, requesterRole models.UserRole, profileID string) error {
	profile, err := s.GetCompanyProfile(profileID)
	if err != nil {
		return err
	}
	if requesterRole != models.UserRoleAdmin && profile.UserID != requesterUserID {
		return apperrors.NewForbiddenError("Profile belongs to another account")
	}
	if err := s.profileRepo.DeleteCompanyProfile(profile.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) GetCollegeProfile(id string) (*models.CollegeProfile, error) {
	profile, err := s.profileRepo.FindCollegeProfileByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "College profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetCompanyProfile(id string) (*models.CompanyProfile, error) {
	profile, err := s.profileRepo.FindCompanyProfileByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Company profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
