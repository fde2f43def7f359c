package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"grindup_backend/internal/auth"
	"grindup_backend/internal/config"
	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
	"grindup_backend/internal/services/dto"
	"grindup_backend/pkg/apperrors"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	VerifyEmail(req *dto.VerifyEmailRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(req *dto.RefreshTokenRequest) (*dto.LoginResponse, error)
	Logout(req *dto.LogoutRequest) error
	RequestPasswordReset(req *dto.PasswordResetRequest) error
	ResetPassword(req *dto.ResetPasswordRequest) error
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	tokenRepo    repositories.RefreshTokenRepository
	emailService *EmailService
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokenRepo repositories.RefreshTokenRepository,
	emailService *EmailService,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		tokenRepo:    tokenRepo,
		emailService: emailService,
	}
}

// Register creates the login identity and its organization profile
// together. The profile starts pending admin approval; the account
// starts unverified until the emailed OTP is confirmed.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Role != models.UserRoleCollege && req.Role != models.UserRoleCompany {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	profileID, err := s.createProfile(user, req)
	if err != nil {
		// Keep user creation and profile creation all-or-nothing.
		_ = s.userRepo.Delete(user.ID)
		return nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.Verification.CodeTTL) * time.Minute
	if err := s.userRepo.SetVerification(user.ID, code, time.Now().Add(ttl)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.emailService.SendVerificationOTP(user.Email, code, cfg.Verification.CodeTTL)

	return &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: false,
		ProfileID:  profileID,
	}, nil
}

// VerifyEmail consumes the registration OTP. Expired or mismatched
// codes leave the account unverified.
func (s *AuthServiceImpl) VerifyEmail(req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return apperrors.InternalError(err)
	}
	if user.IsVerified {
		return nil
	}
	if user.VerificationCode == nil || user.VerificationExpiry == nil {
		return apperrors.ErrVerificationExpired
	}
	if time.Now().After(*user.VerificationExpiry) {
		return apperrors.ErrVerificationExpired
	}
	if *user.VerificationCode != req.Code {
		return apperrors.NewBadRequestError("Invalid verification code")
	}
	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrEmailNotVerified
	}
	return s.issueTokens(user)
}

// RefreshToken rotates the refresh token: the presented token is
// deleted and a new pair is issued.
func (s *AuthServiceImpl) RefreshToken(req *dto.RefreshTokenRequest) (*dto.LoginResponse, error) {
	stored, err := s.tokenRepo.FindByToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.Delete(stored.Token)
		return nil, apperrors.NewUnauthorizedError("Refresh token has expired")
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	if err := s.tokenRepo.Delete(stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(req *dto.LogoutRequest) error {
	if err := s.tokenRepo.Delete(req.RefreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset is silent on unknown emails so the endpoint
// cannot be used to probe which addresses are registered.
func (s *AuthServiceImpl) RequestPasswordReset(req *dto.PasswordResetRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	token, err := generateToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	exp := time.Now().Add(1 * time.Hour)
	user.ResetToken = token
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	go s.emailService.SendPasswordReset(user.Email, token)
	return nil
}

func (s *AuthServiceImpl) ResetPassword(req *dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByResetToken(req.Token)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid or expired reset token")
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.NewBadRequestError("Invalid or expired reset token")
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Force re-login everywhere after a reset.
	_ = s.tokenRepo.DeleteByUser(user.ID)
	return nil
}

func (s *AuthServiceImpl) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Helper Methods

func (s *AuthServiceImpl) createProfile(user *models.User, req *dto.RegisterRequest) (string, error) {
	switch req.Role {
	case models.UserRoleCollege:
		profile := &models.CollegeProfile{
			UserID:         user.ID,
			CollegeName:    req.CollegeName,
			Email:          req.Email,
			City:           req.City,
			ApprovalStatus: models.ApprovalStatusPending,
		}
		if err := s.profileRepo.CreateCollegeProfile(profile); err != nil {
			if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
				return "", apperrors.ErrConflict("auth", "College name is already registered")
			}
			return "", apperrors.InternalError(err)
		}
		return profile.ID, nil
	default:
		profile := &models.CompanyProfile{
			UserID:         user.ID,
			CompanyName:    req.CompanyName,
			Email:          req.Email,
			Industry:       req.Industry,
			CompanySize:    req.CompanySize,
			Location:       req.Location,
			ApprovalStatus: models.ApprovalStatusPending,
		}
		if err := s.profileRepo.CreateCompanyProfile(profile); err != nil {
			if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
				return "", apperrors.ErrConflict("auth", "Company name is already registered")
			}
			return "", apperrors.InternalError(err)
		}
		return profile.ID, nil
	}
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	access, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh, err := generateToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.tokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}
	if user.CollegeProfile != nil {
		resp.ProfileID = user.CollegeProfile.ID
	}
	if user.CompanyProfile != nil {
		resp.ProfileID = user.CompanyProfile.ID
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         resp,
	}, nil
}

// generateOTP returns a 6 digit numeric verification code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// generateToken returns an opaque 256 bit random token.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
