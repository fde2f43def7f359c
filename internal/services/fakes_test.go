package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"grindup_backend/internal/email"
	"grindup_backend/internal/models"
	"grindup_backend/internal/repositories"
)

// In-memory repository fakes. Mutex-guarded because services fire
// notification and counter side effects on goroutines.

type noopEmailProvider struct{}

func (p *noopEmailProvider) Send(e *email.Email) error { return nil }
func (p *noopEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	return nil
}
func (p *noopEmailProvider) Close() error { return nil }

func newTestEmailService() *EmailService {
	return NewEmailService(&noopEmailProvider{})
}

var idSeq atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, idSeq.Add(1))
}

// --- users ---

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = nextID("user")
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsVerified = true
	u.VerificationCode = nil
	u.VerificationExpiry = nil
	return nil
}

func (r *fakeUserRepo) SetVerification(userID, code string, expiry time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.VerificationCode = &code
	u.VerificationExpiry = &expiry
	return nil
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) CountByRole(role models.UserRole) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

// --- refresh tokens ---

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token.ID == "" {
		token.ID = nextID("rt")
	}
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeTokenRepo) FindByToken(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
	return nil
}

func (r *fakeTokenRepo) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeTokenRepo) CleanExpired() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	now := time.Now()
	for k, t := range r.tokens {
		if t.ExpiresAt.Before(now) {
			delete(r.tokens, k)
			removed++
		}
	}
	return removed, nil
}

// --- profiles ---

type fakeProfileRepo struct {
	mu        sync.Mutex
	colleges  map[string]*models.CollegeProfile
	companies map[string]*models.CompanyProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		colleges:  make(map[string]*models.CollegeProfile),
		companies: make(map[string]*models.CompanyProfile),
	}
}

func (r *fakeProfileRepo) CreateCollegeProfile(profile *models.CollegeProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.colleges {
		if p.CollegeName == profile.CollegeName || p.UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		profile.ID = nextID("college")
	}
	cp := *profile
	r.colleges[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) FindCollegeProfileByID(id string) (*models.CollegeProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.colleges[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) FindCollegeProfileByUserID(userID string) (*models.CollegeProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.colleges {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) UpdateCollegeProfile(profile *models.CollegeProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.colleges[profile.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	cp := *profile
	r.colleges[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) DeleteCollegeProfile(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.colleges, id)
	return nil
}

func (r *fakeProfileRepo) ListCollegeProfiles(status models.ApprovalStatus, limit, offset int) ([]models.CollegeProfile, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CollegeProfile
	for _, p := range r.colleges {
		if status == "" || p.ApprovalStatus == status {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProfileRepo) CreateCompanyProfile(profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.companies {
		if p.CompanyName == profile.CompanyName || p.UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		profile.ID = nextID("company")
	}
	cp := *profile
	r.companies[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) FindCompanyProfileByID(id string) (*models.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) FindCompanyProfileByUserID(userID string) (*models.CompanyProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.companies {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) UpdateCompanyProfile(profile *models.CompanyProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[profile.ID]; !ok {
		return repositories.ErrProfileNotFound
	}
	cp := *profile
	r.companies[profile.ID] = &cp
	return nil
}

func (r *fakeProfileRepo) DeleteCompanyProfile(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.companies, id)
	return nil
}

func (r *fakeProfileRepo) ListCompanyProfiles(status models.ApprovalStatus, limit, offset int) ([]models.CompanyProfile, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.CompanyProfile
	for _, p := range r.companies {
		if status == "" || p.ApprovalStatus == status {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeProfileRepo) SetCollegeApproval(id string, status models.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.colleges[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.ApprovalStatus = status
	return nil
}

func (r *fakeProfileRepo) SetCompanyApproval(id string, status models.ApprovalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.companies[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.ApprovalStatus = status
	return nil
}

// --- jobs ---

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*models.JobPosting
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.JobPosting)}
}

func (r *fakeJobRepo) Create(job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.ID == "" {
		job.ID = nextID("job")
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) Update(job *models.JobPosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) ListByCompany(companyProfileID string) ([]models.JobPosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, j := range r.jobs {
		if j.CompanyProfileID == companyProfileID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) Search(criteria repositories.JobSearchCriteria) ([]models.JobPosting, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.JobPosting
	for _, j := range r.jobs {
		if criteria.Status != "" && string(j.Status) != criteria.Status {
			continue
		}
		if criteria.CompanyID != "" && j.CompanyProfileID != criteria.CompanyID {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (r *fakeJobRepo) IncrementStat(jobID string, field repositories.JobStatField) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	switch field {
	case repositories.StatTotalApplications:
		j.Stats.TotalApplications++
	case repositories.StatShortlisted:
		j.Stats.Shortlisted++
	case repositories.StatInterviewed:
		j.Stats.Interviewed++
	case repositories.StatHired:
		j.Stats.Hired++
	case repositories.StatRejected:
		j.Stats.Rejected++
	}
	return nil
}

func (r *fakeJobRepo) CloseExpired(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var closed int64
	for _, j := range r.jobs {
		if j.Status == models.JobStatusActive && j.ApplicationDeadline != nil && j.ApplicationDeadline.Before(now) {
			j.Status = models.JobStatusClosed
			closed++
		}
	}
	return closed, nil
}

// --- invitations ---

type fakeInvitationRepo struct {
	mu          sync.Mutex
	invitations map[string]*models.Invitation
	apps        *fakeApplicationRepo
	jobs        *fakeJobRepo
	profiles    *fakeProfileRepo
}

func newFakeInvitationRepo(apps *fakeApplicationRepo, jobs *fakeJobRepo, profiles *fakeProfileRepo) *fakeInvitationRepo {
	return &fakeInvitationRepo{
		invitations: make(map[string]*models.Invitation),
		apps:        apps,
		jobs:        jobs,
		profiles:    profiles,
	}
}

func (r *fakeInvitationRepo) Create(invitation *models.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invitations {
		if inv.JobID == invitation.JobID &&
			inv.CompanyProfileID == invitation.CompanyProfileID &&
			inv.CollegeProfileID == invitation.CollegeProfileID {
			return repositories.ErrInvitationAlreadyExists
		}
	}
	if invitation.ID == "" {
		invitation.ID = nextID("inv")
	}
	cp := *invitation
	r.invitations[invitation.ID] = &cp
	return nil
}

func (r *fakeInvitationRepo) FindByID(id string) (*models.Invitation, error) {
	r.mu.Lock()
	inv, ok := r.invitations[id]
	if !ok {
		r.mu.Unlock()
		return nil, repositories.ErrInvitationNotFound
	}
	cp := *inv
	r.mu.Unlock()

	// Mirror the preloads the real repository performs.
	if job, err := r.jobs.FindByID(cp.JobID); err == nil {
		cp.Job = job
	}
	if company, err := r.profiles.FindCompanyProfileByID(cp.CompanyProfileID); err == nil {
		cp.Company = company
	}
	if college, err := r.profiles.FindCollegeProfileByID(cp.CollegeProfileID); err == nil {
		cp.College = college
	}
	return &cp, nil
}

func (r *fakeInvitationRepo) UpdateStatusIfPending(id string, status models.InvitationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok || inv.Status != models.InvitationStatusPending {
		return repositories.ErrInvitationNotFound
	}
	inv.Status = status
	return nil
}

func (r *fakeInvitationRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.invitations, id)
	return nil
}

func (r *fakeInvitationRepo) ListByCollege(collegeProfileID string) ([]models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Invitation
	for _, inv := range r.invitations {
		if inv.CollegeProfileID == collegeProfileID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) ListByCompany(companyProfileID string) ([]models.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Invitation
	for _, inv := range r.invitations {
		if inv.CompanyProfileID == companyProfileID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) AcceptWithApplication(invitationID string, application *models.Application) error {
	if err := r.apps.Create(application); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[invitationID]
	if !ok || inv.Status != models.InvitationStatusPending {
		// Roll the application back, as the transaction would.
		r.apps.deleteByID(application.ID)
		return repositories.ErrInvitationNotFound
	}
	inv.Status = models.InvitationStatusAccepted
	return nil
}

// --- applications ---

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[string]*models.Application
	jobs         *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*models.Application),
		jobs:         jobs,
	}
}

func (r *fakeApplicationRepo) Create(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.CollegeProfileID == application.CollegeProfileID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if application.ID == "" {
		application.ID = nextID("app")
	}
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) deleteByID(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.applications, id)
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	a, ok := r.applications[id]
	if !ok {
		r.mu.Unlock()
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	r.mu.Unlock()

	if job, err := r.jobs.FindByID(cp.JobID); err == nil {
		cp.Job = job
	}
	return &cp, nil
}

func (r *fakeApplicationRepo) FindByJobAndCollege(jobID, collegeProfileID string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.JobID == jobID && a.CollegeProfileID == collegeProfileID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) ListByCollege(collegeProfileID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.CollegeProfileID == collegeProfileID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ListByJob(jobID string) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) UpdateWithStatIncrement(application *models.Application, jobID string, field repositories.JobStatField) error {
	if err := r.Update(application); err != nil {
		return err
	}
	if field == "" {
		return nil
	}
	return r.jobs.IncrementStat(jobID, field)
}

func (r *fakeApplicationRepo) Update(application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[application.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	cp := *application
	cp.Job = nil
	cp.College = nil
	r.applications[application.ID] = &cp
	return nil
}

// --- notifications ---

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.ID == "" {
		notification.ID = nextID("ntf")
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(userID string, limit, offset int) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(userID, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == notificationID && r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) CreateInvitationNotification(collegeUserID, companyName, jobTitle, invitationID string) error {
	return r.Create(&models.Notification{UserID: collegeUserID, Type: repositories.NotificationTypeInvitationReceived, Title: "Invitation"})
}

func (r *fakeNotificationRepo) CreateInvitationResponseNotification(companyUserID, collegeName string, status models.InvitationStatus) error {
	return r.Create(&models.Notification{UserID: companyUserID, Type: repositories.NotificationTypeInvitationResponse, Title: "Invitation response"})
}

func (r *fakeNotificationRepo) CreateApplicationReceivedNotification(companyUserID, collegeName, jobTitle, applicationID string) error {
	return r.Create(&models.Notification{UserID: companyUserID, Type: repositories.NotificationTypeApplicationReceived, Title: "Application received"})
}

func (r *fakeNotificationRepo) CreateApplicationStatusNotification(collegeUserID, jobTitle string, status models.ApplicationStatus) error {
	return r.Create(&models.Notification{UserID: collegeUserID, Type: repositories.NotificationTypeApplicationStatus, Title: "Application status"})
}

func (r *fakeNotificationRepo) CreateApprovalNotification(userID string, status models.ApprovalStatus) error {
	return r.Create(&models.Notification{UserID: userID, Type: repositories.NotificationTypeProfileApproval, Title: "Profile review"})
}

var (
	_ repositories.UserRepository         = (*fakeUserRepo)(nil)
	_ repositories.RefreshTokenRepository = (*fakeTokenRepo)(nil)
	_ repositories.ProfileRepository      = (*fakeProfileRepo)(nil)
	_ repositories.JobRepository          = (*fakeJobRepo)(nil)
	_ repositories.InvitationRepository   = (*fakeInvitationRepo)(nil)
	_ repositories.ApplicationRepository  = (*fakeApplicationRepo)(nil)
	_ repositories.NotificationRepository = (*fakeNotificationRepo)(nil)
)

// --- shared fixture ---

type serviceFixture struct {
	users         *fakeUserRepo
	tokens        *fakeTokenRepo
	profiles      *fakeProfileRepo
	jobs          *fakeJobRepo
	invitations   *fakeInvitationRepo
	applications  *fakeApplicationRepo
	notifications *fakeNotificationRepo
}

func newServiceFixture() *serviceFixture {
	jobs := newFakeJobRepo()
	profiles := newFakeProfileRepo()
	apps := newFakeApplicationRepo(jobs)
	return &serviceFixture{
		users:         newFakeUserRepo(),
		tokens:        newFakeTokenRepo(),
		profiles:      profiles,
		jobs:          jobs,
		invitations:   newFakeInvitationRepo(apps, jobs, profiles),
		applications:  apps,
		notifications: newFakeNotificationRepo(),
	}
}

func (f *serviceFixture) addCompany(userID, name string, status models.ApprovalStatus) *models.CompanyProfile {
	profile := &models.CompanyProfile{
		UserID:         userID,
		CompanyName:    name,
		Email:          name + "@example.com",
		ApprovalStatus: status,
	}
	_ = f.profiles.CreateCompanyProfile(profile)
	return profile
}

func (f *serviceFixture) addCollege(userID, name string, status models.ApprovalStatus) *models.CollegeProfile {
	profile := &models.CollegeProfile{
		UserID:         userID,
		CollegeName:    name,
		Email:          name + "@example.com",
		ApprovalStatus: status,
	}
	_ = f.profiles.CreateCollegeProfile(profile)
	return profile
}

func (f *serviceFixture) addJob(companyProfileID, title string, status models.JobStatus, deadline *time.Time) *models.JobPosting {
	job := &models.JobPosting{
		CompanyProfileID:    companyProfileID,
		Title:               title,
		Status:              status,
		IsActive:            true,
		ApplicationDeadline: deadline,
	}
	_ = f.jobs.Create(job)
	return job
}
