package services

import (
	"net/http"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
)

type JobService interface {
	CreateJob(userID string, req *dto.CreateJobRequest) (*models.Job, error)
	ListActiveJobs() ([]dto.JobResponse, error)
	GetJob(jobID string) (*dto.JobResponse, error)
	ListJobsByUser(userID string) ([]models.Job, error)
	CloseJob(jobID, requesterID string) (*models.Job, error)
	ExpressInterest(jobID, userID string) (*models.Interest, error)
	ListApplicants(jobID, requesterID string) ([]dto.ApplicantResponse, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	userRepo     repositories.UserRepository
	interestRepo repositories.InterestRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	interestRepo repositories.InterestRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		userRepo:     userRepo,
		interestRepo: interestRepo,
	}
}

// CreateJob posts a new job for an employer. Company and location
// default to the employer's own profile when omitted.
func (s *JobServiceImpl) CreateJob(userID string, req *dto.CreateJobRequest) (*models.Job, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if user.Role != models.UserRoleEmployer {
		return nil, appErrors.NewForbiddenError("Only employers can post jobs")
	}

	job := &models.Job{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Requirements: req.Requirements,
		PostedBy:     user.ID,
	}
	if job.Company == "" {
		job.Company = user.CompanyName
	}
	if job.Location == "" {
		job.Location = user.CompanyLocation
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return job, nil
}

// ListActiveJobs returns open jobs newest-first, each enriched with a
// snapshot of its poster.
func (s *JobServiceImpl) ListActiveJobs() ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.FindActive()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return s.enrich(jobs), nil
}

// GetJob returns one job regardless of state.
func (s *JobServiceImpl) GetJob(jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	enriched := s.enrich([]models.Job{*job})
	return &enriched[0], nil
}

// ListJobsByUser returns every job the user posted, closed included.
func (s *JobServiceImpl) ListJobsByUser(userID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByUser(userID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return jobs, nil
}

// CloseJob marks a job closed. Only the poster may close it; closing an
// already closed job is an idempotent success.
func (s *JobServiceImpl) CloseJob(jobID, requesterID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if job.PostedBy != requesterID {
		return nil, appErrors.New(appErrors.CodeNotJobOwner, "You can only close your own job posts", http.StatusForbidden)
	}

	closed, err := s.jobRepo.Close(jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return closed, nil
}

// ExpressInterest records interest in an open job. The (job, user) pair
// is exactly-once: a repeat returns the original record.
func (s *JobServiceImpl) ExpressInterest(jobID, userID string) (*models.Interest, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if job.IsClosed {
		return nil, appErrors.ErrJobClosed
	}

	existing, err := s.interestRepo.FindByJobAndUser(jobID, userID)
	if err == nil {
		return existing, nil
	}
	if !appErrors.Is(err, repositories.ErrInterestNotFound) {
		return nil, appErrors.InternalError(err)
	}

	interest := &models.Interest{
		JobID:  jobID,
		UserID: userID,
	}
	if err := s.interestRepo.Create(interest); err != nil {
		return nil, appErrors.InternalError(err)
	}
	return interest, nil
}

// ListApplicants returns the interested users' public profiles. The
// requester must be the poster and an employer.
func (s *JobServiceImpl) ListApplicants(jobID, requesterID string) ([]dto.ApplicantResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if appErrors.Is(err, repositories.ErrJobNotFound) {
			return nil, appErrors.ErrJobNotFound
		}
		return nil, appErrors.InternalError(err)
	}

	if job.PostedBy != requesterID {
		return nil, appErrors.New(appErrors.CodeNotJobOwner, "You can only view applicants for your own jobs", http.StatusForbidden)
	}

	requester, err := s.userRepo.FindByID(requesterID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if requester.Role != models.UserRoleEmployer {
		return nil, appErrors.NewForbiddenError("Only employers can view applicants")
	}

	interests, err := s.interestRepo.FindByJob(jobID)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	applicants := make([]dto.ApplicantResponse, 0, len(interests))
	for i := range interests {
		applicant, err := s.userRepo.FindByID(interests[i].UserID)
		if err != nil {
			// Dangling interest; skip rather than fail the listing.
			continue
		}
		applicants = append(applicants, dto.ApplicantResponse{
			InterestID: interests[i].ID,
			AppliedAt:  interests[i].CreatedAt,
			User:       dto.NewUserResponse(applicant),
		})
	}
	return applicants, nil
}

// enrich attaches the poster snapshot to each job; a missing poster
// yields a null snapshot, never an error.
func (s *JobServiceImpl) enrich(jobs []models.Job) []dto.JobResponse {
	responses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp := dto.JobResponse{Job: jobs[i]}
		if user, err := s.userRepo.FindByID(jobs[i].PostedBy); err == nil {
			resp.PostedByUser = &dto.PostedByUser{
				ID:    user.ID,
				Name:  user.Name,
				Photo: user.Photo,
			}
		}
		responses = append(responses, resp)
	}
	return responses
}
