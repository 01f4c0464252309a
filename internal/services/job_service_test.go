package services

import (
	"net/http"
	"testing"

	"jobboard_backend/internal/appErrors"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJobService(t *testing.T) (JobService, *repositories.Repositories) {
	t.Helper()
	repos, _ := newTestDeps(t)
	return NewJobService(repos.Jobs, repos.Users, repos.Interests), repos
}

func createUser(t *testing.T, repos *repositories.Repositories, user *models.User) *models.User {
	t.Helper()
	require.NoError(t, repos.Users.Create(user))
	return user
}

func testEmployer(email string) *models.User {
	return &models.User{
		Name:            "Acme HR",
		Email:           email,
		Role:            models.UserRoleEmployer,
		CompanyName:     "Acme",
		CompanyLocation: "Berlin",
	}
}

func testEmployee(email string) *models.User {
	return &models.User{
		Name:  "Bob",
		Email: email,
		Role:  models.UserRoleEmployee,
	}
}

func TestCreateJobDefaultsToEmployerProfile(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))

	job, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Berlin", job.Location)
	assert.Equal(t, employer.ID, job.PostedBy)
	assert.False(t, job.IsClosed)
}

func TestCreateJobExplicitFieldsWin(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))

	job, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{
		Title:       "Site Engineer",
		Description: "On location",
		Company:     "Acme Subsidiary",
		Location:    "Munich",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Subsidiary", job.Company)
	assert.Equal(t, "Munich", job.Location)
}

func TestCreateJobRejectsEmployees(t *testing.T) {
	svc, repos := newTestJobService(t)
	employee := createUser(t, repos, testEmployee("bob@example.com"))

	_, err := svc.CreateJob(employee.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestListActiveJobsEnrichesPoster(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))

	_, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	listed, err := svc.ListActiveJobs()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].PostedByUser)
	assert.Equal(t, employer.ID, listed[0].PostedByUser.ID)
	assert.Equal(t, "Acme HR", listed[0].PostedByUser.Name)
}

func TestListActiveJobsMissingPosterYieldsNilSnapshot(t *testing.T) {
	svc, repos := newTestJobService(t)

	require.NoError(t, repos.Jobs.Create(&models.Job{
		Title:       "Orphaned",
		Description: "Poster record is gone",
		PostedBy:    "no-such-user",
	}))

	listed, err := svc.ListActiveJobs()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].PostedByUser)
}

func TestCloseJobOwnerOnly(t *testing.T) {
	svc, repos := newTestJobService(t)
	owner := createUser(t, repos, testEmployer("hr@acme.example"))
	other := createUser(t, repos, testEmployer("hr@other.example"))

	job, err := svc.CreateJob(owner.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	_, err = svc.CloseJob(job.ID, other.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeNotJobOwner, appErr.Code)

	closed, err := svc.CloseJob(job.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
}

func TestCloseJobTwiceSucceeds(t *testing.T) {
	svc, repos := newTestJobService(t)
	owner := createUser(t, repos, testEmployer("hr@acme.example"))

	job, err := svc.CreateJob(owner.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	_, err = svc.CloseJob(job.ID, owner.ID)
	require.NoError(t, err)

	again, err := svc.CloseJob(job.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, again.IsClosed)
}

func TestExpressInterestExactlyOnce(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))
	employee := createUser(t, repos, testEmployee("bob@example.com"))

	job, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	first, err := svc.ExpressInterest(job.ID, employee.ID)
	require.NoError(t, err)

	second, err := svc.ExpressInterest(job.ID, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	applicants, err := svc.ListApplicants(job.ID, employer.ID)
	require.NoError(t, err)
	assert.Len(t, applicants, 1)
}

func TestExpressInterestClosedJobRejected(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))
	employee := createUser(t, repos, testEmployee("bob@example.com"))

	job, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	_, err = svc.CloseJob(job.ID, employer.ID)
	require.NoError(t, err)

	_, err = svc.ExpressInterest(job.ID, employee.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeJobClosed, appErr.Code)
}

func TestExpressInterestUnknownJobNotFound(t *testing.T) {
	svc, repos := newTestJobService(t)
	employee := createUser(t, repos, testEmployee("bob@example.com"))

	_, err := svc.ExpressInterest("missing", employee.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeJobNotFound, appErr.Code)
}

func TestListApplicantsOwnerAndRoleChecks(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))
	rival := createUser(t, repos, testEmployer("hr@rival.example"))
	employee := createUser(t, repos, testEmployee("bob@example.com"))

	job, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build APIs",
	})
	require.NoError(t, err)

	_, err = svc.ExpressInterest(job.ID, employee.ID)
	require.NoError(t, err)

	_, err = svc.ListApplicants(job.ID, rival.ID)
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeNotJobOwner, appErr.Code)

	applicants, err := svc.ListApplicants(job.ID, employer.ID)
	require.NoError(t, err)
	require.Len(t, applicants, 1)
	require.NotNil(t, applicants[0].User)
	assert.Equal(t, employee.ID, applicants[0].User.ID)
	assert.Equal(t, "bob@example.com", applicants[0].User.Email)
}

func TestListJobsByUserIncludesClosed(t *testing.T) {
	svc, repos := newTestJobService(t)
	employer := createUser(t, repos, testEmployer("hr@acme.example"))

	open, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{Title: "Open", Description: "d"})
	require.NoError(t, err)
	closed, err := svc.CreateJob(employer.ID, &dto.CreateJobRequest{Title: "Closed", Description: "d"})
	require.NoError(t, err)

	_, err = svc.CloseJob(closed.ID, employer.ID)
	require.NoError(t, err)

	mine, err := svc.ListJobsByUser(employer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	active, err := svc.ListActiveJobs()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, open.ID, active[0].ID)
}
