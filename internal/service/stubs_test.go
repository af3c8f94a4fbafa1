package service

import (
	"context"
	"testing"

	"skillswap/internal/models"
	"skillswap/internal/repository"

	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByEmailFn           func(context.Context, string) (*models.User, error)
	getByUsernameFn        func(context.Context, string) (*models.User, error)
	createFn               func(context.Context, *models.User) error
	updateFn               func(context.Context, *models.User) error
	updateFieldsFn         func(context.Context, uint, map[string]interface{}) error
	listFn                 func(context.Context, string, int, int) ([]models.User, error)
	listPublicWithSkillsFn func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return s.updateFieldsFn(ctx, id, fields)
}
func (s *userRepoStub) List(ctx context.Context, query string, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, query, limit, offset)
}
func (s *userRepoStub) ListPublicWithSkills(ctx context.Context) ([]models.User, error) {
	return s.listPublicWithSkillsFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		updateFieldsFn:  func(context.Context, uint, map[string]interface{}) error { return nil },
		listFn:          func(context.Context, string, int, int) ([]models.User, error) { return nil, nil },
		listPublicWithSkillsFn: func(context.Context) ([]models.User, error) {
			return nil, nil
		},
	}
}

type skillRepoStub struct {
	createFn    func(context.Context, *models.Skill) error
	getByIDFn   func(context.Context, uint) (*models.Skill, error)
	getByUserFn func(context.Context, uint) ([]models.Skill, error)
	getByTypeFn func(context.Context, models.SkillType) ([]models.Skill, error)
	searchFn    func(context.Context, string, string) ([]models.Skill, error)
	updateFn    func(context.Context, *models.Skill) error
	deleteFn    func(context.Context, uint) error
}

func (s *skillRepoStub) Create(ctx context.Context, skill *models.Skill) error {
	return s.createFn(ctx, skill)
}
func (s *skillRepoStub) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	return s.getByIDFn(ctx, id)
}
func (s *skillRepoStub) GetByUser(ctx context.Context, userID uint) ([]models.Skill, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *skillRepoStub) GetByType(ctx context.Context, skillType models.SkillType) ([]models.Skill, error) {
	return s.getByTypeFn(ctx, skillType)
}
func (s *skillRepoStub) Search(ctx context.Context, query, category string) ([]models.Skill, error) {
	return s.searchFn(ctx, query, category)
}
func (s *skillRepoStub) Update(ctx context.Context, skill *models.Skill) error {
	return s.updateFn(ctx, skill)
}
func (s *skillRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		createFn:    func(context.Context, *models.Skill) error { return nil },
		getByIDFn:   func(context.Context, uint) (*models.Skill, error) { return &models.Skill{}, nil },
		getByUserFn: func(context.Context, uint) ([]models.Skill, error) { return nil, nil },
		getByTypeFn: func(context.Context, models.SkillType) ([]models.Skill, error) { return nil, nil },
		searchFn:    func(context.Context, string, string) ([]models.Skill, error) { return nil, nil },
		updateFn:    func(context.Context, *models.Skill) error { return nil },
		deleteFn:    func(context.Context, uint) error { return nil },
	}
}

type swapRepoStub struct {
	createFn       func(context.Context, *models.SwapRequest) error
	getByIDFn      func(context.Context, uint) (*models.SwapRequest, error)
	getByUserFn    func(context.Context, uint) ([]models.SwapRequest, error)
	updateStatusFn func(context.Context, uint, models.SwapRequestStatus) error
	deleteFn       func(context.Context, uint) error
}

func (s *swapRepoStub) Create(ctx context.Context, req *models.SwapRequest) error {
	return s.createFn(ctx, req)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) GetByUser(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *swapRepoStub) UpdateStatus(ctx context.Context, id uint, status models.SwapRequestStatus) error {
	return s.updateStatusFn(ctx, id, status)
}
func (s *swapRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopSwapRepo() *swapRepoStub {
	return &swapRepoStub{
		createFn:       func(context.Context, *models.SwapRequest) error { return nil },
		getByIDFn:      func(context.Context, uint) (*models.SwapRequest, error) { return &models.SwapRequest{}, nil },
		getByUserFn:    func(context.Context, uint) ([]models.SwapRequest, error) { return nil, nil },
		updateStatusFn: func(context.Context, uint, models.SwapRequestStatus) error { return nil },
		deleteFn:       func(context.Context, uint) error { return nil },
	}
}

type ratingRepoStub struct {
	createFn              func(context.Context, *models.Rating) error
	getByRateeFn          func(context.Context, uint) ([]models.Rating, error)
	aggregateForRateeFn   func(context.Context, uint) (*repository.RatingAggregate, error)
	updateUserAggregateFn func(context.Context, uint, *repository.RatingAggregate) error
}

func (s *ratingRepoStub) Create(ctx context.Context, rating *models.Rating) error {
	return s.createFn(ctx, rating)
}
func (s *ratingRepoStub) GetByRatee(ctx context.Context, rateeID uint) ([]models.Rating, error) {
	return s.getByRateeFn(ctx, rateeID)
}
func (s *ratingRepoStub) AggregateForRatee(ctx context.Context, rateeID uint) (*repository.RatingAggregate, error) {
	return s.aggregateForRateeFn(ctx, rateeID)
}
func (s *ratingRepoStub) UpdateUserAggregate(ctx context.Context, rateeID uint, agg *repository.RatingAggregate) error {
	return s.updateUserAggregateFn(ctx, rateeID, agg)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		createFn:     func(context.Context, *models.Rating) error { return nil },
		getByRateeFn: func(context.Context, uint) ([]models.Rating, error) { return nil, nil },
		aggregateForRateeFn: func(context.Context, uint) (*repository.RatingAggregate, error) {
			return &repository.RatingAggregate{}, nil
		},
		updateUserAggregateFn: func(context.Context, uint, *repository.RatingAggregate) error { return nil },
	}
}

// assertValidationError asserts that err is an AppError with code VALIDATION_ERROR.
func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "FORBIDDEN", appErr.Code)
}

func assertConflictError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "CONFLICT", appErr.Code)
}
