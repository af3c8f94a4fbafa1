// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// backdate returns a timestamp spread over the last MaxDays days so seeded
// rows do not all share one creation instant.
func (f *Factory) backdate() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	// #nosec G404: acceptable for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	daysBack := r.Intn(maxDays)
	hoursBack := r.Intn(24)
	minsBack := r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username:        gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:           gofakeit.Email(),
		FirstName:       gofakeit.FirstName(),
		LastName:        gofakeit.LastName(),
		Location:        fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.CountryAbr()),
		Bio:             gofakeit.Sentence(10),
		ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		IsPublic:        true,
		CreatedAt:       f.backdate(),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Username, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildSkill constructs a skill struct without persisting it. Useful for batching.
func (f *Factory) BuildSkill(user *models.User, category, name string, skillType models.SkillType, overrides ...func(*models.Skill)) *models.Skill {
	levels := []models.SkillLevel{
		models.SkillLevelBeginner,
		models.SkillLevelIntermediate,
		models.SkillLevelAdvanced,
		models.SkillLevelExpert,
	}
	skill := &models.Skill{
		UserID:      user.ID,
		Name:        name,
		Description: gofakeit.Paragraph(1, 2, 8, " "),
		Category:    category,
		Level:       levels[gofakeit.Number(0, len(levels)-1)],
		Type:        skillType,
		Tags:        models.StringList{gofakeit.HackerNoun(), gofakeit.HackerNoun()},
		IsActive:    true,
		IsApproved:  true,
		CreatedAt:   f.backdate(),
	}

	for _, override := range overrides {
		override(skill)
	}
	return skill
}

// CreateSkill constructs and persists a sample `models.Skill` for the given user.
func (f *Factory) CreateSkill(user *models.User, category, name string, skillType models.SkillType, overrides ...func(*models.Skill)) (*models.Skill, error) {
	skill := f.BuildSkill(user, category, name, skillType, overrides...)

	if f.opts.DryRun {
		f.nextID++
		skill.ID = f.nextID
		log.Printf("[dry-run] CreateSkill: user=%d name=%q type=%s", skill.UserID, skill.Name, skill.Type)
		return skill, nil
	}

	if err := f.db.Create(skill).Error; err != nil {
		return nil, err
	}
	return skill, nil
}

// CreateSkillsBatch persists multiple skills in a single DB call when possible.
func (f *Factory) CreateSkillsBatch(skills []*models.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, s := range skills {
			f.nextID++
			s.ID = f.nextID
		}
		log.Printf("[dry-run] CreateSkillsBatch: %d skills (no DB write)", len(skills))
		return nil
	}
	batchSize := f.opts.BatchSize
	if batchSize <= 0 {
		batchSize = 100
	}
	return f.db.CreateInBatches(&skills, batchSize).Error
}

// CreateAvailability persists one weekly schedule slot for the given user.
func (f *Factory) CreateAvailability(user *models.User, day, slot string, overrides ...func(*models.Availability)) (*models.Availability, error) {
	availability := &models.Availability{
		UserID:      user.ID,
		DayOfWeek:   day,
		TimeSlot:    slot,
		IsAvailable: true,
	}

	for _, override := range overrides {
		override(availability)
	}

	if f.opts.DryRun {
		f.nextID++
		availability.ID = f.nextID
		log.Printf("[dry-run] CreateAvailability: user=%d %s %s", availability.UserID, day, slot)
		return availability, nil
	}

	if err := f.db.Create(availability).Error; err != nil {
		return nil, err
	}
	return availability, nil
}

// CreateSwapRequest persists a swap proposal between two users using their
// respective skills. Status defaults to pending unless overridden.
func (f *Factory) CreateSwapRequest(requester, provider *models.User, offered, requested *models.Skill, overrides ...func(*models.SwapRequest)) (*models.SwapRequest, error) {
	swap := &models.SwapRequest{
		RequesterID:      requester.ID,
		ProviderID:       provider.ID,
		OfferedSkillID:   offered.ID,
		RequestedSkillID: requested.ID,
		Message:          gofakeit.Sentence(12),
		PreferredTimes:   models.StringList{"weekday evenings", "saturday mornings"},
		Status:           models.SwapRequestPending,
		CreatedAt:        f.backdate(),
	}

	for _, override := range overrides {
		override(swap)
	}

	if f.opts.DryRun {
		f.nextID++
		swap.ID = f.nextID
		log.Printf("[dry-run] CreateSwapRequest: requester=%d provider=%d status=%s", swap.RequesterID, swap.ProviderID, swap.Status)
		return swap, nil
	}

	if err := f.db.Create(swap).Error; err != nil {
		return nil, err
	}
	return swap, nil
}

// CreateRating persists a rating left on a completed swap and updates the
// ratee's denormalized aggregate to match.
func (f *Factory) CreateRating(rater, ratee *models.User, swap *models.SwapRequest, score int, overrides ...func(*models.Rating)) (*models.Rating, error) {
	rating := &models.Rating{
		RaterID:       rater.ID,
		RateeID:       ratee.ID,
		SwapRequestID: swap.ID,
		Rating:        score,
		Comment:       gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(rating)
	}

	if f.opts.DryRun {
		f.nextID++
		rating.ID = f.nextID
		log.Printf("[dry-run] CreateRating: rater=%d ratee=%d score=%d", rating.RaterID, rating.RateeID, rating.Rating)
		return rating, nil
	}

	if err := f.db.Create(rating).Error; err != nil {
		return nil, err
	}

	// keep the aggregate in sync with the ratings table
	var stats struct {
		Avg   float64
		Count int64
	}
	if err := f.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("ratee_id = ?", ratee.ID).
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	if err := f.db.Model(&models.User{}).Where("id = ?", ratee.ID).
		Updates(map[string]interface{}{"rating": stats.Avg, "total_ratings": stats.Count}).Error; err != nil {
		return nil, err
	}
	return rating, nil
}
