package seed

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"skillswap/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumSwaps    int
	ShouldClean bool
	// SkipBcrypt stores plaintext passwords; only for throwaway dev databases.
	SkipBcrypt bool
	// DryRun logs what would be created without touching the database.
	DryRun bool
	// MaxDays bounds the created_at backdating spread (default 90).
	MaxDays int
	// BatchSize controls batched inserts (default 100).
	BatchSize int
	// CatalogPath optionally points to a YAML file overriding the built-in
	// skill catalog.
	CatalogPath string
}

// Catalog groups seedable skill names by category.
type Catalog struct {
	Categories []CatalogCategory `yaml:"categories"`
}

// CatalogCategory is one category entry of the skill catalog.
type CatalogCategory struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

var defaultCatalog = Catalog{
	Categories: []CatalogCategory{
		{Name: "music", Skills: []string{"Guitar", "Piano", "Violin", "Singing", "Music Production", "DJing"}},
		{Name: "cooking", Skills: []string{"Sourdough Baking", "Thai Cooking", "Knife Skills", "Meal Prep", "Pastry"}},
		{Name: "languages", Skills: []string{"Spanish Conversation", "French Basics", "Japanese", "German Grammar", "Portuguese"}},
		{Name: "technology", Skills: []string{"Python Programming", "Web Development", "Excel Coaching", "Photo Editing", "Home Networking"}},
		{Name: "fitness", Skills: []string{"Yoga", "Running Coaching", "Strength Training", "Climbing", "Swimming Technique"}},
		{Name: "crafts", Skills: []string{"Knitting", "Woodworking", "Pottery", "Sewing", "Bookbinding"}},
		{Name: "arts", Skills: []string{"Watercolor Painting", "Photography", "Figure Drawing", "Calligraphy"}},
		{Name: "outdoors", Skills: []string{"Gardening", "Bike Repair", "Foraging", "Navigation"}},
	},
}

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var timeSlots = []string{"morning", "afternoon", "evening"}

// LoadCatalog reads a YAML skill catalog from path. An empty path returns the
// built-in catalog.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return defaultCatalog, nil
	}
	data, err := os.ReadFile(path) // #nosec G304: operator-supplied fixture path
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if len(catalog.Categories) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s contains no categories", path)
	}
	return catalog, nil
}

// Seeder populates the database with demo marketplace data.
type Seeder struct {
	db      *gorm.DB
	opts    Options
	factory *Factory
	catalog Catalog
	rand    *rand.Rand
}

// NewSeeder creates a Seeder with the built-in catalog. Use Options.CatalogPath
// to overlay a custom one at Run time.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	// #nosec G404: acceptable for seeding
	return &Seeder{
		db:      db,
		opts:    opts,
		factory: NewFactory(db, opts),
		catalog: defaultCatalog,
		rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run executes the full seed pass: users, skills, availability, swap requests
// and ratings.
func (s *Seeder) Run() error {
	log.Printf("🌱 Starting database seeding with %d users and %d swaps...", s.opts.NumUsers, s.opts.NumSwaps)

	if s.opts.CatalogPath != "" {
		catalog, err := LoadCatalog(s.opts.CatalogPath)
		if err != nil {
			return err
		}
		s.catalog = catalog
		log.Printf("✓ loaded skill catalog from %s (%d categories)", s.opts.CatalogPath, len(catalog.Categories))
	}

	if s.opts.ShouldClean && !s.opts.DryRun {
		if err := s.clearData(); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := s.createUsers()
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	skills, err := s.createSkills(users)
	if err != nil {
		return fmt.Errorf("failed to create skills: %w", err)
	}
	log.Printf("✓ %d skills created", len(skills))

	if err := s.createAvailability(users); err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}
	log.Printf("✓ availability slots created")

	swaps, err := s.createSwaps(users)
	if err != nil {
		return fmt.Errorf("failed to create swap requests: %w", err)
	}
	log.Printf("✓ %d swap requests created", len(swaps))

	rated, err := s.createRatings(swaps)
	if err != nil {
		return fmt.Errorf("failed to create ratings: %w", err)
	}
	log.Printf("✓ %d ratings created", rated)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func (s *Seeder) clearData() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE ratings, swap_requests, availabilities, skills, reports, admin_messages, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

func (s *Seeder) createUsers() ([]*models.User, error) {
	count := s.opts.NumUsers
	if count <= 0 {
		count = 25
	}
	users := make([]*models.User, 0, count)

	// Always include a stable admin and a stable demo account.
	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Username = "admin"
		u.Email = "admin@example.com"
		u.IsAdmin = true
	})
	if err == nil {
		users = append(users, admin)
	}
	demo, err := s.factory.CreateUser(func(u *models.User) {
		u.Username = "demo"
		u.Email = "demo@example.com"
	})
	if err == nil {
		users = append(users, demo)
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser(func(u *models.User) {
			// a slice of users keep their profile private
			u.IsPublic = s.rand.Float32() >= 0.15
		})
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// createSkills gives every user 1-3 offered skills and 1-2 wanted skills
// drawn from the catalog.
func (s *Seeder) createSkills(users []*models.User) ([]*models.Skill, error) {
	var skills []*models.Skill

	for _, user := range users {
		batch := make([]*models.Skill, 0, 5)
		for i := 0; i < s.rand.Intn(3)+1; i++ {
			category, name := s.pickSkill()
			batch = append(batch, s.factory.BuildSkill(user, category, name, models.SkillTypeOffered))
		}
		for i := 0; i < s.rand.Intn(2)+1; i++ {
			category, name := s.pickSkill()
			batch = append(batch, s.factory.BuildSkill(user, category, name, models.SkillTypeWanted))
		}
		if err := s.factory.CreateSkillsBatch(batch); err != nil {
			return nil, err
		}
		skills = append(skills, batch...)
	}
	return skills, nil
}

func (s *Seeder) pickSkill() (category, name string) {
	cat := s.catalog.Categories[s.rand.Intn(len(s.catalog.Categories))]
	return cat.Name, cat.Skills[s.rand.Intn(len(cat.Skills))]
}

// createAvailability marks 2-5 random weekly slots per user.
func (s *Seeder) createAvailability(users []*models.User) error {
	for _, user := range users {
		seen := map[string]bool{}
		slots := s.rand.Intn(4) + 2
		for i := 0; i < slots; i++ {
			day := weekdays[s.rand.Intn(len(weekdays))]
			slot := timeSlots[s.rand.Intn(len(timeSlots))]
			key := day + "/" + slot
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, err := s.factory.CreateAvailability(user, day, slot); err != nil {
				return err
			}
		}
	}
	return nil
}

// createSwaps pairs users whose offered skills line up. Roughly half the
// swaps stay pending, the rest are split between accepted, rejected and
// completed so every lifecycle state shows up in demo data.
func (s *Seeder) createSwaps(users []*models.User) ([]*models.SwapRequest, error) {
	count := s.opts.NumSwaps
	if count <= 0 {
		count = len(users) * 2
	}
	statuses := []models.SwapRequestStatus{
		models.SwapRequestPending, models.SwapRequestPending,
		models.SwapRequestAccepted,
		models.SwapRequestRejected,
		models.SwapRequestCompleted, models.SwapRequestCompleted,
	}

	swaps := make([]*models.SwapRequest, 0, count)
	for i := 0; i < count; i++ {
		requester := users[s.rand.Intn(len(users))]
		provider := users[s.rand.Intn(len(users))]
		if requester.ID == provider.ID {
			continue
		}

		offered, err := s.firstSkill(requester.ID, models.SkillTypeOffered)
		if err != nil {
			continue
		}
		requested, err := s.firstSkill(provider.ID, models.SkillTypeOffered)
		if err != nil {
			continue
		}

		status := statuses[s.rand.Intn(len(statuses))]
		swap, err := s.factory.CreateSwapRequest(requester, provider, offered, requested, func(sr *models.SwapRequest) {
			sr.Status = status
		})
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, swap)
	}
	return swaps, nil
}

func (s *Seeder) firstSkill(userID uint, skillType models.SkillType) (*models.Skill, error) {
	if s.opts.DryRun {
		return &models.Skill{ID: userID, UserID: userID, Type: skillType}, nil
	}
	var skill models.Skill
	err := s.db.Where("user_id = ? AND type = ?", userID, skillType).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// createRatings leaves a rating from each party of most completed swaps.
func (s *Seeder) createRatings(swaps []*models.SwapRequest) (int, error) {
	created := 0
	for _, swap := range swaps {
		if swap.Status != models.SwapRequestCompleted {
			continue
		}
		requester := &models.User{ID: swap.RequesterID}
		provider := &models.User{ID: swap.ProviderID}

		if _, err := s.factory.CreateRating(requester, provider, swap, s.rand.Intn(3)+3); err != nil {
			return created, err
		}
		created++

		// the other side rates back ~70% of the time
		if s.rand.Float32() < 0.7 {
			if _, err := s.factory.CreateRating(provider, requester, swap, s.rand.Intn(3)+3); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}
