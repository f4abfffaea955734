package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tripplanner/internal/config"
	"tripplanner/internal/db"
	"tripplanner/internal/model"
	"tripplanner/internal/repository"
)

// Seeds a local database with a demo dataset: an admin, two users, a public
// and a private trip, a collaborator, locations, activities and one travel
// requirements row. Safe to run twice; seeded users are matched by email.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Trip{},
		&model.TripMember{},
		&model.Location{},
		&model.Activity{},
		&model.TravelRequirement{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	memberRepo := repository.NewTripMemberRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)
	requirementRepo := repository.NewTravelRequirementRepository(gormDB)

	admin := seedUser(ctx, userRepo, "Admin", "admin@example.com", model.PlatformRoleAdmin)
	alice := seedUser(ctx, userRepo, "Alice Demo", "alice@example.com", model.PlatformRoleUser)
	bob := seedUser(ctx, userRepo, "Bob Demo", "bob@example.com", model.PlatformRoleUser)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	publicTrip := &model.Trip{
		OwnerID:     alice.ID,
		Title:       "Japan Highlights",
		StartDate:   &start,
		EndDate:     &end,
		TotalBudget: decimal.NewFromInt(3000),
		IsPublic:    true,
	}
	privateTrip := &model.Trip{
		OwnerID:     alice.ID,
		Title:       "Surprise Anniversary Weekend",
		TotalBudget: decimal.NewFromInt(800),
		IsPublic:    false,
	}
	for _, trip := range []*model.Trip{publicTrip, privateTrip} {
		if err := tripRepo.Create(ctx, trip); err != nil {
			log.Fatalf("Failed to seed trip %q: %v", trip.Title, err)
		}
	}

	if _, err := memberRepo.FindByTripAndUser(ctx, publicTrip.ID, bob.ID); errors.Is(err, gorm.ErrRecordNotFound) {
		if err := memberRepo.Create(ctx, &model.TripMember{
			TripID: publicTrip.ID,
			UserID: bob.ID,
			Role:   model.MemberRoleCollaborator,
		}); err != nil {
			log.Fatalf("Failed to seed trip member: %v", err)
		}
	}

	tower := &model.Location{
		Name:      "Tokyo Tower",
		Address:   "4 Chome-2-8 Shibakoen, Minato City",
		Category:  "monument",
		CreatedBy: alice.ID,
		Lat:       35.6586,
		Lng:       139.7454,
		Rating:    4.5,
	}
	if err := locationRepo.Create(ctx, tower); err != nil {
		log.Fatalf("Failed to seed location: %v", err)
	}

	station := &model.Location{
		Name:       "Kyoto Station",
		Address:    "Higashishiokoji Kamadonocho, Shimogyo Ward, Kyoto",
		Category:   "transport",
		CreatedBy:  admin.ID,
		IsVerified: true,
		Lat:        34.9858,
		Lng:        135.7588,
		Rating:     4.2,
	}
	if err := locationRepo.Create(ctx, station); err != nil {
		log.Fatalf("Failed to seed location: %v", err)
	}

	visit := start.Add(10 * time.Hour)
	if err := activityRepo.Create(ctx, &model.Activity{
		TripID:     publicTrip.ID,
		LocationID: &tower.ID,
		Title:      "Visit Tokyo Tower",
		StartTime:  &visit,
		Cost:       decimal.NewFromFloat(25.50),
		Category:   "leisure",
	}); err != nil {
		log.Fatalf("Failed to seed activity: %v", err)
	}

	if _, err := requirementRepo.FindByTrip(ctx, publicTrip.ID); errors.Is(err, gorm.ErrRecordNotFound) {
		if err := requirementRepo.Create(ctx, &model.TravelRequirement{
			TripID:        publicTrip.ID,
			Documentation: []byte(`{"passport":true,"visa":false}`),
			HealthInfo:    []byte(`{"vaccines":["Hepatitis A"]}`),
			CurrencyInfo:  []byte(`{"currency":"JPY","cash_recommended":true}`),
			LastUpdated:   time.Now().UTC(),
		}); err != nil {
			log.Fatalf("Failed to seed travel requirements: %v", err)
		}
	}

	log.Println("Seed completed")
}

func seedUser(ctx context.Context, repo repository.UserRepository, name, email string, role model.PlatformRole) *model.User {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up %s: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := repo.Create(ctx, user); err != nil {
		log.Fatalf("Failed to seed user %s: %v", email, err)
	}
	return user
}
