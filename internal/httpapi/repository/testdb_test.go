package repository

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"reviewhub/database"
	"reviewhub/internal/httpapi/models"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testPostgresImage = "postgres:16-alpine"

var (
	sharedTestDB     *gorm.DB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// testDB returns a shared PostgreSQL container with the schema migrated.
// The container is created once and reused across all tests in the run.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*gorm.DB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testPostgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "reviewhub_test",
			"POSTGRES_USER":     "reviewhub",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://reviewhub:test_password@%s:%s/reviewhub_test?sslmode=disable",
		host, port.Port())

	// Same gorm configuration as production, so unique violations surface
	// the same way.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}

	migrations, err := filepath.Abs(filepath.Join("..", "..", "..", "database", "migrations"))
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db, "file://"+migrations, slog.Default()); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return db, nil
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	suffix := uuid.New().String()[:8]
	user := &models.User{
		Username: "user-" + suffix,
		Email:    fmt.Sprintf("user-%s@example.com", suffix),
		Password: "not-a-real-hash",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func createTestMovie(t *testing.T, db *gorm.DB) *models.Movie {
	t.Helper()

	imdbID := "tt" + uuid.New().String()[:8]
	movie := &models.Movie{
		Title:  "Movie " + imdbID,
		IMDBID: &imdbID,
	}
	if err := db.Create(movie).Error; err != nil {
		t.Fatalf("Failed to create test movie: %v", err)
	}
	return movie
}

func createTestReview(t *testing.T, db *gorm.DB, userID string, movieID int64) *models.Review {
	t.Helper()

	review := &models.Review{
		UserID:     userID,
		MovieID:    movieID,
		Rating:     4.0,
		ReviewText: "solid",
	}
	if err := db.Create(review).Error; err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}
	return review
}
