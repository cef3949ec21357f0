// Package testutil provides an in-memory store, fixtures and tokens for tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"freelance_backend/database"
	"freelance_backend/internal/auth"
	"freelance_backend/internal/config"
	"freelance_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	TestJWTSecret = "test-jwt-secret"
	TestJWTIssuer = "freelance-identity"
)

// NewTestDB opens a private in-memory SQLite database with the schema migrated.
// The pool holds a single connection: each :memory: connection is its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// NewFileTestDB opens a SQLite file in a temp dir and asks for a pool of
// maxOpenConns connections, so concurrent transactions share one database.
func NewFileTestDB(t *testing.T, maxOpenConns int) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          filepath.Join(t.TempDir(), "applications.db"),
		MaxOpenConns: maxOpenConns,
		MaxIdleConns: maxOpenConns,
	}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// TestConfig is a valid configuration pointing at SQLite.
func TestConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"
	cfg.JWT.Secret = TestJWTSecret
	cfg.JWT.Issuer = TestJWTIssuer
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000
	return cfg
}

func CreateUser(t *testing.T, db *gorm.DB, name string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:       fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		DisplayName: name,
		Role:        role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateJob(t *testing.T, db *gorm.DB, clientID, title string, status models.JobStatus) *models.Job {
	t.Helper()
	job := &models.Job{
		ClientID: clientID,
		Title:    title,
		Budget:   1500,
		Status:   status,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

func CallerOf(user *models.User) auth.Caller {
	return auth.Caller{UserID: user.ID, Role: user.Role}
}

// IssueToken signs a bearer token the way the identity service does.
func IssueToken(t *testing.T, user *models.User) string {
	t.Helper()
	return IssueTokenFor(t, user.ID, string(user.Role), time.Now(), time.Hour)
}

func IssueTokenFor(t *testing.T, userID, role string, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()
	claims := auth.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TestJWTIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(TestJWTSecret))
	require.NoError(t, err)
	return token
}
