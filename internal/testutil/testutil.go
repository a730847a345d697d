// Package testutil opens an in-memory store with the full schema for
// repository and service tests.
package testutil

import (
	"testing"

	"ocean/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB returns a fresh in-memory database with all tables migrated.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Topic{},
		&model.Mandela{},
		&model.MandelaCategory{},
		&model.Comment{},
		&model.Mark{},
		&model.Vote{},
		&model.ActivityOutbox{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateGroup inserts a group and returns its id.
func CreateGroup(t *testing.T, db *gorm.DB, code string) uint64 {
	t.Helper()
	group := &model.Group{Code: code, Name: code}
	if err := db.Create(group).Error; err != nil {
		t.Fatalf("create group: %v", err)
	}
	return group.ID
}

// CreateUser inserts a user and returns its id.
func CreateUser(t *testing.T, db *gorm.DB, name string, groupID uint64) uint64 {
	t.Helper()
	user := &model.User{Name: &name, GroupID: groupID}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user.ID
}

// CreateMandela inserts a minimal mandela owned by userID and returns its id.
func CreateMandela(t *testing.T, db *gorm.DB, userID uint64, title string) uint64 {
	t.Helper()
	m := &model.Mandela{
		Title:  title,
		What:   "w",
		Before: "b",
		After:  "a",
		Images: []byte(`[]`),
		Videos: []byte(`[]`),
		Links:  []byte(`[]`),
		UserID: userID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create mandela: %v", err)
	}
	return m.ID
}

// CreateComment inserts a comment on mandelaID.
func CreateComment(t *testing.T, db *gorm.DB, mandelaID, userID uint64, message string) {
	t.Helper()
	c := &model.Comment{MandelaID: mandelaID, UserID: userID, Message: message}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create comment: %v", err)
	}
}
