package service

import (
	"fmt"
	"testing"

	"github.com/lshigami/Formlink/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory SQLite database so transactional
// behavior is exercised against a real store. The named DSN keeps the
// database alive across the pool's connections without sharing it between
// tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Form{},
		&model.Assignment{},
		&model.Response{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedForm(t *testing.T, db *gorm.DB, createdBy uint, title string, questions []model.Question) *model.Form {
	t.Helper()
	doc, err := model.EncodeQuestions(questions)
	require.NoError(t, err)
	form := &model.Form{Title: title, Questions: doc, CreatedByID: createdBy}
	require.NoError(t, db.Create(form).Error)
	return form
}

func seedAssignment(t *testing.T, db *gorm.DB, userID, formID uint, status string) *model.Assignment {
	t.Helper()
	assignment := &model.Assignment{UserID: userID, FormID: formID, Status: status}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}
