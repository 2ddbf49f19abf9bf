package service

import (
	"testing"

	"github.com/lshigami/Formlink/internal/apperr"
	"github.com/lshigami/Formlink/internal/dto"
	"github.com/lshigami/Formlink/internal/model"
	"github.com/lshigami/Formlink/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreateForm(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	svc := NewFormService(repository.NewFormRepository(db), db)

	resp, err := svc.CreateForm(admin.ID, dto.FormCreateDTO{
		Title: "Onboarding",
		Questions: []dto.QuestionDTO{
			{Text: "Name?", Type: model.QuestionText, Required: true, Order: 0},
			{Text: "Team?", Type: model.QuestionMultipleChoice, Options: []string{"Core", "Infra"}, Order: 1},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.FormID)

	form, err := svc.GetForm(resp.FormID)
	require.NoError(t, err)
	assert.Equal(t, "Onboarding", form.Title)
	assert.Equal(t, "Admin", form.CreatedBy)
	require.Len(t, form.Questions, 2)
	assert.Equal(t, []string{"Core", "Infra"}, form.Questions[1].Options)
}

func TestCreateForm_Validation(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	svc := NewFormService(repository.NewFormRepository(db), db)

	cases := []struct {
		name string
		req  dto.FormCreateDTO
	}{
		{"missing title", dto.FormCreateDTO{Questions: []dto.QuestionDTO{}}},
		{"missing questions", dto.FormCreateDTO{Title: "t"}},
		{"empty question text", dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionDTO{{Type: model.QuestionText}}}},
		{"unknown type", dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionDTO{{Text: "q", Type: "essay"}}}},
		{"too few options", dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionDTO{{Text: "q", Type: model.QuestionCheckbox, Options: []string{"only"}}}}},
		{"empty option", dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionDTO{{Text: "q", Type: model.QuestionMultipleChoice, Options: []string{"a", ""}}}}},
		{"duplicate order", dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionDTO{
			{Text: "a", Type: model.QuestionText, Order: 1},
			{Text: "b", Type: model.QuestionText, Order: 1},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateForm(admin.ID, tc.req)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	// An empty question list is allowed; only a missing one is rejected.
	_, err := svc.CreateForm(admin.ID, dto.FormCreateDTO{Title: "t", Questions: []dto.QuestionDTO{}})
	assert.NoError(t, err)
}

func TestListForms_Counts(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	bob := seedUser(t, db, "Bob", "bob@example.com", model.RoleUser)
	form := seedForm(t, db, admin.ID, "Survey", nameQuestion())
	seedAssignment(t, db, alice.ID, form.ID, model.AssignmentCompleted)
	seedAssignment(t, db, bob.ID, form.ID, model.AssignmentPending)

	svc := NewFormService(repository.NewFormRepository(db), db)
	forms, err := svc.ListForms()
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, 2, forms[0].TotalAssignments)
	assert.Equal(t, 1, forms[0].CompletedAssignments)
	assert.Equal(t, "Admin", forms[0].CreatedBy)
}

func TestGetForm_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewFormService(repository.NewFormRepository(db), db)

	_, err := svc.GetForm(42)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetForm_MalformedQuestionsDegradeToEmpty(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	form := &model.Form{Title: "Broken", Questions: datatypes.JSON(`{not json`), CreatedByID: admin.ID}
	require.NoError(t, db.Create(form).Error)

	svc := NewFormService(repository.NewFormRepository(db), db)
	resp, err := svc.GetForm(form.ID)
	require.NoError(t, err, "a malformed question document must not fail the read")
	assert.Empty(t, resp.Questions)
}

func TestDeleteForm_Cascades(t *testing.T) {
	db := newTestDB(t)
	admin := seedUser(t, db, "Admin", "admin@example.com", model.RoleAdmin)
	alice := seedUser(t, db, "Alice", "alice@example.com", model.RoleUser)
	form := seedForm(t, db, admin.ID, "Survey", nameQuestion())
	seedAssignment(t, db, alice.ID, form.ID, model.AssignmentPending)
	doc, err := model.EncodeAnswers([]model.Answer{{QuestionID: 0, Answer: "x"}})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Response{UserID: alice.ID, FormID: form.ID, Answers: doc}).Error)

	svc := NewFormService(repository.NewFormRepository(db), db)
	require.NoError(t, svc.DeleteForm(form.ID))

	var assignments, responses, forms int64
	db.Model(&model.Assignment{}).Where("form_id = ?", form.ID).Count(&assignments)
	db.Model(&model.Response{}).Where("form_id = ?", form.ID).Count(&responses)
	db.Model(&model.Form{}).Where("id = ?", form.ID).Count(&forms)
	assert.Zero(t, assignments)
	assert.Zero(t, responses)
	assert.Zero(t, forms)

	require.ErrorIs(t, svc.DeleteForm(form.ID), apperr.ErrNotFound)
}
