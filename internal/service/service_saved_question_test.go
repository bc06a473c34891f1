package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-interview-prep/internal/logger"
	"github.com/MKhiriev/go-interview-prep/internal/mock"
	"github.com/MKhiriev/go-interview-prep/internal/store"
	"github.com/MKhiriev/go-interview-prep/internal/validators"
	"github.com/MKhiriev/go-interview-prep/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSavedQuestionSvc(t *testing.T) (SavedQuestionService, *mock.MockFolderRepository, *mock.MockSavedQuestionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	folders := mock.NewMockFolderRepository(ctrl)
	saved := mock.NewMockSavedQuestionRepository(ctrl)
	return NewSavedQuestionService(folders, saved, validators.NewRequestValidator(), logger.Nop()), folders, saved
}

func validSavedQuestion() models.SavedQuestion {
	return models.SavedQuestion{
		UserID:      1,
		FolderID:    3,
		CategoryID:  "network",
		QuestionID:  "tcp-handshake",
		Question:    "TCP 3-way handshake란?",
		ShortAnswer: "SYN, SYN-ACK, ACK",
	}
}

// ─── SaveQuestion ────────────────────────────────────────────────────────────

func TestSavedQuestionService_SaveQuestion_Success(t *testing.T) {
	svc, folders, saved := newTestSavedQuestionSvc(t)
	ctx := context.Background()

	folder := models.Folder{ID: 3, UserID: 1, Name: "네트워크"}
	gomock.InOrder(
		folders.EXPECT().GetFolder(ctx, int64(1), models.FolderKindUser, int64(3)).Return(folder, nil),
		saved.EXPECT().SaveQuestion(ctx, validSavedQuestion()).DoAndReturn(
			func(_ context.Context, q models.SavedQuestion) (models.SavedQuestion, error) {
				q.ID = 11
				q.SavedAt = time.Now()
				return q, nil
			},
		),
	)

	input := validSavedQuestion()
	input.CategoryID = " network "
	created, gotFolder, err := svc.SaveQuestion(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "네트워크", gotFolder.Name)
}

func TestSavedQuestionService_SaveQuestion_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _ := newTestSavedQuestionSvc(t)
		q := validSavedQuestion()
		q.QuestionID = ""
		_, _, err := svc.SaveQuestion(ctx, q)
		assert.ErrorIs(t, err, ErrSaveFieldsRequired)
	})

	t.Run("folder not owned", func(t *testing.T) {
		svc, folders, _ := newTestSavedQuestionSvc(t)
		folders.EXPECT().GetFolder(ctx, int64(1), models.FolderKindUser, int64(3)).Return(models.Folder{}, store.ErrFolderNotFound)
		_, _, err := svc.SaveQuestion(ctx, validSavedQuestion())
		assert.ErrorIs(t, err, store.ErrFolderNotFound)
	})

	t.Run("saved twice", func(t *testing.T) {
		svc, folders, saved := newTestSavedQuestionSvc(t)
		folders.EXPECT().GetFolder(ctx, int64(1), models.FolderKindUser, int64(3)).Return(models.Folder{ID: 3}, nil)
		saved.EXPECT().SaveQuestion(ctx, gomock.Any()).Return(models.SavedQuestion{}, store.ErrQuestionAlreadySaved)
		_, _, err := svc.SaveQuestion(ctx, validSavedQuestion())
		assert.ErrorIs(t, err, store.ErrQuestionAlreadySaved)
	})
}

// ─── ListFolderContents ──────────────────────────────────────────────────────

func TestSavedQuestionService_ListFolderContents(t *testing.T) {
	svc, folders, saved := newTestSavedQuestionSvc(t)
	ctx := context.Background()

	folders.EXPECT().GetFolder(ctx, int64(1), models.FolderKindUser, int64(3)).
		Return(models.Folder{ID: 3, Name: "네트워크", Description: "복습"}, nil)
	saved.EXPECT().ListSavedQuestions(ctx, int64(1), int64(3)).Return(nil, nil)

	contents, err := svc.ListFolderContents(ctx, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, models.FolderSummary{ID: 3, Name: "네트워크", Description: "복습"}, contents.Folder)
	assert.NotNil(t, contents.Questions)
	assert.Empty(t, contents.Questions)
}

func TestSavedQuestionService_ListFolderContents_DeletedFolder(t *testing.T) {
	svc, folders, _ := newTestSavedQuestionSvc(t)
	ctx := context.Background()

	folders.EXPECT().GetFolder(ctx, int64(1), models.FolderKindUser, int64(3)).Return(models.Folder{}, store.ErrFolderNotFound)

	_, err := svc.ListFolderContents(ctx, 1, 3)

	assert.ErrorIs(t, err, store.ErrFolderNotFound)
}

// ─── Delete / Move ───────────────────────────────────────────────────────────

func TestSavedQuestionService_DeleteSavedQuestion(t *testing.T) {
	svc, _, saved := newTestSavedQuestionSvc(t)
	ctx := context.Background()

	saved.EXPECT().DeleteSavedQuestion(ctx, int64(1), int64(11)).Return(nil)
	require.NoError(t, svc.DeleteSavedQuestion(ctx, 1, 11))

	saved.EXPECT().DeleteSavedQuestion(ctx, int64(2), int64(11)).Return(store.ErrSavedQuestionNotFound)
	assert.ErrorIs(t, svc.DeleteSavedQuestion(ctx, 2, 11), store.ErrSavedQuestionNotFound)
}

func TestSavedQuestionService_MoveSavedQuestion(t *testing.T) {
	svc, _, saved := newTestSavedQuestionSvc(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.MoveSavedQuestion(ctx, 1, 11, 0), ErrInvalidTargetFolder)

	saved.EXPECT().MoveSavedQuestion(ctx, int64(1), int64(11), int64(4)).Return(nil)
	require.NoError(t, svc.MoveSavedQuestion(ctx, 1, 11, 4))

	saved.EXPECT().MoveSavedQuestion(ctx, int64(1), int64(11), int64(5)).Return(store.ErrQuestionAlreadySaved)
	assert.ErrorIs(t, svc.MoveSavedQuestion(ctx, 1, 11, 5), store.ErrQuestionAlreadySaved)
}
