package message

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

func newUseCase(t *testing.T) *MessageUseCase {
	t.Helper()
	repo := persistence.NewFileSiteRepo(filepath.Join(t.TempDir(), "site.json"), logger.NewNop())
	return NewMessageUseCase(repo, nil, logger.NewNop())
}

func TestSubmitMessage_Validation(t *testing.T) {
	uc := newUseCase(t)
	tests := map[string]SubmitMessageInput{
		"no sender": {Email: "a@b.co", Body: "hi"},
		"bad email": {Sender: "Ann", Email: "nope", Body: "hi"},
		"bare at":   {Sender: "Ann", Email: "@", Body: "hi"},
		"no body":   {Sender: "Ann", Email: "a@b.co", Body: "  "},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := uc.SubmitMessage(context.Background(), in)
			assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
		})
	}
}

func TestMessages_Lifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t)
	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	first, err := uc.SubmitMessage(ctx, SubmitMessageInput{Sender: " Ann ", Email: "ann@example.com", Body: "Hello"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.ID, "m-"))
	assert.Equal(t, "Ann", first.Sender)
	assert.Equal(t, site.MessageStatusNew, first.Status)

	clock = clock.Add(time.Hour)
	second, err := uc.SubmitMessage(ctx, SubmitMessageInput{Sender: "Bob", Email: "bob@example.com", Body: "Later"})
	require.NoError(t, err)

	list, err := uc.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	updated, err := uc.UpdateMessageStatus(ctx, first.ID, "replied")
	require.NoError(t, err)
	assert.Equal(t, site.MessageStatusReplied, updated.Status)

	_, err = uc.UpdateMessageStatus(ctx, first.ID, "spam")
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
	_, err = uc.UpdateMessageStatus(ctx, "m-missing", "replied")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	require.NoError(t, uc.DeleteMessage(ctx, first.ID))
	assert.True(t, errors.Is(uc.DeleteMessage(ctx, first.ID), apperror.ErrNotFound))

	list, err = uc.ListMessages(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
