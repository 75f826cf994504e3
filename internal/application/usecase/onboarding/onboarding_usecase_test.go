package onboarding

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/personal-site/adapters/persistence"
	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.SiteEvent
	done   chan struct{}
}

func (p *recordingPublisher) PublishSiteEvent(ctx context.Context, evt service.SiteEvent) error {
	p.mu.Lock()
	p.events = append(p.events, evt)
	p.mu.Unlock()
	close(p.done)
	return nil
}

func TestApplyOnboardingUseCase_SavesAndPublishes(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewFileSiteRepo(filepath.Join(t.TempDir(), "site.json"), logger.NewNop())
	pub := &recordingPublisher{done: make(chan struct{})}
	uc := NewApplyOnboardingUseCase(repo, pub, logger.NewNop())
	uc.now = func() time.Time { return testNow }

	out, err := uc.Execute(ctx, ApplyOnboardingInput{Submission: Submission{
		Headline:   "Backend engineer",
		FocusAreas: []string{"AI"},
		CVText:     scenarioOneCV,
	}})
	require.NoError(t, err)
	assert.Len(t, out.Result.Entries, 1)

	state, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", state.Profile.Headline)
	assert.Equal(t, "Backend engineer", state.Homepage.Hero.Title)
	require.Len(t, state.Entries, 1)
	assert.True(t, state.Entries[0].Source.IsOnboarding())

	<-pub.done
	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.events, 1)
	assert.Equal(t, service.SiteEventOnboardingApplied, pub.events[0].EventType)
}

func TestApplyOnboardingUseCase_NilPublisher(t *testing.T) {
	repo := persistence.NewFileSiteRepo(filepath.Join(t.TempDir(), "site.json"), logger.NewNop())
	uc := NewApplyOnboardingUseCase(repo, nil, logger.NewNop())
	_, err := uc.Execute(context.Background(), ApplyOnboardingInput{})
	assert.NoError(t, err)
}

func TestAnalyzeCV_Text(t *testing.T) {
	uc := NewAnalyzeCVUseCase(0, logger.NewNop())
	out, err := uc.Execute(context.Background(), AnalyzeCVInput{Text: scenarioOneCV})
	require.NoError(t, err)
	assert.Equal(t, []string{"GO", "Python", "Leadership"}, out.Analysis.Skills)
}

func TestAnalyzeCV_Upload(t *testing.T) {
	uc := NewAnalyzeCVUseCase(64, logger.NewNop())
	ctx := context.Background()

	out, err := uc.ExecuteUpload(ctx, UploadCVInput{Filename: "cv.txt", Size: int64(len("SKILLS\nGo")), File: strings.NewReader("SKILLS\nGo")})
	require.NoError(t, err)
	assert.Equal(t, "SKILLS\nGo", out.Text)
	assert.Equal(t, []string{"GO"}, out.Analysis.Skills)

	tests := []struct {
		name    string
		size    int64
		content []byte
		want    error
	}{
		{"declared too large", 65, []byte("x"), apperror.ErrPayloadTooLarge},
		{"body too large", 1, bytes.Repeat([]byte("x"), 65), apperror.ErrPayloadTooLarge},
		{"empty", 3, []byte("  \n"), apperror.ErrInvalidInput},
		{"binary", 8, []byte{0x00, 0x01, 0x02, 0xff, 0xfe, 'a', 0x03, 0x04}, apperror.ErrUnsupportedMedia},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ExecuteUpload(ctx, UploadCVInput{Filename: "cv.bin", Size: tt.size, File: bytes.NewReader(tt.content)})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
