package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces/mock"
	"go-psi-bot/internal/models"
)

func testProfile() models.Profile {
	return models.Profile{
		Name:   "Bob",
		Weight: models.Reading{Kind: models.KindWeight, Value: 90, Tag: "⚖️"},
		Length: models.Reading{Kind: models.KindLength, Value: 15, Tag: "🥴"},
		IQ:     models.Reading{Kind: models.KindIQ, Value: 140, Tag: "🤓"},
		Height: models.Reading{Kind: models.KindHeight, Value: 182, Tag: "😃"},
	}
}

func refusal() error {
	return fmt.Errorf("finish reason IMAGE_SAFETY: %w", models.ErrContentPolicy)
}

func TestPolicy_PrimarySucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockImageGenerator(ctrl)
	local := mock.NewMockLocalRenderer(ctrl)
	profile := testProfile()

	primary.EXPECT().GenerateImage(gomock.Any(), PrimaryPrompt(profile)).Return([]byte("remote"), nil)

	policy := NewPolicy(primary, local, time.Second, zap.NewNop())
	payload, tier, err := policy.Generate(context.Background(), profile)

	require.NoError(t, err)
	assert.Equal(t, []byte("remote"), payload)
	assert.Equal(t, models.TierPrimary, tier)
}

func TestPolicy_RefusalTriggersOneSanitizedRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockImageGenerator(ctrl)
	local := mock.NewMockLocalRenderer(ctrl)
	profile := testProfile()

	gomock.InOrder(
		primary.EXPECT().GenerateImage(gomock.Any(), PrimaryPrompt(profile)).Return(nil, refusal()),
		primary.EXPECT().GenerateImage(gomock.Any(), SanitizedPrompt(profile)).Return([]byte("safe"), nil),
	)

	policy := NewPolicy(primary, local, time.Second, zap.NewNop())
	payload, tier, err := policy.Generate(context.Background(), profile)

	require.NoError(t, err)
	assert.Equal(t, []byte("safe"), payload)
	assert.Equal(t, models.TierSanitized, tier)
}

func TestPolicy_RefusalThenFailureRendersLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockImageGenerator(ctrl)
	local := mock.NewMockLocalRenderer(ctrl)
	profile := testProfile()

	gomock.InOrder(
		primary.EXPECT().GenerateImage(gomock.Any(), PrimaryPrompt(profile)).Return(nil, refusal()),
		primary.EXPECT().GenerateImage(gomock.Any(), SanitizedPrompt(profile)).Return(nil, refusal()),
		local.EXPECT().Render(profile).Return([]byte("stick"), nil).Times(1),
	)

	policy := NewPolicy(primary, local, time.Second, zap.NewNop())
	payload, tier, err := policy.Generate(context.Background(), profile)

	require.NoError(t, err)
	assert.Equal(t, []byte("stick"), payload)
	assert.Equal(t, models.TierLocal, tier)
}

func TestPolicy_GenericFailureSkipsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockImageGenerator(ctrl)
	local := mock.NewMockLocalRenderer(ctrl)
	profile := testProfile()

	primary.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).Return(nil, errors.New("HTTP 503")).Times(1)
	local.EXPECT().Render(profile).Return([]byte("stick"), nil).Times(1)

	policy := NewPolicy(primary, local, time.Second, zap.NewNop())
	payload, tier, err := policy.Generate(context.Background(), profile)

	require.NoError(t, err)
	assert.Equal(t, []byte("stick"), payload)
	assert.Equal(t, models.TierLocal, tier)
}

func TestPolicy_TimeoutFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockImageGenerator(ctrl)
	local := mock.NewMockLocalRenderer(ctrl)

	primary.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, prompt string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	local.EXPECT().Render(gomock.Any()).Return([]byte("stick"), nil)

	policy := NewPolicy(primary, local, 10*time.Millisecond, zap.NewNop())
	_, tier, err := policy.Generate(context.Background(), testProfile())

	require.NoError(t, err)
	assert.Equal(t, models.TierLocal, tier)
}

func TestPolicy_EmptyPayloadIsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	primary := mock.NewMockImageGenerator(ctrl)
	local := mock.NewMockLocalRenderer(ctrl)

	primary.EXPECT().GenerateImage(gomock.Any(), gomock.Any()).Return([]byte{}, nil)
	local.EXPECT().Render(gomock.Any()).Return([]byte("stick"), nil)

	policy := NewPolicy(primary, local, time.Second, zap.NewNop())
	_, tier, err := policy.Generate(context.Background(), testProfile())

	require.NoError(t, err)
	assert.Equal(t, models.TierLocal, tier)
}

func TestPolicy_NoPrimaryRendersLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mock.NewMockLocalRenderer(ctrl)
	local.EXPECT().Render(gomock.Any()).Return([]byte("stick"), nil)

	policy := NewPolicy(nil, local, time.Second, zap.NewNop())
	payload, tier, err := policy.Generate(context.Background(), testProfile())

	require.NoError(t, err)
	assert.Equal(t, []byte("stick"), payload)
	assert.Equal(t, models.TierLocal, tier)
}

func TestPolicy_LocalFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mock.NewMockLocalRenderer(ctrl)
	local.EXPECT().Render(gomock.Any()).Return(nil, errors.New("png encode"))

	policy := NewPolicy(nil, local, time.Second, zap.NewNop())
	_, _, err := policy.Generate(context.Background(), testProfile())

	assert.Error(t, err)
}

func TestPrompts(t *testing.T) {
	profile := testProfile()

	primary := PrimaryPrompt(profile)
	assert.Contains(t, primary, "Height 182 cm, weight 90 kg")
	assert.Contains(t, primary, "\"15 cm\"")
	assert.Contains(t, primary, "IQ 140")
	assert.Contains(t, primary, "\"Bob\"")

	sanitized := SanitizedPrompt(profile)
	assert.NotContains(t, sanitized, "15 cm")
	assert.NotContains(t, sanitized, "tape-measure")
	assert.Contains(t, sanitized, "IQ 140")
	assert.Contains(t, sanitized, "\"Bob\"")
}
