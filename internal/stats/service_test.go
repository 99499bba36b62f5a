package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"go-psi-bot/internal/interfaces/mock"
	"go-psi-bot/internal/models"
)

func expectProfile(values *mock.MockValueCache, subject string) {
	values.EXPECT().GetOrGenerate(models.KindWeight, subject).Return(75, "⚖️")
	values.EXPECT().GetOrGenerate(models.KindLength, subject).Return(12, "🥴")
	values.EXPECT().GetOrGenerate(models.KindIQ, subject).Return(101, "🙂")
	values.EXPECT().GetOrGenerate(models.KindHeight, subject).Return(180, "😃")
}

func TestService_Reading(t *testing.T) {
	ctrl := gomock.NewController(t)
	values := mock.NewMockValueCache(ctrl)
	values.EXPECT().GetOrGenerate(models.KindIQ, "42").Return(130, "🤓")

	svc := NewService(values, mock.NewMockArtifactCache(ctrl), zap.NewNop())
	reading := svc.Reading("42", models.KindIQ)

	assert.Equal(t, models.Reading{Kind: models.KindIQ, Value: 130, Tag: "🤓"}, reading)
}

func TestService_WhoAmI(t *testing.T) {
	ctrl := gomock.NewController(t)
	values := mock.NewMockValueCache(ctrl)
	artifacts := mock.NewMockArtifactCache(ctrl)

	expectProfile(values, "42")
	artifacts.EXPECT().GetOrRender(gomock.Any(), "42", gomock.Any()).DoAndReturn(
		func(ctx context.Context, subject string, p models.Profile) ([]byte, error) {
			assert.Equal(t, "Dave", p.Name)
			assert.Equal(t, 12, p.Length.Value)
			return []byte("png"), nil
		})

	svc := NewService(values, artifacts, zap.NewNop())
	image, caption, err := svc.WhoAmI(context.Background(), "42", "Dave")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), image)
	assert.Equal(t, "My weight: 75 kg ⚖️\nMy length: 12 cm 🥴\nMy IQ: 101 🙂\nMy height: 180 cm 😃", caption)
}

func TestService_WhoAmIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	values := mock.NewMockValueCache(ctrl)
	artifacts := mock.NewMockArtifactCache(ctrl)

	expectProfile(values, "1")
	artifacts.EXPECT().GetOrRender(gomock.Any(), "1", gomock.Any()).Return(nil, errors.New("render"))

	svc := NewService(values, artifacts, zap.NewNop())
	_, _, err := svc.WhoAmI(context.Background(), "1", "x")

	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	weight := models.Reading{Kind: models.KindWeight, Value: 0, Tag: "🪶"}
	iq := models.Reading{Kind: models.KindIQ, Value: 200, Tag: "👨‍🔬"}

	assert.Equal(t, "0 kg 🪶", FormatValue(weight))
	assert.Equal(t, "200 👨‍🔬", FormatValue(iq))
	assert.Equal(t, "My IQ: 200 👨‍🔬", FormatReading(iq))
	assert.Equal(t, "Eve, your weight: 0 kg 🪶", FormatGreeting("Eve", weight))
}
