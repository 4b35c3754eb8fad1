package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

type stubAssistant struct{}

func (stubAssistant) Ask(_ context.Context, _ *domain.Session, _ string) (domain.CompositeAnswer, error) {
	return domain.CompositeAnswer{}, nil
}

var _ driving.AssistantService = stubAssistant{}

func TestPortsValidate(t *testing.T) {
	err := (&Ports{}).Validate()
	assert.ErrorIs(t, err, ErrMissingAssistantService)

	assert.NoError(t, (&Ports{Assistant: stubAssistant{}}).Validate())
}

func TestNewApp(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.Error(t, err)

	app, err := NewApp(&Ports{Assistant: stubAssistant{}})
	require.NoError(t, err)
	assert.NotNil(t, app)
}
