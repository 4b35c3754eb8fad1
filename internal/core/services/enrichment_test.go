package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

func TestEnrichBothLegs(t *testing.T) {
	web := &mockWebSearch{results: []domain.WebResult{
		{Title: "one"}, {Title: "two"}, {Title: "three"}, {Title: "four"},
	}}
	videos := &mockVideoSearch{results: []domain.VideoResult{
		{Title: "clip"}, {Title: "clip2"},
	}}

	result := NewEnrichmentService(web, videos).Enrich(context.Background(), "query", 3, 3)

	assert.Len(t, result.Web, 3, "web results truncated to requested count")
	assert.Len(t, result.Videos, 2)
	assert.NoError(t, result.WebErr)
	assert.NoError(t, result.VideoErr)
}

func TestEnrichFailSoft(t *testing.T) {
	web := &mockWebSearch{err: errors.New("web down")}
	videos := &mockVideoSearch{results: []domain.VideoResult{{Title: "clip"}}}

	result := NewEnrichmentService(web, videos).Enrich(context.Background(), "query", 3, 3)

	assert.Error(t, result.WebErr)
	assert.Empty(t, result.Web)
	assert.Len(t, result.Videos, 1, "video leg unaffected by web failure")
}

func TestEnrichNilServices(t *testing.T) {
	result := NewEnrichmentService(nil, nil).Enrich(context.Background(), "query", 3, 3)

	assert.Empty(t, result.Web)
	assert.Empty(t, result.Videos)
	assert.NoError(t, result.WebErr)
	assert.NoError(t, result.VideoErr)
}
