package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twototango/internal/domain"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Music", "Music"},
		{"trims whitespace", "  Music  ", "Music"},
		{"strips markup", "<b>Hiking</b>", "Hiking"},
		{"drops script content", "<script>x</script>Music", "Music"},
		{"drops style content", "<style>.x{}</style>Art", "Art"},
		{"removes dangerous characters", `Rock"n"Roll`, "RocknRoll"},
		{"stripped to nothing", "<script>alert(1)</script>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeName(tt.in))
		})
	}
}

func TestInterestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the sanitized name", func(t *testing.T) {
		repo := newFakeInterestRepo()
		svc := NewInterestService(repo)

		interest, err := svc.Create(ctx, "<script>x</script>Music")
		require.NoError(t, err)
		assert.Equal(t, "Music", interest.Name)
		assert.NotEmpty(t, interest.ID)
	})

	t.Run("name sanitized to nothing is invalid", func(t *testing.T) {
		svc := NewInterestService(newFakeInterestRepo())
		_, err := svc.Create(ctx, "<script>alert(1)</script>")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("name over 50 characters is invalid", func(t *testing.T) {
		svc := NewInterestService(newFakeInterestRepo())
		_, err := svc.Create(ctx, strings.Repeat("a", 51))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := newFakeInterestRepo()
		svc := NewInterestService(repo)

		_, err := svc.Create(ctx, "Dancing")
		require.NoError(t, err)

		_, err = svc.Create(ctx, "<b>Dancing</b>")
		require.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestInterestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitizes on read", func(t *testing.T) {
		repo := newFakeInterestRepo()
		repo.interests["int-1"] = &domain.Interest{ID: "int-1", Name: "<i>Music</i>"}
		repo.order = append(repo.order, "int-1")
		svc := NewInterestService(repo)

		interest, err := svc.GetByID(ctx, "int-1")
		require.NoError(t, err)
		assert.Equal(t, "Music", interest.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewInterestService(newFakeInterestRepo())
		_, err := svc.GetByID(ctx, "ghost")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInterestService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeInterestRepo()
	svc := NewInterestService(repo)

	_, err := svc.Create(ctx, "Dancing")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Music")
	require.NoError(t, err)

	interests, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, interests, 2)
	assert.Equal(t, "Dancing", interests[0].Name)
	assert.Equal(t, "Music", interests[1].Name)
}
