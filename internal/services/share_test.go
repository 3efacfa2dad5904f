package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodmate/moodmate-backend/internal/models"
	"github.com/moodmate/moodmate-backend/internal/services"
)

const testHost = "https://api.moodmate.test"

func newShareFixture(t *testing.T) (*services.ShareService, *models.User) {
	t.Helper()
	user := &models.User{
		ID:             uuid.New(),
		Username:       "ada",
		SharingEnabled: true,
	}
	return services.NewShareService(newFakeUserStore(user), testHost), user
}

func secretFromLink(t *testing.T, link string) string {
	t.Helper()
	prefix := testHost + "/api/moods/share/"
	require.True(t, strings.HasPrefix(link, prefix), "unexpected link %q", link)
	return strings.TrimPrefix(link, prefix)
}

func TestIssueLinkAndResolve(t *testing.T) {
	svc, user := newShareFixture(t)
	ctx := context.Background()

	link, err := svc.IssueLink(ctx, user.ID)
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, secretFromLink(t, link))
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "ada", resolved.Username)
}

func TestIssuingNewLinkInvalidatesOldOne(t *testing.T) {
	svc, user := newShareFixture(t)
	ctx := context.Background()

	first, err := svc.IssueLink(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.IssueLink(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = svc.Resolve(ctx, secretFromLink(t, first))
	assert.ErrorIs(t, err, services.ErrInvalidLink)

	_, err = svc.Resolve(ctx, secretFromLink(t, second))
	assert.NoError(t, err)
}

func TestResolveWithSharingDisabled(t *testing.T) {
	svc, user := newShareFixture(t)
	ctx := context.Background()

	link, err := svc.IssueLink(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DisableSharing(ctx, user.ID))

	_, err = svc.Resolve(ctx, secretFromLink(t, link))
	assert.ErrorIs(t, err, services.ErrSharingDisabled)
}

func TestDisableSharingIsIdempotent(t *testing.T) {
	svc, user := newShareFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.DisableSharing(ctx, user.ID))
	require.NoError(t, svc.DisableSharing(ctx, user.ID))
	assert.False(t, user.SharingEnabled)
}

func TestResolveUnknownTokenIsInvalidLink(t *testing.T) {
	svc, _ := newShareFixture(t)
	ctx := context.Background()

	for _, token := range []string{"", "garbage", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="} {
		_, err := svc.Resolve(ctx, token)
		assert.ErrorIs(t, err, services.ErrInvalidLink, "token %q", token)
	}
}

func TestIssuedSecretsAreUniqueAndLong(t *testing.T) {
	svc, user := newShareFixture(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		link, err := svc.IssueLink(ctx, user.ID)
		require.NoError(t, err)
		secret := secretFromLink(t, link)
		assert.GreaterOrEqual(t, len(secret), 40)
		assert.False(t, seen[secret], "duplicate secret issued")
		seen[secret] = true
	}
}
