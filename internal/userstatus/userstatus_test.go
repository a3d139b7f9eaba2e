package userstatus

import (
	"testing"
	"time"

	"github.com/collections-admin-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestIsActive(t *testing.T) {
	d := New(WithClock(fixedClock))

	tests := []struct {
		name      string
		lastLogin any
		want      bool
	}{
		{name: "29 days ago", lastLogin: fixedNow.AddDate(0, 0, -29), want: true},
		{name: "31 days ago", lastLogin: fixedNow.AddDate(0, 0, -31), want: false},
		{name: "exactly on the cutoff", lastLogin: fixedNow.AddDate(0, 0, -30), want: false},
		{name: "one second after the cutoff", lastLogin: fixedNow.AddDate(0, 0, -30).Add(time.Second), want: true},
		{name: "just now as string", lastLogin: fixedNow.Format(time.RFC3339), want: true},
		{name: "document timestamp", lastLogin: map[string]any{"seconds": fixedNow.Add(-time.Hour).Unix()}, want: true},
		{name: "missing", lastLogin: nil, want: false},
		{name: "unparseable", lastLogin: "yesterday-ish", want: false},
		{name: "empty string", lastLogin: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &models.User{ID: "u1", LastLogin: tt.lastLogin}
			assert.Equal(t, tt.want, d.IsActive(u))
		})
	}
}

func TestIsActive_EvaluatedPerCall(t *testing.T) {
	now := fixedNow
	d := New(WithClock(func() time.Time { return now }))
	u := &models.User{LastLogin: fixedNow.AddDate(0, 0, -29)}

	require.True(t, d.IsActive(u))

	now = now.AddDate(0, 0, 2)
	assert.False(t, d.IsActive(u), "same stored login should expire as the clock advances")
}

func TestIsActive_CustomWindow(t *testing.T) {
	d := New(WithClock(fixedClock), WithActiveDays(7))
	u := &models.User{LastLogin: fixedNow.AddDate(0, 0, -10)}
	assert.False(t, d.IsActive(u))

	d = New(WithClock(fixedClock), WithActiveDays(0))
	assert.True(t, d.IsActive(u), "non-positive window keeps the default")
}

func TestIsActive_NilUser(t *testing.T) {
	assert.False(t, New().IsActive(nil))
}

func TestPackageColorCategory(t *testing.T) {
	tests := []struct {
		pkg  string
		want Category
	}{
		{"Premium", CategoryWarning},
		{"GOLD", CategoryWarning},
		{"gold", CategoryWarning},
		{"silver", CategoryInfo},
		{"bronze", CategorySecondary},
		{"", CategoryPrimary},
		{"platinum", CategoryPrimary},
		{" premium", CategoryPrimary},
	}

	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			assert.Equal(t, tt.want, PackageColorCategory(tt.pkg))
		})
	}
}

func TestDisplayDefaults(t *testing.T) {
	empty := &models.User{}
	assert.Equal(t, "", DisplayName(empty))
	assert.Equal(t, "", Initial(empty))
	assert.Equal(t, int64(0), Coins(empty))
	assert.Equal(t, "user", Role(empty))
	assert.Equal(t, "Nigeria", Country(empty))

	coins := int64(1250)
	full := &models.User{
		Name:        "ada lovelace",
		DisplayName: "Ada",
		Coins:       &coins,
		Role:        "moderator",
		Country:     "Ghana",
	}
	assert.Equal(t, "ada lovelace", DisplayName(full))
	assert.Equal(t, "A", Initial(full))
	assert.Equal(t, int64(1250), Coins(full))
	assert.Equal(t, "moderator", Role(full))
	assert.Equal(t, "Ghana", Country(full))

	displayOnly := &models.User{DisplayName: "émile"}
	assert.Equal(t, "émile", DisplayName(displayOnly))
	assert.Equal(t, "É", Initial(displayOnly))
}

func TestCard(t *testing.T) {
	d := New(WithClock(fixedClock))
	expiry := fixedNow.AddDate(0, 1, 0)

	u := &models.User{
		ID:         "user-1",
		Name:       "Jane",
		Email:      "jane@example.com",
		PackageSub: "Silver",
		LastLogin:  fixedNow.Add(-24 * time.Hour).Format(time.RFC3339),
		SubExpiry:  expiry.Format(time.RFC3339),
	}

	card := d.Card(u)
	assert.Equal(t, "Jane", card.DisplayName)
	assert.Equal(t, "J", card.Initial)
	assert.Equal(t, CategoryInfo, card.PackageCategory)
	assert.True(t, card.Active)
	require.NotNil(t, card.LastActive)
	require.NotNil(t, card.SubscriptionExpiry)
	assert.True(t, expiry.Equal(*card.SubscriptionExpiry))
	assert.Equal(t, []Action{ActionView, ActionEdit, ActionDelete}, card.Actions)

	never := d.Card(&models.User{ID: "user-2", SubExpiry: "garbage"})
	assert.False(t, never.Active)
	assert.Nil(t, never.LastActive)
	assert.Nil(t, never.SubscriptionExpiry)
	assert.Equal(t, CategoryPrimary, never.PackageCategory)
}

func BenchmarkCard(b *testing.B) {
	d := New(WithClock(fixedClock))
	u := &models.User{ID: "u", Name: "Bench", PackageSub: "gold", LastLogin: "2024-06-01T00:00:00Z"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Card(u)
	}
}
