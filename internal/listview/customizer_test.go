package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func catalogue() []Column {
	return []Column{
		{Key: "code", Label: "Code"},
		{Key: "name", Label: "Name"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
		{Key: "city", Label: "City"},
		{Key: "status", Label: "Status"},
		{Key: "balance", Label: "Balance"},
		{Key: "created", Label: "Created"},
	}
}

func keys(cols []Column) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, col.Key)
	}
	return out
}

func TestToggleRespectsCap(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code", "name", "email", "phone", "city", "status"}, 6)
	c.Open()

	before := keys(c.Draft())
	require.Len(t, before, 6)

	// Adding a seventh key is rejected and leaves the draft set-equal.
	require.False(t, c.Toggle("balance"))
	require.Equal(t, before, keys(c.Draft()))
	require.True(t, c.LimitAlertActive())

	// Removing always succeeds, then the freed slot can be refilled.
	require.True(t, c.Toggle("city"))
	require.True(t, c.Toggle("balance"))
	require.Len(t, c.Draft(), 6)
}

func TestLimitAlertAutoClears(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code", "name"}, 2)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	now := base
	c.WithNow(func() time.Time { return now })

	c.Open()
	require.False(t, c.Toggle("email"))
	require.True(t, c.LimitAlertActive())

	now = base.Add(2400 * time.Millisecond)
	require.True(t, c.LimitAlertActive())

	now = base.Add(2500 * time.Millisecond)
	require.False(t, c.LimitAlertActive())
}

func TestOpenSnapshotsCommitted(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code", "name"}, 7)

	c.Open()
	require.Equal(t, []string{"code", "name"}, keys(c.Draft()))

	require.True(t, c.Toggle("email"))
	c.Cancel()
	require.Equal(t, []string{"code", "name"}, keys(c.Committed()))

	// Reopening must start from committed, not the discarded draft.
	c.Open()
	require.Equal(t, []string{"code", "name"}, keys(c.Draft()))
}

func TestApplyCommitsDraft(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code", "name"}, 7)
	c.Open()
	require.True(t, c.Toggle("status"))
	c.Apply()

	require.False(t, c.IsOpen())
	require.Equal(t, []string{"code", "name", "status"}, keys(c.Committed()))
}

func TestToggleIdempotentUnderRapidClicks(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code"}, 3)
	c.Open()

	// A double-click adds then removes; no double counting.
	require.True(t, c.Toggle("name"))
	require.True(t, c.Toggle("name"))
	require.Equal(t, []string{"code"}, keys(c.Draft()))

	for i := 0; i < 10; i++ {
		c.Toggle("email")
	}
	require.Equal(t, []string{"code"}, keys(c.Draft()))
}

func TestToggleIgnoredWhenClosed(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code"}, 3)
	require.False(t, c.Toggle("name"))
	require.Equal(t, []string{"code"}, keys(c.Committed()))
}

func TestUnknownKeyRejected(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code"}, 3)
	c.Open()
	require.False(t, c.Toggle("nope"))
	require.Equal(t, []string{"code"}, keys(c.Draft()))
}

func TestInitialSelectionTruncatedToMax(t *testing.T) {
	c := NewCustomizer(catalogue(), []string{"code", "name", "email", "phone"}, 2)
	require.Len(t, c.Committed(), 2)
}

func TestMaxIsPerInstanceConfiguration(t *testing.T) {
	six := NewCustomizer(catalogue(), nil, 6)
	seven := NewCustomizer(catalogue(), nil, 7)
	require.Equal(t, 6, six.Max())
	require.Equal(t, 7, seven.Max())
}
