package contact

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/internal/contacts/application"
	"github.com/felixgeelhaar/rolodex/internal/contacts/domain"
	internalApp "github.com/felixgeelhaar/rolodex/internal/app"
	"github.com/felixgeelhaar/rolodex/pkg/config"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

func setupTestApp(t *testing.T) *cli.App {
	t.Helper()

	cfg := &config.Config{
		AppEnv:                  "test",
		SnapshotBackend:         config.BackendMemory,
		SnapshotName:            "default",
		BreakerFailureThreshold: 5,
	}
	fixed := time.Date(2017, time.January, 15, 12, 0, 0, 0, time.UTC)
	container, err := internalApp.NewContainer(context.Background(), cfg, observability.NopLogger(),
		application.WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	app := cli.NewApp(container.ContactManager, container.Health)
	cli.SetApp(app)
	t.Cleanup(func() { cli.SetApp(nil) })

	addNotes = ""
	listName, listIDs = "", nil
	return app
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())
	err := cmd.RunE(cmd, args)
	return out.String(), err
}

func TestAddCmd(t *testing.T) {
	app := setupTestApp(t)

	addNotes = "engines"
	out, err := run(t, addCmd, "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Contact added: #1 Ada\n", out)

	addNotes = "compilers"
	out, err = run(t, addCmd, "Grace")
	require.NoError(t, err)
	assert.Equal(t, "Contact added: #2 Grace\n", out)

	assert.Len(t, app.Manager.Contacts(), 2)
}

func TestAddCmd_RequiresNotes(t *testing.T) {
	app := setupTestApp(t)

	_, err := run(t, addCmd, "Ada")
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assert.Empty(t, app.Manager.Contacts())
}

func TestListCmd(t *testing.T) {
	setupTestApp(t)
	for _, name := range []string{"Ada", "Grace", "ada"} {
		addNotes = "notes for " + name
		_, err := run(t, addCmd, name)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		byName   string
		ids      []int
		contains []string
		excludes []string
	}{
		{name: "all", contains: []string{"Contacts (3)", "#1 Ada", "#2 Grace", "#3 ada"}},
		{name: "exact name is case-sensitive", byName: "Ada", contains: []string{"Contacts (1)", "#1 Ada"}, excludes: []string{"#3 ada"}},
		{name: "by ids skips unknown", ids: []int{3, 1, 99}, contains: []string{"Contacts (2)", "#1 Ada", "#3 ada"}},
		{name: "ids and name", ids: []int{1, 2}, byName: "Grace", contains: []string{"Contacts (1)", "#2 Grace"}},
		{name: "no match", byName: "Linus", contains: []string{"No contacts found."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listName, listIDs = tt.byName, tt.ids
			out, err := run(t, listCmd)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
