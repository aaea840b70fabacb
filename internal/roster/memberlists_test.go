package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smallbiznis/photohub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeMemberlists(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memberlists.yml"), []byte(content), 0o644))
	return dir
}

func TestMemberlistsLookups(t *testing.T) {
	dir := writeMemberlists(t, `
current:
  - Peter van den Hamer
  - Henriëtte van Ekert
prospective:
  - Bettina de Graaf
coaches:
  - Joep Luycx
`)

	m, err := NewMemberlists(config.Config{MemberlistsPath: dir}, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, m.IsCurrent("Peter van den Hamer", false))
	assert.False(t, m.IsCurrent("Jan Jansen", false), "a name off the list is a former member")

	assert.True(t, m.IsProspective("Bettina de Graaf"))
	assert.False(t, m.IsCurrent("Bettina de Graaf", false))
	assert.True(t, m.IsCurrent("Bettina de Graaf", true),
		"prospective members count as current when asked to include them")

	assert.True(t, m.IsCoach("Joep Luycx"))
	assert.False(t, m.IsCoach("Peter van den Hamer"))
}

func TestMemberlistsMatchExactDisplayName(t *testing.T) {
	dir := writeMemberlists(t, "current:\n  - Peter van den Hamer\n")

	m, err := NewMemberlists(config.Config{MemberlistsPath: dir}, zap.NewNop())
	require.NoError(t, err)

	assert.False(t, m.IsCurrent("peter van den hamer", false))
	assert.False(t, m.IsCurrent("Peter van den Hamer ", false))
}

func TestMemberlistsMissingFileMeansEveryoneCurrent(t *testing.T) {
	m, err := NewMemberlists(config.Config{MemberlistsPath: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, m.IsCurrent("Anybody At All", false))
	assert.False(t, m.IsProspective("Anybody At All"))
	assert.False(t, m.IsCoach("Anybody At All"))
}
