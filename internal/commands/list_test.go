package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klabast/wb-services/feiertag-kalender/internal/app"
)

func init() {
	color.NoColor = true
}

func TestRunList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runList(&buf, []string{"-year", "2015", "-rules", ""}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, "2015-01-01  Thursday   Neujahr", lines[0])
	assert.Contains(t, buf.String(), "2015-04-03  Friday     Karfreitag\n")
}

func TestRunList_FeastOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runList(&buf, []string{"-year", "2015", "-rules", "", "-feast"}))

	assert.Len(t, strings.Split(strings.TrimSpace(buf.String()), "\n"), 13)
	assert.NotContains(t, buf.String(), "Silvester")
}

func TestRunList_UnsupportedYear(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, runList(&buf, []string{"-year", "1970", "-rules", ""}))
}

func TestRunLookup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLookup(&buf, []string{"-rules", "", "20150405", "20150102"}))

	assert.Equal(t, "2015-04-05  Sunday     Ostersonntag\n2015-01-02  Friday     -\n", buf.String())

	assert.Error(t, runLookup(&buf, []string{"-rules", ""}))
	assert.Error(t, runLookup(&buf, []string{"-rules", "", "2015-04-05"}))
}

func TestRunInitRules(t *testing.T) {
	out := filepath.Join(t.TempDir(), "rules.json")

	require.NoError(t, runInitRules([]string{"-out", out}))
	config, err := app.LoadRules(out)
	require.NoError(t, err)
	assert.Equal(t, app.DefaultRules(), config)

	assert.Error(t, runInitRules([]string{"-out", out}), "existing file needs -overwrite")
	assert.NoError(t, runInitRules([]string{"-out", out, "-overwrite"}))

	_, err = os.Stat(out + app.TmpSuffix)
	assert.True(t, os.IsNotExist(err))
}
