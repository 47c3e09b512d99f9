package cmd

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsweep/winsweep/internal/config"
)

func TestSelectCategoriesByID(t *testing.T) {
	cleanAll = false
	t.Cleanup(func() { cleanAll = false })

	cats, err := selectCategories([]string{"browsers", "system-temp"})
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "browsers", cats[0].ID)
	assert.Equal(t, "system-temp", cats[1].ID)
}

func TestSelectCategoriesUnknownID(t *testing.T) {
	cleanAll = false

	_, err := selectCategories([]string{"floppy-drives"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floppy-drives")
}

func TestSelectCategoriesNothingSelected(t *testing.T) {
	cleanAll = false

	_, err := selectCategories(nil)
	assert.Error(t, err)
}

func TestSelectCategoriesAll(t *testing.T) {
	cleanAll = true
	t.Cleanup(func() { cleanAll = false })

	cats, err := selectCategories(nil)
	require.NoError(t, err)
	assert.Len(t, cats, len(config.Catalog()))
}

func TestSelectCategoriesAllRejectsIDs(t *testing.T) {
	cleanAll = true
	t.Cleanup(func() { cleanAll = false })

	_, err := selectCategories([]string{"browsers"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--all")
}

func TestSelectCategoriesAllKeyword(t *testing.T) {
	cleanAll = false

	cats, err := selectCategories([]string{config.AllID})
	require.NoError(t, err)
	assert.Len(t, cats, len(config.Catalog()))
}

func TestConfirmViaStdin(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{"plain y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"yes", "yes\n", true},
		{"n declines", "n\n", false},
		{"empty answer declines", "\n", false},
		{"anything else declines", "sure\n", false},
		{"eof declines", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirm := confirmViaStdin(bufio.NewReader(strings.NewReader(tt.input)))
			assert.Equal(t, tt.expect, confirm("Run docker system prune?"))
		})
	}
}
