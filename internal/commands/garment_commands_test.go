package commands_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"wardrobe/internal/commands"
	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// cli wires the full stack over an in-memory SQLite database and executes
// commands against it. A fresh root command is built per invocation so flag
// values cannot leak between runs.
type cli struct {
	t         *testing.T
	inventory *services.InventoryService
	importer  *services.ImportService
}

func setupCLI(t *testing.T) *cli {
	t.Helper()
	// A named shared-cache memory database so every pooled connection sees
	// the same data, isolated per test by name.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect to in-memory database")

	repo := repositories.NewGORMGarmentRepository(db)
	require.NoError(t, repo.Init())

	inventory := services.NewInventoryService(repo)
	return &cli{
		t:         t,
		inventory: inventory,
		importer:  services.NewImportService(inventory),
	}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := &cobra.Command{Use: "wardrobe", SilenceUsage: true}
	commands.NewGarmentCommands(c.inventory, c.importer).Register(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAddAndListRoundTrip(t *testing.T) {
	c := setupCLI(t)

	out, err := c.run("add", "--name", "Shirt", "--size", "M", "--color", "Red", "--style", "Casual", "--quantity", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Added garment #1")

	out, err = c.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Shirt")
	assert.Contains(t, out, "Casual")
}

func TestAddRejectsInvalidInput(t *testing.T) {
	c := setupCLI(t)

	_, err := c.run("add", "--name", "Shirt", "--size", "M", "--color", "Red", "--style", "Casual", "--quantity", "-1")
	assert.Error(t, err)

	_, err = c.run("add", "--size", "M", "--color", "Red", "--style", "Casual", "--quantity", "1")
	assert.Error(t, err)

	out, err := c.run("list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Shirt")
}

func TestListFilterFlags(t *testing.T) {
	c := setupCLI(t)

	_, err := c.run("add", "--name", "Shirt", "--size", "M", "--color", "Red", "--style", "Casual", "--quantity", "5")
	require.NoError(t, err)
	_, err = c.run("add", "--name", "Shirt", "--size", "L", "--color", "Blue", "--style", "Formal", "--quantity", "2")
	require.NoError(t, err)

	out, err := c.run("list", "--color", "Re")
	require.NoError(t, err)
	assert.Contains(t, out, "Red")
	assert.NotContains(t, out, "Blue")

	out, err = c.run("list", "--name", "Sh")
	require.NoError(t, err)
	assert.NotContains(t, out, "Shirt", "name filtering is exact")
}

func TestUpdateCommand(t *testing.T) {
	c := setupCLI(t)

	_, err := c.run("add", "--name", "Shirt", "--size", "M", "--color", "Red", "--style", "Casual", "--quantity", "5")
	require.NoError(t, err)

	out, err := c.run("update", "1", "--name", "Shirt", "--size", "L", "--color", "Green", "--style", "Casual", "--quantity", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Updated garment #1")

	out, err = c.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Green")
	assert.NotContains(t, out, "Red")
}

func TestUpdateNonexistentIsReportedNoOp(t *testing.T) {
	c := setupCLI(t)

	out, err := c.run("update", "99", "--name", "Ghost", "--size", "S", "--color", "White", "--style", "Sheet", "--quantity", "1")
	require.NoError(t, err, "a missing id is not a hard failure")
	assert.Contains(t, out, "No garment with ID 99.")
}

func TestDeleteCommand(t *testing.T) {
	c := setupCLI(t)

	_, err := c.run("add", "--name", "Shirt", "--size", "M", "--color", "Red", "--style", "Casual", "--quantity", "5")
	require.NoError(t, err)

	out, err := c.run("delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted garment #1")

	out, err = c.run("list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Shirt")

	out, err = c.run("delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "No garment with ID 1.")
}

func TestImportCommand(t *testing.T) {
	c := setupCLI(t)

	path := filepath.Join(t.TempDir(), "garments.csv")
	content := "T,S,Red,Casual,3\nBad,Row,OnlyFour\nX,S,Red,Casual,-1\nY,S,Red,Casual,abc\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := c.run("import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully imported 1 garments.")

	out, err = c.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Casual")
	assert.NotContains(t, out, "Bad")
}

func TestImportCommandMissingFile(t *testing.T) {
	c := setupCLI(t)

	_, err := c.run("import", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "unreadable import source")
}
