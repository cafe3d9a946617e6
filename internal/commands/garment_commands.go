package commands

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"text/tabwriter"

	"wardrobe/internal/repositories"
	"wardrobe/internal/services"

	"github.com/spf13/cobra"
)

// GarmentCommands wires the CLI surface to the inventory services. Commands
// are pure glue: all validation and matching policy lives below them.
type GarmentCommands struct {
	inventory *services.InventoryService
	importer  *services.ImportService
}

// NewGarmentCommands creates a new GarmentCommands.
func NewGarmentCommands(inventory *services.InventoryService, importer *services.ImportService) *GarmentCommands {
	return &GarmentCommands{
		inventory: inventory,
		importer:  importer,
	}
}

// Register attaches the add, update, delete, list and import subcommands to
// the root command.
func (c *GarmentCommands) Register(root *cobra.Command) {
	root.AddCommand(
		c.addCmd(),
		c.updateCmd(),
		c.deleteCmd(),
		c.listCmd(),
		c.importCmd(),
	)
}

// garmentFlags registers the five record fields on cmd and returns pointers
// to their values.
func garmentFlags(cmd *cobra.Command) (name, size, color, style *string, quantity *int) {
	name = cmd.Flags().String("name", "", "garment name")
	size = cmd.Flags().String("size", "", "garment size")
	color = cmd.Flags().String("color", "", "garment color")
	style = cmd.Flags().String("style", "", "garment style")
	quantity = cmd.Flags().Int("quantity", 0, "quantity in stock")
	return
}

func (c *GarmentCommands) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new garment to the inventory",
	}
	name, size, color, style, quantity := garmentFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		garment, err := c.inventory.Add(*name, *size, *color, *style, *quantity)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				return fmt.Errorf("all fields are required and quantity must be a non-negative integer: %w", err)
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added garment #%d\n", garment.ID)
		return nil
	}
	return cmd
}

func (c *GarmentCommands) updateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing garment by id",
		Args:  cobra.ExactArgs(1),
	}
	name, size, color, style, quantity := garmentFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		err = c.inventory.Update(id, *name, *size, *color, *style, *quantity)
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			// Reportable no-op, not a failure.
			fmt.Fprintf(cmd.OutOrStdout(), "No garment with ID %d.\n", id)
			return nil
		case errors.Is(err, services.ErrValidation):
			return fmt.Errorf("all fields are required and quantity must be a non-negative integer: %w", err)
		case err != nil:
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated garment #%d\n", id)
		return nil
	}
	return cmd
}

func (c *GarmentCommands) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a garment by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			err = c.inventory.Delete(id)
			if errors.Is(err, repositories.ErrNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "No garment with ID %d.\n", id)
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted garment #%d\n", id)
			return nil
		},
	}
}

func (c *GarmentCommands) listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List garments, optionally filtered",
		Long: `List garments matching the supplied criteria.

--name matches exactly; --size, --color and --style match anywhere within the
field. Multiple criteria are combined with AND. With no criteria, every
garment is listed.`,
	}
	filter := &repositories.Filter{}
	cmd.Flags().StringVar(&filter.Name, "name", "", "exact name to match")
	cmd.Flags().StringVar(&filter.Size, "size", "", "size substring to match")
	cmd.Flags().StringVar(&filter.Color, "color", "", "color substring to match")
	cmd.Flags().StringVar(&filter.Style, "style", "", "style substring to match")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		garments, err := c.inventory.Fetch(filter)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSIZE\tCOLOR\tSTYLE\tQUANTITY")
		for _, g := range garments {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", g.ID, g.Name, g.Size, g.Color, g.Style, g.Quantity)
		}
		return w.Flush()
	}
	return cmd
}

func (c *GarmentCommands) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Bulk-import garments from a CSV file",
		Long: `Import garments from a comma-delimited file with no header row and fields
in order name, size, color, style, quantity. Rows that do not have exactly
five fields or whose quantity is not a non-negative integer are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.importer.ImportCSV(args[0])
			if err != nil {
				return err
			}
			log.Printf("import batch %s: %d imported, %d skipped", report.BatchID, report.Imported, report.Skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d garments.\n", report.Imported)
			return nil
		},
	}
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid garment id %q", arg)
	}
	return uint(id), nil
}
