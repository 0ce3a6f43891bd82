package cli

import (
	"fmt"

	"github.com/mehtalab/fixlab/internal/assets"
	"github.com/spf13/cobra"
)

var spritesForce bool

var spritesCmd = &cobra.Command{
	Use:   "sprites <dir>",
	Short: "Export the built-in sprite art for customization",
	Long:  `Write the built-in text-art sprites to a directory. Edit them and point assets_dir in the config at that directory to use your versions.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSprites,
}

func init() {
	spritesCmd.Flags().BoolVar(&spritesForce, "force", false, "Overwrite existing sprite files")
}

func runSprites(cmd *cobra.Command, args []string) error {
	written, err := assets.Export(args[0], spritesForce)
	if err != nil {
		return err
	}
	if len(written) == 0 {
		fmt.Println("All sprites already present; use --force to overwrite.")
		return nil
	}
	fmt.Printf("Wrote %d sprites to %s\n", len(written), args[0])
	return nil
}
