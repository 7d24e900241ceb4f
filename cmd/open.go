package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "open a preview sheet of the generated icons in the browser",
	Long: `open builds a preview sheet with every generated icon upscaled onto a
checkerboard and opens it in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator(nil)
		if err != nil {
			return err
		}
		sheet, err := g.PreviewSheet()
		if err != nil {
			return err
		}
		path := filepath.Join(os.TempDir(), fmt.Sprintf("icongen-preview-%s.png", uuid.NewString()))
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, sheet); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		cmd.Println(path)
		return browser.OpenFile(path)
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
