package cmd

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/bluehawk/icongen"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check icongen environment and inputs",
	Long:  `Check icongen environment and inputs to see which drawing path a run would take.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Color setup
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		g, err := newGenerator(nil)
		if err != nil {
			return err
		}

		allOK := true

		// 1. Check output directory
		cmd.Print("📁 Checking output directory ... ")
		if err := checkWritable(g.OutDir()); err != nil {
			red.Println("✗ NOT WRITABLE")
			cmd.Printf("   %v\n", err)
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Output directory: %s\n", g.OutDir())
		}

		// 2. Check vector source
		cmd.Print("🖼  Checking vector source ... ")
		svgOK := false
		b, err := os.ReadFile(g.SVGPath())
		switch {
		case os.IsNotExist(err):
			yellow.Println("⚠️ NOT FOUND")
			cmd.Printf("   Expected at: %s (the procedural path will be used)\n", g.SVGPath())
		case err != nil:
			red.Println("✗ READ ERROR")
			cmd.Printf("   Error reading file: %v\n", err)
			allOK = false
		default:
			if err := icongen.ValidateSVG(b); err != nil {
				red.Println("✗ INVALID SVG")
				cmd.Printf("   Parse error: %v\n", err)
				allOK = false
			} else {
				green.Println("✓ OK")
				cmd.Printf("   Vector source: %s\n", g.SVGPath())
				svgOK = true
			}
		}

		// 3. Check rasterization capability
		cmd.Print("⚙️  Checking rasterizer ... ")
		capable := true
		if rasterizerCmd != "" {
			r := icongen.NewExternalRasterizer(rasterizerCmd)
			if r.Available() {
				green.Println("✓ OK")
				cmd.Printf("   External command: %s\n", rasterizerCmd)
			} else {
				yellow.Println("⚠️ NOT AVAILABLE")
				cmd.Printf("   Command not found in PATH: %s (the procedural path will be used)\n", rasterizerCmd)
				capable = false
			}
		} else {
			green.Println("✓ OK")
			cmd.Println("   Built-in SVG rasterizer (always available)")
		}

		// 4. Check existing icon files
		cmd.Print("📦 Checking icon files ... ")
		missing := 0
		var broken []string
		for _, size := range icongen.Sizes {
			name := icongen.IconName(size)
			f, err := os.Open(filepath.Join(g.OutDir(), name))
			if err != nil {
				missing++
				continue
			}
			cfg, _, err := image.DecodeConfig(f)
			_ = f.Close()
			if err != nil || cfg.Width != size || cfg.Height != size {
				broken = append(broken, name)
			}
		}
		switch {
		case len(broken) > 0:
			red.Println("✗ BROKEN")
			cmd.Printf("   Undecodable or wrongly sized: %v (run icongen to regenerate)\n", broken)
			allOK = false
		case missing == len(icongen.Sizes):
			yellow.Println("⚠️ NOT GENERATED YET")
			cmd.Println("   No icon files found, run icongen to generate them")
		case missing > 0:
			yellow.Println("⚠️ INCOMPLETE")
			cmd.Printf("   %d of %d icon files missing, run icongen to regenerate\n", missing, len(icongen.Sizes))
		default:
			green.Println("✓ OK")
			cmd.Printf("   All %d icon files present\n", len(icongen.Sizes))
		}

		// Which path would a run take
		cmd.Println()
		if capable && svgOK {
			cmd.Println("A run would rasterize the vector source.")
		} else {
			cmd.Println("A run would draw the logo procedurally.")
		}

		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Print("All checks passed! You are ready to use icongen")
			bold.Println(".")
		} else {
			red.Println("⚠️  Setup is incomplete.")
			cmd.Println("\nPlease fix the issues above to use icongen properly.")
		}

		return nil
	},
}

func checkWritable(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	probe := filepath.Join(dir, ".icongen-doctor")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		return err
	}
	return os.Remove(probe)
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
