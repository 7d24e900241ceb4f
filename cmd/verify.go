/*
Copyright © 2025 BlueHawk Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/bluehawk/icongen"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "verify that the icon files on disk match the current definition",
	Long: `verify renders the icon set in memory and compares it against the files on
disk. It exits non-zero when any icon is stale, so it can gate CI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen)
		yellow := color.New(color.FgYellow)
		red := color.New(color.FgRed)

		g, err := newGenerator(nil)
		if err != nil {
			return err
		}
		results, err := g.Verify(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range results {
			switch r.Status {
			case icongen.StatusCurrent:
				green.Printf("✓ %s\n", r.File)
			case icongen.StatusReencoded:
				yellow.Printf("⚠ %s re-encoded (pixel content matches)\n", r.File)
			case icongen.StatusStale:
				red.Printf("✗ %s stale: %s\n", r.File, r.Reason)
			}
		}
		if stale := icongen.StaleCount(results); stale > 0 {
			return fmt.Errorf("%d of %d icons are stale, run icongen to regenerate", stale, len(results))
		}
		cmd.Println("all icons are up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
