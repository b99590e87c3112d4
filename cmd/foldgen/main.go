// foldgen compiles a CaseFolding.txt table into a generated Go source
// file with a compact case-folding lookup function, plus a companion
// _test.go file holding the naive reference oracle and the brute-force
// equivalence test. The compiled table is verified in-process before
// anything is written; on any error nothing is written at all.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/npillmayer/unifold"
	"github.com/npillmayer/unifold/ucd"
)

var (
	inputPath  string
	outputPath string
	pkgName    string
)

var rootCmd = &cobra.Command{
	Use:   "foldgen",
	Short: "Compile CaseFolding.txt into a compact Go lookup function",
	Long: `foldgen reads the common (C) and full (F) entries of a Unicode
CaseFolding.txt file, merges them into maximal contiguous and
alternating runs, and writes a generated lookup function that dispatches
on code-point ranges (with a high-byte jump table for the low range),
together with a generated equivalence test against the unmerged table.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "CaseFolding.txt", "path of the CaseFolding table to compile")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "foldmap_gen.go", "path of the generated map file")
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "unifold", "package name for the generated files")
}

func generate() error {
	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	table, err := unifold.Compile(filepath.Base(inputPath), ucd.NewReader(in))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputPath, err)
	}
	if err := table.Verify(); err != nil {
		return fmt.Errorf("refusing to emit an inconsistent table: %w", err)
	}

	em := unifold.NewEmitter(table)
	em.Package = pkgName
	mapSrc, testSrc, err := em.Emit()
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, mapSrc, 0644); err != nil {
		return err
	}
	testPath := testPathFor(outputPath)
	if err := os.WriteFile(testPath, testSrc, 0644); err != nil {
		return err
	}
	records, runs, _ := table.Stats()
	fmt.Printf("wrote %s and %s (Unicode %s, %d records, %d runs)\n",
		outputPath, testPath, table.Version(), records, runs)
	return nil
}

func testPathFor(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_test" + ext
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "foldgen:", err)
		os.Exit(1)
	}
}
