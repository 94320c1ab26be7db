package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/webstrap-labs/webstrap/internal/manifest"
	"github.com/webstrap-labs/webstrap/internal/prereq"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local toolchain",
	Long: `Probe the tools a scaffolding run depends on (node, npm, npx, git),
reporting the resolved path and version of each. Tools below their minimum
supported version are flagged as warnings; missing tools fail the check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkManifest != "" {
			return runManifestCheck(checkManifest)
		}

		missing := prereq.Report(cmd.Context(), os.Stdout, prereq.Defaults())
		if missing > 0 {
			return fmt.Errorf("%d required tool(s) missing", missing)
		}
		return nil
	},
}

func runManifestCheck(path string) error {
	fmt.Printf("Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		// Parse to get the package name for the success message.
		pkg, err := manifest.Parse(path)
		if err != nil || pkg.Name == "" {
			fmt.Printf("  [ OK ] Valid manifest\n")
			return nil
		}
		fmt.Printf("  [ OK ] Valid manifest: %s\n", pkg.Name)
		return nil
	}

	fmt.Printf("  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Printf("    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Printf("    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
