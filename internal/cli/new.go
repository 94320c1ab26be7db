package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/webstrap-labs/webstrap/internal/addons"
	"github.com/webstrap-labs/webstrap/internal/artifact"
	"github.com/webstrap-labs/webstrap/internal/config"
	"github.com/webstrap-labs/webstrap/internal/git"
	"github.com/webstrap-labs/webstrap/internal/logging"
	"github.com/webstrap-labs/webstrap/internal/npm"
	"github.com/webstrap-labs/webstrap/internal/orchestrator"
	"github.com/webstrap-labs/webstrap/internal/prereq"
	"github.com/webstrap-labs/webstrap/internal/project"
)

var (
	newTemplate  string
	newWithTests bool
	newNoTests   bool
	newAssumeYes bool
	newPreset    string
	newOutputDir string
)

func init() {
	newCmd.Flags().StringVar(&newTemplate, "template", "", "Base scaffold template (default: config template, then \"react\")")
	newCmd.Flags().BoolVar(&newWithTests, "with-tests", false, "Install the test framework without prompting")
	newCmd.Flags().BoolVar(&newNoTests, "no-tests", false, "Skip the test framework without prompting")
	newCmd.Flags().BoolVarP(&newAssumeYes, "yes", "y", false, "Accept defaults for all prompts")
	newCmd.Flags().StringVar(&newPreset, "preset", "", "YAML preset file with answers (disables prompting)")
	newCmd.Flags().StringVar(&newOutputDir, "output-dir", "", "Directory to create the project in (default ./<name>)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new front-end project",
	Long: `Create a project directory, run the base scaffold, and layer the standard
configuration on top: linting, formatting, editor settings, git hooks, and
package scripts. The run ends with an initial git commit.

The project name must match [a-z0-9][a-z0-9-]*. When the name or a feature
choice is not supplied via flags or a preset file, it is prompted for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if newWithTests && newNoTests {
			return fmt.Errorf("--with-tests and --no-tests are mutually exclusive")
		}

		pc, err := collectInput(cmd, args)
		if err != nil {
			return err
		}

		log := logger()
		npmClient := &npm.Client{
			Stdout: logging.NewWriter(log, "npm"),
			Stderr: logging.NewWriter(log, "npm"),
		}
		orch := &orchestrator.Orchestrator{
			Prereqs:    prereq.Defaults(),
			Scaffolder: npmClient,
			Steps: orchestrator.DefaultSteps(orchestrator.Deps{
				NPM: npmClient,
				Tests: &addons.TestsInstaller{
					NPM:     npmClient,
					Emitter: artifact.NewEmitter(pc.Dir, log),
					Log:     log,
				},
				Log: log,
			}),
			Finalizer: &git.Client{},
			Log:       log,
		}

		summary, err := orch.Run(cmd.Context(), pc)
		if err != nil {
			return err
		}

		printSummary(summary)
		return nil
	},
}

// collectInput resolves the project name, template, and feature choices.
// Precedence: flags, then the preset file, then interactive prompts, then
// configured defaults.
func collectInput(cmd *cobra.Command, args []string) (*project.Context, error) {
	var (
		name     string
		template = newTemplate
		opts     = project.Options{}
	)

	if len(args) > 0 {
		name = args[0]
	}

	var preset *project.Preset
	if newPreset != "" {
		p, err := project.LoadPreset(newPreset)
		if err != nil {
			return nil, err
		}
		preset = p
		if name == "" {
			name = preset.Name
		}
		if template == "" {
			template = preset.Template
		}
		for feature, enabled := range preset.Features {
			opts[feature] = enabled
		}
	}

	interactive := !newAssumeYes && preset == nil
	collector := project.NewCollector(cmd.InOrStdin(), cmd.ErrOrStderr())

	if name == "" && interactive {
		n, err := collector.ProjectName()
		if err != nil {
			return nil, err
		}
		name = n
	}

	switch {
	case newWithTests:
		opts[project.FeatureTests] = true
	case newNoTests:
		opts[project.FeatureTests] = false
	case interactive:
		enabled, err := collector.ConfirmFeature("Add the Jest test framework?")
		if err != nil {
			return nil, err
		}
		opts[project.FeatureTests] = enabled
	}

	if template == "" {
		template = config.Template()
	}

	return project.New(name, newOutputDir, template, opts)
}

func printSummary(s *orchestrator.Summary) {
	fmt.Printf("Created project %s at %s/\n", s.Project, s.Dir)
	fmt.Printf("  steps: %s\n", strings.Join(s.Executed, ", "))
	if len(s.Skipped) > 0 {
		fmt.Printf("  skipped: %s\n", strings.Join(s.Skipped, ", "))
	}
	fmt.Printf("  elapsed: %s\n", s.Elapsed.Round(time.Millisecond))

	fmt.Println("\nNext steps:")
	fmt.Printf("  1. cd %s\n", s.Dir)
	fmt.Println("  2. Run 'npm run dev' to start the dev server")
	fmt.Println("  3. Run 'npm run lint' before committing changes")
}
