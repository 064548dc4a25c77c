package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shlibdeps/internal/app"
	"go.trai.ch/shlibdeps/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [executables...]",
		Short: "Generate the dependency manifest for the given executables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output == "-" {
				output = ""
			}
			libraryPaths, _ := cmd.Flags().GetStringArray("library-path")
			versions, _ := cmd.Flags().GetBool("versions")
			exclude, _ := cmd.Flags().GetStringArray("exclude")
			configPath, _ := cmd.Flags().GetString("config")

			return c.gen.Generate(cmd.Context(), app.GenerateOptions{
				Inputs:     args,
				ConfigPath: configPath,
				Settings: domain.Settings{
					LibraryPaths: libraryPaths,
					Output:       output,
					Versions:     versions,
					Exclude:      exclude,
				},
			})
		},
	}

	cmd.Flags().StringP("output", "o", "-", "Manifest destination file, - for stdout")
	cmd.Flags().StringArrayP("library-path", "L", nil, "Directory with locally built libraries, repeatable and ordered")
	cmd.Flags().Bool("versions", false, "Annotate packages with minimum version constraints")
	cmd.Flags().StringArray("exclude", nil, "Package name to drop from the manifest, repeatable")
	cmd.Flags().StringP("config", "c", "", "Configuration file path")

	return cmd
}
