package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stackgen-dev/stackgen/internal/scaffold"
	"github.com/stackgen-dev/stackgen/internal/templates"
	"gopkg.in/yaml.v3"
)

func planCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "List the manifest without touching the filesystem",
		Long: `Print every directory and file stackgen would materialize, in the
order it processes them. Nothing is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := templates.Project()
			if asYAML {
				return printPlanYAML(m)
			}

			for _, e := range m {
				if e.Kind == scaffold.KindFile {
					info("%-4s %s (%d bytes)", e.Kind, e.Path, len(e.Content))
				} else {
					info("%-4s %s", e.Kind, e.Path)
				}
			}
			fmt.Println()
			info("%d entries", len(m))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Emit the manifest as YAML")

	return cmd
}

// planEntry is the YAML view of a manifest entry. File contents are omitted;
// only their size is reported.
type planEntry struct {
	Path  string `yaml:"path"`
	Kind  string `yaml:"kind"`
	Bytes int    `yaml:"bytes,omitempty"`
}

func printPlanYAML(m scaffold.Manifest) error {
	entries := make([]planEntry, 0, len(m))
	for _, e := range m {
		pe := planEntry{Path: e.Path, Kind: e.Kind.String()}
		if e.Kind == scaffold.KindFile {
			pe.Bytes = len(e.Content)
		}
		entries = append(entries, pe)
	}

	out, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
