package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pontutor/internal/bootstrap"
	tutordto "pontutor/internal/modules/tutor/dto"
	"pontutor/internal/platform/config"
	"pontutor/internal/ui/snapshot"
	"pontutor/internal/ui/views/detail"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliOptions

	root := &cobra.Command{
		Use:           "pontutor",
		Short:         "PON visual tutor: fiber network diagram with a glossary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFilePath(), "config file")
	root.PersistentFlags().StringVar(&opts.DatasetPath, "dataset", "", "dataset YAML file (embedded BharatNet walkthrough when empty)")
	root.PersistentFlags().StringVar(&opts.LogPath, "log-file", "", "write logs to this file")
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "trace|debug|info|warn|error|off")

	root.AddCommand(newTUICmd(&opts))
	root.AddCommand(newTermsCmd(&opts))
	root.AddCommand(newTermCmd(&opts))
	root.AddCommand(newNodeCmd(&opts))
	root.AddCommand(newNodesCmd(&opts))
	root.AddCommand(newDiagramCmd(&opts))
	root.AddCommand(newLayersCmd(&opts))
	root.AddCommand(newPrintCmd(&opts))
	root.AddCommand(newExportCmd(&opts))
	return root
}

// cliOptions are the raw flag values shared by every subcommand.
type cliOptions struct {
	config.Options
	configPath string
}

// loadApp merges the config file under the flags the user did not set and
// wires the app.
func loadApp(cmd *cobra.Command, opts *cliOptions) (*bootstrap.App, error) {
	file, err := config.LoadFile(opts.configPath)
	if err != nil {
		return nil, err
	}
	o := opts.Options
	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if !changed("dataset") && file.Dataset != "" {
		o.DatasetPath = file.Dataset
	}
	if !changed("log-file") && file.Log.File != "" {
		o.LogPath = file.Log.File
	}
	if !changed("log-level") && file.Log.Level != "" {
		o.LogLevel = file.Log.Level
	}
	if !changed("dir") && file.Print.Dir != "" {
		o.PrintDir = file.Print.Dir
	}
	if !changed("cmd") && file.Print.Command != nil {
		o.PrintCommand = *file.Print.Command
	}

	cfg, err := config.New(o)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp loads the app for one command and closes it afterwards.
func withApp(opts *cliOptions, run func(cmd *cobra.Command, args []string, app *bootstrap.App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd, opts)
		if err != nil {
			return err
		}
		defer app.Close()
		return run(cmd, args, app)
	}
}

func newTUICmd(opts *cliOptions) *cobra.Command {
	tui := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal viewer",
		RunE: withApp(opts, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			return bootstrap.RunTUI(cmd.Context(), app)
		}),
	}
	addPrintFlags(tui, opts)
	return tui
}

func newTermsCmd(opts *cliOptions) *cobra.Command {
	var asJSON bool
	terms := &cobra.Command{
		Use:   "terms [query]",
		Short: "List glossary terms, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			out, err := app.GlossaryCLI.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no terms")
				return nil
			}
			for _, t := range out {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", t.Key, t.Display, t.Full)
			}
			return nil
		}),
	}
	terms.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return terms
}

func newTermCmd(opts *cliOptions) *cobra.Command {
	var asJSON bool
	term := &cobra.Command{
		Use:   "term <key>",
		Short: "Explain one glossary term",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			if asJSON {
				t, err := app.GlossaryCLI.GetTerm(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), t)
			}
			d, err := app.TutorCLI.SelectTerm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), detail.Markdown(d))
			return nil
		}),
	}
	term.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return term
}

func newNodeCmd(opts *cliOptions) *cobra.Command {
	var asJSON bool
	node := &cobra.Command{
		Use:   "node <id>",
		Short: "Explain one diagram node",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			if asJSON {
				n, err := app.TopologyCLI.GetNode(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), n)
			}
			d, err := app.TutorCLI.SelectNode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), detail.Markdown(d))
			return nil
		}),
	}
	node.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return node
}

func newNodesCmd(opts *cliOptions) *cobra.Command {
	var edges bool
	nodes := &cobra.Command{
		Use:   "nodes",
		Short: "List diagram nodes (or edges with --edges)",
		RunE: withApp(opts, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			w := cmd.OutOrStdout()
			if edges {
				out, err := app.TopologyCLI.ListEdges(cmd.Context())
				if err != nil {
					return err
				}
				for _, e := range out {
					mark := ""
					if !e.Resolved {
						mark = "\t(dangling)"
					}
					_, _ = fmt.Fprintf(w, "%s -> %s\t%s%s\n", e.From, e.To, e.Label, mark)
				}
				return nil
			}
			out, err := app.TopologyCLI.ListNodes(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range out {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.ID, n.Type, n.Label, n.Ratio)
			}
			return nil
		}),
	}
	nodes.Flags().BoolVar(&edges, "edges", false, "list edges instead of nodes")
	return nodes
}

func newDiagramCmd(opts *cliOptions) *cobra.Command {
	var in tutordto.SnapshotInput
	diagram := &cobra.Command{
		Use:   "diagram",
		Short: "Draw the PON diagram as text",
		RunE: withApp(opts, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			v, err := app.TutorCLI.Snapshot(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), snapshot.Diagram(v.Diagram))
			return nil
		}),
	}
	addViewFlags(diagram, &in)
	return diagram
}

func newLayersCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List toggleable layers and their defaults",
		RunE: withApp(opts, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			out, err := app.TopologyCLI.ListLayers(cmd.Context())
			if err != nil {
				return err
			}
			for _, l := range out {
				state := "off"
				if l.DefaultOn {
					state = "on"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", l.ID, l.Label, state)
			}
			return nil
		}),
	}
}

func newPrintCmd(opts *cliOptions) *cobra.Command {
	var in tutordto.SnapshotInput
	var title string
	p := &cobra.Command{
		Use:   "print",
		Short: "Render the page and hand it to the printer",
		RunE: withApp(opts, func(cmd *cobra.Command, _ []string, app *bootstrap.App) error {
			v, err := app.TutorCLI.Snapshot(cmd.Context(), in)
			if err != nil {
				return err
			}
			out, err := app.TutorCLI.Print(cmd.Context(), title, v, snapshot.Page(v))
			if out.Path != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", out.Path)
			}
			if err != nil {
				return err
			}
			if out.Printed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "printed: %s\n", out.Command)
			}
			return nil
		}),
	}
	addViewFlags(p, &in)
	addPrintFlags(p, opts)
	p.Flags().StringVar(&title, "title", "", "page title")
	return p
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the glossary and topology to a spreadsheet handout",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *bootstrap.App) error {
			out, err := app.TutorCLI.Export(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %s (%d terms, %d nodes, %d segments)\n",
				out.Path, out.Terms, out.Nodes, out.Segments)
			return nil
		}),
	}
}

func addViewFlags(cmd *cobra.Command, in *tutordto.SnapshotInput) {
	cmd.Flags().StringSliceVar(&in.Hide, "hide", nil, "layer ids to switch off (OFC,SPLITTER,JB,ONT,ANNOT)")
	cmd.Flags().StringVar(&in.SelectNode, "select", "", "node id to select")
	cmd.Flags().StringVar(&in.SelectTerm, "term", "", "term key to select")
	cmd.Flags().StringVar(&in.Query, "query", "", "glossary search")
}

func addPrintFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVar(&opts.PrintDir, "dir", "", "directory for printed pages (default $TMPDIR/pontutor)")
	cmd.Flags().StringVar(&opts.PrintCommand, "cmd", config.DefaultPrintCommand, `print command; the page path is appended ("" only saves)`)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
