// Package commands implements the objectifiedctl command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/fatih/color"
	"github.com/mugiliam/objectifiedsrv/internal/cli/ui"
	"github.com/mugiliam/objectifiedsrv/pkg/client"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
)

var (
	// Version and GitCommit are set at build time.
	Version   = "dev"
	GitCommit = "unknown"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type options struct {
	server  string
	token   string
	output  string
	noColor bool
}

func NewRootCommand() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "objectifiedctl",
		Short: "Administer objectified namespaces, classes, properties and instances",
		Long: color.CyanString(`objectifiedctl - admin console for the objectified server

Manage the meta-model (namespaces, classes, data types, fields, properties and
their assignments) and the instances stored against it.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.output != outputTable && o.output != outputJSON {
				return fmt.Errorf("unsupported output %q, use %s or %s", o.output, outputTable, outputJSON)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.server, "server", envOr("OBJECTIFIED_SERVER", client.DefaultServer), "objectified server url")
	flags.StringVar(&o.token, "token", os.Getenv("OBJECTIFIED_TOKEN"), "bearer token sent with every request")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	flags.StringVarP(&o.output, "output", "o", outputTable, "output format: table or json")

	rootCmd.AddCommand(newVersionCommand(o))
	rootCmd.AddCommand(newSchemaCommand(o))
	rootCmd.AddCommand(newNamespacesCommand(o))
	rootCmd.AddCommand(newClassesCommand(o))
	rootCmd.AddCommand(newDataTypesCommand(o))
	rootCmd.AddCommand(newFieldsCommand(o))
	rootCmd.AddCommand(newPropertiesCommand(o))
	rootCmd.AddCommand(newObjectPropertiesCommand(o))
	rootCmd.AddCommand(newClassPropertiesCommand(o))
	rootCmd.AddCommand(newInstancesCommand(o))
	return rootCmd
}

func newVersionCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := ui.NewDetails(cmd.OutOrStdout(), o.noColor)
			d.Add("client", Version+" ("+GitCommit+", "+runtime.Version()+")")
			c, err := o.client()
			if err != nil {
				return err
			}
			v, err := c.GetVersion(cmd.Context())
			if err != nil {
				return err
			}
			if o.output == outputJSON {
				return o.printJSON(cmd.OutOrStdout(), map[string]string{
					"client":     Version,
					"server":     v.ServerVersion,
					"apiVersion": v.ApiVersion,
				})
			}
			d.Add("server", v.ServerVersion)
			d.Add("api", v.ApiVersion)
			d.Render()
			return nil
		},
	}
}

func newSchemaCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema CLASS_ID",
		Short: "Print the JSON Schema instances of a class must satisfy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			schema, err := c.GetClassSchema(cmd.Context(), id)
			if err != nil {
				return err
			}
			return o.printRawJSON(cmd.OutOrStdout(), schema)
		},
	}
}

func (o *options) client() (*client.Client, error) {
	var opts []client.Option
	if o.token != "" {
		opts = append(opts, client.WithToken(o.token))
	}
	return client.New(o.server, opts...)
}

func (o *options) printJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return o.printRawJSON(w, data)
}

func (o *options) printRawJSON(w io.Writer, data []byte) error {
	out := pretty.Pretty(data)
	if !o.noColor && !color.NoColor {
		out = pretty.Color(out, nil)
	}
	_, err := w.Write(out)
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Execute runs the command tree and prints any error in red.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
