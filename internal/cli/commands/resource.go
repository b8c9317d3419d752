package commands

import (
	"context"
	"strconv"
	"time"

	"github.com/mugiliam/objectifiedsrv/internal/cli/ui"
	"github.com/mugiliam/objectifiedsrv/pkg/client"
	"github.com/spf13/cobra"
)

// view describes how records of one entity are printed.
type view[T any] struct {
	noun    string
	plural  string
	headers []string
	row     func(v *T) []string
	details func(v *T, d *ui.Details)
}

func printList[T any](o *options, cmd *cobra.Command, v view[T], items []T) error {
	if o.output == outputJSON {
		if items == nil {
			items = []T{}
		}
		return o.printJSON(cmd.OutOrStdout(), items)
	}
	tbl := ui.NewTable(cmd.OutOrStdout(), o.noColor, v.headers...)
	for i := range items {
		tbl.AddRow(v.row(&items[i])...)
	}
	tbl.Render()
	return nil
}

func printOne[T any](o *options, cmd *cobra.Command, v view[T], item *T) error {
	if o.output == outputJSON {
		return o.printJSON(cmd.OutOrStdout(), item)
	}
	d := ui.NewDetails(cmd.OutOrStdout(), o.noColor)
	v.details(item, d)
	d.Render()
	return nil
}

func listCommand[T any](o *options, v view[T], fetch func(ctx context.Context, c *client.Client) ([]T, error)) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List " + v.plural,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			items, err := fetch(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printList(o, cmd, v, items)
		},
	}
}

func findCommand[T any](o *options, v view[T], find func(ctx context.Context, c *client.Client, value string) ([]T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "find VALUE",
		Short: "Find " + v.plural + " whose name or description contains VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			items, err := find(cmd.Context(), c, args[0])
			if err != nil {
				return err
			}
			return printList(o, cmd, v, items)
		},
	}
}

func getCommand[T any](o *options, v view[T], get func(ctx context.Context, c *client.Client, id int64) (*T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one " + v.noun,
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
			item, err := get(cmd.Context(), c, id)
			if err != nil {
				return err
			}
			return printOne(o, cmd, v, item)
		},
	}
}

func deleteCommand(o *options, noun string, del func(ctx context.Context, c *client.Client, id int64) error) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Disable the " + noun + " with ID, keeping its record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := o.client()
			if err != nil {
				return err
			}
			if err := del(cmd.Context(), c, id); err != nil {
				return err
			}
			ui.Success(cmd.OutOrStdout(), o.noColor, "%s %d deleted", noun, id)
			return nil
		},
	}
}

// createCommand registers the entity's flags with flags and sends the create request with create.
func createCommand[T any](o *options, v view[T], flags func(cmd *cobra.Command),
	create func(ctx context.Context, c *client.Client) (*T, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new " + v.noun,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			item, err := create(cmd.Context(), c)
			if err != nil {
				return err
			}
			return printOne(o, cmd, v, item)
		},
	}
	flags(cmd)
	return cmd
}

func resourceCommand(use, short string, aliases []string, sub ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Aliases: aliases,
		Short:   short,
	}
	cmd.AddCommand(sub...)
	return cmd
}

func fmtID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func yesNo(b bool) string {
	return strconv.FormatBool(b)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(time.DateTime)
}

func optDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return date(*t)
}
