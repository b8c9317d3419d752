package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mugiliam/objectifiedsrv/internal/cli/ui"
	"github.com/mugiliam/objectifiedsrv/pkg/client"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
	"github.com/spf13/cobra"
)

var namespaceView = view[dto.Namespace]{
	noun:    "namespace",
	plural:  "namespaces",
	headers: []string{"ID", "NAME", "DESCRIPTION", "ENABLED", "CORE", "CREATED"},
	row: func(v *dto.Namespace) []string {
		return []string{fmtID(v.ID), v.Name, v.Description, yesNo(v.Enabled), yesNo(v.CoreNamespace), date(v.CreateDate)}
	},
	details: func(v *dto.Namespace, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("name", v.Name)
		d.Add("description", v.Description)
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("core", yesNo(v.CoreNamespace))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func newNamespacesCommand(o *options) *cobra.Command {
	in := dto.NewNamespace()
	create := createCommand(o, namespaceView,
		func(cmd *cobra.Command) {
			cmd.Flags().StringVar(&in.Name, "name", "", "namespace name")
			cmd.Flags().StringVar(&in.Description, "description", "", "namespace description")
		},
		func(ctx context.Context, c *client.Client) (*dto.Namespace, error) {
			return c.CreateNamespace(ctx, in)
		})
	return resourceCommand("namespaces", "Manage namespaces", []string{"namespace", "ns"},
		listCommand(o, namespaceView, func(ctx context.Context, c *client.Client) ([]dto.Namespace, error) {
			return c.ListNamespaces(ctx)
		}),
		findCommand(o, namespaceView, func(ctx context.Context, c *client.Client, value string) ([]dto.Namespace, error) {
			return c.FindNamespaces(ctx, value)
		}),
		getCommand(o, namespaceView, func(ctx context.Context, c *client.Client, id int64) (*dto.Namespace, error) {
			return c.GetNamespaceById(ctx, id)
		}),
		deleteCommand(o, "namespace", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteNamespace(ctx, id)
		}),
		create,
	)
}

var classView = view[dto.Class]{
	noun:    "class",
	plural:  "classes",
	headers: []string{"ID", "NAMESPACE", "NAME", "DESCRIPTION", "ENABLED", "CREATED"},
	row: func(v *dto.Class) []string {
		return []string{fmtID(v.ID), fmtID(v.NamespaceID), v.Name, v.Description, yesNo(v.Enabled), date(v.CreateDate)}
	},
	details: func(v *dto.Class, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("namespace", fmtID(v.NamespaceID))
		d.Add("name", v.Name)
		d.Add("description", v.Description)
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func newClassesCommand(o *options) *cobra.Command {
	in := dto.NewClass()
	create := createCommand(o, classView,
		func(cmd *cobra.Command) {
			cmd.Flags().Int64Var(&in.NamespaceID, "namespace-id", 0, "namespace the class belongs to")
			cmd.Flags().StringVar(&in.Name, "name", "", "class name")
			cmd.Flags().StringVar(&in.Description, "description", "", "class description")
		},
		func(ctx context.Context, c *client.Client) (*dto.Class, error) {
			return c.CreateClass(ctx, in)
		})

	var namespaceID int64
	list := listCommand(o, classView, func(ctx context.Context, c *client.Client) ([]dto.Class, error) {
		return c.ListClasses(ctx, namespaceID)
	})
	list.Flags().Int64Var(&namespaceID, "namespace-id", 0, "only list classes of this namespace")

	return resourceCommand("classes", "Manage classes", []string{"class"},
		list,
		findCommand(o, classView, func(ctx context.Context, c *client.Client, value string) ([]dto.Class, error) {
			return c.FindClasses(ctx, value)
		}),
		getCommand(o, classView, func(ctx context.Context, c *client.Client, id int64) (*dto.Class, error) {
			return c.GetClassById(ctx, id)
		}),
		deleteCommand(o, "class", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteClass(ctx, id)
		}),
		create,
	)
}

var dataTypeView = view[dto.DataType]{
	noun:    "data type",
	plural:  "data types",
	headers: []string{"ID", "NAME", "KIND", "ARRAY", "DESCRIPTION", "ENABLED", "CORE"},
	row: func(v *dto.DataType) []string {
		return []string{fmtID(v.ID), v.Name, string(v.DataType), yesNo(v.IsArray), v.Description, yesNo(v.Enabled), yesNo(v.CoreType)}
	},
	details: func(v *dto.DataType, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("name", v.Name)
		d.Add("description", v.Description)
		d.Add("kind", string(v.DataType))
		d.Add("array", yesNo(v.IsArray))
		if v.Pattern != "" {
			d.Add("pattern", v.Pattern)
		}
		if v.MaxLength > 0 {
			d.Add("max length", fmt.Sprint(v.MaxLength))
		}
		if len(v.EnumValues) > 0 {
			d.Add("enum", strings.Join(v.EnumValues, ", "))
		}
		if len(v.Examples) > 0 {
			d.Add("examples", strings.Join(v.Examples, ", "))
		}
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("core", yesNo(v.CoreType))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func newDataTypesCommand(o *options) *cobra.Command {
	in := dto.NewDataType()
	var kind string
	create := createCommand(o, dataTypeView,
		func(cmd *cobra.Command) {
			f := cmd.Flags()
			f.StringVar(&in.Name, "name", "", "data type name")
			f.StringVar(&in.Description, "description", "", "data type description")
			f.StringVar(&kind, "kind", "", "primitive kind, one of "+kindList())
			f.BoolVar(&in.IsArray, "array", false, "values are arrays of the kind")
			f.StringVar(&in.Pattern, "pattern", "", "regular expression string values must match")
			f.IntVar(&in.MaxLength, "max-length", 0, "maximum string length, 0 for no limit")
			f.StringSliceVar(&in.EnumValues, "enum", nil, "allowed values")
			f.StringSliceVar(&in.EnumDescriptions, "enum-description", nil, "descriptions of the allowed values")
			f.StringSliceVar(&in.Examples, "example", nil, "example values")
		},
		func(ctx context.Context, c *client.Client) (*dto.DataType, error) {
			in.DataType = types.PrimitiveKind(strings.ToUpper(strings.ReplaceAll(kind, "-", "_")))
			return c.CreateDataType(ctx, in)
		})
	return resourceCommand("data-types", "Manage data types", []string{"data-type", "dt"},
		listCommand(o, dataTypeView, func(ctx context.Context, c *client.Client) ([]dto.DataType, error) {
			return c.ListDataTypes(ctx)
		}),
		getCommand(o, dataTypeView, func(ctx context.Context, c *client.Client, id int64) (*dto.DataType, error) {
			return c.GetDataTypeById(ctx, id)
		}),
		deleteCommand(o, "data type", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteDataType(ctx, id)
		}),
		create,
	)
}

func kindList() string {
	kinds := types.PrimitiveKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

var fieldView = view[dto.Field]{
	noun:    "field",
	plural:  "fields",
	headers: []string{"ID", "NAME", "DATA TYPE", "DEFAULT", "DESCRIPTION", "ENABLED"},
	row: func(v *dto.Field) []string {
		return []string{fmtID(v.ID), v.Name, dataTypeRef(v.DataType), defaultValue(v.DefaultValue), v.Description, yesNo(v.Enabled)}
	},
	details: func(v *dto.Field, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("name", v.Name)
		d.Add("description", v.Description)
		d.Add("data type", dataTypeRef(v.DataType))
		d.Add("default", defaultValue(v.DefaultValue))
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func dataTypeRef(r dto.DataTypeRef) string {
	if r.Name == "" {
		return fmtID(r.ID)
	}
	return r.Name + " (" + fmtID(r.ID) + ")"
}

func defaultValue(v types.NullableAny) string {
	if v.IsNil() {
		return "-"
	}
	data, err := json.Marshal(v.Value)
	if err != nil {
		return fmt.Sprint(v.Value)
	}
	return string(data)
}

func newFieldsCommand(o *options) *cobra.Command {
	in := dto.NewField()
	var def string
	create := createCommand(o, fieldView,
		func(cmd *cobra.Command) {
			f := cmd.Flags()
			f.StringVar(&in.Name, "name", "", "field name")
			f.StringVar(&in.Description, "description", "", "field description")
			f.Int64Var(&in.DataType.ID, "data-type-id", 0, "data type of the field")
			f.StringVar(&def, "default", "", "default value as JSON, e.g. 21 or '\"text\"'")
		},
		func(ctx context.Context, c *client.Client) (*dto.Field, error) {
			if def != "" {
				var v any
				if err := json.Unmarshal([]byte(def), &v); err != nil {
					return nil, fmt.Errorf("invalid --default: %w", err)
				}
				in.DefaultValue = types.NewNullableAny(v)
			}
			return c.CreateField(ctx, in)
		})
	return resourceCommand("fields", "Manage fields", []string{"field"},
		listCommand(o, fieldView, func(ctx context.Context, c *client.Client) ([]dto.Field, error) {
			return c.ListFields(ctx)
		}),
		getCommand(o, fieldView, func(ctx context.Context, c *client.Client, id int64) (*dto.Field, error) {
			return c.GetFieldById(ctx, id)
		}),
		deleteCommand(o, "field", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteField(ctx, id)
		}),
		create,
	)
}

var propertyView = view[dto.Property]{
	noun:    "property",
	plural:  "properties",
	headers: []string{"ID", "NAME", "FIELD", "DESCRIPTION", "ENABLED"},
	row: func(v *dto.Property) []string {
		return []string{fmtID(v.ID), v.Name, fmtID(v.FieldID), v.Description, yesNo(v.Enabled)}
	},
	details: func(v *dto.Property, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("name", v.Name)
		d.Add("description", v.Description)
		d.Add("field", fmtID(v.FieldID))
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func newPropertiesCommand(o *options) *cobra.Command {
	in := dto.NewProperty()
	create := createCommand(o, propertyView,
		func(cmd *cobra.Command) {
			cmd.Flags().StringVar(&in.Name, "name", "", "property name")
			cmd.Flags().StringVar(&in.Description, "description", "", "property description")
			cmd.Flags().Int64Var(&in.FieldID, "field-id", 0, "field the property is built on")
		},
		func(ctx context.Context, c *client.Client) (*dto.Property, error) {
			return c.CreateProperty(ctx, in)
		})
	byName := &cobra.Command{
		Use:   "get-by-name NAME",
		Short: "Show the property called NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := o.client()
			if err != nil {
				return err
			}
			p, err := c.GetPropertyByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printOne(o, cmd, propertyView, p)
		},
	}
	return resourceCommand("properties", "Manage properties", []string{"property", "prop"},
		listCommand(o, propertyView, func(ctx context.Context, c *client.Client) ([]dto.Property, error) {
			return c.ListProperties(ctx)
		}),
		getCommand(o, propertyView, func(ctx context.Context, c *client.Client, id int64) (*dto.Property, error) {
			return c.GetPropertyById(ctx, id)
		}),
		byName,
		deleteCommand(o, "property", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteProperty(ctx, id)
		}),
		create,
	)
}

var objectPropertyView = view[dto.ObjectProperty]{
	noun:    "object property",
	plural:  "object properties",
	headers: []string{"ID", "PARENT", "CHILD", "REQUIRED", "ENABLED"},
	row: func(v *dto.ObjectProperty) []string {
		return []string{fmtID(v.ID), fmtID(v.ParentPropertyID), fmtID(v.ChildPropertyID), yesNo(v.Required), yesNo(v.Enabled)}
	},
	details: func(v *dto.ObjectProperty, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("parent", fmtID(v.ParentPropertyID))
		d.Add("child", fmtID(v.ChildPropertyID))
		d.Add("required", yesNo(v.Required))
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func newObjectPropertiesCommand(o *options) *cobra.Command {
	in := dto.NewObjectProperty()
	create := createCommand(o, objectPropertyView,
		func(cmd *cobra.Command) {
			cmd.Flags().Int64Var(&in.ParentPropertyID, "parent", 0, "OBJECT property that receives the member")
			cmd.Flags().Int64Var(&in.ChildPropertyID, "child", 0, "property nested under the parent")
			cmd.Flags().BoolVar(&in.Required, "required", false, "member must be present")
		},
		func(ctx context.Context, c *client.Client) (*dto.ObjectProperty, error) {
			return c.CreateObjectProperty(ctx, in)
		})

	var parentID int64
	list := listCommand(o, objectPropertyView, func(ctx context.Context, c *client.Client) ([]dto.ObjectProperty, error) {
		return c.ListObjectProperties(ctx, parentID)
	})
	list.Flags().Int64Var(&parentID, "parent", 0, "only list members of this property")

	return resourceCommand("object-properties", "Manage properties nested in OBJECT properties", []string{"object-property"},
		list,
		getCommand(o, objectPropertyView, func(ctx context.Context, c *client.Client, id int64) (*dto.ObjectProperty, error) {
			return c.GetObjectPropertyById(ctx, id)
		}),
		deleteCommand(o, "object property", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteObjectProperty(ctx, id)
		}),
		create,
	)
}

var classPropertyView = view[dto.ClassProperty]{
	noun:    "class property",
	plural:  "class properties",
	headers: []string{"ID", "CLASS", "PROPERTY", "REQUIRED", "ENABLED"},
	row: func(v *dto.ClassProperty) []string {
		return []string{fmtID(v.ID), fmtID(v.ClassID), fmtID(v.PropertyID), yesNo(v.Required), yesNo(v.Enabled)}
	},
	details: func(v *dto.ClassProperty, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("class", fmtID(v.ClassID))
		d.Add("property", fmtID(v.PropertyID))
		d.Add("required", yesNo(v.Required))
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func newClassPropertiesCommand(o *options) *cobra.Command {
	in := dto.NewClassProperty()
	create := createCommand(o, classPropertyView,
		func(cmd *cobra.Command) {
			cmd.Flags().Int64Var(&in.ClassID, "class-id", 0, "class that receives the property")
			cmd.Flags().Int64Var(&in.PropertyID, "property-id", 0, "property assigned to the class")
			cmd.Flags().BoolVar(&in.Required, "required", false, "instances must set the property")
		},
		func(ctx context.Context, c *client.Client) (*dto.ClassProperty, error) {
			return c.CreateClassProperty(ctx, in)
		})

	var classID int64
	list := listCommand(o, classPropertyView, func(ctx context.Context, c *client.Client) ([]dto.ClassProperty, error) {
		return c.ListClassProperties(ctx, classID)
	})
	list.Flags().Int64Var(&classID, "class-id", 0, "only list properties of this class")

	return resourceCommand("class-properties", "Manage property assignments of classes", []string{"class-property"},
		list,
		getCommand(o, classPropertyView, func(ctx context.Context, c *client.Client, id int64) (*dto.ClassProperty, error) {
			return c.GetClassPropertyById(ctx, id)
		}),
		deleteCommand(o, "class property", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteClassProperty(ctx, id)
		}),
		create,
	)
}

var instanceView = view[dto.Instance]{
	noun:    "instance",
	plural:  "instances",
	headers: []string{"ID", "CLASS", "NAME", "DATA", "ENABLED"},
	row: func(v *dto.Instance) []string {
		return []string{fmtID(v.ID), fmtID(v.ClassID), v.Name, instanceData(v.Data), yesNo(v.Enabled)}
	},
	details: func(v *dto.Instance, d *ui.Details) {
		d.Add("id", fmtID(v.ID))
		d.Add("class", fmtID(v.ClassID))
		d.Add("name", v.Name)
		d.Add("data", instanceData(v.Data))
		d.Add("enabled", yesNo(v.Enabled))
		d.Add("created", date(v.CreateDate))
		d.Add("updated", optDate(v.UpdateDate))
	},
}

func instanceData(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprint(data)
	}
	return string(b)
}

func newInstancesCommand(o *options) *cobra.Command {
	in := dto.NewInstance()
	var data, dataFile string
	create := createCommand(o, instanceView,
		func(cmd *cobra.Command) {
			f := cmd.Flags()
			f.Int64Var(&in.ClassID, "class-id", 0, "class the instance conforms to")
			f.StringVar(&in.Name, "name", "", "optional instance name")
			f.StringVar(&data, "data", "", "instance data as a JSON object")
			f.StringVar(&dataFile, "data-file", "", "read instance data from a JSON file")
			cmd.MarkFlagsMutuallyExclusive("data", "data-file")
		},
		func(ctx context.Context, c *client.Client) (*dto.Instance, error) {
			raw := []byte(data)
			if dataFile != "" {
				var err error
				if raw, err = os.ReadFile(dataFile); err != nil {
					return nil, err
				}
			}
			if len(raw) > 0 {
				if err := json.Unmarshal(raw, &in.Data); err != nil {
					return nil, fmt.Errorf("instance data must be a JSON object: %w", err)
				}
			}
			return c.CreateInstance(ctx, in)
		})

	var classID int64
	list := listCommand(o, instanceView, func(ctx context.Context, c *client.Client) ([]dto.Instance, error) {
		return c.ListInstances(ctx, classID)
	})
	list.Flags().Int64Var(&classID, "class-id", 0, "only list instances of this class")

	return resourceCommand("instances", "Manage instances", []string{"instance"},
		list,
		getCommand(o, instanceView, func(ctx context.Context, c *client.Client, id int64) (*dto.Instance, error) {
			return c.GetInstanceById(ctx, id)
		}),
		deleteCommand(o, "instance", func(ctx context.Context, c *client.Client, id int64) error {
			return c.DeleteInstance(ctx, id)
		}),
		create,
	)
}
