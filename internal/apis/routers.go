package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/objectifiedsrv/internal/common"
	"github.com/mugiliam/objectifiedsrv/internal/httpx"
	"github.com/mugiliam/objectifiedsrv/internal/metamodel"
	"github.com/mugiliam/objectifiedsrv/internal/rbac"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
)

type RoleAuthorizedHandlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
	Op      rbac.Op
}

// crudHandlers returns the create, list, get, edit and delete routes shared by all entities.
func crudHandlers[T any](rs resource[T], list httpx.RequestHandler) []RoleAuthorizedHandlerParam {
	return []RoleAuthorizedHandlerParam{
		{Method: http.MethodPost, Path: rs.path + "/create", Handler: rs.createObject, Op: rbac.OpCreate},
		{Method: http.MethodGet, Path: rs.path + "/list", Handler: list, Op: rbac.OpRead},
		{Method: http.MethodGet, Path: rs.path + "/{id}", Handler: rs.getObject, Op: rbac.OpRead},
		{Method: http.MethodPut, Path: rs.path + "/{id}/edit", Handler: rs.updateObject, Op: rbac.OpUpdate},
		{Method: http.MethodDelete, Path: rs.path + "/{id}", Handler: rs.deleteObject, Op: rbac.OpDelete},
	}
}

// Handlers returns the route table of the REST API.
func Handlers(svc *metamodel.Services) []RoleAuthorizedHandlerParam {
	namespaces := resource[dto.Namespace]{
		path:   "/namespaces",
		newDto: dto.NewNamespace,
		idOf:   func(v *dto.Namespace) int64 { return v.ID },
		create: svc.Namespaces.CreateNamespace,
		edit:   svc.Namespaces.EditNamespace,
		delete: svc.Namespaces.DeleteNamespace,
		get:    svc.Namespaces.GetNamespaceById,
	}
	classes := resource[dto.Class]{
		path:   "/classes",
		newDto: dto.NewClass,
		idOf:   func(v *dto.Class) int64 { return v.ID },
		create: svc.Classes.CreateClass,
		edit:   svc.Classes.EditClass,
		delete: svc.Classes.DeleteClass,
		get:    svc.Classes.GetClassById,
	}
	dataTypes := resource[dto.DataType]{
		path:   "/data-types",
		newDto: dto.NewDataType,
		idOf:   func(v *dto.DataType) int64 { return v.ID },
		create: svc.DataTypes.CreateDataType,
		edit:   svc.DataTypes.EditDataType,
		delete: svc.DataTypes.DeleteDataType,
		get:    svc.DataTypes.GetDataTypeById,
	}
	fields := resource[dto.Field]{
		path:   "/fields",
		newDto: dto.NewField,
		idOf:   func(v *dto.Field) int64 { return v.ID },
		create: svc.Fields.CreateField,
		edit:   svc.Fields.EditField,
		delete: svc.Fields.DeleteField,
		get:    svc.Fields.GetFieldById,
	}
	properties := resource[dto.Property]{
		path:   "/property",
		newDto: dto.NewProperty,
		idOf:   func(v *dto.Property) int64 { return v.ID },
		create: svc.Properties.CreateProperty,
		edit:   svc.Properties.EditProperty,
		delete: svc.Properties.DeleteProperty,
		get:    svc.Properties.GetPropertyById,
	}
	objectProperties := resource[dto.ObjectProperty]{
		path:   "/object-property",
		newDto: dto.NewObjectProperty,
		idOf:   func(v *dto.ObjectProperty) int64 { return v.ID },
		create: svc.ObjectProperties.CreateObjectProperty,
		edit:   svc.ObjectProperties.EditObjectProperty,
		delete: svc.ObjectProperties.DeleteObjectProperty,
		get:    svc.ObjectProperties.GetObjectPropertyById,
	}
	classProperties := resource[dto.ClassProperty]{
		path:   "/class-property",
		newDto: dto.NewClassProperty,
		idOf:   func(v *dto.ClassProperty) int64 { return v.ID },
		create: svc.ClassProperties.CreateClassProperty,
		edit:   svc.ClassProperties.EditClassProperty,
		delete: svc.ClassProperties.DeleteClassProperty,
		get:    svc.ClassProperties.GetClassPropertyById,
	}
	instances := resource[dto.Instance]{
		path:   "/instances",
		newDto: dto.NewInstance,
		idOf:   func(v *dto.Instance) int64 { return v.ID },
		create: svc.Instances.CreateInstance,
		edit:   svc.Instances.EditInstance,
		delete: svc.Instances.DeleteInstance,
		get:    svc.Instances.GetInstanceById,
	}

	var handlers []RoleAuthorizedHandlerParam
	handlers = append(handlers, crudHandlers(namespaces, listObjects(svc.Namespaces.ListNamespaces))...)
	handlers = append(handlers, RoleAuthorizedHandlerParam{
		Method:  http.MethodGet,
		Path:    "/namespaces/find/{value}",
		Handler: findObjects(svc.Namespaces.FindNamespaces),
		Op:      rbac.OpRead,
	})
	handlers = append(handlers, crudHandlers(classes, listObjectsBy("namespaceId", svc.Classes.ListClasses))...)
	handlers = append(handlers,
		RoleAuthorizedHandlerParam{
			Method:  http.MethodGet,
			Path:    "/classes/find/{value}",
			Handler: findObjects(svc.Classes.FindClasses),
			Op:      rbac.OpRead,
		},
		RoleAuthorizedHandlerParam{
			Method:  http.MethodGet,
			Path:    "/classes/{id}/schema",
			Handler: getSchema(svc.Classes.GetClassSchema),
			Op:      rbac.OpRead,
		},
	)
	handlers = append(handlers, crudHandlers(dataTypes, listObjects(svc.DataTypes.ListDataTypes))...)
	handlers = append(handlers, crudHandlers(fields, listObjects(svc.Fields.ListFields))...)
	handlers = append(handlers, crudHandlers(properties, listObjects(svc.Properties.ListProperties))...)
	handlers = append(handlers,
		RoleAuthorizedHandlerParam{
			Method:  http.MethodGet,
			Path:    "/property/{id}/byId",
			Handler: properties.getObject,
			Op:      rbac.OpRead,
		},
		RoleAuthorizedHandlerParam{
			Method:  http.MethodGet,
			Path:    "/property/{name}/byName",
			Handler: getByName(svc.Properties.GetPropertyByName),
			Op:      rbac.OpRead,
		},
	)
	handlers = append(handlers, crudHandlers(objectProperties, listObjectsBy("parentPropertyId", svc.ObjectProperties.ListObjectProperties))...)
	handlers = append(handlers, crudHandlers(classProperties, listObjectsBy("classId", svc.ClassProperties.ListClassProperties))...)
	handlers = append(handlers, crudHandlers(instances, listObjectsBy("classId", svc.Instances.ListInstances))...)
	return handlers
}

func Router(svc *metamodel.Services) func(r chi.Router) {
	return func(r chi.Router) {
		for _, handler := range Handlers(svc) {
			r.Method(handler.Method, handler.Path, authorize(handler.Op, httpx.WrapHttpRsp(handler.Handler)))
		}
	}
}

// authorize rejects callers whose role does not allow op. Unauthenticated requests only reach
// this point when token checks are disabled.
func authorize(op rbac.Op, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims := common.ClaimsFromContext(r.Context()); claims != nil && !claims.Allows(op) {
			httpx.ToHttpxError(r.Context(), rbac.ErrForbidden.Msg("role "+string(claims.Role)+" cannot "+op.String())).Send(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
