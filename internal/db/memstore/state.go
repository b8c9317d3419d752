package memstore

import "github.com/mugiliam/objectifiedsrv/internal/db/models"

type state struct {
	Namespaces       table[models.Namespace]      `json:"namespaces"`
	Classes          table[models.Class]          `json:"classes"`
	DataTypes        table[models.DataType]       `json:"dataTypes"`
	Fields           table[models.Field]          `json:"fields"`
	Properties       table[models.Property]       `json:"properties"`
	ObjectProperties table[models.ObjectProperty] `json:"objectProperties"`
	ClassProperties  table[models.ClassProperty]  `json:"classProperties"`
	Instances        table[models.Instance]       `json:"instances"`
}

func newState() *state {
	return &state{
		Namespaces:       newTable[models.Namespace](),
		Classes:          newTable[models.Class](),
		DataTypes:        newTable[models.DataType](),
		Fields:           newTable[models.Field](),
		Properties:       newTable[models.Property](),
		ObjectProperties: newTable[models.ObjectProperty](),
		ClassProperties:  newTable[models.ClassProperty](),
		Instances:        newTable[models.Instance](),
	}
}

// ensure fills in tables missing from an older snapshot.
func (s *state) ensure() {
	s.Namespaces.ensure()
	s.Classes.ensure()
	s.DataTypes.ensure()
	s.Fields.ensure()
	s.Properties.ensure()
	s.ObjectProperties.ensure()
	s.ClassProperties.ensure()
	s.Instances.ensure()
}
