package metamodel

import (
	"context"
	_ "embed"
	"errors"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/dberror"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

//go:embed seed.yaml
var seedYaml []byte

type seedData struct {
	Namespaces []dto.Namespace `json:"namespaces"`
	DataTypes  []dto.DataType  `json:"dataTypes"`
}

func loadSeed() (*seedData, error) {
	var sd seedData
	if err := yaml.Unmarshal(seedYaml, &sd); err != nil {
		return nil, err
	}
	return &sd, nil
}

// Seed creates the core namespace and core data types whose names are missing. Existing rows
// are left untouched, so Seed can run on every start.
func Seed(ctx context.Context) apperrors.Error {
	sd, err := loadSeed()
	if err != nil {
		return ErrMetamodel.MsgErr("unable to parse seed data", err)
	}
	created := 0
	for _, ns := range sd.Namespaces {
		_, err := db.DB(ctx).GetNamespaceByName(ctx, ns.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, dberror.ErrNotFound) {
			return translate(ctx, err, namespaceErrors)
		}
		m := models.Namespace{
			Name:          ns.Name,
			Description:   ns.Description,
			Enabled:       true,
			CoreNamespace: true,
		}
		if err := db.DB(ctx).CreateNamespace(ctx, &m); err != nil {
			return translate(ctx, err, namespaceErrors)
		}
		created++
	}
	for i := range sd.DataTypes {
		dt := &sd.DataTypes[i]
		_, err := db.DB(ctx).GetDataTypeByName(ctx, dt.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, dberror.ErrNotFound) {
			return translate(ctx, err, dataTypeErrors)
		}
		dt.Enabled = true
		if err := checkDataType(dt); err != nil {
			return err
		}
		m := dataTypeToModel(dt)
		m.CoreType = true
		if err := db.DB(ctx).CreateDataType(ctx, &m); err != nil {
			return translate(ctx, err, dataTypeErrors)
		}
		created++
	}
	log.Ctx(ctx).Info().Int("created", created).Msg("core data seeded")
	return nil
}
