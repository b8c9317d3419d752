package metamodel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/cache"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

const jsonSchemaDraft = "http://json-schema.org/draft-07/schema#"

// schemaBuilder generates class schemas from the meta-model and caches them per class.
type schemaBuilder struct {
	cache cache.Cache
	// gen is bumped by every meta-model write. A schema built under an older generation is
	// stored under a key no reader asks for.
	gen atomic.Uint64
}

func newSchemaBuilder(c cache.Cache) *schemaBuilder {
	if c == nil {
		c = cache.NewMemory(0)
	}
	return &schemaBuilder{cache: c}
}

func classSchemaKey(gen uint64, classID int64) string {
	return fmt.Sprintf("class-schema:%d:%d", gen, classID)
}

// invalidate drops every cached schema. Any meta-model write may change several classes.
func (b *schemaBuilder) invalidate(ctx context.Context) {
	b.gen.Add(1)
	if err := b.cache.Clear(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to clear schema cache")
	}
}

// classSchema returns the JSON Schema of a class as JSON.
func (b *schemaBuilder) classSchema(ctx context.Context, classID int64) ([]byte, apperrors.Error) {
	key := classSchemaKey(b.gen.Load(), classID)
	if cached, err := b.cache.Get(ctx, key); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Ctx(ctx).Warn().Err(err).Msg("schema cache unavailable")
	}

	schema, err := b.buildClassSchema(ctx, classID)
	if err != nil {
		return nil, err
	}
	data, jerr := json.Marshal(schema)
	if jerr != nil {
		return nil, ErrMetamodel.Err(jerr)
	}
	if err := b.cache.Set(ctx, key, data, 0); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("unable to cache class schema")
	}
	return data, nil
}

func (b *schemaBuilder) buildClassSchema(ctx context.Context, classID int64) (map[string]any, apperrors.Error) {
	c, err := db.DB(ctx).GetClass(ctx, classID)
	if err != nil {
		return nil, translate(ctx, err, classErrors)
	}
	cps, err := db.DB(ctx).ListClassProperties(ctx, classID)
	if err != nil {
		return nil, translate(ctx, err, classPropertyErrors)
	}
	props := map[string]any{}
	required := []string{}
	for _, cp := range cps {
		if !cp.Enabled {
			continue
		}
		p, err := db.DB(ctx).GetProperty(ctx, cp.PropertyID)
		if err != nil {
			return nil, translate(ctx, err, propertyErrors)
		}
		if !p.Enabled {
			continue
		}
		ps, err := b.propertySchema(ctx, p, map[int64]bool{})
		if err != nil {
			return nil, err
		}
		if ps == nil {
			continue
		}
		props[p.Name] = ps
		if cp.Required {
			required = append(required, p.Name)
		}
	}
	schema := map[string]any{
		"$schema":              jsonSchemaDraft,
		"title":                c.Name,
		"description":          c.Description,
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema, nil
}

// propertySchema builds the schema of p. path holds the properties being expanded above p.
// It returns a nil schema when the field or data type of p is disabled.
func (b *schemaBuilder) propertySchema(ctx context.Context, p *models.Property, path map[int64]bool) (map[string]any, apperrors.Error) {
	if path[p.ID] {
		return nil, ErrObjectPropertyCycle.Msg(fmt.Sprintf("property %q is nested in itself", p.Name))
	}
	f, err := db.DB(ctx).GetField(ctx, p.FieldID)
	if err != nil {
		return nil, translate(ctx, err, fieldErrors)
	}
	if !f.Enabled {
		return nil, nil
	}
	dt, err := db.DB(ctx).GetDataType(ctx, f.DataTypeID)
	if err != nil {
		return nil, translate(ctx, err, dataTypeErrors)
	}
	if !dt.Enabled {
		return nil, nil
	}
	s, serr := dataTypeSchema(dt)
	if serr != nil {
		return nil, invalid(fmt.Sprintf("data type %q: %s", dt.Name, serr.Error()))
	}
	item := s
	if dt.IsArray {
		item = s["items"].(map[string]any)
	}
	if types.PrimitiveKind(dt.Kind) == types.KindObject {
		path[p.ID] = true
		defer delete(path, p.ID)
		if err := b.objectMembers(ctx, p.ID, item, path); err != nil {
			return nil, err
		}
	}
	if p.Description != "" {
		s["description"] = p.Description
	}
	if f.DefaultValue != nil {
		s["default"] = json.RawMessage(f.DefaultValue)
	}
	return s, nil
}

func (b *schemaBuilder) objectMembers(ctx context.Context, parentID int64, s map[string]any, path map[int64]bool) apperrors.Error {
	children, err := db.DB(ctx).ListObjectProperties(ctx, parentID)
	if err != nil {
		return translate(ctx, err, objectPropertyErrors)
	}
	props := map[string]any{}
	required := []string{}
	for _, op := range children {
		if !op.Enabled {
			continue
		}
		child, err := db.DB(ctx).GetProperty(ctx, op.ChildPropertyID)
		if err != nil {
			return translate(ctx, err, propertyErrors)
		}
		if !child.Enabled {
			continue
		}
		cs, err := b.propertySchema(ctx, child, path)
		if err != nil {
			return err
		}
		if cs == nil {
			continue
		}
		props[child.Name] = cs
		if op.Required {
			required = append(required, child.Name)
		}
	}
	s["properties"] = props
	s["additionalProperties"] = false
	if len(required) > 0 {
		s["required"] = required
	}
	return nil
}

// validateInstance checks data against the schema of the class.
func (b *schemaBuilder) validateInstance(ctx context.Context, classID int64, data map[string]any) apperrors.Error {
	schema, err := b.classSchema(ctx, classID)
	if err != nil {
		return err
	}
	result, verr := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewGoLoader(data))
	if verr != nil {
		log.Ctx(ctx).Error().Err(verr).Int64("class_id", classID).Msg("unable to evaluate class schema")
		return ErrMetamodel.Err(verr)
	}
	if !result.Valid() {
		return ErrInstanceInvalid.Msg(describe(result.Errors()))
	}
	return nil
}

// validateValue returns the violations of value against schema.
func validateValue(ctx context.Context, schema map[string]any, value any) []string {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(value))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to evaluate data type schema")
		return []string{err.Error()}
	}
	if result.Valid() {
		return nil
	}
	var out []string
	for _, e := range result.Errors() {
		out = append(out, e.Description())
	}
	return out
}

func describe(errs []gojsonschema.ResultError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}
	return strings.Join(msgs, "; ")
}
