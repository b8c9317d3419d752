package metamodel

import (
	"context"

	"github.com/mugiliam/objectifiedsrv/internal/apperrors"
	"github.com/mugiliam/objectifiedsrv/internal/db"
	"github.com/mugiliam/objectifiedsrv/internal/db/models"
	"github.com/mugiliam/objectifiedsrv/pkg/dto"
	"github.com/rs/zerolog/log"
)

type namespaceService struct{}

var _ NamespaceService = (*namespaceService)(nil)

// CreateNamespace stores a new, non-core namespace.
func (s *namespaceService) CreateNamespace(ctx context.Context, ns *dto.Namespace) (*dto.Namespace, apperrors.Error) {
	if err := validate(ns); err != nil {
		return nil, err
	}
	m := models.Namespace{
		Name:        ns.Name,
		Description: ns.Description,
		Enabled:     ns.Enabled,
	}
	if err := db.DB(ctx).CreateNamespace(ctx, &m); err != nil {
		return nil, translate(ctx, err, namespaceErrors)
	}
	log.Ctx(ctx).Info().Int64("id", m.ID).Str("name", m.Name).Msg("namespace created")
	out := namespaceToDto(&m)
	return &out, nil
}

func (s *namespaceService) load(ctx context.Context, id int64) (*models.Namespace, apperrors.Error) {
	if err := validId(id, namespaceErrors); err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetNamespace(ctx, id)
	if err != nil {
		return nil, translate(ctx, err, namespaceErrors)
	}
	return m, nil
}

// loadMutable is load that refuses core namespaces.
func (s *namespaceService) loadMutable(ctx context.Context, id int64) (*models.Namespace, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.CoreNamespace {
		return nil, ErrCoreNamespace
	}
	return m, nil
}

func (s *namespaceService) EditNamespace(ctx context.Context, id int64, ns *dto.Namespace) apperrors.Error {
	m, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	if err := validate(ns); err != nil {
		return err
	}
	m.Name = ns.Name
	m.Description = ns.Description
	m.Enabled = ns.Enabled
	if err := db.DB(ctx).UpdateNamespace(ctx, m); err != nil {
		return translate(ctx, err, namespaceErrors)
	}
	return nil
}

func (s *namespaceService) DeleteNamespace(ctx context.Context, id int64) apperrors.Error {
	m, err := s.loadMutable(ctx, id)
	if err != nil {
		return err
	}
	m.Enabled = false
	if err := db.DB(ctx).UpdateNamespace(ctx, m); err != nil {
		return translate(ctx, err, namespaceErrors)
	}
	return nil
}

func (s *namespaceService) GetNamespaceById(ctx context.Context, id int64) (*dto.Namespace, apperrors.Error) {
	m, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	out := namespaceToDto(m)
	return &out, nil
}

func (s *namespaceService) ListNamespaces(ctx context.Context) ([]dto.Namespace, apperrors.Error) {
	list, err := db.DB(ctx).ListNamespaces(ctx)
	if err != nil {
		return nil, translate(ctx, err, namespaceErrors)
	}
	return mapList(list, namespaceToDto), nil
}

// FindNamespaces matches value against name and description, ignoring case.
func (s *namespaceService) FindNamespaces(ctx context.Context, value string) ([]dto.Namespace, apperrors.Error) {
	if value == "" {
		return nil, invalid("search value is required")
	}
	list, err := db.DB(ctx).FindNamespaces(ctx, value)
	if err != nil {
		return nil, translate(ctx, err, namespaceErrors)
	}
	return mapList(list, namespaceToDto), nil
}
