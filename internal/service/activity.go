package service

import (
	"context"

	"github.com/rentdesk/property-management-api/internal/api/dto"
	"github.com/rentdesk/property-management-api/internal/authz"
	"github.com/rentdesk/property-management-api/internal/domain"
	"github.com/rentdesk/property-management-api/internal/repository"
	"github.com/rentdesk/property-management-api/internal/utils"
	"github.com/rentdesk/property-management-api/pkg/logger"
)

// ActivityPublisher fans a freshly written activity entry out to live
// subscribers.
type ActivityPublisher interface {
	Publish(ctx context.Context, entry *domain.ActivityLog) error
}

// ActivityEntry describes one recorded mutating action.
type ActivityEntry struct {
	Action     string
	Entity     domain.EntityKind
	EntityID   string
	CompanyID  string
	PropertyID string
	TenantID   string
	LeaseID    string
	PaymentID  string
}

type ActivityService struct {
	repo      repository.Repository
	publisher ActivityPublisher
	logger    *logger.Logger
}

func NewActivityService(repo repository.Repository, publisher ActivityPublisher, logger *logger.Logger) *ActivityService {
	return &ActivityService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Record appends an activity entry and publishes it to streaming clients.
// Recording is best-effort: a failure is logged and never propagated, so the
// write that triggered it still succeeds.
func (s *ActivityService) Record(ctx context.Context, actor *domain.Actor, e ActivityEntry) {
	entry := &domain.ActivityLog{
		Action:     e.Action,
		Entity:     string(e.Entity),
		EntityID:   e.EntityID,
		CompanyID:  optional(e.CompanyID),
		PropertyID: optional(e.PropertyID),
		TenantID:   optional(e.TenantID),
		LeaseID:    optional(e.LeaseID),
		PaymentID:  optional(e.PaymentID),
	}
	if actor != nil {
		entry.UserID = optional(actor.UserID)
	}

	if _, err := s.repo.ActivityLog().Create(ctx, entry); err != nil {
		s.logger.Error("failed to record activity entry", err)
		return
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, entry); err != nil {
			s.logger.Error("failed to publish activity entry", err)
		}
	}
}

func (s *ActivityService) List(ctx context.Context, params dto.ListQueryParams) (*dto.ActivityLogListResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindActivityLog, authz.ActionList)
	if err != nil {
		return nil, err
	}

	q := params.ToListQuery()
	entries, total, err := s.repo.ActivityLog().List(ctx, scope, q)
	if err != nil {
		return nil, err
	}

	return &dto.ActivityLogListResponse{
		Data:       dto.FromActivityLogs(entries),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (s *ActivityService) ListByEntity(ctx context.Context, entity, entityID string) ([]dto.ActivityLogResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindActivityLog, authz.ActionRead)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ActivityLog().ListByEntity(ctx, scope, entity, entityID)
	if err != nil {
		return nil, err
	}
	return dto.FromActivityLogs(entries), nil
}

func (s *ActivityService) ListByUser(ctx context.Context, userID string) ([]dto.ActivityLogResponse, error) {
	actor, err := utils.ActorFromContext(ctx)
	if err != nil {
		return nil, authz.ErrUnauthorized
	}

	scope, err := authz.ScopeFor(actor, domain.KindActivityLog, authz.ActionRead)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ActivityLog().ListByUser(ctx, scope, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromActivityLogs(entries), nil
}

// optional converts a possibly empty string to the nullable form used by
// activity log columns.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
