package crewrepo

import (
	"context"
	"errors"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCrewRepository implements CrewRepository using GORM.
type GormCrewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCrewRepository creates a new GORM crew repository.
func NewGormCrewRepository(db *gorm.DB, tracker aggregateTracker) *GormCrewRepository {
	return &GormCrewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new team member to the database.
func (r *GormCrewRepository) Add(ctx context.Context, aggregate *crew.TeamMember) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing team member, guarded by the loaded version.
func (r *GormCrewRepository) Update(ctx context.Context, aggregate *crew.TeamMember) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TeamMemberDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"foreman_id": dto.ForemanID,
			"name":       dto.Name,
			"specialty":  dto.Specialty,
			"contact":    dto.Contact,
			"skill":      dto.Skill,
			"experience": dto.Experience,
			"bio":        dto.Bio,
			"rating":     dto.Rating,
			"version":    aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("team member", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a team member by ID.
func (r *GormCrewRepository) Get(ctx context.Context, id kernel.UUID) (*crew.TeamMember, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TeamMemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("team member", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByForeman retrieves the roster owned by a foreman, by name.
func (r *GormCrewRepository) GetByForeman(ctx context.Context, foremanID kernel.UUID) ([]*crew.TeamMember, error) {
	if err := foremanID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TeamMemberDTO
	err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "foreman_id = ?", foremanID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	members := make([]*crew.TeamMember, 0, len(dtos))
	for _, dto := range dtos {
		member, memberErr := toDomain(dto)
		if memberErr != nil {
			return nil, memberErr
		}
		members = append(members, member)
	}

	return members, nil
}
