package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sumitdkd/me-api-playground/adapters/event"
	"github.com/sumitdkd/me-api-playground/internal/domain/profile"
	"github.com/sumitdkd/me-api-playground/pkg/apperror"
	"github.com/sumitdkd/me-api-playground/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

// NewProfileUseCase wires the store and an optional event producer. A nil
// kafkaClient disables event publishing.
func NewProfileUseCase(repo profile.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NewNotFound("Profile")
	}
	return &GetProfileOutput{Profile: p}, nil
}

type CreateProfileInput struct {
	Name      string
	Email     string
	Education []profile.Education
	Skills    []string
	Projects  []profile.Project
	Work      []profile.Work
	Links     *profile.Links
}

type CreateProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteCreateProfile(ctx context.Context, input CreateProfileInput) (*CreateProfileOutput, error) {
	now := time.Now().UTC()
	p := &profile.Profile{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Education: input.Education,
		Skills:    input.Skills,
		Projects:  input.Projects,
		Work:      input.Work,
		Links:     input.Links,
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Normalize()
	if violations := p.Violations(); len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}

	if err := uc.profileRepo.Insert(ctx, p); err != nil {
		return nil, err
	}

	uc.publishEvent(event.ProfileEventTypeCreated, p.ID)
	return &CreateProfileOutput{Profile: p}, nil
}

// UpdateProfileInput carries only the fields the request supplied. A nil
// field leaves the stored value untouched; a non-nil field replaces it
// wholesale, arrays included.
type UpdateProfileInput struct {
	Name      *string
	Email     *string
	Education *[]profile.Education
	Skills    *[]string
	Projects  *[]profile.Project
	Work      *[]profile.Work
	Links     *profile.Links
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
	Created bool
}

func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	current, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created := current == nil
	if created {
		current = &profile.Profile{ID: uuid.New(), CreatedAt: now}
	}

	if input.Name != nil {
		current.Name = *input.Name
	}
	if input.Email != nil {
		current.Email = *input.Email
	}
	if input.Education != nil {
		current.Education = *input.Education
	}
	if input.Skills != nil {
		current.Skills = *input.Skills
	}
	if input.Projects != nil {
		current.Projects = *input.Projects
	}
	if input.Work != nil {
		current.Work = *input.Work
	}
	if input.Links != nil {
		current.Links = input.Links
	}

	current.Normalize()
	if violations := current.Violations(); len(violations) > 0 {
		return nil, apperror.NewValidation(violations)
	}
	current.UpdatedAt = now

	if err := uc.profileRepo.Replace(ctx, current); err != nil {
		return nil, err
	}

	if created {
		uc.publishEvent(event.ProfileEventTypeCreated, current.ID)
	} else {
		uc.publishEvent(event.ProfileEventTypeUpdated, current.ID)
	}
	return &UpdateProfileOutput{Profile: current, Created: created}, nil
}

func (uc *ProfileUseCase) publishEvent(eventType string, profileID uuid.UUID) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  eventType,
			ProfileID:  profileID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish profile event", err, zap.String("event_type", eventType))
		}
	}()
}
