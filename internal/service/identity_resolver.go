package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"copro-backend/internal/auth"
	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/repository"

	"gorm.io/gorm"
)

// IdentityResolver maps an id, an email or a bearer token to exactly one identity partition.
// Partitions are always probed in models.ProbeOrder.
type IdentityResolver struct {
	repo   repository.IdentityRepositoryInterface
	tokens *auth.AuthService
}

// NewIdentityResolver creates a new identity resolver
func NewIdentityResolver(repo repository.IdentityRepositoryInterface, tokens *auth.AuthService) *IdentityResolver {
	return &IdentityResolver{repo: repo, tokens: tokens}
}

type partitionLookup func(ctx context.Context, p models.Partition) (*models.Identity, error)

// probe returns the first active match across partitions; store errors stop the probe
func (r *IdentityResolver) probe(ctx context.Context, partitions []models.Partition, get partitionLookup) (*models.Identity, error) {
	for _, p := range partitions {
		identity, err := get(ctx, p)
		if err == nil {
			return identity, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return nil, apperrors.ErrIdentityNotFound
}

// LookupByID resolves a positive id to the first active identity in probe order
func (r *IdentityResolver) LookupByID(ctx context.Context, id int64) (*models.Identity, error) {
	if id <= 0 {
		return nil, &apperrors.ValidationError{Code: apperrors.ValidationInvalidID, Field: "id", Message: "must be a positive integer"}
	}
	return r.probe(ctx, models.ProbeOrder, func(ctx context.Context, p models.Partition) (*models.Identity, error) {
		return r.repo.GetActiveByID(ctx, p, id)
	})
}

// LookupByEmail resolves an email to the first active identity in probe order
func (r *IdentityResolver) LookupByEmail(ctx context.Context, email string) (*models.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NewValidationError("email", "is required")
	}
	return r.probe(ctx, models.ProbeOrder, func(ctx context.Context, p models.Partition) (*models.Identity, error) {
		return r.repo.GetActiveByEmail(ctx, p, email)
	})
}

// EmailTaken reports whether any partition holds the email, active or not
func (r *IdentityResolver) EmailTaken(ctx context.Context, email string) (bool, error) {
	return r.repo.EmailExists(ctx, email)
}

// IssueToken signs a token for the identity. A ttl <= 0 uses the configured lifetime.
func (r *IdentityResolver) IssueToken(identity *models.Identity, ttl time.Duration) (string, time.Time, error) {
	if identity == nil || identity.ID <= 0 || !identity.Partition.IsValid() {
		return "", time.Time{}, errors.New("cannot issue a token for an unresolved identity")
	}
	return r.tokens.GenerateJWT(identity, ttl)
}

// VerifyToken checks the token and re-resolves its identity from the store.
// A valid signature is not enough: the identity must still exist and be active.
func (r *IdentityResolver) VerifyToken(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := r.tokens.ValidateJWT(token)
	if err != nil {
		return nil, err
	}

	partition, id, err := claims.Principal()
	if err != nil {
		return nil, err
	}

	// tokens carry their partition, so colliding ids resolve to the identity that was issued
	partitions := models.ProbeOrder
	if partition != "" {
		partitions = []models.Partition{partition}
	}

	identity, err := r.probe(ctx, partitions, func(ctx context.Context, p models.Partition) (*models.Identity, error) {
		return r.repo.GetActiveByID(ctx, p, id)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentityNotFound) {
			return nil, apperrors.NewAuthError(apperrors.AuthInactive, err)
		}
		return nil, err
	}
	return identity, nil
}
