package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"copro-backend/internal/database/models"

	"gorm.io/gorm"
)

// identityRow is the scan shape shared by the three partition tables.
// company_name only exists on syndics and stays empty elsewhere.
type identityRow struct {
	models.IdentityBase
	CompanyName string
}

func (r *identityRow) toIdentity(p models.Partition) *models.Identity {
	return &models.Identity{
		Partition:    p,
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Phone:        r.Phone,
		CompanyName:  r.CompanyName,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// IdentityRepository reads and writes the three identity partitions through one code path
type IdentityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) take(ctx context.Context, op string, p models.Partition, query string, args ...interface{}) (*models.Identity, error) {
	table := p.Table()
	if table == "" {
		return nil, fmt.Errorf("unknown partition %q", p)
	}
	var row identityRow
	err := r.db.WithContext(ctx).Table(table).Where(query, args...).Take(&row).Error
	if err != nil {
		return nil, storeError(op, err)
	}
	return row.toIdentity(p), nil
}

// GetActiveByID retrieves an active identity by id within one partition
func (r *IdentityRepository) GetActiveByID(ctx context.Context, p models.Partition, id int64) (*models.Identity, error) {
	return r.take(ctx, "get identity by id", p, "id = ? AND active = ?", id, true)
}

// GetActiveByEmail retrieves an active identity by email within one partition
func (r *IdentityRepository) GetActiveByEmail(ctx context.Context, p models.Partition, email string) (*models.Identity, error) {
	return r.take(ctx, "get identity by email", p, "lower(email) = ? AND active = ?", normalizeEmail(email), true)
}

// GetByID retrieves an identity by id regardless of its active flag
func (r *IdentityRepository) GetByID(ctx context.Context, p models.Partition, id int64) (*models.Identity, error) {
	return r.take(ctx, "get identity", p, "id = ?", id)
}

// EmailExists reports whether any partition holds the email, active or not
func (r *IdentityRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	parts := make([]string, 0, len(models.ProbeOrder))
	args := make([]interface{}, 0, len(models.ProbeOrder))
	for _, p := range models.ProbeOrder {
		parts = append(parts, fmt.Sprintf(`SELECT 1 FROM %q WHERE lower(email) = ?`, p.Table()))
		args = append(args, normalizeEmail(email))
	}
	query := "SELECT EXISTS (" + strings.Join(parts, " UNION ALL ") + ")"

	var exists bool
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&exists).Error; err != nil {
		return false, storeError("check email", err)
	}
	return exists, nil
}

// Create inserts the identity into its partition and fills in the generated id and timestamps
func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	if !identity.Partition.IsValid() {
		return fmt.Errorf("unknown partition %q", identity.Partition)
	}
	identity.Email = normalizeEmail(identity.Email)

	record := identity.Record()
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return storeError("create identity", err)
	}
	created := record.(interface{ Identity() *models.Identity }).Identity()

	// active has a column default of true, so gorm omits a false value on insert
	if !identity.Active {
		err := r.db.WithContext(ctx).Table(identity.Partition.Table()).
			Where("id = ?", created.ID).Update("active", false).Error
		if err != nil {
			return storeError("create identity", err)
		}
		created.Active = false
	}

	created.PasswordHash = identity.PasswordHash
	*identity = *created
	return nil
}

// SetActive flips the active flag and returns the updated identity
func (r *IdentityRepository) SetActive(ctx context.Context, p models.Partition, id int64, active bool) (*models.Identity, error) {
	table := p.Table()
	if table == "" {
		return nil, fmt.Errorf("unknown partition %q", p)
	}
	result := r.db.WithContext(ctx).Table(table).Where("id = ?", id).
		Updates(map[string]interface{}{"active": active, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, storeError("set identity active", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, p, id)
}

// ListByPartition lists every identity of a partition, newest first
func (r *IdentityRepository) ListByPartition(ctx context.Context, p models.Partition) ([]models.Identity, error) {
	table := p.Table()
	if table == "" {
		return nil, fmt.Errorf("unknown partition %q", p)
	}
	var rows []identityRow
	if err := r.db.WithContext(ctx).Table(table).Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, storeError("list identities", err)
	}
	out := make([]models.Identity, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toIdentity(p))
	}
	return out, nil
}

// WithEmailLock runs fn in a transaction holding an advisory lock keyed by the normalized email,
// so concurrent registrations of one address are serialized across all partitions.
func (r *IdentityRepository) WithEmailLock(ctx context.Context, email string, fn func(IdentityRepositoryInterface) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", normalizeEmail(email)).Error; err != nil {
			return storeError("lock email", err)
		}
		return fn(&IdentityRepository{db: tx})
	})
	return txError("register identity", err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
