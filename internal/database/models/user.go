package models

import (
	"time"
)

// Partition names one of the three disjoint identity tables
type Partition string

const (
	PartitionOwner         Partition = "building_owner"
	PartitionSyndic        Partition = "syndic"
	PartitionAdministrator Partition = "administrator"
)

// ProbeOrder is the fixed order in which partitions are searched when resolving an id or
// email. Ids are not unique across partitions, so changing this order changes which
// identity a colliding id resolves to.
var ProbeOrder = []Partition{PartitionOwner, PartitionSyndic, PartitionAdministrator}

// IsValid checks if the Partition is one of the known partitions
func (p Partition) IsValid() bool {
	switch p {
	case PartitionOwner, PartitionSyndic, PartitionAdministrator:
		return true
	}
	return false
}

// Table returns the table backing the partition
func (p Partition) Table() string {
	switch p {
	case PartitionOwner:
		return BuildingOwner{}.TableName()
	case PartitionSyndic:
		return Syndic{}.TableName()
	case PartitionAdministrator:
		return Administrator{}.TableName()
	}
	return ""
}

// BuildingOwner is an identity in the owner partition
type BuildingOwner struct {
	IdentityBase
}

// TableName returns the table name for BuildingOwner
func (BuildingOwner) TableName() string {
	return "building_owners"
}

// Syndic is an identity in the syndic partition
type Syndic struct {
	IdentityBase
	CompanyName string `json:"company_name" gorm:"not null;size:200" validate:"required,max=200"`
}

// TableName returns the table name for Syndic
func (Syndic) TableName() string {
	return "syndics"
}

// Administrator is an identity in the administrator partition
type Administrator struct {
	IdentityBase
}

// TableName returns the table name for Administrator
func (Administrator) TableName() string {
	return "administrators"
}

// Identity is the normalized, partition-tagged view of a row from any identity table.
// Two identities are the same person only if both Partition and ID match.
type Identity struct {
	Partition    Partition `json:"user_type"`
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Record converts the identity into the gorm model of its partition, ready for insert
func (i *Identity) Record() interface{} {
	base := IdentityBase{
		BaseModel:    BaseModel{ID: i.ID, CreatedAt: i.CreatedAt, UpdatedAt: i.UpdatedAt},
		Email:        i.Email,
		PasswordHash: i.PasswordHash,
		FirstName:    i.FirstName,
		LastName:     i.LastName,
		Phone:        i.Phone,
		Active:       i.Active,
	}
	switch i.Partition {
	case PartitionSyndic:
		return &Syndic{IdentityBase: base, CompanyName: i.CompanyName}
	case PartitionAdministrator:
		return &Administrator{IdentityBase: base}
	default:
		return &BuildingOwner{IdentityBase: base}
	}
}

func identityFromBase(p Partition, b *IdentityBase, company string) *Identity {
	return &Identity{
		Partition:    p,
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Phone:        b.Phone,
		CompanyName:  company,
		Active:       b.Active,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Identity normalizes the owner row
func (o *BuildingOwner) Identity() *Identity {
	return identityFromBase(PartitionOwner, &o.IdentityBase, "")
}

// Identity normalizes the syndic row
func (s *Syndic) Identity() *Identity {
	return identityFromBase(PartitionSyndic, &s.IdentityBase, s.CompanyName)
}

// Identity normalizes the administrator row
func (a *Administrator) Identity() *Identity {
	return identityFromBase(PartitionAdministrator, &a.IdentityBase, "")
}

// FullName joins first and last name
func (i *Identity) FullName() string {
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}
