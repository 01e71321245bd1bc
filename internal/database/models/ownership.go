package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ownership is a time-bounded share of a unit held by a building owner.
// Rows are never deleted: ending an ownership sets EndDate, an administrative close clears Active.
type Ownership struct {
	BaseModel
	UnitID              int64           `json:"unit_id" gorm:"not null;index:idx_ownerships_unit_active,priority:1"`
	Unit                *Unit           `json:"-" gorm:"foreignKey:UnitID;constraint:OnDelete:CASCADE"`
	OwnerID             int64           `json:"owner_id" gorm:"not null;index"`
	Owner               *BuildingOwner  `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:RESTRICT"`
	OwnershipPercentage float64         `json:"ownership_percentage" gorm:"type:numeric(5,2);not null;default:100;check:chk_ownerships_percentage,ownership_percentage > 0 AND ownership_percentage <= 100"`
	StartDate           datatypes.Date  `json:"start_date" gorm:"not null"`
	EndDate             *datatypes.Date `json:"end_date,omitempty"`
	PurchasePrice       *float64        `json:"purchase_price,omitempty" gorm:"type:numeric(14,2)"`
	NotaryReference     *string         `json:"notary_reference,omitempty" gorm:"size:100"`
	IsPrimaryResidence  bool            `json:"is_primary_residence" gorm:"not null;default:true"`
	IsRentalProperty    bool            `json:"is_rental_property" gorm:"not null;default:false"`
	Active              bool            `json:"active" gorm:"not null;default:true;index:idx_ownerships_unit_active,priority:2"`
}

// TableName returns the table name for Ownership
func (Ownership) TableName() string {
	return "ownerships"
}

// OwnershipStatus is the derived lifecycle state of an ownership row
type OwnershipStatus string

const (
	OwnershipStatusOpen     OwnershipStatus = "active"
	OwnershipStatusEndDated OwnershipStatus = "active_end_dated"
	OwnershipStatusExpired  OwnershipStatus = "expired"
	OwnershipStatusClosed   OwnershipStatus = "closed"
)

// DateOf truncates t to its calendar date in UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Status derives the lifecycle state as of the given instant
func (o *Ownership) Status(asOf time.Time) OwnershipStatus {
	if !o.Active {
		return OwnershipStatusClosed
	}
	if o.EndDate == nil {
		return OwnershipStatusOpen
	}
	if DateOf(time.Time(*o.EndDate)).After(DateOf(asOf)) {
		return OwnershipStatusEndDated
	}
	return OwnershipStatusExpired
}

// CountsTowardCapacity reports whether the row is active and date-current as of asOf
func (o *Ownership) CountsTowardCapacity(asOf time.Time) bool {
	switch o.Status(asOf) {
	case OwnershipStatusOpen, OwnershipStatusEndDated:
		return true
	}
	return false
}
