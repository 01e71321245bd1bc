package models

// Building is a co-owned property managed by a syndic
type Building struct {
	BaseModel
	Name                string     `json:"name" gorm:"not null;size:200"`
	Address             string     `json:"address" gorm:"not null;size:500"`
	UnitsCount          int        `json:"units_count" gorm:"not null;default:0"`
	SyndicID            *int64     `json:"syndic_id,omitempty" gorm:"index"`
	Syndic              *Syndic    `json:"-" gorm:"foreignKey:SyndicID;constraint:OnDelete:SET NULL"`
	SyndicType          SyndicType `json:"syndic_type" gorm:"type:varchar(20);not null;default:'professional'"`
	SyndicCompanyName   string     `json:"syndic_company_name,omitempty" gorm:"size:200"`
	SyndicLicenseNumber string     `json:"syndic_license_number,omitempty" gorm:"size:100"`
	SyndicContactEmail  string     `json:"syndic_contact_email,omitempty" gorm:"size:255"`
	SyndicContactPhone  string     `json:"syndic_contact_phone,omitempty" gorm:"size:30"`
}

// TableName returns the table name for Building
func (Building) TableName() string {
	return "buildings"
}

// Unit is a physical sub-division of a building
type Unit struct {
	BaseModel
	BuildingID      int64     `json:"building_id" gorm:"not null;uniqueIndex:idx_units_building_number"`
	Building        *Building `json:"-" gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
	UnitNumber      string    `json:"unit_number" gorm:"not null;size:20;uniqueIndex:idx_units_building_number"`
	Floor           *int      `json:"floor,omitempty"`
	UnitType        UnitType  `json:"unit_type" gorm:"type:varchar(20);not null;default:'apartment'"`
	SurfaceArea     *float64  `json:"surface_area,omitempty" gorm:"type:numeric(10,2)"`
	Millieme        int       `json:"millieme" gorm:"not null;default:0;check:chk_units_millieme,millieme >= 0 AND millieme <= 1000"`
	Description     string    `json:"description,omitempty" gorm:"type:text"`
	BalconyArea     *float64  `json:"balcony_area,omitempty" gorm:"type:numeric(10,2)"`
	GarageIncluded  bool      `json:"garage_included" gorm:"not null;default:false"`
	StorageIncluded bool      `json:"storage_included" gorm:"not null;default:false"`
}

// TableName returns the table name for Unit
func (Unit) TableName() string {
	return "units"
}
