package models

// UnitType defines the kinds of units a building is divided into
type UnitType string

const (
	UnitTypeApartment  UnitType = "apartment"
	UnitTypeCommercial UnitType = "commercial"
	UnitTypeGarage     UnitType = "garage"
	UnitTypeStorage    UnitType = "storage"
	UnitTypeOther      UnitType = "other"
)

// SyndicType defines how a building's syndic is appointed
type SyndicType string

const (
	SyndicTypeProfessional SyndicType = "professional"
	SyndicTypeVoluntary    SyndicType = "voluntary"
)

// IsValid checks if the UnitType is valid
func (u UnitType) IsValid() bool {
	switch u {
	case UnitTypeApartment, UnitTypeCommercial, UnitTypeGarage, UnitTypeStorage, UnitTypeOther:
		return true
	}
	return false
}

// IsValid checks if the SyndicType is valid
func (s SyndicType) IsValid() bool {
	switch s {
	case SyndicTypeProfessional, SyndicTypeVoluntary:
		return true
	}
	return false
}
