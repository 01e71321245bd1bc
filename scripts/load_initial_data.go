package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"copro-backend/internal/auth"
	"copro-backend/internal/config"
	"copro-backend/internal/database"
	"copro-backend/internal/database/models"
	apperrors "copro-backend/internal/errors"
	"copro-backend/internal/repository"
	"copro-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Seed records reference each other by natural keys (emails, building names, unit numbers)
// so the files stay valid across databases.

// IdentityData is one account to register, in the partition named by user_type
type IdentityData struct {
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	UserType    string `yaml:"user_type"`
	Phone       string `yaml:"phone,omitempty"`
	CompanyName string `yaml:"company_name,omitempty"`
}

// BuildingData is a building and the email of its syndic
type BuildingData struct {
	Name              string `yaml:"name"`
	Address           string `yaml:"address"`
	UnitsCount        int    `yaml:"units_count"`
	SyndicEmail       string `yaml:"syndic_email,omitempty"`
	SyndicType        string `yaml:"syndic_type,omitempty"`
	SyndicCompanyName string `yaml:"syndic_company_name,omitempty"`
}

// UnitData is a unit, keyed by building name and unit number
type UnitData struct {
	BuildingName string   `yaml:"building_name"`
	UnitNumber   string   `yaml:"unit_number"`
	Floor        *int     `yaml:"floor,omitempty"`
	UnitType     string   `yaml:"unit_type,omitempty"`
	SurfaceArea  *float64 `yaml:"surface_area,omitempty"`
	Millieme     int      `yaml:"millieme"`
	Description  string   `yaml:"description,omitempty"`
}

// OwnershipData is a share of a unit held by a building owner, keyed by email
type OwnershipData struct {
	BuildingName       string   `yaml:"building_name"`
	UnitNumber         string   `yaml:"unit_number"`
	OwnerEmail         string   `yaml:"owner_email"`
	Percentage         *float64 `yaml:"ownership_percentage,omitempty"`
	StartDate          string   `yaml:"start_date,omitempty"`
	EndDate            string   `yaml:"end_date,omitempty"`
	IsPrimaryResidence *bool    `yaml:"is_primary_residence,omitempty"`
	IsRentalProperty   *bool    `yaml:"is_rental_property,omitempty"`
}

// SeedFile is the layout of every YAML file under the data directory
type SeedFile struct {
	Identities []IdentityData  `yaml:"identities"`
	Buildings  []BuildingData  `yaml:"buildings"`
	Units      []UnitData      `yaml:"units"`
	Ownerships []OwnershipData `yaml:"ownerships"`
}

func unitKey(building, number string) string {
	return building + "/" + number
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	seed, err := loadSeedFiles(dataDir)
	if err != nil {
		logrus.Fatalf("Failed to load data from YAML files: %v", err)
	}
	if err := seed.Validate(); err != nil {
		logrus.Fatalf("Invalid seed data: %v", err)
	}

	// Initialize retries until Postgres accepts connections
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:       gormlogger.Silent,
		ConnectTimeout: cfg.DBConnectTimeout,
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	tokens, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		logrus.Fatalf("Failed to configure auth: %v", err)
	}

	if err := newSeeder(db, tokens).Run(context.Background(), seed); err != nil {
		logrus.Fatalf("Failed to load initial data: %v", err)
	}
	logrus.Info("Initial data loaded successfully")
}

// loadSeedFiles merges every .yaml file found under dataDir
func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Identities = append(merged.Identities, file.Identities...)
		merged.Buildings = append(merged.Buildings, file.Buildings...)
		merged.Units = append(merged.Units, file.Units...)
		merged.Ownerships = append(merged.Ownerships, file.Ownerships...)
		return nil
	})

	return merged, err
}

// Validate checks that every cross reference resolves within the seed and that no
// unit is declared over 100% by open-ended ownerships.
func (s *SeedFile) Validate() error {
	var errs []error

	partitions := make(map[string]models.Partition, len(s.Identities))
	for _, id := range s.Identities {
		email := strings.ToLower(strings.TrimSpace(id.Email))
		if _, dup := partitions[email]; dup {
			errs = append(errs, fmt.Errorf("identity %s declared twice", email))
		}
		p := models.Partition(id.UserType)
		if !p.IsValid() {
			errs = append(errs, fmt.Errorf("identity %s: unknown user_type %q", email, id.UserType))
		}
		partitions[email] = p
	}

	buildings := make(map[string]bool, len(s.Buildings))
	for _, b := range s.Buildings {
		buildings[b.Name] = true
		if b.SyndicEmail == "" {
			continue
		}
		if p, ok := partitions[strings.ToLower(b.SyndicEmail)]; !ok || p != models.PartitionSyndic {
			errs = append(errs, fmt.Errorf("building %s: syndic %s is not a declared syndic", b.Name, b.SyndicEmail))
		}
	}

	units := make(map[string]bool, len(s.Units))
	for _, u := range s.Units {
		if !buildings[u.BuildingName] {
			errs = append(errs, fmt.Errorf("unit %s: unknown building %s", u.UnitNumber, u.BuildingName))
		}
		units[unitKey(u.BuildingName, u.UnitNumber)] = true
	}

	openTotals := make(map[string]float64)
	for _, o := range s.Ownerships {
		key := unitKey(o.BuildingName, o.UnitNumber)
		if !units[key] {
			errs = append(errs, fmt.Errorf("ownership of %s: unknown unit", key))
		}
		if p, ok := partitions[strings.ToLower(o.OwnerEmail)]; !ok || p != models.PartitionOwner {
			errs = append(errs, fmt.Errorf("ownership of %s: %s is not a declared building owner", key, o.OwnerEmail))
		}
		if o.EndDate == "" {
			pct := service.MaxOwnershipPercentage
			if o.Percentage != nil {
				pct = *o.Percentage
			}
			openTotals[key] += pct
		}
	}
	for key, total := range openTotals {
		if total > service.MaxOwnershipPercentage {
			errs = append(errs, fmt.Errorf("unit %s: open ownerships total %g%%", key, total))
		}
	}

	return errors.Join(errs...)
}

// seeder writes through the services so seeded data obeys the same rules as API writes
type seeder struct {
	db         *gorm.DB
	identities *repository.IdentityRepository
	users      *service.UserService
	buildings  *service.BuildingService
	units      *service.UnitService
	ledger     *service.OwnershipLedger
}

func newSeeder(db *gorm.DB, tokens *auth.AuthService) *seeder {
	validator := service.NewValidator()
	identityRepo := repository.NewIdentityRepository(db)
	buildingRepo := repository.NewBuildingRepository(db)
	ledger := service.NewOwnershipLedger(repository.NewOwnershipRepository(db), identityRepo, validator)

	return &seeder{
		db:         db,
		identities: identityRepo,
		users:      service.NewUserService(identityRepo, service.NewIdentityResolver(identityRepo, tokens), auth.NewPasswordHasher(auth.PasswordCost), validator),
		buildings:  service.NewBuildingService(buildingRepo, identityRepo, validator),
		units:      service.NewUnitService(repository.NewUnitRepository(db), buildingRepo, ledger, validator),
		ledger:     ledger,
	}
}

// Run seeds identities, buildings, units and ownerships in dependency order. Existing
// rows are kept, so running twice is harmless.
func (s *seeder) Run(ctx context.Context, seed *SeedFile) error {
	identityIDs := make(map[string]int64, len(seed.Identities))
	created := 0
	for _, data := range seed.Identities {
		id, isNew, err := s.ensureIdentity(ctx, data)
		if err != nil {
			return fmt.Errorf("failed to create identity %s: %w", data.Email, err)
		}
		identityIDs[strings.ToLower(strings.TrimSpace(data.Email))] = id
		if isNew {
			created++
		}
	}
	logrus.Infof("Identities: %d created, %d total", created, len(seed.Identities))

	buildingIDs := make(map[string]int64, len(seed.Buildings))
	created = 0
	for _, data := range seed.Buildings {
		id, isNew, err := s.ensureBuilding(ctx, data, identityIDs)
		if err != nil {
			return fmt.Errorf("failed to create building %s: %w", data.Name, err)
		}
		buildingIDs[data.Name] = id
		if isNew {
			created++
		}
	}
	logrus.Infof("Buildings: %d created, %d total", created, len(seed.Buildings))

	unitIDs := make(map[string]int64, len(seed.Units))
	created = 0
	for _, data := range seed.Units {
		id, isNew, err := s.ensureUnit(ctx, data, buildingIDs[data.BuildingName])
		if err != nil {
			return fmt.Errorf("failed to create unit %s: %w", unitKey(data.BuildingName, data.UnitNumber), err)
		}
		unitIDs[unitKey(data.BuildingName, data.UnitNumber)] = id
		if isNew {
			created++
		}
	}
	logrus.Infof("Units: %d created, %d total", created, len(seed.Units))

	created = 0
	for _, data := range seed.Ownerships {
		key := unitKey(data.BuildingName, data.UnitNumber)
		isNew, err := s.ensureOwnership(ctx, data, unitIDs[key], identityIDs[strings.ToLower(data.OwnerEmail)])
		if err != nil {
			// a capacity conflict with rows already in the database skips only this ownership
			if apperrors.IsValidation(err) {
				logrus.Warnf("Skipping ownership of %s by %s: %v", key, data.OwnerEmail, err)
				continue
			}
			return fmt.Errorf("failed to create ownership of %s: %w", key, err)
		}
		if isNew {
			created++
		}
	}
	logrus.Infof("Ownerships: %d created, %d total", created, len(seed.Ownerships))

	return nil
}

func (s *seeder) ensureIdentity(ctx context.Context, data IdentityData) (int64, bool, error) {
	user, err := s.users.Register(ctx, &service.RegisterRequest{
		Email:       data.Email,
		Password:    data.Password,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		UserType:    models.Partition(data.UserType),
		Phone:       data.Phone,
		CompanyName: data.CompanyName,
	})
	if err == nil {
		return user.ID, true, nil
	}
	if !apperrors.IsAlreadyExists(err) {
		return 0, false, err
	}

	existing, err := s.identities.GetActiveByEmail(ctx, models.Partition(data.UserType), strings.ToLower(strings.TrimSpace(data.Email)))
	if err != nil {
		return 0, false, fmt.Errorf("email is registered in another partition: %w", err)
	}
	return existing.ID, false, nil
}

func (s *seeder) ensureBuilding(ctx context.Context, data BuildingData, identityIDs map[string]int64) (int64, bool, error) {
	var existing models.Building
	err := s.db.WithContext(ctx).Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("failed to query building: %w", err)
	}

	req := &service.CreateBuildingRequest{
		Name:              data.Name,
		Address:           data.Address,
		UnitsCount:        data.UnitsCount,
		SyndicType:        models.SyndicType(data.SyndicType),
		SyndicCompanyName: data.SyndicCompanyName,
	}
	if data.SyndicEmail != "" {
		syndicID := identityIDs[strings.ToLower(data.SyndicEmail)]
		req.SyndicID = &syndicID
	}

	building, err := s.buildings.CreateBuilding(ctx, req)
	if err != nil {
		return 0, false, err
	}
	return building.ID, true, nil
}

func (s *seeder) ensureUnit(ctx context.Context, data UnitData, buildingID int64) (int64, bool, error) {
	var existing models.Unit
	err := s.db.WithContext(ctx).
		Where("building_id = ? AND unit_number = ?", buildingID, data.UnitNumber).
		First(&existing).Error
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, fmt.Errorf("failed to query unit: %w", err)
	}

	unit, err := s.units.CreateUnit(ctx, &service.CreateUnitRequest{
		BuildingID:  buildingID,
		UnitNumber:  data.UnitNumber,
		Floor:       data.Floor,
		UnitType:    models.UnitType(data.UnitType),
		SurfaceArea: data.SurfaceArea,
		Millieme:    data.Millieme,
		Description: data.Description,
	})
	if err != nil {
		return 0, false, err
	}
	return unit.ID, true, nil
}

func (s *seeder) ensureOwnership(ctx context.Context, data OwnershipData, unitID, ownerID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Ownership{}).
		Where("unit_id = ? AND owner_id = ? AND active = ?", unitID, ownerID, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to query ownership: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	req := &service.CreateOwnershipRequest{
		UnitID:              unitID,
		OwnerID:             ownerID,
		OwnershipPercentage: data.Percentage,
		IsPrimaryResidence:  data.IsPrimaryResidence,
		IsRentalProperty:    data.IsRentalProperty,
	}
	if data.StartDate != "" {
		req.StartDate = &data.StartDate
	}
	if data.EndDate != "" {
		req.EndDate = &data.EndDate
	}

	if _, err := s.ledger.CreateOwnership(ctx, req); err != nil {
		return false, err
	}
	return true, nil
}
