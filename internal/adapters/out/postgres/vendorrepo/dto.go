// Package vendorrepo provides data transfer objects and mapping functions for
// vendor persistence, including the weekly working-hours rows that hang off
// each vendor record.
package vendorrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
type VendorDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantName string
	Slug           string `gorm:"uniqueIndex"`
	Description    string
	PhoneNumber    string
	Address        string
	City           string
	LogoURL        string
	IsStoreOpen    bool
	PackLimit      int
	PackPrice      float64
	WorkingDays    []WorkingDayDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// WorkingDayDTO is one row of a vendor's weekly schedule. Exactly seven rows
// exist per vendor; updates replace the set wholesale.
type WorkingDayDTO struct {
	ID          uint      `gorm:"primaryKey"`
	VendorID    uuid.UUID `gorm:"type:uuid;index"`
	Day         string
	OpeningTime string
	ClosingTime string
	IsActive    bool
}

// TableName specifies the database table name for schedule rows.
func (WorkingDayDTO) TableName() string {
	return "vendor_working_days"
}

func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	profile := aggregate.Profile()

	days := make([]WorkingDayDTO, 0, len(aggregate.WorkingHours().Days()))
	for _, day := range aggregate.WorkingHours().Days() {
		days = append(days, WorkingDayDTO{
			VendorID:    aggregate.ID().Bytes(),
			Day:         day.Day(),
			OpeningTime: day.OpeningTime(),
			ClosingTime: day.ClosingTime(),
			IsActive:    day.IsActive(),
		})
	}

	return VendorDTO{
		ID:             aggregate.ID().Bytes(),
		RestaurantName: profile.RestaurantName,
		Slug:           profile.Slug,
		Description:    profile.Description,
		PhoneNumber:    profile.PhoneNumber,
		Address:        profile.Address,
		City:           profile.City,
		LogoURL:        profile.LogoURL,
		IsStoreOpen:    aggregate.IsStoreOpen(),
		PackLimit:      aggregate.PackSettings().Limit(),
		PackPrice:      aggregate.PackSettings().Price(),
		WorkingDays:    days,
	}
}

func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	days := make([]vendor.WorkingDay, 0, len(dto.WorkingDays))
	for _, row := range dto.WorkingDays {
		day, dayErr := vendor.NewWorkingDay(row.Day, row.OpeningTime, row.ClosingTime, row.IsActive)
		if dayErr != nil {
			return nil, dayErr
		}
		days = append(days, day)
	}

	workingHours, err := vendor.RestoreWorkingHours(days)
	if err != nil {
		return nil, err
	}

	// A vendor that never configured pack settings has a zero limit row.
	var packSettings vendor.PackSettings
	if dto.PackLimit > 0 {
		packSettings, err = vendor.NewPackSettings(dto.PackLimit, dto.PackPrice)
		if err != nil {
			return nil, err
		}
	}

	return vendor.RestoreVendor(
		id,
		vendor.Profile{
			RestaurantName: dto.RestaurantName,
			Slug:           dto.Slug,
			Description:    dto.Description,
			PhoneNumber:    dto.PhoneNumber,
			Address:        dto.Address,
			City:           dto.City,
			LogoURL:        dto.LogoURL,
		},
		dto.IsStoreOpen,
		workingHours,
		packSettings,
	)
}
