// Package domain contains the persistence model for photographers.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/photohub/internal/personname"
	"github.com/smallbiznis/photohub/internal/rolestatus"
	"github.com/smallbiznis/photohub/pkg/patch"
)

// Photographer is an independent top-level entity. Identity is the exact
// (GivenName, FamilyName) tuple; the infix is stored but not identifying.
type Photographer struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	GivenName  string       `gorm:"type:text;not null;uniqueIndex:ux_photographers_given_family,priority:1" json:"given_name"`
	FamilyName string       `gorm:"type:text;not null;uniqueIndex:ux_photographers_given_family,priority:2" json:"family_name"`
	InfixName  string       `gorm:"type:text" json:"infix_name"`

	IsDeceased bool       `gorm:"column:is_deceased" json:"is_deceased"`
	BornAt     *time.Time `gorm:"column:born_at" json:"born_at,omitempty"`

	Phone   string `gorm:"type:text" json:"phone"`
	Email   string `gorm:"type:text" json:"email"`
	Website string `gorm:"type:text" json:"website"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Photographer) TableName() string { return "photographers" }

// Name returns the structured name.
func (p *Photographer) Name() personname.Name {
	return personname.Name{Given: p.GivenName, Infix: p.InfixName, Family: p.FamilyName}
}

// FullName is the display form "Given Infix Family".
func (p *Photographer) FullName() string { return p.Name().Full() }

// Attributes is the non-identifying attribute patch applied by
// FindCreateUpdate. Only the deceased key of RolesAndStatus applies to a
// photographer; the remaining keys belong to the portfolio record.
type Attributes struct {
	RolesAndStatus rolestatus.RolesAndStatus
	Phone          patch.Field[string]
	Email          patch.Field[string]
	Website        patch.Field[string]
	BornAt         patch.Field[time.Time]
}
