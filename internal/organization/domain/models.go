// Package domain contains persistence models for organizations (photo clubs
// and museums) and their type records.
package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/photohub/pkg/patch"
	"gorm.io/datatypes"
)

// TypeName enumerates the supported organization types.
type TypeName string

const (
	TypeClub    TypeName = "club"
	TypeMuseum  TypeName = "museum"
	TypeUnknown TypeName = "unknown"
)

// AllTypes lists every type that must exist as a persisted record.
func AllTypes() []TypeName { return []TypeName{TypeClub, TypeMuseum, TypeUnknown} }

// Plural returns the JSON feed key for the type ("clubs", "museums").
func (t TypeName) Plural() string { return string(t) + "s" }

// OrganizationType is a persisted type record. The registry seeds one row
// per TypeName at startup.
type OrganizationType struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Name      string       `gorm:"type:text;not null;uniqueIndex:ux_organization_types_name" json:"name"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (OrganizationType) TableName() string { return "organization_types" }

// Organization represents one photo club or museum. Identity is the
// (FullName, Town) pair; the nickname only disambiguates display.
type Organization struct {
	ID       snowflake.ID `gorm:"primaryKey" json:"id"`
	FullName string       `gorm:"type:text;not null;uniqueIndex:ux_organizations_fullname_town,priority:1" json:"full_name"`
	Town     string       `gorm:"type:text;not null;uniqueIndex:ux_organizations_fullname_town,priority:2" json:"town"`
	Nickname string       `gorm:"type:text" json:"nickname"`
	Slug     string       `gorm:"type:text;index" json:"slug"`

	TypeID snowflake.ID     `gorm:"not null;index" json:"type_id"`
	Type   OrganizationType `gorm:"foreignKey:TypeID" json:"type"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Website    string `gorm:"type:text" json:"website"`
	Wikipedia  string `gorm:"type:text" json:"wikipedia"`
	MembersURL string `gorm:"type:text;column:members_url" json:"members_url"`

	FotobondNumber int16 `gorm:"column:fotobond_number" json:"fotobond_number"`
	KvkNumber      int32 `gorm:"column:kvk_number" json:"kvk_number"`

	Descriptions datatypes.JSON `gorm:"type:json" json:"descriptions"`

	// HasSeedData records that the hardcoded member data was applied.
	HasSeedData bool `gorm:"column:has_seed_data" json:"has_seed_data"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Organization) TableName() string { return "organizations" }

// FullNameTown is the display form used in diagnostics, e.g.
// "Fotogroep Waalre (Waalre)".
func (o *Organization) FullNameTown() string {
	return fmt.Sprintf("%s (%s)", o.FullName, o.Town)
}

// Identity is the natural key of an organization plus its display nickname.
type Identity struct {
	FullName string
	Town     string
	Nickname string
}

// FullNameTown is the display form of the natural key, e.g.
// "Fotogroep Waalre (Waalre)". Loaders also use it as their queue
// partition name.
func (i Identity) FullNameTown() string {
	return fmt.Sprintf("%s (%s)", i.FullName, i.Town)
}

// Description is one localized description entry from the organization feed.
type Description struct {
	Language string `json:"language"`
	Value    string `json:"value"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Attributes is the non-identifying attribute patch applied by
// FindCreateUpdate. Unset fields leave stored values untouched.
// Descriptions is treated the same way: an empty slice means unchanged.
type Attributes struct {
	TypeID         patch.Field[snowflake.ID]
	Nickname       patch.Field[string]
	Coordinates    patch.Field[Coordinates]
	Website        patch.Field[string]
	Wikipedia      patch.Field[string]
	MembersURL     patch.Field[string]
	FotobondNumber patch.Field[int16]
	KvkNumber      patch.Field[int32]
	HasSeedData    patch.Field[bool]
	Descriptions   []Description
}
