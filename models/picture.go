package models

import (
	"time"

	"github.com/facette/natsort"
)

// PictureState is the processing state of a picture.
type PictureState string

const (
	PictureStatePending PictureState = "PENDING"
	PictureStateDone    PictureState = "DONE"
)

// Picture represents an astrophotography capture in the database using GORM.
// It corresponds to the 'pictures' table.
type Picture struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null;default:''" json:"name"`
	Type          string     `gorm:"" json:"type"`                   // e.g. galaxy, nebula, cluster
	DateObs       *time.Time `gorm:"index" json:"dateObs,omitempty"` // Nullable, start of the acquisition
	Constellation string     `gorm:"index" json:"constellation"`     // IAU abbreviation, e.g. "UMa"
	Camera        string     `gorm:"" json:"camera"`
	Instrument    string     `gorm:"" json:"instrument"`
	Location      string     `gorm:"" json:"location"`
	Gain          *int       `gorm:"" json:"gain,omitempty"`         // Nullable
	Exposure      *float64   `gorm:"" json:"exposure,omitempty"`     // Nullable, seconds per sub
	StackCnt      *int       `gorm:"" json:"stackCnt,omitempty"`     // Nullable, number of stacked subs
	CorrRed       string     `gorm:"" json:"corrRed"`                // corrector / reducer in the optical train
	Weather       Weather    `gorm:"" json:"weather"`
	MoonPhase     MoonPhase  `gorm:"" json:"moonPhase"`
	Tags          []string   `gorm:"serializer:json" json:"tags"`

	// derived on read, see WithWebTags
	WebTags []string `gorm:"-" json:"webTags"`

	State     PictureState `gorm:"not null;default:PENDING;index" json:"state"`
	CreatedAt int64        `gorm:"not null" json:"createdAt"` // Unix timestamp
	UpdatedAt int64        `gorm:"not null" json:"updatedAt"` // Unix timestamp
}

// TableName explicitly sets the table name for GORM.
func (Picture) TableName() string {
	return "pictures"
}

// Compare orders pictures by observation date, pictures without a date
// first, then by natural order of their id.
func (p Picture) Compare(other Picture) int {
	switch {
	case p.DateObs == nil && other.DateObs != nil:
		return -1
	case p.DateObs != nil && other.DateObs == nil:
		return 1
	case p.DateObs != nil && other.DateObs != nil:
		if c := p.DateObs.Compare(*other.DateObs); c != 0 {
			return c
		}
	}

	if p.ID == other.ID {
		return 0
	}
	if natsort.Compare(p.ID, other.ID) {
		return -1
	}
	return 1
}

// WithWebTags returns a copy of p whose WebTags holds the persisted tags
// followed by location, weather, moon phase and constellation codes.
// Empty values are skipped. p.Tags is not modified. Both slices of the copy
// are non-nil so they encode as JSON arrays.
func (p Picture) WithWebTags() Picture {
	webTags := make([]string, 0, len(p.Tags)+4)
	for _, t := range p.Tags {
		if t != "" {
			webTags = append(webTags, t)
		}
	}
	for _, extra := range []string{p.Location, string(p.Weather), string(p.MoonPhase), p.Constellation} {
		if extra != "" {
			webTags = append(webTags, extra)
		}
	}

	cp := p
	cp.Tags = append(make([]string, 0, len(p.Tags)), p.Tags...)
	cp.WebTags = webTags
	return cp
}
