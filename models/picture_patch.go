package models

import "time"

// PicturePatch holds the client-editable fields of a Picture.
// Server-owned fields (id, state, weather, timestamps) have no counterpart
// here, so a request body cannot overwrite them.
type PicturePatch struct {
	Name          string     `json:"name" validate:"max=255"`
	Type          string     `json:"type" validate:"max=64"`
	DateObs       *time.Time `json:"dateObs"`
	Constellation string     `json:"constellation" validate:"max=16"`
	Camera        string     `json:"camera" validate:"max=255"`
	Instrument    string     `json:"instrument" validate:"max=255"`
	Tags          []string   `json:"tags" validate:"dive,max=64"`
	CorrRed       string     `json:"corrRed" validate:"max=255"`
	Location      string     `json:"location" validate:"max=255"`
	MoonPhase     MoonPhase  `json:"moonPhase" validate:"omitempty,oneof=NEW_MOON WAXING_CRESCENT FIRST_QUARTER WAXING_GIBBOUS FULL_MOON WANING_GIBBOUS LAST_QUARTER WANING_CRESCENT"`
	Gain          *int       `json:"gain" validate:"omitempty,gte=0"`
	Exposure      *float64   `json:"exposure" validate:"omitempty,gt=0"`
	StackCnt      *int       `json:"stackCnt" validate:"omitempty,gte=0"`
}

// ApplyTo copies every patchable field onto p, replacing the previous values.
func (pp PicturePatch) ApplyTo(p *Picture) {
	p.Name = pp.Name
	p.Type = pp.Type
	p.DateObs = pp.DateObs
	p.Constellation = pp.Constellation
	p.Camera = pp.Camera
	p.Instrument = pp.Instrument
	p.Tags = append([]string(nil), pp.Tags...)
	p.CorrRed = pp.CorrRed
	p.Location = pp.Location
	p.MoonPhase = pp.MoonPhase
	p.Gain = pp.Gain
	p.Exposure = pp.Exposure
	p.StackCnt = pp.StackCnt
}
