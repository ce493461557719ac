package models

// Constellation is one entry of the deep-sky catalog: an IAU abbreviation
// and its display label. It corresponds to the 'constellations' table.
type Constellation struct {
	Abbreviation string `json:"abbreviation"`
	Label        string `json:"label"`
}

// WebTag is a label/code pair offered by the UI tag picker.
// Two tags are the same when both fields are equal.
type WebTag struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// NovaStatus summarizes the state of a batch of pictures.
type NovaStatus struct {
	State string `json:"state"`
}
