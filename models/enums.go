package models

// Weather is the sky condition during an acquisition.
// The zero value means unknown.
type Weather string

const (
	WeatherClear        Weather = "CLEAR"
	WeatherPartlyCloudy Weather = "PARTLY_CLOUDY"
	WeatherCloudy       Weather = "CLOUDY"
	WeatherFoggy        Weather = "FOGGY"
	WeatherWindy        Weather = "WINDY"
)

var weatherLabels = map[Weather]string{
	WeatherClear:        "Dégagé",
	WeatherPartlyCloudy: "Partiellement nuageux",
	WeatherCloudy:       "Nuageux",
	WeatherFoggy:        "Brumeux",
	WeatherWindy:        "Venteux",
}

// Label returns the display label, or the code itself when it is unknown.
func (w Weather) Label() string {
	if l, ok := weatherLabels[w]; ok {
		return l
	}
	return string(w)
}

// MoonPhase is the phase of the moon during an acquisition.
// The zero value means unknown.
type MoonPhase string

const (
	MoonPhaseNew            MoonPhase = "NEW_MOON"
	MoonPhaseWaxingCrescent MoonPhase = "WAXING_CRESCENT"
	MoonPhaseFirstQuarter   MoonPhase = "FIRST_QUARTER"
	MoonPhaseWaxingGibbous  MoonPhase = "WAXING_GIBBOUS"
	MoonPhaseFull           MoonPhase = "FULL_MOON"
	MoonPhaseWaningGibbous  MoonPhase = "WANING_GIBBOUS"
	MoonPhaseLastQuarter    MoonPhase = "LAST_QUARTER"
	MoonPhaseWaningCrescent MoonPhase = "WANING_CRESCENT"
)

var moonPhaseLabels = map[MoonPhase]string{
	MoonPhaseNew:            "Nouvelle lune",
	MoonPhaseWaxingCrescent: "Premier croissant",
	MoonPhaseFirstQuarter:   "Premier quartier",
	MoonPhaseWaxingGibbous:  "Gibbeuse croissante",
	MoonPhaseFull:           "Pleine lune",
	MoonPhaseWaningGibbous:  "Gibbeuse décroissante",
	MoonPhaseLastQuarter:    "Dernier quartier",
	MoonPhaseWaningCrescent: "Dernier croissant",
}

// Label returns the display label, or the code itself when it is unknown.
func (m MoonPhase) Label() string {
	if l, ok := moonPhaseLabels[m]; ok {
		return l
	}
	return string(m)
}
