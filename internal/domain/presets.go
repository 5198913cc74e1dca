package domain

// Preset is a named example profile for demos and CLI defaults.
type Preset struct {
	Name    string  `json:"name"`
	Profile Profile `json:"profile"`
}

// Presets returns the built-in example profiles.
func Presets() []Preset {
	return []Preset{
		{
			Name: "typical",
			Profile: Profile{
				Age:              55,
				Sex:              SexFemale,
				Race:             RaceWhiteOrOther,
				TotalCholesterol: 213,
				HDL:              50,
				SystolicBP:       120,
				OnBPMeds:         false,
				Smoker:           false,
				Diabetic:         false,
			},
		},
		{
			Name: "high-risk",
			Profile: Profile{
				Age:              60,
				Sex:              SexMale,
				Race:             RaceWhiteOrOther,
				TotalCholesterol: 260,
				HDL:              38,
				SystolicBP:       155,
				OnBPMeds:         false,
				Smoker:           true,
				Diabetic:         false,
			},
		},
	}
}

// PresetByName looks up a built-in preset. The second return is false when no
// preset has that name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
