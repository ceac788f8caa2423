package models

// Chart-ready points derived by the analytics engine. Each series is sorted
// ascending by date; records sharing a date keep store insertion order.

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

type FeelPoint struct {
	Date string `json:"date"`
	Feel int    `json:"feel"`
}

// SleepArmPoint is one row of the sleep/arm-feel inner join: a date on which
// the player both filed a wellness check-in and logged a throwing session.
type SleepArmPoint struct {
	Date    string  `json:"date"`
	Sleep   float64 `json:"sleep"`
	ArmFeel int     `json:"armFeel"`
}

// Dashboard is the derived state behind the dashboard view.
type Dashboard struct {
	SquatSeries     []WeightPoint
	ThrowFeelSeries []FeelPoint
}

// Reports is the derived state behind the reports view.
type Reports struct {
	WellnessSeries         []WellnessRecord
	CombinedSleepArmSeries []SleepArmPoint
}
