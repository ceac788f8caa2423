// Package analytics derives chart-ready series from a player's raw log
// records. Both derivations are pure functions of the record set and are
// recomputed from scratch on every snapshot; per-player record counts are
// human-scale, so there is no incremental maintenance.
package analytics

import (
	"sort"
	"strings"

	"github.com/playbookpro/playbook/internal/models"
)

// DeriveDashboard filters the squat lifts and the throwing feel scores into
// date-ascending series. Records sharing a date keep their input (store
// insertion) order.
func DeriveDashboard(records []models.LogRecord) models.Dashboard {
	var d models.Dashboard
	for _, rec := range records {
		switch r := rec.(type) {
		case models.LiftRecord:
			if strings.Contains(strings.ToLower(r.Exercise), "squat") {
				d.SquatSeries = append(d.SquatSeries, models.WeightPoint{Date: r.Date, Weight: r.Weight})
			}
		case models.ThrowRecord:
			d.ThrowFeelSeries = append(d.ThrowFeelSeries, models.FeelPoint{Date: r.Date, Feel: r.Feel})
		}
	}
	sort.SliceStable(d.SquatSeries, func(i, j int) bool {
		return d.SquatSeries[i].Date < d.SquatSeries[j].Date
	})
	sort.SliceStable(d.ThrowFeelSeries, func(i, j int) bool {
		return d.ThrowFeelSeries[i].Date < d.ThrowFeelSeries[j].Date
	})
	return d
}

// DeriveReports builds the wellness trend series and the sleep/arm-feel
// inner join. The join keeps only dates present in both the wellness and the
// throw records; a wellness day with no throwing session is dropped, not
// null-filled. Callers wanting wellness-only trends use WellnessSeries.
func DeriveReports(records []models.LogRecord) models.Reports {
	var rep models.Reports
	var throws []models.ThrowRecord
	for _, rec := range records {
		switch r := rec.(type) {
		case models.WellnessRecord:
			rep.WellnessSeries = append(rep.WellnessSeries, r)
		case models.ThrowRecord:
			throws = append(throws, r)
		}
	}
	sort.SliceStable(rep.WellnessSeries, func(i, j int) bool {
		return rep.WellnessSeries[i].Date < rep.WellnessSeries[j].Date
	})

	feelByDate := make(map[string][]int)
	for _, t := range throws {
		feelByDate[t.Date] = append(feelByDate[t.Date], t.Feel)
	}
	for _, w := range rep.WellnessSeries {
		for _, feel := range feelByDate[w.Date] {
			rep.CombinedSleepArmSeries = append(rep.CombinedSleepArmSeries, models.SleepArmPoint{
				Date:    w.Date,
				Sleep:   w.SleepHours,
				ArmFeel: feel,
			})
		}
	}
	return rep
}

// DecodeRecords converts raw collection snapshots into typed records,
// skipping documents that do not decode. Input order (store insertion order)
// is preserved; it is the tie-break for same-date points.
func DecodeRecords(raw [][]byte) []models.LogRecord {
	var out []models.LogRecord
	for _, data := range raw {
		rec, err := models.DecodeLogRecord(data)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out
}
