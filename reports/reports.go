package reports

import (
    "strconv"
    "time"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

// Demographics groups the patient list by age group and by gender.
// Patients without a value fall under "Unknown". The sum of each
// grouping equals Total.
func Demographics(patients []models.Patient) models.DemographicsReport {
    report := models.DemographicsReport{
        ByAgeGroup: make(map[string]int),
        ByGender:   make(map[string]int),
        Total:      len(patients),
    }

    for _, p := range patients {
        ageGroup := "Unknown"
        if p.AgeGroup != nil && *p.AgeGroup != "" {
            ageGroup = *p.AgeGroup
        }
        report.ByAgeGroup[ageGroup]++

        gender := "Unknown"
        if p.Gender != nil && *p.Gender != "" {
            gender = *p.Gender
        }
        report.ByGender[gender]++
    }

    return report
}

// BuildMonthlySummary filters patients by registration month and
// vaccinations by administered month. Vaccinations without an
// administered date never match. The completion rate is
// vaccinationsGiven / totalPatients * 100 to one decimal, or "0" when
// there are no patients at all.
func BuildMonthlySummary(patients []models.Patient, vaccinations []models.VaccinationWithDetails, year int, month time.Month) models.MonthlySummary {
    summary := models.MonthlySummary{
        Year:          year,
        Month:         int(month),
        TotalPatients: len(patients),
    }

    for _, p := range patients {
        if p.CreatedAt.Year() == year && p.CreatedAt.Month() == month {
            summary.NewPatients++
        }
    }

    for _, v := range vaccinations {
        if v.AdministeredDate == nil {
            continue
        }
        if v.AdministeredDate.Year() == year && v.AdministeredDate.Month() == month {
            summary.VaccinationsGiven++
        }
    }

    if summary.TotalPatients == 0 {
        summary.CompletionRate = "0"
    } else {
        rate := float64(summary.VaccinationsGiven) / float64(summary.TotalPatients) * 100
        summary.CompletionRate = strconv.FormatFloat(rate, 'f', 1, 64)
    }

    return summary
}

// DaysOverdue is the whole-day difference between today and the
// scheduled date.
func DaysOverdue(scheduled, today time.Time) int {
    return int(today.Sub(scheduled).Hours() / 24)
}

// OverdueForPatient picks the patient's vaccinations that are still
// scheduled with a scheduled date strictly before today. A vaccination
// scheduled today is due, not overdue; completed ones are never
// overdue regardless of date.
func OverdueForPatient(patient models.Patient, vaccinations []models.VaccinationWithDetails, today time.Time) []models.OverdueItem {
    var items []models.OverdueItem
    for _, v := range vaccinations {
        if v.Status != models.VaccinationScheduled {
            continue
        }
        if v.ScheduledDate == nil || !v.ScheduledDate.Before(today) {
            continue
        }
        items = append(items, models.OverdueItem{
            PatientID:     patient.ID,
            PatientCode:   patient.PatientID,
            PatientName:   patient.Name,
            Phone:         patient.Phone,
            VaccineName:   v.VaccineName,
            DoseNumber:    v.DoseNumber,
            ScheduledDate: *v.ScheduledDate,
            DaysOverdue:   DaysOverdue(*v.ScheduledDate, today),
        })
    }
    return items
}
