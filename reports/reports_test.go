package reports

import (
    "testing"
    "time"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

func strPtr(s string) *string { return &s }

func datePtr(year int, month time.Month, day int) *time.Time {
    t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
    return &t
}

func TestDemographicsGroupCountsSumToTotal(t *testing.T) {
    patients := []models.Patient{
        {Name: "A", AgeGroup: strPtr("infant"), Gender: strPtr("female")},
        {Name: "B", AgeGroup: strPtr("infant"), Gender: strPtr("male")},
        {Name: "C", AgeGroup: strPtr("elderly"), Gender: strPtr("female")},
        {Name: "D"},
    }

    report := Demographics(patients)

    if report.Total != 4 {
        t.Fatalf("expected total 4, got %d", report.Total)
    }

    sumAge := 0
    for _, count := range report.ByAgeGroup {
        sumAge += count
    }
    if sumAge != report.Total {
        t.Errorf("age group counts sum to %d, want %d", sumAge, report.Total)
    }

    sumGender := 0
    for _, count := range report.ByGender {
        sumGender += count
    }
    if sumGender != report.Total {
        t.Errorf("gender counts sum to %d, want %d", sumGender, report.Total)
    }
}

func TestDemographicsUnknownFallback(t *testing.T) {
    empty := ""
    patients := []models.Patient{
        {Name: "A"},
        {Name: "B", AgeGroup: &empty, Gender: &empty},
        {Name: "C", AgeGroup: strPtr("child"), Gender: strPtr("male")},
    }

    report := Demographics(patients)

    if report.ByAgeGroup["Unknown"] != 2 {
        t.Errorf("expected 2 Unknown age group, got %d", report.ByAgeGroup["Unknown"])
    }
    if report.ByGender["Unknown"] != 2 {
        t.Errorf("expected 2 Unknown gender, got %d", report.ByGender["Unknown"])
    }
    if report.ByAgeGroup["child"] != 1 {
        t.Errorf("expected 1 child, got %d", report.ByAgeGroup["child"])
    }
}

func TestMonthlySummaryZeroPatients(t *testing.T) {
    summary := BuildMonthlySummary(nil, nil, 2025, time.March)

    if summary.CompletionRate != "0" {
        t.Errorf("expected completion rate %q, got %q", "0", summary.CompletionRate)
    }
    if summary.NewPatients != 0 || summary.VaccinationsGiven != 0 || summary.TotalPatients != 0 {
        t.Errorf("expected all-zero summary, got %+v", summary)
    }
}

func TestMonthlySummaryRate(t *testing.T) {
    patients := []models.Patient{
        {Name: "A", CreatedAt: time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)},
        {Name: "B", CreatedAt: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)},
        {Name: "C", CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
    }
    vaccinations := []models.VaccinationWithDetails{
        {Vaccination: models.Vaccination{AdministeredDate: datePtr(2025, time.March, 10), Status: models.VaccinationCompleted}},
        {Vaccination: models.Vaccination{AdministeredDate: datePtr(2025, time.January, 2), Status: models.VaccinationCompleted}},
        {Vaccination: models.Vaccination{Status: models.VaccinationScheduled}}, // no administered date
    }

    summary := BuildMonthlySummary(patients, vaccinations, 2025, time.March)

    if summary.NewPatients != 1 {
        t.Errorf("expected 1 new patient in March 2025, got %d", summary.NewPatients)
    }
    if summary.VaccinationsGiven != 1 {
        t.Errorf("expected 1 vaccination given in March 2025, got %d", summary.VaccinationsGiven)
    }
    if summary.TotalPatients != 3 {
        t.Errorf("expected 3 total patients, got %d", summary.TotalPatients)
    }
    // 1/3*100 to one decimal
    if summary.CompletionRate != "33.3" {
        t.Errorf("expected completion rate %q, got %q", "33.3", summary.CompletionRate)
    }
}

func TestOverdueExcludesCompletedAndToday(t *testing.T) {
    today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
    patient := models.Patient{ID: "p1", PatientID: "RH000001", Name: "Asha"}

    vaccinations := []models.VaccinationWithDetails{
        // completed long ago: never overdue
        {Vaccination: models.Vaccination{Status: models.VaccinationCompleted, ScheduledDate: datePtr(2025, time.January, 1)}, VaccineName: "BCG"},
        // scheduled today: due, not overdue
        {Vaccination: models.Vaccination{Status: models.VaccinationScheduled, ScheduledDate: datePtr(2025, time.June, 15)}, VaccineName: "OPV"},
        // scheduled yesterday: overdue by one day
        {Vaccination: models.Vaccination{Status: models.VaccinationScheduled, ScheduledDate: datePtr(2025, time.June, 14), DoseNumber: 2}, VaccineName: "DPT"},
        // no scheduled date: excluded
        {Vaccination: models.Vaccination{Status: models.VaccinationScheduled}, VaccineName: "Hep B"},
    }

    items := OverdueForPatient(patient, vaccinations, today)

    if len(items) != 1 {
        t.Fatalf("expected 1 overdue item, got %d", len(items))
    }
    if items[0].VaccineName != "DPT" {
        t.Errorf("expected DPT overdue, got %s", items[0].VaccineName)
    }
    if items[0].DaysOverdue != 1 {
        t.Errorf("expected 1 day overdue, got %d", items[0].DaysOverdue)
    }
    if items[0].PatientCode != "RH000001" {
        t.Errorf("expected patient code RH000001, got %s", items[0].PatientCode)
    }
}

func TestOverdueNoItemsForCleanPatient(t *testing.T) {
    today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
    patient := models.Patient{ID: "p1", Name: "Ravi"}

    vaccinations := []models.VaccinationWithDetails{
        {Vaccination: models.Vaccination{Status: models.VaccinationCompleted, ScheduledDate: datePtr(2025, time.May, 1)}},
    }

    if items := OverdueForPatient(patient, vaccinations, today); len(items) != 0 {
        t.Fatalf("expected no overdue items, got %d", len(items))
    }
}

func TestDaysOverdue(t *testing.T) {
    today := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

    if d := DaysOverdue(time.Date(2025, time.June, 14, 0, 0, 0, 0, time.UTC), today); d != 1 {
        t.Errorf("expected 1, got %d", d)
    }
    if d := DaysOverdue(time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC), today); d != 10 {
        t.Errorf("expected 10, got %d", d)
    }
}
