package reports

import (
    "fmt"
    "sort"
    "strconv"
    "strings"
    "time"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

const missingField = "N/A"

// quote wraps a free-text field in double quotes, doubling any
// embedded quotes.
func quote(s string) string {
    return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func optString(s *string) string {
    if s == nil || *s == "" {
        return missingField
    }
    return *s
}

func optDate(t *time.Time) string {
    if t == nil {
        return missingField
    }
    return t.Format("2006-01-02")
}

// PatientsCSV renders the patient register: fixed header row, one row
// per patient, free-text fields quoted, absent optionals as "N/A".
func PatientsCSV(patients []models.Patient) string {
    var b strings.Builder
    b.WriteString("Patient ID,Name,Date of Birth,Gender,Age Group,Phone,Address,Registered On\n")
    for _, p := range patients {
        b.WriteString(strings.Join([]string{
            p.PatientID,
            quote(p.Name),
            optDate(p.DateOfBirth),
            optString(p.Gender),
            optString(p.AgeGroup),
            optString(p.Phone),
            quote(optString(p.Address)),
            p.CreatedAt.Format("2006-01-02"),
        }, ",") + "\n")
    }
    return b.String()
}

// VaccinationsCSV renders the vaccination log.
func VaccinationsCSV(vaccinations []models.VaccinationWithDetails) string {
    var b strings.Builder
    b.WriteString("Patient ID,Patient Name,Vaccine,Dose,Scheduled Date,Administered Date,Status\n")
    for _, v := range vaccinations {
        b.WriteString(strings.Join([]string{
            v.PatientCode,
            quote(v.PatientName),
            quote(v.VaccineName),
            strconv.Itoa(v.DoseNumber),
            optDate(v.ScheduledDate),
            optDate(v.AdministeredDate),
            v.Status,
        }, ",") + "\n")
    }
    return b.String()
}

// OverdueCSV renders the overdue vaccination report.
func OverdueCSV(items []models.OverdueItem) string {
    var b strings.Builder
    b.WriteString("Patient ID,Name,Phone,Vaccine,Dose,Scheduled Date,Days Overdue\n")
    for _, item := range items {
        b.WriteString(strings.Join([]string{
            item.PatientCode,
            quote(item.PatientName),
            optString(item.Phone),
            quote(item.VaccineName),
            strconv.Itoa(item.DoseNumber),
            item.ScheduledDate.Format("2006-01-02"),
            strconv.Itoa(item.DaysOverdue),
        }, ",") + "\n")
    }
    return b.String()
}

// DemographicsCSV renders category/count rows for both groupings,
// sorted by label for deterministic output, and a trailing total row.
func DemographicsCSV(report models.DemographicsReport) string {
    var b strings.Builder
    b.WriteString("Grouping,Category,Count\n")
    writeGroup := func(grouping string, counts map[string]int) {
        labels := make([]string, 0, len(counts))
        for label := range counts {
            labels = append(labels, label)
        }
        sort.Strings(labels)
        for _, label := range labels {
            b.WriteString(fmt.Sprintf("%s,%s,%d\n", grouping, label, counts[label]))
        }
    }
    writeGroup("age_group", report.ByAgeGroup)
    writeGroup("gender", report.ByGender)
    b.WriteString(fmt.Sprintf("total,,%d\n", report.Total))
    return b.String()
}

// MonthlySummaryCSV renders the single-row monthly summary.
func MonthlySummaryCSV(summary models.MonthlySummary) string {
    var b strings.Builder
    b.WriteString("Year,Month,New Patients,Vaccinations Given,Total Patients,Completion Rate\n")
    b.WriteString(fmt.Sprintf("%d,%d,%d,%d,%d,%s\n",
        summary.Year, summary.Month, summary.NewPatients,
        summary.VaccinationsGiven, summary.TotalPatients, summary.CompletionRate))
    return b.String()
}
