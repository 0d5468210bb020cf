package reports

import (
    "strings"
    "testing"
    "time"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
)

func TestPatientsCSVHeaderAndMissingFields(t *testing.T) {
    patients := []models.Patient{
        {
            PatientID: "RH000001",
            Name:      "Asha Devi",
            CreatedAt: time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC),
        },
    }

    csv := PatientsCSV(patients)
    lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

    if len(lines) != 2 {
        t.Fatalf("expected header + 1 row, got %d lines", len(lines))
    }
    if lines[0] != "Patient ID,Name,Date of Birth,Gender,Age Group,Phone,Address,Registered On" {
        t.Errorf("unexpected header: %s", lines[0])
    }
    if lines[1] != `RH000001,"Asha Devi",N/A,N/A,N/A,N/A,"N/A",2025-03-05` {
        t.Errorf("unexpected row: %s", lines[1])
    }
}

func TestPatientsCSVQuotesFreeText(t *testing.T) {
    gender := "female"
    ageGroup := "adult"
    phone := "9876543210"
    address := `House 4, "old" bazaar road`
    dob := time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)

    patients := []models.Patient{
        {
            PatientID:   "RH000002",
            Name:        "Meena Kumari",
            DateOfBirth: &dob,
            Gender:      &gender,
            AgeGroup:    &ageGroup,
            Phone:       &phone,
            Address:     &address,
            CreatedAt:   time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
        },
    }

    csv := PatientsCSV(patients)

    if !strings.Contains(csv, `"Meena Kumari"`) {
        t.Errorf("expected quoted name, got %s", csv)
    }
    // Embedded quotes must be doubled
    if !strings.Contains(csv, `"House 4, ""old"" bazaar road"`) {
        t.Errorf("expected escaped address, got %s", csv)
    }
    if !strings.Contains(csv, "1990-01-15") {
        t.Errorf("expected date of birth, got %s", csv)
    }
}

func TestVaccinationsCSV(t *testing.T) {
    scheduled := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
    vaccinations := []models.VaccinationWithDetails{
        {
            Vaccination: models.Vaccination{
                DoseNumber:    2,
                ScheduledDate: &scheduled,
                Status:        models.VaccinationScheduled,
            },
            PatientCode: "RH000001",
            PatientName: "Asha Devi",
            VaccineName: "DPT",
        },
    }

    csv := VaccinationsCSV(vaccinations)
    lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

    if lines[0] != "Patient ID,Patient Name,Vaccine,Dose,Scheduled Date,Administered Date,Status" {
        t.Errorf("unexpected header: %s", lines[0])
    }
    if lines[1] != `RH000001,"Asha Devi","DPT",2,2025-05-01,N/A,scheduled` {
        t.Errorf("unexpected row: %s", lines[1])
    }
}

func TestOverdueCSV(t *testing.T) {
    items := []models.OverdueItem{
        {
            PatientCode:   "RH000003",
            PatientName:   "Ravi",
            VaccineName:   "OPV",
            DoseNumber:    1,
            ScheduledDate: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
            DaysOverdue:   14,
        },
    }

    csv := OverdueCSV(items)
    lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

    if lines[0] != "Patient ID,Name,Phone,Vaccine,Dose,Scheduled Date,Days Overdue" {
        t.Errorf("unexpected header: %s", lines[0])
    }
    if lines[1] != `RH000003,"Ravi",N/A,"OPV",1,2025-06-01,14` {
        t.Errorf("unexpected row: %s", lines[1])
    }
}

func TestDemographicsCSVDeterministic(t *testing.T) {
    report := models.DemographicsReport{
        ByAgeGroup: map[string]int{"infant": 2, "child": 1},
        ByGender:   map[string]int{"male": 1, "female": 2},
        Total:      3,
    }

    first := DemographicsCSV(report)
    for i := 0; i < 10; i++ {
        if DemographicsCSV(report) != first {
            t.Fatal("expected deterministic CSV output")
        }
    }

    if !strings.HasSuffix(first, "total,,3\n") {
        t.Errorf("expected trailing total row, got %s", first)
    }
    // Sorted labels within a grouping
    if strings.Index(first, "age_group,child") > strings.Index(first, "age_group,infant") {
        t.Errorf("expected sorted age group rows, got %s", first)
    }
}

func TestMonthlySummaryCSV(t *testing.T) {
    summary := models.MonthlySummary{
        Year:              2025,
        Month:             6,
        NewPatients:       4,
        VaccinationsGiven: 2,
        TotalPatients:     10,
        CompletionRate:    "20.0",
    }

    csv := MonthlySummaryCSV(summary)
    lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")

    if lines[0] != "Year,Month,New Patients,Vaccinations Given,Total Patients,Completion Rate" {
        t.Errorf("unexpected header: %s", lines[0])
    }
    if lines[1] != "2025,6,4,2,10,20.0" {
        t.Errorf("unexpected row: %s", lines[1])
    }
}
