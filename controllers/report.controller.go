package controllers

import (
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"

    "github.com/PriyanshiVerma98/Rural-Health-Tracker/models"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/reports"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/security"
    "github.com/PriyanshiVerma98/Rural-Health-Tracker/store"
)

// Report Controllers
//
// Every report honors a format selector: csv (default) downloads an
// attachment, json returns the structured records.

// Full-list fetch cap used by report aggregation.
const reportFetchLimit = 1000

func sendCSV(c *gin.Context, reportName, body string) {
    filename := fmt.Sprintf("%s_report_%s.csv", reportName, time.Now().UTC().Format("20060102"))
    c.Header("Content-Type", "text/csv")
    c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
    c.String(http.StatusOK, body)
}

func GetDashboardStats(c *gin.Context) {
    total, err := Store.CountPatients()
    if err != nil {
        security.SendDatabaseError(c, "Failed to count patients")
        return
    }

    stats, err := Store.GetVaccinationStats()
    if err != nil {
        security.SendDatabaseError(c, "Failed to compute vaccination stats")
        return
    }

    c.JSON(http.StatusOK, models.DashboardStats{
        TotalPatients: total,
        Vaccinations:  stats,
    })
}

func GetDemographicsReport(c *gin.Context) {
    patients, err := Store.ListPatients(reportFetchLimit, 0)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patients")
        return
    }

    report := reports.Demographics(patients)

    if c.DefaultQuery("format", "csv") == "json" {
        c.JSON(http.StatusOK, report)
        return
    }
    sendCSV(c, "demographics", reports.DemographicsCSV(report))
}

func GetMonthlyReport(c *gin.Context) {
    now := time.Now()
    year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
    if err != nil {
        security.SendValidationError(c, "Invalid year", "Year must be a number")
        return
    }
    monthNum, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
    if err != nil || monthNum < 1 || monthNum > 12 {
        security.SendValidationError(c, "Invalid month", "Month must be between 1 and 12")
        return
    }

    patients, err := Store.ListPatients(reportFetchLimit, 0)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patients")
        return
    }
    vaccinations, err := Store.ListVaccinations()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch vaccinations")
        return
    }

    summary := reports.BuildMonthlySummary(patients, vaccinations, year, time.Month(monthNum))

    if c.DefaultQuery("format", "csv") == "json" {
        c.JSON(http.StatusOK, summary)
        return
    }
    sendCSV(c, "monthly_summary", reports.MonthlySummaryCSV(summary))
}

func GetOverdueReport(c *gin.Context) {
    patients, err := Store.ListPatients(reportFetchLimit, 0)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patients")
        return
    }

    today := store.TodayUTC()
    var items []models.OverdueItem
    for _, patient := range patients {
        vaccinations, err := Store.GetVaccinationsByPatient(patient.ID)
        if err != nil {
            security.SendDatabaseError(c, "Failed to fetch vaccinations")
            return
        }
        items = append(items, reports.OverdueForPatient(patient, vaccinations, today)...)
    }

    if c.DefaultQuery("format", "csv") == "json" {
        c.JSON(http.StatusOK, gin.H{"overdue": items, "count": len(items)})
        return
    }
    sendCSV(c, "overdue_vaccinations", reports.OverdueCSV(items))
}

func ExportPatients(c *gin.Context) {
    patients, err := Store.ListPatients(reportFetchLimit, 0)
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch patients")
        return
    }

    if c.DefaultQuery("format", "csv") == "json" {
        c.JSON(http.StatusOK, gin.H{"patients": patients, "count": len(patients)})
        return
    }
    sendCSV(c, "patients", reports.PatientsCSV(patients))
}

func ExportVaccinations(c *gin.Context) {
    vaccinations, err := Store.ListVaccinations()
    if err != nil {
        security.SendDatabaseError(c, "Failed to fetch vaccinations")
        return
    }

    if c.DefaultQuery("format", "csv") == "json" {
        c.JSON(http.StatusOK, gin.H{"vaccinations": vaccinations, "count": len(vaccinations)})
        return
    }
    sendCSV(c, "vaccinations", reports.VaccinationsCSV(vaccinations))
}
