// Package rba fetches the Reserve Bank of Australia cash rate target, used
// as the risk-free leg of risk-adjusted return figures.
package rba

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hmckay/folio/date"
)

// dataURL is the RBA interest rates statistical table (F1.1) as CSV.
const dataURL = "https://www.rba.gov.au/statistics/tables/csv/f1.1-data.csv"

// seriesID is the cash rate target column inside the table.
const seriesID = "FIRMMCRTD"

// Rate is one published cash rate observation.
type Rate struct {
	Day   date.Date
	Value float64 // annual, as a fraction
}

// Fetch downloads the cash rate series and returns the latest observation.
func Fetch() (Rate, error) {
	log.Println("Downloading cash rate from RBA:", dataURL)

	resp, err := http.Get(dataURL)
	if err != nil {
		return Rate{}, fmt.Errorf("failed to download from RBA: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Rate{}, fmt.Errorf("failed to download from RBA: received status %s", resp.Status)
	}

	series, err := parseSeries(resp.Body)
	if err != nil {
		return Rate{}, err
	}
	if len(series) == 0 {
		return Rate{}, fmt.Errorf("RBA table %s has no observations for series %s", dataURL, seriesID)
	}
	return series[len(series)-1], nil
}

// Latest returns the current cash rate, or fallback when the service cannot
// be reached. The error reports why the fallback was used; callers that only
// need a number can ignore it.
func Latest(fallback float64) (float64, error) {
	rate, err := Fetch()
	if err != nil {
		return fallback, fmt.Errorf("using fallback risk-free rate of %.2f%%: %w", fallback*100, err)
	}
	return rate.Value, nil
}

// parseSeries reads the RBA statistical table CSV format: a handful of
// metadata rows, a "Series ID" row naming each column, then dated
// observations.
func parseSeries(r io.Reader) ([]Rate, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // metadata rows have varying widths

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	// Locate the observation column via the Series ID row.
	col := -1
	start := -1
	for i, record := range records {
		if len(record) == 0 || !strings.EqualFold(strings.TrimSpace(record[0]), "Series ID") {
			continue
		}
		for j, id := range record {
			if strings.TrimSpace(id) == seriesID {
				col = j
				break
			}
		}
		start = i + 1
		break
	}
	if col < 0 {
		return nil, fmt.Errorf("could not find series %s in RBA table", seriesID)
	}

	var series []Rate
	for _, record := range records[start:] {
		if len(record) <= col || record[col] == "" {
			continue
		}
		day, err := parseRBADate(record[0])
		if err != nil {
			continue // trailing footnote rows
		}
		val, err := strconv.ParseFloat(record[col], 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", record[col], record[0], err)
		}
		series = append(series, Rate{Day: day, Value: val / 100})
	}
	return series, nil
}

// parseRBADate parses the table's "02-Jan-2006" observation dates.
func parseRBADate(s string) (date.Date, error) {
	t, err := time.Parse("02-Jan-2006", strings.TrimSpace(s))
	if err != nil {
		return date.Date{}, fmt.Errorf("unrecognized RBA date %q: %w", s, err)
	}
	return date.FromTime(t), nil
}
