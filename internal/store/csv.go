package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/schollz/progressbar/v3"
)

// ErrMissingColumn marks a data file whose header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

var requiredColumns = []string{
	"order_id", "customer_id", "outlet_id", "order_placed", "total_price",
}

// timestampLayouts are tried in order when parsing order_placed values.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// CSVSource reads the order data set from a CSV file. Rows with an
// unparsable timestamp are kept with the time fields invalidated rather
// than dropped.
type CSVSource struct {
	Path string

	// ShowProgress renders a progress bar on stderr during the read.
	ShowProgress bool
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Fetch(ctx context.Context) ([]models.OrderRecord, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, s.Path)
		}
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", ErrDataUnavailable, s.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	var bar *progressbar.ProgressBar
	if s.ShowProgress {
		bar = progressbar.Default(-1, "loading records")
	}

	var records []models.OrderRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}
		records = append(records, parseRow(row, cols))
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return records, nil
}

func parseRow(row []string, cols map[string]int) models.OrderRecord {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	r := models.OrderRecord{
		OrderID:             field("order_id"),
		CustomerID:          field("customer_id"),
		OutletID:            field("outlet_id"),
		OutletName:          field("outlet_name"),
		Borough:             field("borough"),
		Capacity:            parseInt(field("capacity")),
		TotalPrice:          parseFloat(field("total_price")),
		PaymentMethod:       field("payment_method"),
		ItemName:            field("item_name"),
		ItemCategory:        field("item_category"),
		ItemPrice:           parseFloat(field("item_price")),
		ItemQuantity:        parseInt(field("item_quantity")),
		IsVegetarian:        parseBool(field("is_vegetarian")),
		SpiceLevel:          field("spice_level"),
		Gender:              field("gender"),
		LoyaltyGroup:        field("loyalty_group"),
		EstimatedTotalSpent: parseFloat(field("estimated_total_spent")),
	}

	if age, err := strconv.Atoi(field("age")); err == nil {
		r.Age = age
		r.AgeKnown = true
	}

	// An unparsable timestamp leaves OrderPlacedAt zero; the record stays
	// in the set so revenue and row totals still count it.
	r.OrderPlacedAt = parseTimestamp(field("order_placed"))
	r.DeriveTime()

	return r
}

func parseTimestamp(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func parseInt(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(strings.ToLower(v))
	return b
}
