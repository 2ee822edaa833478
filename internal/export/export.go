package export

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/dineforge/restalytics/internal/cloudwriter"
	"github.com/dineforge/restalytics/internal/models"
)

// csvHeader is the canonical column order for exported data sets; the CSV
// source understands the same columns on the way back in.
var csvHeader = []string{
	"order_id", "customer_id", "outlet_id", "outlet_name", "borough",
	"capacity", "order_placed", "total_price", "payment_method",
	"item_name", "item_category", "item_price", "item_quantity",
	"is_vegetarian", "spice_level", "age", "gender", "loyalty_group",
	"estimated_total_spent",
}

// Exporter writes filtered record sets to a local file or, when a cloud
// factory is configured, to an object store bucket.
type Exporter struct {
	Factory cloudwriter.CloudWriterFactory
	Bucket  string
}

// Export writes records in the given format ("csv", "json" or "parquet")
// to dest. With a cloud factory configured, dest is the object key.
func (e *Exporter) Export(ctx context.Context, records []models.OrderRecord, format, dest string) error {
	if format == "parquet" {
		return e.exportParquet(ctx, records, dest)
	}

	w, err := e.open(ctx, dest)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		err = WriteCSV(w, records)
	case "json":
		err = WriteJSON(w, records)
	default:
		err = fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func (e *Exporter) open(ctx context.Context, dest string) (io.WriteCloser, error) {
	if e.Factory != nil {
		w, err := e.Factory.NewWriter(ctx, e.Bucket, dest)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud writer: %w", err)
		}
		return writeCloser{w}, nil
	}
	file, err := os.Create(dest)
	if err != nil {
		return nil, fmt.Errorf("failed to create export file: %w", err)
	}
	return file, nil
}

// WriteCSV writes the record set with the canonical header.
func WriteCSV(w io.Writer, records []models.OrderRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(csvRow(&records[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes one JSON document per record (JSON lines).
func WriteJSON(w io.Writer, records []models.OrderRecord) error {
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return err
		}
	}
	return nil
}

func csvRow(r *models.OrderRecord) []string {
	placed := ""
	if !r.OrderPlacedAt.IsZero() {
		placed = r.OrderPlacedAt.Format(time.RFC3339)
	}
	age := ""
	if r.AgeKnown {
		age = strconv.Itoa(r.Age)
	}
	return []string{
		r.OrderID,
		r.CustomerID,
		r.OutletID,
		r.OutletName,
		r.Borough,
		strconv.Itoa(r.Capacity),
		placed,
		strconv.FormatFloat(r.TotalPrice, 'f', -1, 64),
		r.PaymentMethod,
		r.ItemName,
		r.ItemCategory,
		strconv.FormatFloat(r.ItemPrice, 'f', -1, 64),
		strconv.Itoa(r.ItemQuantity),
		strconv.FormatBool(r.IsVegetarian),
		r.SpiceLevel,
		age,
		r.Gender,
		r.LoyaltyGroup,
		strconv.FormatFloat(r.EstimatedTotalSpent, 'f', -1, 64),
	}
}

// writeCloser adapts a cloudwriter.CloudWriter to io.WriteCloser.
type writeCloser struct {
	w cloudwriter.CloudWriter
}

func (wc writeCloser) Write(p []byte) (int, error) { return wc.w.Write(p) }
func (wc writeCloser) Close() error                { return wc.w.Close() }
