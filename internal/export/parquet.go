package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dineforge/restalytics/internal/cloudwriter"
	"github.com/dineforge/restalytics/internal/models"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
)

// parquetRecord mirrors OrderRecord with an explicit Parquet schema.
// Timestamps are carried as ISO-8601 strings so nothing non-JSON-friendly
// round-trips through the export.
type parquetRecord struct {
	OrderID             string  `parquet:"name=order_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerID          string  `parquet:"name=customer_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OutletID            string  `parquet:"name=outlet_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	OutletName          string  `parquet:"name=outlet_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Borough             string  `parquet:"name=borough, type=BYTE_ARRAY, convertedtype=UTF8"`
	Capacity            int32   `parquet:"name=capacity, type=INT32"`
	OrderPlaced         string  `parquet:"name=order_placed, type=BYTE_ARRAY, convertedtype=UTF8"`
	TotalPrice          float64 `parquet:"name=total_price, type=DOUBLE"`
	PaymentMethod       string  `parquet:"name=payment_method, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemName            string  `parquet:"name=item_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemCategory        string  `parquet:"name=item_category, type=BYTE_ARRAY, convertedtype=UTF8"`
	ItemPrice           float64 `parquet:"name=item_price, type=DOUBLE"`
	ItemQuantity        int32   `parquet:"name=item_quantity, type=INT32"`
	IsVegetarian        bool    `parquet:"name=is_vegetarian, type=BOOLEAN"`
	SpiceLevel          string  `parquet:"name=spice_level, type=BYTE_ARRAY, convertedtype=UTF8"`
	Age                 int32   `parquet:"name=age, type=INT32"`
	Gender              string  `parquet:"name=gender, type=BYTE_ARRAY, convertedtype=UTF8"`
	LoyaltyGroup        string  `parquet:"name=loyalty_group, type=BYTE_ARRAY, convertedtype=UTF8"`
	EstimatedTotalSpent float64 `parquet:"name=estimated_total_spent, type=DOUBLE"`
}

func (e *Exporter) exportParquet(ctx context.Context, records []models.OrderRecord, dest string) error {
	var fw source.ParquetFile
	var err error
	if e.Factory != nil {
		cw, err := e.Factory.NewWriter(ctx, e.Bucket, dest)
		if err != nil {
			return fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = newCloudParquetFile(cw)
	} else {
		fw, err = local.NewLocalFileWriter(dest)
		if err != nil {
			return fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, new(parquetRecord), 4)
	if err != nil {
		fw.Close()
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	for i := range records {
		if err := pw.Write(toParquetRecord(&records[i])); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fw.Close()
}

func toParquetRecord(r *models.OrderRecord) parquetRecord {
	placed := ""
	if !r.OrderPlacedAt.IsZero() {
		placed = r.OrderPlacedAt.Format(time.RFC3339)
	}
	return parquetRecord{
		OrderID:             r.OrderID,
		CustomerID:          r.CustomerID,
		OutletID:            r.OutletID,
		OutletName:          r.OutletName,
		Borough:             r.Borough,
		Capacity:            int32(r.Capacity),
		OrderPlaced:         placed,
		TotalPrice:          r.TotalPrice,
		PaymentMethod:       r.PaymentMethod,
		ItemName:            r.ItemName,
		ItemCategory:        r.ItemCategory,
		ItemPrice:           r.ItemPrice,
		ItemQuantity:        int32(r.ItemQuantity),
		IsVegetarian:        r.IsVegetarian,
		SpiceLevel:          r.SpiceLevel,
		Age:                 int32(r.Age),
		Gender:              r.Gender,
		LoyaltyGroup:        r.LoyaltyGroup,
		EstimatedTotalSpent: r.EstimatedTotalSpent,
	}
}

// cloudParquetFile adapts a CloudWriter to the parquet source interface.
// Only sequential writes are supported; the object is created implicitly
// when writing starts.
type cloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func newCloudParquetFile(cw cloudwriter.CloudWriter) *cloudParquetFile {
	return &cloudParquetFile{cloudWriter: cw}
}

func (c *cloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *cloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *cloudParquetFile) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *cloudParquetFile) Write(p []byte) (n int, err error) {
	return c.cloudWriter.Write(p)
}

func (c *cloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
