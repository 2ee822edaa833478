package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "orders.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleCSV = `order_id,customer_id,outlet_id,outlet_name,borough,capacity,order_placed,total_price,payment_method,item_name,item_category,item_price,item_quantity,is_vegetarian,spice_level,age,gender,loyalty_group,estimated_total_spent
o1,c1,a,Alpha,Camden,40,2025-01-15T12:30:00Z,25.5,card,Margherita Pizza,mains,11.5,1,true,mild,30,female,gold,320
o1,c1,a,Alpha,Camden,40,2025-01-15T12:30:00Z,25.5,card,Garlic Bread,starters,4.25,2,true,mild,30,female,gold,320
o2,c2,b,Beta,Hackney,60,not-a-date,18,cash,Pad Thai,mains,11,1,false,medium,,male,bronze,95
`

func TestCSVSourceParsesRecords(t *testing.T) {
	src := NewCSVSource(writeDataset(t, sampleCSV))

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "o1", first.OrderID)
	assert.Equal(t, "Alpha", first.OutletName)
	assert.Equal(t, 25.5, first.TotalPrice)
	assert.Equal(t, 40, first.Capacity)
	assert.True(t, first.IsVegetarian)
	assert.True(t, first.AgeKnown)
	assert.Equal(t, 30, first.Age)
	assert.True(t, first.TimeValid)
	assert.Equal(t, 12, first.Hour)
	assert.Equal(t, "2025-01-15", first.Date)
	assert.Equal(t, "Wednesday", first.DayOfWeek)
}

func TestCSVSourceKeepsUnparsableTimestamps(t *testing.T) {
	src := NewCSVSource(writeDataset(t, sampleCSV))

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)

	bad := records[2]
	assert.False(t, bad.TimeValid, "bad timestamp invalidates the time dimension")
	assert.Equal(t, 18.0, bad.TotalPrice, "but the record itself survives")
	assert.False(t, bad.AgeKnown, "blank age stays unknown")
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestCSVSourceEmptyFile(t *testing.T) {
	src := NewCSVSource(writeDataset(t, ""))

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrDataUnavailable)
}

func TestCSVSourceMissingRequiredColumn(t *testing.T) {
	src := NewCSVSource(writeDataset(t, "order_id,customer_id\no1,c1\n"))

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestCSVSourceHeaderCaseInsensitive(t *testing.T) {
	csv := "Order_ID,Customer_ID,Outlet_ID,Order_Placed,Total_Price\no1,c1,a,2025-01-01,9.5\n"
	src := NewCSVSource(writeDataset(t, csv))

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 9.5, records[0].TotalPrice)
	assert.True(t, records[0].TimeValid, "date-only layout accepted")
}

func TestCSVSourceCancelledContext(t *testing.T) {
	src := NewCSVSource(writeDataset(t, sampleCSV))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
