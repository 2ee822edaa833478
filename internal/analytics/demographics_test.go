package analytics

import (
	"testing"

	"github.com/dineforge/restalytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeBucket(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{18, "18-25"},
		{24, "18-25"},
		{25, "26-35"},
		{34, "26-35"},
		{35, "36-45"},
		{45, "46-55"},
		{54, "46-55"},
		{55, "55+"},
		{80, "55+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ageBucket(tt.age), "age %d", tt.age)
	}
}

func TestDemographicsDedupesCustomers(t *testing.T) {
	records := []models.OrderRecord{
		rec(withCustomer("c1"), withAge(30)),
		rec(withCustomer("c1"), withAge(30), withOrder("o2")), // repeat order
		rec(withCustomer("c2"), withAge(60), withGender("male")),
	}

	result := Demographics{}.Analyze(records)
	require.False(t, result.IsError())
	assert.Equal(t, 2, result["totalCustomers"])

	ages := result["ageDistribution"].(map[string]int)
	assert.Equal(t, 1, ages["26-35"])
	assert.Equal(t, 1, ages["55+"])

	genders := result["genderDistribution"].(map[string]int)
	assert.Equal(t, 1, genders["female"])
	assert.Equal(t, 1, genders["male"])
}

func TestDemographicsUnknownAgesExcluded(t *testing.T) {
	records := []models.OrderRecord{
		rec(withCustomer("c1"), withAge(40)),
		rec(withCustomer("c2"), withUnknownAge()),
	}

	result := Demographics{}.Analyze(records)

	ages := result["ageDistribution"].(map[string]int)
	total := 0
	for _, n := range ages {
		total += n
	}
	assert.Equal(t, 1, total, "unknown ages stay out of the distribution")
	assert.Equal(t, 2, result["totalCustomers"], "but the customer still counts")
}

func TestDemographicsLoyaltySegmentation(t *testing.T) {
	records := []models.OrderRecord{
		rec(withCustomer("c1"), withLoyalty("gold"), withAge(20), withGender("female")),
		rec(withCustomer("c2"), withLoyalty("gold"), withAge(40), withGender("male")),
		rec(withCustomer("c3"), withLoyalty("bronze"), withUnknownAge()),
		rec(withCustomer("c4"), withLoyalty("")), // blank group skipped
	}
	records[0].EstimatedTotalSpent = 100
	records[1].EstimatedTotalSpent = 300

	result := Demographics{}.Analyze(records)
	seg := result["loyaltySegmentation"].(models.Result)

	gold := seg["gold"].(models.Result)
	assert.Equal(t, 2, gold["count"])
	assert.Equal(t, 30.0, gold["avgAge"])
	assert.Equal(t, 200.0, gold["avgSpent"])
	assert.Equal(t, map[string]int{"female": 1, "male": 1}, gold["genderDistribution"])

	bronze := seg["bronze"].(models.Result)
	assert.Equal(t, 0.0, bronze["avgAge"], "all-unknown ages fall back to zero")

	_, ok := seg[""]
	assert.False(t, ok)
}

func TestDemographicsNoData(t *testing.T) {
	assert.True(t, Demographics{}.Analyze(nil).IsError())
}
