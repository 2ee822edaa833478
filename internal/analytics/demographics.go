package analytics

import "github.com/dineforge/restalytics/internal/models"

var ageBucketLabels = []string{"18-25", "26-35", "36-45", "46-55", "55+"}

// Demographics profiles the customer base: age buckets, gender and loyalty
// distributions, and per-loyalty-group segmentation. It operates on one
// record per distinct customer so repeat orders cannot inflate counts.
type Demographics struct{}

func (Demographics) Type() string { return TypeDemographics }

func (Demographics) Analyze(records []models.OrderRecord) models.Result {
	if len(records) == 0 {
		return noDataResult()
	}

	customers := dedupeByCustomer(records)

	ages := NewCounter[string]()
	genders := NewCounter[string]()
	loyalty := NewCounter[string]()
	for i := range customers {
		c := &customers[i]
		if c.AgeKnown {
			ages.Add(ageBucket(c.Age), 1)
		}
		genders.Add(c.Gender, 1)
		loyalty.Add(c.LoyaltyGroup, 1)
	}

	return models.Result{
		"ageDistribution":     counterToStrMap(ages),
		"genderDistribution":  counterToStrMap(genders),
		"loyaltyDistribution": counterToStrMap(loyalty),
		"loyaltySegmentation": loyaltySegmentation(customers, loyalty.Keys()),
		"totalCustomers":      len(customers),
	}
}

// ageBucket places an age in its fixed bin. Bins are half-open on the low
// side: [0,25) [25,35) [35,45) [45,55) [55,∞).
func ageBucket(age int) string {
	switch {
	case age < 25:
		return ageBucketLabels[0]
	case age < 35:
		return ageBucketLabels[1]
	case age < 45:
		return ageBucketLabels[2]
	case age < 55:
		return ageBucketLabels[3]
	default:
		return ageBucketLabels[4]
	}
}

// loyaltySegmentation reports count, mean age (unknown ages excluded),
// mean historical spend and the gender split per loyalty group.
func loyaltySegmentation(customers []models.OrderRecord, groups []string) models.Result {
	segmentation := models.Result{}
	for _, group := range groups {
		if group == "" {
			continue
		}

		var (
			count     int
			ageSum    float64
			agedCount int
			spentSum  float64
		)
		genders := NewCounter[string]()
		for i := range customers {
			c := &customers[i]
			if c.LoyaltyGroup != group {
				continue
			}
			count++
			spentSum += c.EstimatedTotalSpent
			genders.Add(c.Gender, 1)
			if c.AgeKnown {
				ageSum += float64(c.Age)
				agedCount++
			}
		}

		segmentation[group] = models.Result{
			"count":              count,
			"avgAge":             Ratio(ageSum, float64(agedCount)),
			"avgSpent":           Ratio(spentSum, float64(count)),
			"genderDistribution": counterToStrMap(genders),
		}
	}
	return segmentation
}

// dedupeByCustomer keeps the first record seen per customer id.
func dedupeByCustomer(records []models.OrderRecord) []models.OrderRecord {
	seen := make(map[string]bool)
	var out []models.OrderRecord
	for i := range records {
		id := records[i].CustomerID
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, records[i])
	}
	return out
}
