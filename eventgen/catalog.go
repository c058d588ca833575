package eventgen

import (
	"math/rand"
)

// Event types emitted by the generator. The set is closed; downstream
// transforms dispatch on these exact strings.
const (
	EventDocumentEdited        = "document_edited"
	EventDocumentCreated       = "document_created"
	EventUserLogin             = "user_login"
	EventFeatureUsed           = "feature_used"
	EventDocumentShared        = "document_shared"
	EventUserLogout            = "user_logout"
	EventSubscriptionStarted   = "subscription_started"
	EventSubscriptionUpgraded  = "subscription_upgraded"
	EventSubscriptionCancelled = "subscription_cancelled"
	EventDocumentDeleted       = "document_deleted"
)

// Platforms a client event can originate from.
const (
	PlatformWeb     = "web"
	PlatformMobile  = "mobile"
	PlatformDesktop = "desktop"
	PlatformAPI     = "api"
)

// Subscription plans.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

type weightedChoice struct {
	value  string
	weight int
}

// eventTypeWeights defines the sampling distribution over event types.
// Document editing dominates, subscription lifecycle events are rare tail
// events. The slice order is part of the reproducibility contract for a
// given seed and must not be reordered.
var eventTypeWeights = []weightedChoice{
	{EventDocumentEdited, 35},
	{EventDocumentCreated, 10},
	{EventUserLogin, 15},
	{EventFeatureUsed, 20},
	{EventDocumentShared, 8},
	{EventUserLogout, 5},
	{EventSubscriptionStarted, 2},
	{EventSubscriptionUpgraded, 3},
	{EventSubscriptionCancelled, 1},
	{EventDocumentDeleted, 1},
}

var platformWeights = []weightedChoice{
	{PlatformWeb, 60},
	{PlatformMobile, 25},
	{PlatformDesktop, 10},
	{PlatformAPI, 5},
}

var planWeights = []weightedChoice{
	{PlanFree, 70},
	{PlanPro, 25},
	{PlanEnterprise, 5},
}

// hourOfDayWeights shapes event timestamps into a bimodal workday curve:
// near-zero activity at night, a morning peak at 9-11h, a second peak at
// 14-16h and a monotonic decline into the evening. The bucket values are a
// design parameter; changing them changes the event sequence for a seed.
var hourOfDayWeights = [24]int{
	1, 1, 1, 1, 1, 2, // 0-5h: night
	3, 5, 8, 10, 10, 9, // 6-11h: ramp to morning peak
	7, 8, 10, 10, 9, 8, // 12-17h: afternoon peak
	6, 5, 4, 3, 2, 1, // 18-23h: evening decline
}

var activityLevels = []string{"high", "medium", "low"}

var paidPlans = []string{PlanPro, PlanEnterprise}

var billingCycles = []string{"monthly", "annual"}

var cancellationReasons = []string{"too_expensive", "not_using", "competitor", "other"}

// Feature describes one entry of the product feature catalog.
// Category and Premium are informational attributes carried for downstream
// dimension tables; they do not bias sampling.
type Feature struct {
	FeatureID string
	Name      string
	Category  string
	Premium   bool
}

var featureCatalog = []Feature{
	{FeatureID: "real_time_collab", Name: "Real-time Collaboration", Category: "collaboration", Premium: true},
	{FeatureID: "comments", Name: "Comments", Category: "collaboration", Premium: false},
	{FeatureID: "version_history", Name: "Version History", Category: "editing", Premium: true},
	{FeatureID: "export_pdf", Name: "Export to PDF", Category: "editing", Premium: false},
	{FeatureID: "templates", Name: "Templates", Category: "editing", Premium: false},
	{FeatureID: "cloud_storage", Name: "Cloud Storage", Category: "storage", Premium: false},
	{FeatureID: "advanced_search", Name: "Advanced Search", Category: "analytics", Premium: true},
	{FeatureID: "team_analytics", Name: "Team Analytics", Category: "analytics", Premium: true},
}

// pickWeighted draws one value from a weighted categorical distribution,
// normalizing over the sum of weights.
func pickWeighted(rng *rand.Rand, choices []weightedChoice) string {
	total := 0
	for _, choice := range choices {
		total += choice.weight
	}

	n := rng.Intn(total)
	for _, choice := range choices {
		if n < choice.weight {
			return choice.value
		}
		n -= choice.weight
	}

	return choices[len(choices)-1].value
}

// pickHour draws an hour bucket from the 24-bucket time-of-day distribution.
func pickHour(rng *rand.Rand) int {
	total := 0
	for _, weight := range hourOfDayWeights {
		total += weight
	}

	n := rng.Intn(total)
	for hour, weight := range hourOfDayWeights {
		if n < weight {
			return hour
		}
		n -= weight
	}

	return len(hourOfDayWeights) - 1
}
