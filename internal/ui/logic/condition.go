package logic

import "strings"

// ConditionClass groups condition descriptions for styling
type ConditionClass string

const (
	ConditionSunny   ConditionClass = "sunny"
	ConditionCloudy  ConditionClass = "cloudy"
	ConditionRainy   ConditionClass = "rainy"
	ConditionSnowy   ConditionClass = "snowy"
	ConditionStormy  ConditionClass = "stormy"
	ConditionDefault ConditionClass = "default"
)

// ClassifyCondition derives the class from free-text condition, first match wins
func ClassifyCondition(text string) ConditionClass {
	t := strings.ToLower(text)

	switch {
	case strings.Contains(t, "sunny"), strings.Contains(t, "clear"):
		return ConditionSunny
	case strings.Contains(t, "cloud"):
		return ConditionCloudy
	case strings.Contains(t, "rain"), strings.Contains(t, "drizzle"):
		return ConditionRainy
	case strings.Contains(t, "snow"):
		return ConditionSnowy
	case strings.Contains(t, "thunder"), strings.Contains(t, "storm"):
		return ConditionStormy
	default:
		return ConditionDefault
	}
}
