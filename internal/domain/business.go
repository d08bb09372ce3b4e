package domain

import "time"

// Business represents one golf-simulator venue with its full configuration:
// weekly schedule, pricing rules, bookable durations and branding.
type Business struct {
	ID          int64
	Name        string
	Location    string
	Description string

	Schedule  WeekSchedule
	Pricing   PricingConfig
	Durations DurationConfig
	UI        UISettings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UISettings holds the venue's branding shown on its booking page
type UISettings struct {
	PrimaryColor   string // #RRGGBB
	SecondaryColor string // #RRGGBB
	AccentColor    string // #RRGGBB
	LogoText       string
}

// HasCompleteSchedule reports whether every weekday has a schedule record
func (b *Business) HasCompleteSchedule() bool {
	seen := make(map[time.Weekday]bool, DaysPerWeek)
	for _, day := range b.Schedule {
		seen[day.Weekday] = true
	}
	return len(seen) == DaysPerWeek
}
