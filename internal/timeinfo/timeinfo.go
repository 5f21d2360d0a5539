// Package timeinfo implements the current-time skill. Unlike the other
// skills it takes an optional plain timezone name instead of a JSON
// argument.
package timeinfo

import (
	"encoding/json"
	"fmt"
	"time"

	"teoskills/internal/skill"
)

const isoLayout = "2006-01-02T15:04:05.000000-07:00"

type report struct {
	CurrentTime string `json:"current_time"`
	Timezone    string `json:"timezone"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	Hour        int    `json:"hour"`
	Minute      int    `json:"minute"`
	Second      int    `json:"second"`
	Weekday     string `json:"weekday"`
}

// Report renders the time payload for the given zone name. An empty
// name means the local zone of now.
func Report(tzName string, now time.Time) string {
	zone := now.Location().String()
	if tzName != "" {
		loc, err := time.LoadLocation(tzName)
		if err != nil {
			return skill.Error(fmt.Sprintf("Invalid timezone: %s", tzName))
		}
		now = now.In(loc)
		zone = tzName
	}

	r := report{
		CurrentTime: now.Format(isoLayout),
		Timezone:    zone,
		Year:        now.Year(),
		Month:       int(now.Month()),
		Day:         now.Day(),
		Hour:        now.Hour(),
		Minute:      now.Minute(),
		Second:      now.Second(),
		Weekday:     now.Weekday().String(),
	}
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return skill.Error(fmt.Sprintf("An error occurred: %v", err))
	}
	return string(out)
}

// Run executes one invocation. The timezone argument is optional, so a
// bare call is never an error.
func Run(args []string) string {
	tzName := ""
	if len(args) > 0 {
		tzName = args[0]
	}
	return Report(tzName, time.Now())
}
