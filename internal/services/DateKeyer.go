package services

import (
	"chatsplit/internal/models"
	"chatsplit/internal/structures"
	"fmt"
	"math"
	"time"
)

// DateKeyer turns epoch seconds into a DateKey in one fixed location, so every
// grouping operation buckets a timestamp the same way.
type DateKeyer struct {
	location *time.Location
}

func NewDateKeyer(location *time.Location) *DateKeyer {
	if location == nil {
		location = time.Local
	}
	return &DateKeyer{location: location}
}

func NewDateKeyerFromConfig(conf *structures.Config) (*DateKeyer, error) {
	loc, err := time.LoadLocation(conf.Grouping.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", conf.Grouping.Timezone, err)
	}
	return NewDateKeyer(loc), nil
}

func (k *DateKeyer) Location() *time.Location {
	return k.location
}

// Time converts fractional epoch seconds to a time in the keyer's location.
func (k *DateKeyer) Time(epochSeconds float64) time.Time {
	sec, frac := math.Modf(epochSeconds)
	nsec := int64(math.Round(frac * 1e9))
	return time.Unix(int64(sec), nsec).In(k.location)
}

func (k *DateKeyer) Key(epochSeconds float64) string {
	return k.Time(epochSeconds).Format(models.DateKeyLayout)
}
