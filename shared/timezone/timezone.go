// Package timezone keeps every timestamp the service produces in the configured APP_TIMEZONE.
package timezone

import (
	"servicehub/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	location *time.Location
	loadOnce sync.Once
	mu       sync.RWMutex
)

// Set overrides the application location by IANA name. Unknown names fall back to UTC.
func Set(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil || name == "" {
		log.Warn().Err(err).Str("timezone", name).Msg("Unknown timezone, falling back to UTC")

		loc = time.UTC
	}

	mu.Lock()
	location = loc
	mu.Unlock()
}

// GetLocation loads APP_TIMEZONE on first use.
func GetLocation() *time.Location {
	loadOnce.Do(func() {
		mu.RLock()
		preset := location != nil
		mu.RUnlock()

		if !preset {
			Set(config.Get().App.Timezone)
		}
	})

	mu.RLock()
	defer mu.RUnlock()

	return location
}

func Now() time.Time {
	return time.Now().In(GetLocation())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// Parse reads value as wall time in the application location.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
