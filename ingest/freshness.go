package ingest

import (
	"fmt"
	"os"
	"time"
)

// AssertFresh returns an error if path's modification time is older
// than maxAge, the Go equivalent of the original CLI's
// `assert datetime.now() - file_time < timedelta(minutes=N), '... is more
// than N minutes old'`.
func AssertFresh(path string, maxAge time.Duration) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking freshness of %s: %w", path, err)
	}
	age := time.Since(info.ModTime())
	if age > maxAge {
		return fmt.Errorf("%s is more than %s old", path, maxAge)
	}
	return nil
}

// AssertGlucoseConsistentWithFile checks the original glucose_from_effects
// and glucose CLI's second freshness rule: the most recent CGM sample
// must be less than 15 minutes older than the glucose file's own
// modification time (a guard against a stale feed masquerading as fresh
// because the file itself was touched recently).
func AssertGlucoseConsistentWithFile(path string, latestSample time.Time) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("checking glucose file consistency: %w", err)
	}
	if info.ModTime().Sub(latestSample) >= 15*time.Minute {
		return fmt.Errorf("glucose data in %s is more than 15 minutes old", path)
	}
	return nil
}
