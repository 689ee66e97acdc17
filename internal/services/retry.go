package services

import (
	"log"
	"time"
)

const (
	storageRetryAttempts = 3
	storageRetryDelay    = 500 * time.Millisecond
)

// retryStorage runs fn up to attempts times with a fixed delay between
// tries and returns the last error when every attempt fails.
func retryStorage(operation string, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		log.Printf("%s failed (attempt %d/%d): %v", operation, attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(delay)
		}
	}
	return err
}
