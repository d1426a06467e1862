package texasholdem

import (
	"errors"
	"fmt"

	"github.com/coder/quartz"
)

// BustPolicy decides what happens to a player who has run out of chips
type BustPolicy string

// BustPolicy constants
const (
	// BustPolicySitOut keeps the player seated, dealt out until they have chips again
	BustPolicySitOut BustPolicy = "sit-out"
	// BustPolicyRemove takes the player off the table when the next hand starts
	BustPolicyRemove BustPolicy = "remove"
)

// ParseBustPolicy returns the policy for the given name
func ParseBustPolicy(s string) (BustPolicy, error) {
	switch BustPolicy(s) {
	case BustPolicySitOut, BustPolicyRemove:
		return BustPolicy(s), nil
	case "":
		return BustPolicySitOut, nil
	}

	return "", fmt.Errorf("unknown bust policy: %s", s)
}

// MaxSeats is the largest table supported
const MaxSeats = 10

// Options configures a round of Texas Hold'em
type Options struct {
	Ante       int
	BustPolicy BustPolicy
	MaxSeats   int

	// Clock provides timestamps for shuffle seeds and the hand log
	Clock quartz.Clock
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		Ante:       10,
		BustPolicy: BustPolicySitOut,
		MaxSeats:   MaxSeats,
		Clock:      quartz.NewReal(),
	}
}

func validateOptions(opts *Options) error {
	if opts.Ante < 1 {
		return errors.New("ante must be at least 1")
	}

	if opts.MaxSeats == 0 {
		opts.MaxSeats = MaxSeats
	}

	if opts.MaxSeats < 2 || opts.MaxSeats > MaxSeats {
		return fmt.Errorf("seats must be between 2 and %d", MaxSeats)
	}

	if opts.BustPolicy == "" {
		opts.BustPolicy = BustPolicySitOut
	}

	if _, err := ParseBustPolicy(string(opts.BustPolicy)); err != nil {
		return err
	}

	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	return nil
}
