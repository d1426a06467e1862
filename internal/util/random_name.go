package util

import (
	"fmt"
	"time"

	"holdem-server/internal/rng"
)

var adjectives = []string{
	"Lucky", "Cold", "Stone", "Quick", "Silent", "Fearless", "Sly", "Steady", "Wild", "Grinning", "Patient",
	"Bluffing", "Loose", "Tight", "Lonesome", "Rowdy", "Smooth", "Gentle", "Tall", "Grand", "Drifting", "Dusty",
	"Restless", "Clever", "Sleepy", "Sharp",
}

var animals = []string{
	"Shark", "Fish", "Whale", "Donkey", "Mule", "Fox", "Owl", "Coyote", "Hawk", "Badger", "Bison", "Bear",
	"Otter", "Wolf", "Raven", "Lizard", "Tiger", "Lion", "Moose", "Rhino", "Hedgehog", "Armadillo", "Panda",
}

var random rng.Generator = rng.NewLocked(rng.New(time.Now().UnixNano()))

// GetRandomName returns a name for a player who did not pick one
func GetRandomName() string {
	return fmt.Sprintf("%s %s", adjectives[random.Intn(len(adjectives))], animals[random.Intn(len(animals))])
}
