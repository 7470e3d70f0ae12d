package cmd

import (
	"strconv"
	"time"
)

const defaultPickupRetentionDays = 30

// Config carries everything the process reads from its environment.
// AmqpURL may be empty; events then go to the structured log instead
// of the broker.
type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	AmqpURL             string
	PickupRetentionDays string
}

// PickupRetention returns how long completed pickup runs stay on the board
// before the nightly sweep archives them.
func (c Config) PickupRetention() time.Duration {
	days, err := strconv.Atoi(c.PickupRetentionDays)
	if err != nil || days <= 0 {
		days = defaultPickupRetentionDays
	}
	return time.Duration(days) * 24 * time.Hour
}
