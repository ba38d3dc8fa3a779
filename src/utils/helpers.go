package utils

import (
	"alxtravel/src/config"
	"alxtravel/src/types"
	"time"
)

func IsProd() bool {
	return config.GetAPIEnv() == "production"
}

func IsLocal() bool {
	return config.GetAPIEnv() == "local"
}

// Today is the current calendar date in UTC.
func Today() types.Date {
	return types.DateOf(time.Now().UTC())
}
