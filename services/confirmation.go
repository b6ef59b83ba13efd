package services

import (
	"strconv"
	"strings"
	"time"

	"hotelpms/constants"

	"github.com/google/uuid"
)

// NewConfirmationNumber builds HTL + base36 seconds + random suffix. It needs no lookup,
// so it can be generated before the row exists.
func NewConfirmationNumber(now time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.Unix(), 36))
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return constants.ConfirmationPrefix + stamp + random[:constants.ConfirmationRandomLength]
}
