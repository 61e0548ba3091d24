package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
)

type Area struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}

type Duty struct {
	ID        uuid.UUID
	AreaID    uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}

// CodeUpdate is a pending code change for an area or a duty.
type CodeUpdate struct {
	ID   uuid.UUID
	Code string
}

func AreaCode(seq int) string {
	return fmt.Sprintf("%03d", seq)
}

// DutyCode is the upper-cased initial of the area name followed by the sequence within the area.
func DutyCode(areaName string, seq int) string {
	prefix := "X"

	if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(areaName)); r != utf8.RuneError {
		prefix = string(unicode.ToUpper(r))
	}

	return fmt.Sprintf("%s%03d", prefix, seq)
}
