package domain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Day is a school day. The timetable covers Monday through Saturday.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

const (
	NumDays    = 6
	NumPeriods = 5
)

var dayNames = [NumDays]string{"mon", "tue", "wed", "thu", "fri", "sat"}

func (d Day) String() string {
	if d < Monday || d > Saturday {
		return "invalid"
	}
	return dayNames[d]
}

// ParseDay maps the lowercase short day name ("mon".."sat") to a Day.
func ParseDay(s string) (Day, error) {
	for i, name := range dayNames {
		if name == s {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("invalid day: %q", s)
}

// Period is a teaching period, 1 through 5.
type Period int

func ParsePeriod(s string) (Period, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > NumPeriods {
		return 0, fmt.Errorf("invalid period: %q", s)
	}
	return Period(n), nil
}

// Cell is a single timetable slot: empty or a reference to a class.
// Class IDs are references only, never hydrated class data.
type Cell struct {
	ClassID *uuid.UUID `json:"class_id"`
}

func (c Cell) Empty() bool {
	return c.ClassID == nil
}

// Grid is the fixed 6x5 weekly timetable of one user. It is indexed by
// Day and Period so every cell always exists; cells are only overwritten.
type Grid [NumDays][NumPeriods]Cell

func (g *Grid) Set(d Day, p Period, classID *uuid.UUID) {
	g[d][p-1] = Cell{ClassID: classID}
}

func (g Grid) At(d Day, p Period) Cell {
	return g[d][p-1]
}

// MarshalJSON renders the grid keyed by day name, each day holding the
// five period cells in order.
func (g Grid) MarshalJSON() ([]byte, error) {
	out := make(map[string][NumPeriods]Cell, NumDays)
	for d := 0; d < NumDays; d++ {
		out[dayNames[d]] = g[d]
	}
	return json.Marshal(out)
}
