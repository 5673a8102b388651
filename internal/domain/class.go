package domain

import "github.com/google/uuid"

// Room is immutable reference data: a label for where a class is taught.
type Room struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

// Class is immutable reference data describing a taught course and the
// fixed (day, period) slot it occupies. Many users may reference the same
// class from their timetables.
type Class struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Name    string    `db:"name" json:"name"`
	Teacher string    `db:"teacher" json:"teacher"`
	RoomID  uuid.UUID `db:"room_id" json:"room_id"`
	Day     Day       `db:"day" json:"day"`
	Period  Period    `db:"period" json:"period"`
}

// ClassWithRoom is the catalog read-path join of a class and its room name.
type ClassWithRoom struct {
	Class
	RoomName string `db:"room_name" json:"room_name"`
}

type RoomsTable struct {
	ID   string
	Name string
}

func GetRoomTable() RoomsTable {
	return RoomsTable{
		ID:   "id",
		Name: "name",
	}
}

func (t RoomsTable) GetTableName() string {
	return "rooms"
}

type ClassesTable struct {
	ID      string
	Name    string
	Teacher string
	RoomID  string
	Day     string
	Period  string
}

func GetClassTable() ClassesTable {
	return ClassesTable{
		ID:      "id",
		Name:    "name",
		Teacher: "teacher",
		RoomID:  "room_id",
		Day:     "day",
		Period:  "period",
	}
}

func (t ClassesTable) GetTableName() string {
	return "classes"
}

type TimetableTable struct {
	UserID  string
	Day     string
	Period  string
	ClassID string
}

func GetTimetableTable() TimetableTable {
	return TimetableTable{
		UserID:  "user_id",
		Day:     "day",
		Period:  "period",
		ClassID: "class_id",
	}
}

func (t TimetableTable) GetTableName() string {
	return "user_timetables"
}
