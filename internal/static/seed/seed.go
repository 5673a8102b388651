// Package seed holds the static rooms/classes reference tables. IDs are
// fixed so reseeding on every start is a no-op for existing rows.
package seed

import (
	"github.com/google/uuid"

	"gitlab.com/classhub-2025.net/internal/domain"
)

var (
	roomAlpha = uuid.MustParse("6f1d2f60-0a3b-4c3e-9a41-0c62de6a0001")
	roomBeta  = uuid.MustParse("6f1d2f60-0a3b-4c3e-9a41-0c62de6a0002")
	roomGamma = uuid.MustParse("6f1d2f60-0a3b-4c3e-9a41-0c62de6a0003")
	roomDelta = uuid.MustParse("6f1d2f60-0a3b-4c3e-9a41-0c62de6a0004")
	roomLab   = uuid.MustParse("6f1d2f60-0a3b-4c3e-9a41-0c62de6a0005")
)

func Rooms() []domain.Room {
	return []domain.Room{
		{ID: roomAlpha, Name: "Room 101"},
		{ID: roomBeta, Name: "Room 202"},
		{ID: roomGamma, Name: "Room 303"},
		{ID: roomDelta, Name: "Auditorium B"},
		{ID: roomLab, Name: "CS Lab 2"},
	}
}

func Classes() []domain.Class {
	return []domain.Class{
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0001"),
			Name:    "Linear Algebra",
			Teacher: "Prof. Okada",
			RoomID:  roomAlpha,
			Day:     domain.Monday,
			Period:  1,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0002"),
			Name:    "Operating Systems",
			Teacher: "Prof. Tanaka",
			RoomID:  roomLab,
			Day:     domain.Monday,
			Period:  3,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0003"),
			Name:    "Databases",
			Teacher: "Dr. Suzuki",
			RoomID:  roomBeta,
			Day:     domain.Tuesday,
			Period:  2,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0004"),
			Name:    "Discrete Mathematics",
			Teacher: "Prof. Okada",
			RoomID:  roomAlpha,
			Day:     domain.Tuesday,
			Period:  4,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0005"),
			Name:    "Computer Networks",
			Teacher: "Dr. Ito",
			RoomID:  roomLab,
			Day:     domain.Wednesday,
			Period:  1,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0006"),
			Name:    "Software Engineering",
			Teacher: "Prof. Watanabe",
			RoomID:  roomGamma,
			Day:     domain.Wednesday,
			Period:  3,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0007"),
			Name:    "Statistics",
			Teacher: "Dr. Suzuki",
			RoomID:  roomBeta,
			Day:     domain.Thursday,
			Period:  2,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0008"),
			Name:    "Compilers",
			Teacher: "Prof. Tanaka",
			RoomID:  roomLab,
			Day:     domain.Thursday,
			Period:  5,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0009"),
			Name:    "Algorithms",
			Teacher: "Prof. Watanabe",
			RoomID:  roomGamma,
			Day:     domain.Friday,
			Period:  1,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0010"),
			Name:    "Technical Writing",
			Teacher: "Dr. Kimura",
			RoomID:  roomDelta,
			Day:     domain.Friday,
			Period:  4,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0011"),
			Name:    "Machine Learning Seminar",
			Teacher: "Dr. Ito",
			RoomID:  roomDelta,
			Day:     domain.Saturday,
			Period:  2,
		},
		{
			ID:      uuid.MustParse("8c9b1a10-55e7-4f0a-8d1b-7b8f3c2e0012"),
			Name:    "Ethics in Computing",
			Teacher: "Dr. Kimura",
			RoomID:  roomGamma,
			Day:     domain.Saturday,
			Period:  3,
		},
	}
}
