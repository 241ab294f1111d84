package client

import (
	"sort"

	"github.com/BruksfildServices01/autoservice-booking/internal/domain/reservation"
	"github.com/BruksfildServices01/autoservice-booking/internal/models"
)

const RecentReservationsLimit = 5

type Stats struct {
	TotalReservations     int                  `json:"totalReservations"`
	PendingReservations   int                  `json:"pendingReservations"`
	CompletedReservations int                  `json:"completedReservations"`
	CancelledReservations int                  `json:"cancelledReservations"`
	StatusBreakdown       map[string]int       `json:"statusBreakdown"`
	ServiceBreakdown      map[string]int       `json:"serviceBreakdown"`
	RecentReservations    []models.Reservation `json:"recentReservations"`
}

// BuildStats summarizes the reservations of a single client.
func BuildStats(reservations []models.Reservation) Stats {
	s := Stats{
		TotalReservations:  len(reservations),
		StatusBreakdown:    map[string]int{},
		ServiceBreakdown:   map[string]int{},
		RecentReservations: []models.Reservation{},
	}

	for _, r := range reservations {
		switch reservation.Status(r.Status) {
		case reservation.StatusPending:
			s.PendingReservations++
		case reservation.StatusCompleted:
			s.CompletedReservations++
		case reservation.StatusCancelled:
			s.CancelledReservations++
		}

		s.StatusBreakdown[r.Status]++
		s.ServiceBreakdown[r.Service]++
	}

	recent := make([]models.Reservation, len(reservations))
	copy(recent, reservations)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentReservationsLimit {
		recent = recent[:RecentReservationsLimit]
	}
	s.RecentReservations = append(s.RecentReservations, recent...)

	return s
}
