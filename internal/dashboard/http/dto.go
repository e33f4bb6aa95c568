package http

import (
	"github.com/bisfor/hotel-booking-backend/internal/analytics"
)

type StatsRequest struct {
	PriceSource string `form:"price_source" binding:"omitempty,oneof=current booked"`
}

type RollupsRequest struct {
	PriceSource string `form:"price_source" binding:"omitempty,oneof=current booked"`
	Revenue     string `form:"revenue" binding:"omitempty,oneof=per_booking per_stay"`
}

type StatsResponse struct {
	TotalBookings    int    `json:"total_bookings"`
	TotalGuests      int    `json:"total_guests"`
	TotalIncome      int64  `json:"total_income"`
	MostBookedRoom   string `json:"most_booked_room"`
	UpcomingBookings int    `json:"upcoming_bookings"`
}

func NewStatsResponse(st analytics.Stats) StatsResponse {
	return StatsResponse{
		TotalBookings:    st.TotalBookings,
		TotalGuests:      st.TotalGuests,
		TotalIncome:      st.TotalIncome,
		MostBookedRoom:   st.MostBookedRoom,
		UpcomingBookings: st.UpcomingBookings,
	}
}

type BucketResponse struct {
	Key     string `json:"key"`
	Count   int    `json:"count"`
	Revenue int64  `json:"revenue"`
}

type RollupsResponse struct {
	Weeks  []BucketResponse `json:"weeks"`
	Months []BucketResponse `json:"months"`
}

func NewRollupsResponse(r analytics.Rollups) RollupsResponse {
	return RollupsResponse{
		Weeks:  newBuckets(r.Weeks),
		Months: newBuckets(r.Months),
	}
}

func newBuckets(buckets []analytics.Bucket) []BucketResponse {
	out := make([]BucketResponse, len(buckets))
	for i, b := range buckets {
		out[i] = BucketResponse{Key: b.Key, Count: b.Count, Revenue: b.Revenue}
	}
	return out
}
