package core

import "github.com/parkerholladay/odyssey-voyage-II-server/models"

// Response is the envelope mutating operations return instead of raising on
// business-level failure, so callers can render it directly.
type Response struct {
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ok(message string) Response {
	return Response{Code: 200, Success: true, Message: message}
}

func failed(message string) Response {
	return Response{Code: 400, Success: false, Message: message}
}

type BookingResult struct {
	Response
	Booking *models.Booking `json:"booking,omitempty"`
}

type ListingResult struct {
	Response
	Listing *models.Listing `json:"listing,omitempty"`
}

type ProfileResult struct {
	Response
	User *models.User `json:"user,omitempty"`
}

type FundsResult struct {
	Response
	Amount float64 `json:"amount"`
}

type GuestReviewResult struct {
	Response
	GuestReview *models.Review `json:"guestReview,omitempty"`
}

type StayReviewsResult struct {
	Response
	HostReview     *models.Review `json:"hostReview,omitempty"`
	LocationReview *models.Review `json:"locationReview,omitempty"`
}
