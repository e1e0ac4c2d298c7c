package httpgin

import (
	"time"

	"github.com/chaitanya-codes/MovieTix/internal/domain"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CreateBookingRequest struct {
	ShowID  int64   `json:"showId" binding:"required"`
	SeatIDs []int64 `json:"seatIds" binding:"required,min=1,dive,required"`
	UserID  int64   `json:"userId" binding:"required"`
}

type CreateBookingResponse struct {
	BookingID        int64 `json:"bookingId"`
	TotalAmountCents int64 `json:"totalAmountCents"`
}

type CancelBookingResponse struct {
	RefundAmountCents int64 `json:"refundAmountCents"`
}

type BookingSeatResponse struct {
	SeatID         int64 `json:"seatId"`
	SeatPriceCents int64 `json:"seatPriceCents"`
}

type BookingResponse struct {
	BookingID        int64                 `json:"bookingId"`
	UserID           int64                 `json:"userId"`
	ShowID           int64                 `json:"showId"`
	TotalAmountCents int64                 `json:"totalAmountCents"`
	Status           string                `json:"status"`
	BookedAt         time.Time             `json:"bookedAt"`
	Seats            []BookingSeatResponse `json:"seats"`
}

type SeatResponse struct {
	SeatID       int64  `json:"seatId"`
	RowLabel     string `json:"rowLabel"`
	SeatNumber   int    `json:"seatNumber"`
	SeatType     string `json:"seatType"`
	Availability string `json:"availability"`
}

type MovieResponse struct {
	MovieID     int64  `json:"movieId"`
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	DurationMin int    `json:"durationMin"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	ReleaseDate string `json:"releaseDate"`
	PosterURL   string `json:"posterUrl"`
}

type TheaterResponse struct {
	TheaterID    int64  `json:"theaterId"`
	TheaterName  string `json:"theaterName"`
	Location     string `json:"location"`
	City         string `json:"city"`
	ContactPhone string `json:"contactPhone"`
	TotalSeats   int    `json:"totalSeats"`
}

type ShowResponse struct {
	ShowID              int64  `json:"showId"`
	MovieID             int64  `json:"movieId"`
	TheaterID           int64  `json:"theaterId"`
	ScreenID            int64  `json:"screenId"`
	ShowDate            string `json:"showDate"`
	ShowTime            string `json:"showTime"`
	PricePerTicketCents int64  `json:"pricePerTicketCents"`
	AvailableSeats      int    `json:"availableSeats"`
	MovieTitle          string `json:"movieTitle"`
	DurationMin         int    `json:"durationMin"`
	TheaterName         string `json:"theaterName"`
	Location            string `json:"location"`
}

type BookingSummaryResponse struct {
	BookingID        int64  `json:"bookingId"`
	TotalAmountCents int64  `json:"totalAmountCents"`
	Status           string `json:"status"`
	BookedAt         string `json:"bookedAt"`
	MovieTitle       string `json:"movieTitle"`
	TheaterName      string `json:"theaterName"`
	ShowDate         string `json:"showDate"`
	ShowTime         string `json:"showTime"`
	SeatsCount       int    `json:"seatsCount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const dateLayout = "2006-01-02"

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toSeatResponses(seats []domain.SeatWithAvailability) []SeatResponse {
	out := make([]SeatResponse, 0, len(seats))
	for _, s := range seats {
		out = append(out, SeatResponse{
			SeatID:       s.ID,
			RowLabel:     s.RowLabel,
			SeatNumber:   s.SeatNumber,
			SeatType:     s.SeatType,
			Availability: string(s.Availability),
		})
	}
	return out
}

func toMovieResponses(movies []domain.Movie) []MovieResponse {
	out := make([]MovieResponse, 0, len(movies))
	for _, m := range movies {
		out = append(out, toMovieResponse(&m))
	}
	return out
}

func toMovieResponse(m *domain.Movie) MovieResponse {
	return MovieResponse{
		MovieID:     m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		DurationMin: m.DurationMin,
		Rating:      m.Rating,
		Description: m.Description,
		ReleaseDate: m.ReleaseDate.Format(dateLayout),
		PosterURL:   m.PosterURL,
	}
}

func toTheaterResponses(theaters []domain.Theater) []TheaterResponse {
	out := make([]TheaterResponse, 0, len(theaters))
	for _, t := range theaters {
		out = append(out, TheaterResponse{
			TheaterID:    t.ID,
			TheaterName:  t.Name,
			Location:     t.Location,
			City:         t.City,
			ContactPhone: t.ContactPhone,
			TotalSeats:   t.TotalSeats,
		})
	}
	return out
}

func toShowResponses(shows []domain.ShowListing) []ShowResponse {
	out := make([]ShowResponse, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowResponse{
			ShowID:              s.ID,
			MovieID:             s.MovieID,
			TheaterID:           s.TheaterID,
			ScreenID:            s.ScreenID,
			ShowDate:            s.Date.Format(dateLayout),
			ShowTime:            s.Time,
			PricePerTicketCents: s.PriceCents,
			AvailableSeats:      s.AvailableSeats,
			MovieTitle:          s.MovieTitle,
			DurationMin:         s.DurationMin,
			TheaterName:         s.TheaterName,
			Location:            s.Location,
		})
	}
	return out
}

func toBookingResponse(b *domain.BookingWithSeats) BookingResponse {
	resp := BookingResponse{
		BookingID:        b.ID,
		UserID:           b.UserID,
		ShowID:           b.ShowID,
		TotalAmountCents: b.TotalCents,
		Status:           string(b.Status),
		BookedAt:         b.CreatedAt,
		Seats:            make([]BookingSeatResponse, 0, len(b.Seats)),
	}
	for _, s := range b.Seats {
		resp.Seats = append(resp.Seats, BookingSeatResponse{
			SeatID:         s.SeatID,
			SeatPriceCents: s.PriceCents,
		})
	}
	return resp
}

func toBookingSummaryResponses(items []domain.BookingSummary) []BookingSummaryResponse {
	out := make([]BookingSummaryResponse, 0, len(items))
	for _, b := range items {
		out = append(out, BookingSummaryResponse{
			BookingID:        b.BookingID,
			TotalAmountCents: b.TotalCents,
			Status:           string(b.Status),
			BookedAt:         b.CreatedAt.Format(time.RFC3339),
			MovieTitle:       b.MovieTitle,
			TheaterName:      b.TheaterName,
			ShowDate:         b.ShowDate.Format(dateLayout),
			ShowTime:         b.ShowTime,
			SeatsCount:       b.SeatsCount,
		})
	}
	return out
}
