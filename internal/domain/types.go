package domain

import "time"

type ShowStatus string

const (
	ShowActive    ShowStatus = "Active"
	ShowCancelled ShowStatus = "Cancelled"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCancelled BookingStatus = "Cancelled"
)

type SeatAvailability string

const (
	SeatAvailable SeatAvailability = "Available"
	SeatBooked    SeatAvailability = "Booked"
)

type Movie struct {
	ID          int64
	Title       string
	Genre       string
	DurationMin int
	Rating      string
	Description string
	ReleaseDate time.Time
	PosterURL   string
}

type Theater struct {
	ID           int64
	Name         string
	Location     string
	City         string
	ContactPhone string
	TotalSeats   int
}

type Screen struct {
	ID         int64
	TheaterID  int64
	Name       string
	TotalSeats int
}

type Seat struct {
	ID         int64
	ScreenID   int64
	RowLabel   string
	SeatNumber int
	SeatType   string
}

// SeatWithAvailability annotates a seat with its derived per-show status.
// Availability is never persisted; it is computed from confirmed bookings.
type SeatWithAvailability struct {
	Seat
	Availability SeatAvailability
}

type Show struct {
	ID             int64
	MovieID        int64
	TheaterID      int64
	ScreenID       int64
	Date           time.Time
	Time           string
	PriceCents     int64
	AvailableSeats int
	Status         ShowStatus
}

// ShowListing is a show joined with movie and theater attributes for
// browse/search responses.
type ShowListing struct {
	Show
	MovieTitle  string
	DurationMin int
	TheaterName string
	Location    string
}

type Booking struct {
	ID         int64
	UserID     int64
	ShowID     int64
	TotalCents int64
	Status     BookingStatus
	CreatedAt  time.Time
}

type BookingSeat struct {
	BookingID  int64
	SeatID     int64
	PriceCents int64
}

type BookingWithSeats struct {
	Booking
	Seats []BookingSeat
}

// BookingSummary is one row of a user's booking history.
type BookingSummary struct {
	BookingID   int64
	TotalCents  int64
	Status      BookingStatus
	CreatedAt   time.Time
	MovieTitle  string
	TheaterName string
	ShowDate    time.Time
	ShowTime    string
	SeatsCount  int
}

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
