package redis

import (
	"fmt"
	"time"
)

const ns = "movietix:v1"

func KeyShowSeatMap(showID int64) string {
	return fmt.Sprintf("%s:show:%d:seatmap", ns, showID)
}

func KeyMovieList() string {
	return ns + ":movies"
}

func KeyTheaterList() string {
	return ns + ":theaters"
}

// KeyShowList keys one filter combination of the show listing. Zero IDs and
// a nil date mean "unfiltered".
func KeyShowList(movieID, theaterID int64, date *time.Time) string {
	d := "any"
	if date != nil {
		d = date.Format("2006-01-02")
	}
	return fmt.Sprintf("%s:shows:%d:%d:%s", ns, movieID, theaterID, d)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelShowsChanged() string {
	return ns + ":shows:changed"
}
