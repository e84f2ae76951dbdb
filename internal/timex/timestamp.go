package timex

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
)

// ToProto converts a timezone-naive stored instant into a wire timestamp.
//
// The wall clock of t is read as UTC regardless of t.Location() or the
// process time zone. Sub-second precision is dropped: Nanos is always 0 and
// instants before the epoch floor to the previous whole second.
func ToProto(t time.Time) *timestamppb.Timestamp {
	utc := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return &timestamppb.Timestamp{Seconds: utc.Unix()}
}
