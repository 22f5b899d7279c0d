package entry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Timestamp is an instant that travels as integer epoch milliseconds.
type Timestamp struct {
	time.Time
}

// FromMillis builds a Timestamp from epoch milliseconds.
func FromMillis(ms int64) Timestamp {
	return Timestamp{Time: time.UnixMilli(ms)}
}

func (t Timestamp) Millis() int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func (t Timestamp) SameDay(then time.Time) bool {
	return DateOf(t.Time) == DateOf(then)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Millis(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var ms json.Number
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("entry: timestamp: %w", err)
	}
	v, err := ms.Int64()
	if err != nil {
		f, ferr := ms.Float64()
		if ferr != nil {
			return fmt.Errorf("entry: timestamp: %w", err)
		}
		v = int64(f)
	}
	if v == 0 {
		t.Time = time.Time{}
		return nil
	}
	t.Time = time.UnixMilli(v)
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}
