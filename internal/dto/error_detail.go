package dto

import (
	"time"
)

const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp renders as a second-precision local time string.
type Timestamp time.Time

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := time.ParseInLocation(`"`+TimestampLayout+`"`, string(data), time.Local)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

type ErrorDetail struct {
	StatusCode int       `json:"status_code"`
	Error      string    `json:"error"`
	Message    string    `json:"message"`
	Timestamp  Timestamp `json:"timestamp"`
}

func NewErrorDetail(statusCode int, errorKind, message string) ErrorDetail {
	return ErrorDetail{
		StatusCode: statusCode,
		Error:      errorKind,
		Message:    message,
		Timestamp:  Timestamp(time.Now()),
	}
}
