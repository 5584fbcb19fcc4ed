package errors

import "fmt"

// AppError, handler sınırında HTTP cevabına çevrilen hata tipi.
// Message client'a gider, Err sadece loglanır.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

var (
	ErrUnauthorized = func(err error) *AppError {
		return &AppError{Code: "unauthorized", Message: "Unauthorized", Err: err}
	}
	ErrMissingFields = func(err error) *AppError {
		return &AppError{Code: "missing_fields", Message: "Missing required fields", Err: err}
	}
	ErrMissingFile = func(err error) *AppError {
		return &AppError{Code: "missing_file", Message: "File not found", Err: err}
	}
	ErrServiceUnavailable = func(err error) *AppError {
		return &AppError{Code: "service_unavailable", Message: "Cloudinary not configured", Err: err}
	}
	ErrUploadFailed = func(err error) *AppError {
		return &AppError{Code: "upload_failed", Message: "Upload failed", Err: err}
	}
	ErrFetchFailed = func(err error) *AppError {
		return &AppError{Code: "fetch_failed", Message: "Failed to fetch videos", Err: err}
	}
)
