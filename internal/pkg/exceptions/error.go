package exceptions

import (
	"fmt"
	"passwordless-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Locations     []Location `json:"-"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

// Unwrap exposes the underlying cause so errors.Is keeps working on domain sentinels.
func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     getLocations(3, 3),
		Err:           err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     getLocations(2, 1),
	}
}

func getLocations(skip, depth int) []Location {
	locations := make([]Location, 0, depth)
	for i := 0; i < depth; i++ {
		pc, file, line, ok := runtime.Caller(skip + i)
		if !ok {
			if i == 0 {
				locations = append(locations, Location{
					File:         constvars.ResponseUnknown,
					FunctionName: constvars.ResponseUnknown,
				})
			}
			break
		}
		locations = append(locations, Location{
			File:         file,
			Line:         line,
			FunctionName: runtime.FuncForPC(pc).Name(),
		})
	}
	return locations
}
