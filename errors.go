package mdct

// Error represents a transform configuration error code.
type Error int

// Configuration error codes returned by New.
const (
	ErrNone          Error = 0
	ErrNotPowerOfTwo Error = 1
	ErrSizeTooSmall  Error = 2
	ErrSizeTooLarge  Error = 3
)

// errMessages contains the message for each error code.
var errMessages = [4]string{
	"no error",
	"transform size must be a power of two",
	"minimum of 4-point imdct",
	"maximum of 8192-point imdct",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e >= 0 && int(e) < len(errMessages) {
		return errMessages[e]
	}
	return "unknown error"
}
