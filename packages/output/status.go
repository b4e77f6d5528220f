package output

import "github.com/fatih/color"

// Bucket groups status codes for colouring.
type Bucket int

const (
	BucketSuccess Bucket = iota
	BucketRedirect
	BucketClientError
	BucketServerError
)

func (b Bucket) String() string {
	switch b {
	case BucketSuccess:
		return "success"
	case BucketRedirect:
		return "redirect"
	case BucketClientError:
		return "client error"
	default:
		return "server error"
	}
}

// StatusBucket classifies a status code. 0-299 is success, 300-399
// redirect, 400-499 client error; anything else, including out of range
// values, is server error.
func StatusBucket(code int) Bucket {
	switch {
	case code >= 0 && code <= 299:
		return BucketSuccess
	case code >= 300 && code <= 399:
		return BucketRedirect
	case code >= 400 && code <= 499:
		return BucketClientError
	default:
		return BucketServerError
	}
}

// Attribute is the foreground colour used for the bucket.
func (b Bucket) Attribute() color.Attribute {
	switch b {
	case BucketSuccess:
		return color.FgGreen
	case BucketRedirect:
		return color.FgYellow
	case BucketClientError:
		return color.FgMagenta
	default:
		return color.FgRed
	}
}
