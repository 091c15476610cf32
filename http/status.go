package http

const (
	StatusOK                  uint16 = 200
	StatusMovedPermanently    uint16 = 301
	StatusFound               uint16 = 302
	StatusNotModified         uint16 = 304
	StatusBadRequest          uint16 = 400
	StatusUnauthorized        uint16 = 401
	StatusForbidden           uint16 = 403
	StatusNotFound            uint16 = 404
	StatusInternalServerError uint16 = 500
	StatusBadGateway          uint16 = 502
	StatusServiceUnavailable  uint16 = 503
	StatusVersionNotSupported uint16 = 505
)

const unknownStatusReason = "unknown"

// statusReasons holds the IANA registered reason phrases this engine
// knows about. Codes outside the table get the "unknown" reason.
var statusReasons = map[uint16]string{
	StatusOK:                  "OK",
	StatusMovedPermanently:    "Moved Permanently",
	StatusFound:               "Found",
	StatusNotModified:         "Not Modified",
	StatusBadRequest:          "Bad Request",
	StatusUnauthorized:        "Unauthorized",
	StatusForbidden:           "Forbidden",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
	StatusBadGateway:          "Bad Gateway",
	StatusServiceUnavailable:  "Service Unavailable",
	StatusVersionNotSupported: "HTTP Version Not Supported",
}

func StatusReason(code uint16) string {
	if reason, found := statusReasons[code]; found {
		return reason
	}
	return unknownStatusReason
}
