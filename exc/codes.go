package exc

const (
	CodeUnknownFatal    = "P0000"
	CodeUnexpectedToken = "P0001"
	CodeUnexpectedEOF   = "P0002"
	CodeRejectedValue   = "P0003"
	CodeInvalidNumber   = "P0004"
)

var (
	defaultNonFatal = map[string]bool{}
)
