package errors

// ErrCode is the business error code type.
type ErrCode int

const (
	// General 1000-1999
	ErrInvalidParameter ErrCode = 1001 // malformed request, missing required field
	ErrInternalError    ErrCode = 1002

	// Upstream model calls 2000-2999
	ErrUpstreamModel    ErrCode = 2001 // upstream model client construction / generic failure
	ErrEmbeddingFailed  ErrCode = 2002
	ErrLLMCallFailed    ErrCode = 2003
	ErrExtractionFailed ErrCode = 2004 // OCR / transcription / captioning

	// Vector store 3000-3999
	ErrVectorStoreInit ErrCode = 3001
	ErrVectorInsert    ErrCode = 3002
	ErrVectorSearch    ErrCode = 3003
	ErrNoContextFound  ErrCode = 3004 // query namespace has zero matches

	// Object storage 4000-4999
	ErrObjectNotFound ErrCode = 4001
	ErrPresignFailed  ErrCode = 4002
	ErrBundleDecode   ErrCode = 4003
)

// HTTPStatusCode maps a business error code to the HTTP status it is
// surfaced with. Upstream model failures are gateway errors, not ours.
func (e ErrCode) HTTPStatusCode() int {
	switch {
	case e == ErrInvalidParameter:
		return 400
	case e == ErrNoContextFound || e == ErrObjectNotFound:
		return 404
	case e >= 2000 && e <= 2999:
		return 502
	default:
		return 500
	}
}
