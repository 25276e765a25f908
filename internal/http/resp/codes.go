package resp

const (
	CodeOK            = 0
	CodeQueued        = 202
	CodeBadRequest    = 400
	CodeInternalError = 500
	CodeStoreError    = 502
)
