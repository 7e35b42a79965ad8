package errno

const (
	SessionMissing = 40000 + iota
	SessionBusy
	EmptyMessage
	ModelQuotaExceeded
)

const (
	InternalError = 50000 + iota
	InvalidParam
	ProductNotFound
)
