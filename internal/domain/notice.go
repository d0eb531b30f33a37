package domain

// NoticeLevel is the severity of a user-visible notice.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeWarn  NoticeLevel = "warn"
	NoticeError NoticeLevel = "error"
)

// Notice is a user-visible message raised while crafting.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}
