package modifier

// Rejection explains why a toggle did not select a modifier. The zero
// value means the toggle succeeded.
type Rejection string

const (
	RejectNone          Rejection = ""
	RejectUnknown       Rejection = "unknown"
	RejectAuto          Rejection = "auto"
	RejectLocked        Rejection = "locked"
	RejectUnavailable   Rejection = "unavailable"
	RejectCategoryLimit Rejection = "category_limit"
	RejectBudget        Rejection = "budget"
)

// OK reports whether the toggle went through.
func (r Rejection) OK() bool {
	return r == RejectNone
}

// Message returns the user-facing text of the rejection.
func (r Rejection) Message() string {
	switch r {
	case RejectUnknown:
		return MsgRejectUnknown
	case RejectAuto:
		return MsgRejectAuto
	case RejectLocked:
		return MsgRejectLocked
	case RejectUnavailable:
		return MsgRejectUnavailable
	case RejectCategoryLimit:
		return MsgRejectCategoryLimit
	case RejectBudget:
		return MsgRejectBudget
	default:
		return ""
	}
}
