package notification

type Type string

const (
	TypeRecovery  Type = "recovery"
	TypeWinback15 Type = "winback15"
	TypeWinback30 Type = "winback30"
	TypeWinback45 Type = "winback45"
	TypeRestock   Type = "restock"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeRecovery, TypeWinback15, TypeWinback30, TypeWinback45, TypeRestock:
		return true
	default:
		return false
	}
}

// WinbackTypes are the campaign types a completed purchase cancels.
func WinbackTypes() []Type {
	return []Type{TypeRecovery, TypeWinback15, TypeWinback30, TypeWinback45}
}

type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	default:
		return false
	}
}
