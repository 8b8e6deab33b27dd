package core

import "strings"

// Role 授權表角色
type Role string

const (
	RoleMember  Role = "Member"  // 只能看自己名下門市
	RoleLeader  Role = "Leader"  // 可看同 subteam 所有 PIC 的門市
	RoleManager Role = "Manager" // 依 region/team/concat 決定範圍
)

// 授權表的區域與群組值
const (
	ScopeAll     = "ALL"
	ScopeNA      = "N/A"
	RegionHCM    = "HCM"
	RegionHN     = "HN"
	StatusActive = "Active"
)

// Identity 請求身分。PICCode 一律由 email local part 推導，
// 是授權表（Decentralization）的 join key。
type Identity struct {
	Email   string
	PICCode string
}

func NewIdentity(email string) Identity {
	return Identity{Email: email, PICCode: PICCodeFromEmail(email)}
}

// PICCodeFromEmail 取 email @ 前的 local part
func PICCodeFromEmail(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// ActionKind 行動紀錄的種類，決定寫入哪張資料表
type ActionKind string

const (
	ActionKindChurn  ActionKind = "Churn Database"
	ActionKindActive ActionKind = "Active Database"
)
