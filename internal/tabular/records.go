package tabular

import "winback/internal/core"

// 本檔是唯一允許用數字位移讀 raw row 的地方。
// 欄位位移沿用外部表的既有排版，不可調整。

// AuthRecord Authentication 表一列（profile 與登入憑證）
type AuthRecord struct {
	FullName string // B
	Email    string // C
	Team     string // E
	Status   string // K
	Password string // N
}

// AuthorizationRecord Decentralization 表一列，每個 picCode 一筆
type AuthorizationRecord struct {
	PICCode   string
	Subteam   string
	Role      core.Role
	Region    string
	Team      string
	ConcatKey string
}

// StoreRecord Store_info 表一列
type StoreRecord struct {
	StoreID              string // A
	StoreName            string // B
	BuyerID              string // C
	CurrentPIC           string // F
	FullAddress          string // J
	LastOrderDate        string // L
	ChurnStatusThisMonth string // M
}

// ChurnHistoryEntry 一間門市的一次 churn episode
type ChurnHistoryEntry struct {
	StoreID     string
	ChurnMonth  string
	TypeOfChurn string
	Reason      string
}

// ActiveHistoryEntry 一間門市的一個 active 月份
type ActiveHistoryEntry struct {
	StoreID     string
	ActiveMonth string
}

// ActionRecord Churn/Active Database 的行動紀錄，兩表共用一個形狀；
// ChurnMonth 與 ActiveMonth 只會擇一有值
type ActionRecord struct {
	StoreID        string
	StoreName      string
	ContactDate    string
	PIC            string
	Subteam        string
	TypeOfContact  string
	Action         string
	Note           string
	WhyNotReawaken string
	ChurnMonth     string
	ActiveMonth    string
	LinkHubspot    string
}

// ChurnActionOption 下拉選單：churn 行動
type ChurnActionOption struct {
	TypeOfChurn string `json:"typeOfChurn"`
	ChurnAction string `json:"churnAction"`
}

// WhyReasonOption 下拉選單：未喚回原因
type WhyReasonOption struct {
	TypeOfChurn    string `json:"typeOfChurn"`
	WhyNotReawaken string `json:"whyNotReawaken"`
}

// cell 安全取值：spreadsheet 回傳的列可能長短不一
func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// dataRows 跳過表頭列
func dataRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

func DecodeAuthRows(rows [][]string) []AuthRecord {
	var records []AuthRecord
	for _, row := range dataRows(rows) {
		records = append(records, AuthRecord{
			FullName: cell(row, 1),
			Email:    cell(row, 2),
			Team:     orDefault(cell(row, 4), core.ScopeNA),
			Status:   cell(row, 10),
			Password: cell(row, 13),
		})
	}
	return records
}

func DecodeAuthorizationRows(rows [][]string) []AuthorizationRecord {
	var records []AuthorizationRecord
	for _, row := range dataRows(rows) {
		if cell(row, 0) == "" {
			continue
		}
		records = append(records, AuthorizationRecord{
			PICCode:   cell(row, 0),
			Subteam:   orDefault(cell(row, 1), core.ScopeNA),
			Role:      core.Role(orDefault(cell(row, 2), string(core.RoleMember))),
			Region:    orDefault(cell(row, 3), core.ScopeNA),
			Team:      orDefault(cell(row, 4), core.ScopeNA),
			ConcatKey: orDefault(cell(row, 5), core.ScopeNA),
		})
	}
	return records
}

func DecodeStoreRows(rows [][]string) []StoreRecord {
	var records []StoreRecord
	for _, row := range dataRows(rows) {
		records = append(records, StoreRecord{
			StoreID:              cell(row, 0),
			StoreName:            cell(row, 1),
			BuyerID:              cell(row, 2),
			CurrentPIC:           cell(row, 5),
			FullAddress:          cell(row, 9),
			LastOrderDate:        cell(row, 11),
			ChurnStatusThisMonth: cell(row, 12),
		})
	}
	return records
}

func DecodeChurnHistoryRows(rows [][]string) []ChurnHistoryEntry {
	var entries []ChurnHistoryEntry
	for _, row := range dataRows(rows) {
		entries = append(entries, ChurnHistoryEntry{
			StoreID:     cell(row, 0),
			ChurnMonth:  cell(row, 1),
			TypeOfChurn: cell(row, 3),
			Reason:      cell(row, 4),
		})
	}
	return entries
}

func DecodeActiveHistoryRows(rows [][]string) []ActiveHistoryEntry {
	var entries []ActiveHistoryEntry
	for _, row := range dataRows(rows) {
		entries = append(entries, ActiveHistoryEntry{
			StoreID:     cell(row, 0),
			ActiveMonth: cell(row, 1),
		})
	}
	return entries
}

func DecodeChurnActionRows(rows [][]string) []ActionRecord {
	var actions []ActionRecord
	for _, row := range dataRows(rows) {
		actions = append(actions, ActionRecord{
			StoreID:        cell(row, 0),
			StoreName:      cell(row, 1),
			ContactDate:    cell(row, 2),
			PIC:            cell(row, 3),
			Subteam:        cell(row, 4),
			TypeOfContact:  cell(row, 5),
			Action:         cell(row, 6),
			Note:           cell(row, 7),
			WhyNotReawaken: cell(row, 8),
			ChurnMonth:     cell(row, 9),
			LinkHubspot:    cell(row, 10),
		})
	}
	return actions
}

func DecodeActiveActionRows(rows [][]string) []ActionRecord {
	var actions []ActionRecord
	for _, row := range dataRows(rows) {
		actions = append(actions, ActionRecord{
			StoreID:       cell(row, 0),
			StoreName:     cell(row, 1),
			ContactDate:   cell(row, 2),
			PIC:           cell(row, 3),
			Subteam:       cell(row, 4),
			TypeOfContact: cell(row, 5),
			Action:        cell(row, 6),
			Note:          cell(row, 7),
			ActiveMonth:   cell(row, 8),
			LinkHubspot:   cell(row, 9),
		})
	}
	return actions
}

func DecodeDropdownChurnRows(rows [][]string) []ChurnActionOption {
	var options []ChurnActionOption
	for _, row := range dataRows(rows) {
		options = append(options, ChurnActionOption{
			TypeOfChurn: cell(row, 0),
			ChurnAction: cell(row, 1),
		})
	}
	return options
}

func DecodeDropdownActiveRows(rows [][]string) []string {
	var options []string
	for _, row := range dataRows(rows) {
		options = append(options, cell(row, 0))
	}
	return options
}

func DecodeDropdownWhyRows(rows [][]string) []WhyReasonOption {
	var options []WhyReasonOption
	for _, row := range dataRows(rows) {
		options = append(options, WhyReasonOption{
			TypeOfChurn:    cell(row, 0),
			WhyNotReawaken: cell(row, 1),
		})
	}
	return options
}

// EncodeRow 行動紀錄的寫入列。欄位順序與 append range 必須一致。
func (a ActionRecord) EncodeRow(kind core.ActionKind) []string {
	if kind == core.ActionKindChurn {
		return []string{
			a.StoreID, a.StoreName, a.ContactDate, a.PIC, a.Subteam,
			a.TypeOfContact, a.Action, a.Note, a.WhyNotReawaken,
			a.ChurnMonth, a.LinkHubspot,
		}
	}
	return []string{
		a.StoreID, a.StoreName, a.ContactDate, a.PIC, a.Subteam,
		a.TypeOfContact, a.Action, a.Note, a.ActiveMonth, a.LinkHubspot,
	}
}
