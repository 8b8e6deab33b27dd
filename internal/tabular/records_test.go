package tabular

import (
	"testing"

	"winback/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAuthRowsSkipsHeaderAndPadsShortRows(t *testing.T) {
	rows := [][]string{
		{"no", "fullName", "email", "phone", "team"},
		{"1", "Nguyen Van A", "a.nguyen@corp.vn", "", "Ex-North", "", "", "", "", "", "Active", "", "", "1234"},
		{"2", "Tran Thi B", "b.tran@corp.vn"}, // 短列：缺 team/status/password
	}

	records := DecodeAuthRows(rows)
	assert.Len(t, records, 2)
	assert.Equal(t, "Nguyen Van A", records[0].FullName)
	assert.Equal(t, "Ex-North", records[0].Team)
	assert.Equal(t, "Active", records[0].Status)
	assert.Equal(t, "1234", records[0].Password)

	assert.Equal(t, "b.tran@corp.vn", records[1].Email)
	assert.Equal(t, core.ScopeNA, records[1].Team)
	assert.Empty(t, records[1].Password)
}

func TestDecodeAuthorizationRows(t *testing.T) {
	rows := [][]string{
		{"picCode", "subteam", "role", "region", "team", "concatKey"},
		{"a.nguyen", "ST1", "Leader", "HCM", "T1", "HCM-T1"},
		{"", "ST1", "Member", "HCM", "T1", "HCM-T1"}, // 空 picCode 整列略過
		{"c.le"},                                     // 缺欄位全部補預設
	}

	records := DecodeAuthorizationRows(rows)
	assert.Len(t, records, 2)

	assert.Equal(t, "a.nguyen", records[0].PICCode)
	assert.Equal(t, core.RoleLeader, records[0].Role)
	assert.Equal(t, "HCM-T1", records[0].ConcatKey)

	assert.Equal(t, "c.le", records[1].PICCode)
	assert.Equal(t, core.RoleMember, records[1].Role)
	assert.Equal(t, core.ScopeNA, records[1].Subteam)
	assert.Equal(t, core.ScopeNA, records[1].Region)
	assert.Equal(t, core.ScopeNA, records[1].ConcatKey)
}

func TestDecodeStoreRowsColumnOffsets(t *testing.T) {
	row := make([]string, 13)
	row[0] = "S001"
	row[1] = "Store One"
	row[2] = "B100"
	row[5] = "a.nguyen"
	row[9] = "1 Le Loi, Q1, HCM"
	row[11] = "05/01/2024"
	row[12] = "Churn"

	records := DecodeStoreRows([][]string{{"header"}, row})
	assert.Len(t, records, 1)
	assert.Equal(t, StoreRecord{
		StoreID:              "S001",
		StoreName:            "Store One",
		BuyerID:              "B100",
		CurrentPIC:           "a.nguyen",
		FullAddress:          "1 Le Loi, Q1, HCM",
		LastOrderDate:        "05/01/2024",
		ChurnStatusThisMonth: "Churn",
	}, records[0])
}

func TestDecodeEmptyAndHeaderOnly(t *testing.T) {
	assert.Nil(t, DecodeStoreRows(nil))
	assert.Nil(t, DecodeStoreRows([][]string{}))
	assert.Nil(t, DecodeChurnHistoryRows([][]string{{"storeId", "churnMonth"}}))
}

func TestDecodeActionRowsKeepLinkHubspot(t *testing.T) {
	churnRows := [][]string{
		{"header"},
		{"S001", "Store One", "05/01/2024", "a.nguyen", "ST1", "Call", "Offered promo", "note", "price", "12/2023", "https://hubspot/1"},
	}
	churn := DecodeChurnActionRows(churnRows)
	assert.Len(t, churn, 1)
	assert.Equal(t, "12/2023", churn[0].ChurnMonth)
	assert.Empty(t, churn[0].ActiveMonth)
	assert.Equal(t, "https://hubspot/1", churn[0].LinkHubspot)

	activeRows := [][]string{
		{"header"},
		{"S001", "Store One", "05/01/2024", "a.nguyen", "ST1", "Visit", "Upsell", "note", "1/2024", "https://hubspot/2"},
	}
	active := DecodeActiveActionRows(activeRows)
	assert.Len(t, active, 1)
	assert.Equal(t, "1/2024", active[0].ActiveMonth)
	assert.Empty(t, active[0].ChurnMonth)
	assert.Equal(t, "https://hubspot/2", active[0].LinkHubspot)
}

func TestEncodeRowMatchesAppendRanges(t *testing.T) {
	record := ActionRecord{
		StoreID:        "S001",
		StoreName:      "Store One",
		ContactDate:    "2024-01-05",
		PIC:            "a.nguyen",
		Subteam:        "ST1",
		TypeOfContact:  "Call",
		Action:         "Offered promo",
		Note:           "note",
		WhyNotReawaken: "price",
		ChurnMonth:     "12/2023",
		ActiveMonth:    "1/2024",
		LinkHubspot:    "https://hubspot/1",
	}

	churnRow := record.EncodeRow(core.ActionKindChurn)
	assert.Equal(t, []string{
		"S001", "Store One", "2024-01-05", "a.nguyen", "ST1",
		"Call", "Offered promo", "note", "price", "12/2023", "https://hubspot/1",
	}, churnRow)

	activeRow := record.EncodeRow(core.ActionKindActive)
	assert.Equal(t, []string{
		"S001", "Store One", "2024-01-05", "a.nguyen", "ST1",
		"Call", "Offered promo", "note", "1/2024", "https://hubspot/1",
	}, activeRow)

	// encode 後的列再 decode 應還原同一筆（欄位位移是對外契約）
	decoded := DecodeChurnActionRows([][]string{{"header"}, churnRow})
	assert.Equal(t, record.ChurnMonth, decoded[0].ChurnMonth)
	assert.Equal(t, record.WhyNotReawaken, decoded[0].WhyNotReawaken)
	assert.Equal(t, record.LinkHubspot, decoded[0].LinkHubspot)
}
