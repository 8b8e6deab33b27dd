package service

import (
	"testing"

	"winback/internal/tabular"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func progressService() *ProgressService {
	return &ProgressService{logger: zap.NewNop()}
}

func TestStoreEntriesChurnAlwaysEmitted(t *testing.T) {
	s := progressService()

	churnHistory := []tabular.ChurnHistoryEntry{
		{StoreID: "S1", ChurnMonth: "12/2023", TypeOfChurn: "Hard", Reason: "price"},
		{StoreID: "S1", ChurnMonth: "3/2024", TypeOfChurn: "Soft", Reason: "stock"},
		{StoreID: "S2", ChurnMonth: "1/2024"},
	}

	// 沒有任何行動，churn episode 仍要輸出（空行動清單）
	entries := s.storeEntries("S1", churnHistory, nil, nil, nil)
	assert.Len(t, entries, 2)

	// 月份新到舊
	assert.Equal(t, "3/2024", entries[0].Month)
	assert.Equal(t, "12/2023", entries[1].Month)

	// churnIndex 依史料順序 1-based，不受輸出排序影響
	assert.Equal(t, 2, entries[0].ChurnIndex)
	assert.Equal(t, 1, entries[1].ChurnIndex)

	assert.Empty(t, entries[0].Actions)
	assert.Equal(t, "Hard", entries[1].TypeOfChurn)
	assert.Equal(t, "price", entries[1].Reason)
}

func TestStoreEntriesActiveOnlyWithActions(t *testing.T) {
	s := progressService()

	activeHistory := []tabular.ActiveHistoryEntry{
		{StoreID: "S1", ActiveMonth: "1/2024"}, // 無行動 → 不輸出
		{StoreID: "S1", ActiveMonth: "2/2024"},
		{StoreID: "S1", ActiveMonth: "4/2024"},
	}
	activeActions := []tabular.ActionRecord{
		{StoreID: "S1", ActiveMonth: "2/2024", ContactDate: "2024-02-10", Action: "Visit"},
		{StoreID: "S1", ActiveMonth: "4/2024", ContactDate: "2024-04-01", Action: "Call"},
		{StoreID: "S2", ActiveMonth: "1/2024", ContactDate: "2024-01-01"}, // 別家門市
	}

	entries := s.storeEntries("S1", nil, activeHistory, nil, activeActions)
	assert.Len(t, entries, 2)

	assert.Equal(t, "4/2024", entries[0].Month)
	assert.Equal(t, "2/2024", entries[1].Month)

	// activeIndex 依歷史列編號，被略過的 1/2024 留下編號洞
	assert.Equal(t, 3, entries[0].ActiveIndex)
	assert.Equal(t, 2, entries[1].ActiveIndex)
	assert.Zero(t, entries[0].ChurnIndex)
}

func TestStoreEntriesMixedTimeline(t *testing.T) {
	s := progressService()

	churnHistory := []tabular.ChurnHistoryEntry{
		{StoreID: "S1", ChurnMonth: "12/2023"},
	}
	activeHistory := []tabular.ActiveHistoryEntry{
		{StoreID: "S1", ActiveMonth: "2/2024"},
	}
	activeActions := []tabular.ActionRecord{
		{StoreID: "S1", ActiveMonth: "2/2024", ContactDate: "2024-02-10"},
	}

	entries := s.storeEntries("S1", churnHistory, activeHistory, nil, activeActions)
	assert.Len(t, entries, 2)
	assert.Equal(t, "2/2024", entries[0].Month)
	assert.Equal(t, "12/2023", entries[1].Month)

	// 無任何歷史的門市回空，呼叫端據此略過
	assert.Empty(t, s.storeEntries("S9", churnHistory, activeHistory, nil, activeActions))
}

func TestMatchingActionsFilterAndSort(t *testing.T) {
	s := progressService()

	churnActions := []tabular.ActionRecord{
		{StoreID: "S1", ChurnMonth: "12/2023", ContactDate: "05/01/2024", Action: "first"},
		{StoreID: "S1", ChurnMonth: "12/2023", ContactDate: "2024-06-01", Action: "second"},
		{StoreID: "S1", ChurnMonth: "12/2023", ContactDate: "bogus", Action: "broken"},
		{StoreID: "S1", ChurnMonth: "1/2024", ContactDate: "2024-06-15"},
		{StoreID: "S2", ChurnMonth: "12/2023", ContactDate: "2024-07-01"},
	}

	matched := s.matchingActions(churnActions, "S1", "12/2023", actionChurnMonth)
	assert.Len(t, matched, 3)

	// contactDate 新到舊，兩種日期格式混用也要排對；
	// 壞日期以 epoch 處理，固定落到最舊
	assert.Equal(t, "second", matched[0].Action)
	assert.Equal(t, "first", matched[1].Action)
	assert.Equal(t, "broken", matched[2].Action)
}

func TestMatchingActionsEmptyIsNotNil(t *testing.T) {
	s := progressService()
	matched := s.matchingActions(nil, "S1", "12/2023", actionChurnMonth)
	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}
