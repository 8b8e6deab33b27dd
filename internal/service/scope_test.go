package service

import (
	"testing"

	"winback/config"
	"winback/internal/core"
	"winback/internal/tabular"

	"github.com/stretchr/testify/assert"
)

func scopeFixture() ([]tabular.AuthorizationRecord, []tabular.StoreRecord) {
	authRecords := []tabular.AuthorizationRecord{
		{PICCode: "member.hcm", Subteam: "ST1", Role: core.RoleMember, Region: "HCM", Team: "T1", ConcatKey: "HCM-T1"},
		{PICCode: "peer.hcm", Subteam: "ST1", Role: core.RoleMember, Region: "HCM", Team: "T1", ConcatKey: "HCM-T1"},
		{PICCode: "leader.hcm", Subteam: "ST1", Role: core.RoleLeader, Region: "HCM", Team: "T1", ConcatKey: "HCM-T1"},
		{PICCode: "other.hcm", Subteam: "ST2", Role: core.RoleMember, Region: "HCM", Team: "T2", ConcatKey: "HCM-T2"},
		{PICCode: "member.hn", Subteam: "ST3", Role: core.RoleMember, Region: "HN", Team: "T3", ConcatKey: "HN-T3"},
		{PICCode: "peer.hn", Subteam: "ST4", Role: core.RoleMember, Region: "HN", Team: "T4", ConcatKey: "HN-T4"},
		{PICCode: "mgr.all", Subteam: "ST9", Role: core.RoleManager, Region: core.ScopeAll, Team: core.ScopeAll, ConcatKey: "ALL"},
		{PICCode: "mgr.hcm", Subteam: "ST1", Role: core.RoleManager, Region: "HCM", Team: "T1", ConcatKey: "HCM-T1"},
		{PICCode: "mgr.hn.all", Subteam: "ST3", Role: core.RoleManager, Region: "HN", Team: core.ScopeAll, ConcatKey: "HN-ALL"},
		{PICCode: "mgr.hn.team", Subteam: "ST3", Role: core.RoleManager, Region: "HN", Team: "T3", ConcatKey: "HN-T3"},
		{PICCode: "mgr.weird", Subteam: "ST9", Role: core.RoleManager, Region: "DN", Team: "T9", ConcatKey: "DN-T9"},
	}
	stores := []tabular.StoreRecord{
		{StoreID: "S1", CurrentPIC: "member.hcm"},
		{StoreID: "S2", CurrentPIC: "peer.hcm"},
		{StoreID: "S3", CurrentPIC: "other.hcm"},
		{StoreID: "S4", CurrentPIC: "member.hn"},
		{StoreID: "S5", CurrentPIC: "peer.hn"},
		{StoreID: "S6", CurrentPIC: "mgr.hn.team"},
		{StoreID: "S7", CurrentPIC: "leader.hcm"},
	}
	return authRecords, stores
}

func storeIDs(stores []tabular.StoreRecord) []string {
	ids := make([]string, 0, len(stores))
	for _, store := range stores {
		ids = append(ids, store.StoreID)
	}
	return ids
}

func newScope(strict bool) *ScopeService {
	return NewScopeService(&config.Configuration{
		Access: config.Access{StrictAuthorization: strict},
	})
}

func TestResolveAccessibleStores(t *testing.T) {
	authRecords, stores := scopeFixture()

	tests := []struct {
		name  string
		email string
		want  []string
	}{
		{"member 只看自己", "member.hcm@corp.vn", []string{"S1"}},
		{"leader 看同 subteam", "leader.hcm@corp.vn", []string{"S1", "S2", "S7"}},
		{"manager ALL 看全部", "mgr.all@corp.vn", []string{"S1", "S2", "S3", "S4", "S5", "S6", "S7"}},
		{"manager HCM 看同 concatKey", "mgr.hcm@corp.vn", []string{"S1", "S2", "S7"}},
		{"manager HN team=ALL 看整個 HN", "mgr.hn.all@corp.vn", []string{"S4", "S5", "S6"}},
		{"manager HN team!=ALL 看同 concatKey", "mgr.hn.team@corp.vn", []string{"S4", "S6"}},
		{"manager 其他組合無權限", "mgr.weird@corp.vn", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newScope(true).ResolveAccessibleStores(core.NewIdentity(tt.email), authRecords, stores)
			assert.Equal(t, tt.want, func() []string {
				if got == nil {
					return nil
				}
				return storeIDs(got)
			}())
		})
	}
}

func TestResolveAccessibleStoresUnknownPIC(t *testing.T) {
	authRecords, stores := scopeFixture()
	identity := core.NewIdentity("ghost@corp.vn")

	// strict：授權表查無此 PIC 一律拒絕
	assert.Nil(t, newScope(true).ResolveAccessibleStores(identity, authRecords, stores))

	// lenient：退回 Member 直接比對 picCode
	stores = append(stores, tabular.StoreRecord{StoreID: "S8", CurrentPIC: "ghost"})
	got := newScope(false).ResolveAccessibleStores(identity, authRecords, stores)
	assert.Equal(t, []string{"S8"}, storeIDs(got))
}

func TestResolveAccessibleStoresKeepsInputOrder(t *testing.T) {
	authRecords, stores := scopeFixture()
	got := newScope(true).ResolveAccessibleStores(core.NewIdentity("mgr.all@corp.vn"), authRecords, stores)
	assert.Equal(t, storeIDs(stores), storeIDs(got))
}

// CanAccessStore 必須是 ResolveAccessibleStores 的成員測試，
// 兩者的結果不能分歧
func TestCanAccessStoreMatchesResolver(t *testing.T) {
	authRecords, stores := scopeFixture()
	scope := newScope(true)

	emails := []string{
		"member.hcm@corp.vn", "leader.hcm@corp.vn", "mgr.all@corp.vn",
		"mgr.hcm@corp.vn", "mgr.hn.all@corp.vn", "mgr.hn.team@corp.vn",
		"mgr.weird@corp.vn", "ghost@corp.vn",
	}
	for _, email := range emails {
		identity := core.NewIdentity(email)
		accessible := make(map[string]bool)
		for _, store := range scope.ResolveAccessibleStores(identity, authRecords, stores) {
			accessible[store.StoreID] = true
		}
		for _, store := range stores {
			assert.Equal(t, accessible[store.StoreID],
				scope.CanAccessStore(identity, store.StoreID, authRecords, stores),
				"%s / %s", email, store.StoreID)
		}
	}
}

func TestAuthorizationFor(t *testing.T) {
	authRecords, _ := scopeFixture()
	scope := newScope(true)

	record := scope.AuthorizationFor(core.NewIdentity("leader.hcm@corp.vn"), authRecords)
	assert.Equal(t, core.RoleLeader, record.Role)
	assert.Equal(t, "ST1", record.Subteam)

	// 查無授權列時回顯示用預設值，strict 與否不影響 profile 顯示
	fallback := scope.AuthorizationFor(core.NewIdentity("ghost@corp.vn"), authRecords)
	assert.Equal(t, "ghost", fallback.PICCode)
	assert.Equal(t, core.RoleMember, fallback.Role)
	assert.Equal(t, core.ScopeNA, fallback.Region)
}

func TestPICCodeFromEmail(t *testing.T) {
	assert.Equal(t, "a.nguyen", core.PICCodeFromEmail("a.nguyen@corp.vn"))
	assert.Equal(t, "plain", core.PICCodeFromEmail("plain"))
	assert.Equal(t, "", core.PICCodeFromEmail("@corp.vn"))
}
