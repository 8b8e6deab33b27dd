package service

import (
	"winback/config"
	"winback/internal/core"
	"winback/internal/tabular"
)

// ScopeService 權限範圍解析。純計算，輸入為已讀好的授權表與門市表；
// 單店檢查 CanAccessStore 與整組解析共用同一套決策樹，不得各自實作。
type ScopeService struct {
	strict bool
}

func NewScopeService(conf *config.Configuration) *ScopeService {
	return &ScopeService{strict: conf.Access.StrictAuthorization}
}

// Strict 回報目前的授權政策（查無 PIC 時拒絕或退回 Member）
func (s *ScopeService) Strict() bool {
	return s.strict
}

func lookupAuthorization(authRecords []tabular.AuthorizationRecord, picCode string) (tabular.AuthorizationRecord, bool) {
	for _, record := range authRecords {
		if record.PICCode == picCode {
			return record, true
		}
	}
	return tabular.AuthorizationRecord{}, false
}

func picsWhere(authRecords []tabular.AuthorizationRecord, match func(tabular.AuthorizationRecord) bool) map[string]struct{} {
	pics := make(map[string]struct{})
	for _, record := range authRecords {
		if match(record) {
			pics[record.PICCode] = struct{}{}
		}
	}
	return pics
}

// ResolveAccessibleStores 依授權表決定 identity 可見的門市，保持輸入順序。
// 決策樹：
//   - 查無授權列：strict 時無權限；否則退回 Member 直接比對 picCode
//   - Member：currentPIC == picCode
//   - Leader：currentPIC 屬於同 subteam 的 PIC 集合
//   - Manager region=ALL：全部門市
//   - Manager region=HCM：同 concatKey 的 PIC 集合
//   - Manager region=HN team=ALL：owning PIC 的 region 為 HN
//   - Manager region=HN team≠ALL：同 concatKey 的 PIC 集合
//   - 其他組合：無權限
func (s *ScopeService) ResolveAccessibleStores(
	identity core.Identity,
	authRecords []tabular.AuthorizationRecord,
	stores []tabular.StoreRecord,
) []tabular.StoreRecord {
	record, found := lookupAuthorization(authRecords, identity.PICCode)
	if !found {
		if s.strict {
			return nil
		}
		record = tabular.AuthorizationRecord{
			PICCode:   identity.PICCode,
			Subteam:   core.ScopeNA,
			Role:      core.RoleMember,
			Region:    core.ScopeNA,
			Team:      core.ScopeNA,
			ConcatKey: core.ScopeNA,
		}
	}

	var allowed func(currentPIC string) bool
	switch record.Role {
	case core.RoleMember:
		allowed = func(currentPIC string) bool { return currentPIC == identity.PICCode }
	case core.RoleLeader:
		subteamPICs := picsWhere(authRecords, func(r tabular.AuthorizationRecord) bool {
			return r.Subteam == record.Subteam
		})
		allowed = func(currentPIC string) bool { _, ok := subteamPICs[currentPIC]; return ok }
	case core.RoleManager:
		switch {
		case record.Region == core.ScopeAll:
			allowed = func(string) bool { return true }
		case record.Region == core.RegionHCM:
			concatPICs := picsWhere(authRecords, func(r tabular.AuthorizationRecord) bool {
				return r.ConcatKey == record.ConcatKey
			})
			allowed = func(currentPIC string) bool { _, ok := concatPICs[currentPIC]; return ok }
		case record.Region == core.RegionHN && record.Team == core.ScopeAll:
			regionPICs := picsWhere(authRecords, func(r tabular.AuthorizationRecord) bool {
				return r.Region == core.RegionHN
			})
			allowed = func(currentPIC string) bool { _, ok := regionPICs[currentPIC]; return ok }
		case record.Region == core.RegionHN:
			concatPICs := picsWhere(authRecords, func(r tabular.AuthorizationRecord) bool {
				return r.ConcatKey == record.ConcatKey
			})
			allowed = func(currentPIC string) bool { _, ok := concatPICs[currentPIC]; return ok }
		default:
			return nil
		}
	default:
		return nil
	}

	var accessible []tabular.StoreRecord
	for _, store := range stores {
		if allowed(store.CurrentPIC) {
			accessible = append(accessible, store)
		}
	}
	return accessible
}

// CanAccessStore 單店權限檢查，是 ResolveAccessibleStores 的成員測試
func (s *ScopeService) CanAccessStore(
	identity core.Identity,
	storeID string,
	authRecords []tabular.AuthorizationRecord,
	stores []tabular.StoreRecord,
) bool {
	for _, store := range s.ResolveAccessibleStores(identity, authRecords, stores) {
		if store.StoreID == storeID {
			return true
		}
	}
	return false
}

// AuthorizationFor 取 identity 的授權列；查無時回傳顯示用預設值
func (s *ScopeService) AuthorizationFor(identity core.Identity, authRecords []tabular.AuthorizationRecord) tabular.AuthorizationRecord {
	if record, found := lookupAuthorization(authRecords, identity.PICCode); found {
		return record
	}
	return tabular.AuthorizationRecord{
		PICCode:   identity.PICCode,
		Subteam:   core.ScopeNA,
		Role:      core.RoleMember,
		Region:    core.ScopeNA,
		Team:      core.ScopeNA,
		ConcatKey: core.ScopeNA,
	}
}
