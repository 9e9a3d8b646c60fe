package service

import (
	"context"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/config"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/core"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"github.com/agiledragon/gomonkey/v2"
)

// patchAnalyticsCfg 测试期替换全局配置
func patchAnalyticsCfg() *gomonkey.Patches {
	return gomonkey.ApplyFunc(config.Get, func() *config.GlobalCfg {
		return &config.GlobalCfg{
			Analytics: config.AnalyticsCfg{
				RecurrenceWindowDays: 30,
				MaxEventRows:         50000,
				TopOffenderLimit:     10,
				SlaCacheTTL:          5 * time.Minute,
				SlaDefaultHours: map[string]float64{
					entity.SeverityP1: 24, entity.SeverityP2: 72,
					entity.SeverityP3: 168, entity.SeverityP4: 336,
				},
			},
		}
	})
}

type stubEquipmentRepo struct {
	equipments []*entity.Equipment
	err        core.RepoError
}

func (s *stubEquipmentRepo) ListByScope(_ context.Context, _, _, _ string) ([]*entity.Equipment, core.RepoError) {
	return s.equipments, s.err
}

type stubEventRepo struct {
	events    []*entity.MaintenanceEvent
	truncated bool
	err       core.RepoError
}

func (s *stubEventRepo) ListByEquipments(_ context.Context, _ string, _ []string, _ []entity.EventKind, _ int) ([]*entity.MaintenanceEvent, bool, core.RepoError) {
	return s.events, s.truncated, s.err
}

type stubInspectionRepo struct {
	records   []*entity.Inspection
	truncated bool
	err       core.RepoError
}

func (s *stubInspectionRepo) ListByEquipments(_ context.Context, _ string, _ []string, _ int) ([]*entity.Inspection, bool, core.RepoError) {
	return s.records, s.truncated, s.err
}

type stubSlaTargetRepo struct {
	saved     entity.SlaTargets
	loadCalls int
	saveErr   core.RepoError
	loadErr   core.RepoError

	savedTenant   string
	savedCategory entity.SlaCategory
	savedHours    map[string]float64
}

func (s *stubSlaTargetRepo) Load(_ context.Context, _ string) (entity.SlaTargets, core.RepoError) {
	s.loadCalls++
	return s.saved, s.loadErr
}

func (s *stubSlaTargetRepo) Save(_ context.Context, tenantID string, category entity.SlaCategory, hours map[string]float64) core.RepoError {
	s.savedTenant = tenantID
	s.savedCategory = category
	s.savedHours = hours
	return s.saveErr
}

// stubCache 进程内缓存替身
type stubCache struct {
	store map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string]string{}}
}

func (s *stubCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.store[key]; ok {
		return v, nil
	}
	return "", errNotFound
}

func (s *stubCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	s.store[key] = value
	return nil
}

func (s *stubCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(s.store, k)
	}
	return nil
}

func (s *stubCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.store[key]
	return ok, nil
}

func (s *stubCache) Close() error { return nil }

type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

var errNotFound = cacheMissError{}
