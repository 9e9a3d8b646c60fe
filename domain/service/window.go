package service

import (
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
)

// 时间窗过滤模式
const (
	WindowModeStart    = "start"
	WindowModeResolved = "resolved"
	WindowModeOverlap  = "overlap"
)

// timeWindow 查询时间窗，nil 边界表示无界
type timeWindow struct {
	from *time.Time
	to   *time.Time
}

func (w timeWindow) unbounded() bool {
	return w.from == nil && w.to == nil
}

// normalizeMode 未知模式回落到 start
func normalizeMode(mode string) string {
	switch mode {
	case WindowModeStart, WindowModeResolved, WindowModeOverlap:
		return mode
	default:
		return WindowModeStart
	}
}

// inWindow 区间是否命中时间窗，三种模式边界均为闭区间。
// start：事件开始时间落入窗口；resolved：已关闭且关闭时间落入窗口；
// overlap：区间 [start, end-or-+∞) 与窗口相交，未关闭区间视为延续到无穷远
func inWindow(in entity.Incident, w timeWindow, mode string, now time.Time) bool {
	switch mode {
	case WindowModeResolved:
		if in.End == nil {
			return false
		}
		return !before(in.End, w.from) && !after(in.End, w.to)
	case WindowModeOverlap:
		if w.unbounded() {
			return true
		}
		if after(&in.Start, w.to) {
			return false
		}
		return in.End == nil || !before(in.End, w.from)
	default:
		return !before(&in.Start, w.from) && !after(&in.Start, w.to)
	}
}

// filterByWindow 按模式过滤区间列表
func filterByWindow(incidents []entity.Incident, w timeWindow, mode string, now time.Time) []entity.Incident {
	filtered := make([]entity.Incident, 0, len(incidents))
	for _, in := range incidents {
		if inWindow(in, w, mode, now) {
			filtered = append(filtered, in)
		}
	}
	return filtered
}

// overlapDuration 区间与时间窗的相交时长，未关闭区间记到 now 为止
func overlapDuration(in entity.Incident, w timeWindow, now time.Time) time.Duration {
	end := now
	if in.End != nil {
		end = *in.End
	}
	a := in.Start
	if w.from != nil && w.from.After(a) {
		a = *w.from
	}
	b := end
	if w.to != nil && w.to.Before(b) {
		b = *w.to
	}
	if b.After(a) {
		return b.Sub(a)
	}
	return 0
}

// before t 是否严格早于边界，bound 为 nil 视作负无穷
func before(t, bound *time.Time) bool {
	return bound != nil && t.Before(*bound)
}

// after t 是否严格晚于边界，bound 为 nil 视作正无穷
func after(t, bound *time.Time) bool {
	return bound != nil && t.After(*bound)
}
