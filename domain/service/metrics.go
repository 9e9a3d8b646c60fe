package service

import (
	"math"
	"sort"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/entity"
	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
)

// computeMttr 窗口内开始且已关闭的区间时长统计
func computeMttr(incidents []entity.Incident, w timeWindow, now time.Time) vo.Stats {
	durations := make([]time.Duration, 0)
	for _, in := range filterByWindow(incidents, w, WindowModeStart, now) {
		if d, ok := in.Duration(); ok {
			durations = append(durations, d)
		}
	}
	return computeStats(durations)
}

// computeOpenAging 未关闭区间的滞留时长，不做窗口过滤，始终按 now 计算
func computeOpenAging(incidents []entity.Incident, now time.Time) vo.OpenAging {
	ages := make([]time.Duration, 0)
	openCount := 0
	for _, in := range incidents {
		if in.End != nil {
			continue
		}
		openCount++
		if age := now.Sub(in.Start); age >= 0 {
			ages = append(ages, age)
		}
	}
	return vo.OpenAging{OpenCount: openCount, Stats: computeStats(ages)}
}

// computeThroughput 窗口内开始与关闭的数量，互相独立
func computeThroughput(incidents []entity.Incident, w timeWindow, now time.Time) vo.Throughput {
	return vo.Throughput{
		Started:  len(filterByWindow(incidents, w, WindowModeStart, now)),
		Resolved: len(filterByWindow(incidents, w, WindowModeResolved, now)),
	}
}

// computeRepairsHistogram 关闭窗口内的区间按维修次数分桶
func computeRepairsHistogram(incidents []entity.Incident, w timeWindow, now time.Time) vo.RepairsHistogram {
	hist := vo.RepairsHistogram{}
	for _, in := range filterByWindow(incidents, w, WindowModeResolved, now) {
		switch {
		case in.Repairs <= 1:
			hist.One++
		case in.Repairs == 2:
			hist.Two++
		default:
			hist.ThreePlus++
		}
	}
	return hist
}

// computeSlaCompliance 关闭窗口内、携带有效级别的区间与 SLA 目标比较。
// 时长恰好等于目标时计为达标；无级别或未知级别的区间整体排除
func computeSlaCompliance(incidents []entity.Incident, w timeWindow, targets map[string]float64, now time.Time) vo.SlaCompliance {
	bySeverity := map[string]vo.SlaBucket{
		entity.SeverityP1: {}, entity.SeverityP2: {}, entity.SeverityP3: {}, entity.SeverityP4: {},
	}
	within, breach := 0, 0
	for _, in := range filterByWindow(incidents, w, WindowModeResolved, now) {
		d, ok := in.Duration()
		if !ok {
			continue
		}
		if entity.SeverityRank(in.Severity) == 0 {
			continue
		}
		bucket := bySeverity[in.Severity]
		if d.Hours() <= targets[in.Severity] {
			bucket.Within++
			within++
		} else {
			bucket.Breach++
			breach++
		}
		bySeverity[in.Severity] = bucket
	}

	total := within + breach
	var rate *float64
	if total > 0 {
		r := float64(within) / float64(total)
		rate = &r
	}
	return vo.SlaCompliance{
		Total:      total,
		Within:     within,
		Breach:     breach,
		Rate:       rate,
		BySeverity: bySeverity,
		Targets:    targets,
	}
}

// computeRecurrence 复发率：同一设备按开始时间排序后，已关闭区间的
// 下一个区间若在 window 内开始则计为复发。每台设备最后一个区间
// 没有"下一个"，不参与检查。窗口取全部历史，与报表窗口无关
func computeRecurrence(incidents []entity.Incident, window time.Duration) vo.Recurrence {
	byEq := groupByEquipment(incidents)

	checked, recurrent := 0, 0
	for _, arr := range byEq {
		sort.SliceStable(arr, func(i, j int) bool { return arr[i].Start.Before(arr[j].Start) })
		for i := 0; i < len(arr); i++ {
			if arr[i].End == nil || i+1 >= len(arr) {
				continue
			}
			checked++
			if arr[i+1].Start.Sub(*arr[i].End) <= window {
				recurrent++
			}
		}
	}

	var rate *float64
	if checked > 0 {
		r := float64(recurrent) / float64(checked)
		rate = &r
	}
	return vo.Recurrence{
		Checked:    checked,
		Recurrent:  recurrent,
		Rate:       rate,
		WindowDays: int(math.Round(window.Hours() / 24)),
	}
}

// computeMtbf 每台设备相邻区间开始时间之差，全量汇总后做统计，
// 不做窗口过滤
func computeMtbf(incidents []entity.Incident) vo.Stats {
	byEq := groupByEquipment(incidents)

	diffs := make([]time.Duration, 0)
	for _, arr := range byEq {
		starts := make([]time.Time, 0, len(arr))
		for _, in := range arr {
			starts = append(starts, in.Start)
		}
		sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
		for i := 1; i < len(starts); i++ {
			if d := starts[i].Sub(starts[i-1]); d >= 0 {
				diffs = append(diffs, d)
			}
		}
	}
	return computeStats(diffs)
}

// computeAvailability 停机占比 = 各区间与有效窗口 [from, to-or-now] 的
// 相交时长之和 / (设备数 × 窗口时长)，钳制在 [0,1]。
// 零设备或非正窗口时 pct 与 window_hours 为 null
func computeAvailability(incidents []entity.Incident, equipmentCount int, w timeWindow, now time.Time) vo.Availability {
	if equipmentCount == 0 {
		return vo.Availability{DowntimeHours: 0}
	}
	if w.from == nil {
		return vo.Availability{DowntimeHours: 0}
	}
	effectiveTo := now
	if w.to != nil {
		effectiveTo = *w.to
	}
	windowDur := effectiveTo.Sub(*w.from)
	if windowDur <= 0 {
		return vo.Availability{DowntimeHours: 0}
	}

	effective := timeWindow{from: w.from, to: &effectiveTo}
	var downtime time.Duration
	for _, in := range incidents {
		downtime += overlapDuration(in, effective, now)
	}

	pct := downtime.Hours() / (float64(equipmentCount) * windowDur.Hours())
	pct = math.Max(0, math.Min(1, pct))
	return vo.Availability{
		WindowHours:   hoursPtr(windowDur.Hours()),
		DowntimeHours: downtime.Hours(),
		DowntimePct:   &pct,
	}
}

// computeTopOffenders 按窗口内停机时长降序取前 limit 台设备，
// 零停机的设备不进入榜单
func computeTopOffenders(incidents []entity.Incident, equipments map[string]*entity.Equipment, w timeWindow, now time.Time, limit int) []vo.TopOffender {
	downtimeByEq := map[string]time.Duration{}
	for _, in := range incidents {
		if d := overlapDuration(in, w, now); d > 0 {
			downtimeByEq[in.EquipmentID] += d
		}
	}

	rows := make([]vo.TopOffender, 0, len(downtimeByEq))
	for eqID, d := range downtimeByEq {
		row := vo.TopOffender{EquipmentID: eqID, DowntimeHours: d.Hours()}
		if eq := equipments[eqID]; eq != nil {
			row.Name = eq.Name
			row.TagNo = eq.TagNo
		}
		rows = append(rows, row)
	}
	// 停机时长相同时按设备 ID 排序，保证相同输入产出相同榜单
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].DowntimeHours != rows[j].DowntimeHours {
			return rows[i].DowntimeHours > rows[j].DowntimeHours
		}
		return rows[i].EquipmentID < rows[j].EquipmentID
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// computeSeverityImpact 按级别加权的停机影响：Σ(相交小时数 × 权重)，
// P1=4..P4=1，无级别权重为 0，结果保留一位小数
func computeSeverityImpact(incidents []entity.Incident, w timeWindow, now time.Time) vo.SeverityImpact {
	weights := map[string]int{
		entity.SeverityP1: 4, entity.SeverityP2: 3, entity.SeverityP3: 2, entity.SeverityP4: 1,
	}
	score := 0.0
	for _, in := range incidents {
		weight := entity.SeverityRank(in.Severity)
		if weight == 0 {
			continue
		}
		if d := overlapDuration(in, w, now); d > 0 {
			score += d.Hours() * float64(weight)
		}
	}
	return vo.SeverityImpact{
		ScoreHoursWeighted: math.Round(score*10) / 10,
		Weights:            weights,
	}
}

func groupByEquipment(incidents []entity.Incident) map[string][]entity.Incident {
	byEq := map[string][]entity.Incident{}
	for _, in := range incidents {
		if in.EquipmentID == "" {
			continue
		}
		byEq[in.EquipmentID] = append(byEq[in.EquipmentID], in)
	}
	return byEq
}
