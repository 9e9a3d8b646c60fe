package service

import (
	"math"
	"sort"
	"time"

	"devops.exregcloud.cn/EquipCloud/_git/reliability-analytics/server/domain/vo"
)

// computeStats 对一组非负时长做统计，输出单位为小时。
// 中位数取排序后下标 floor((n-1)/2)，偶数个样本时为下中位数；
// p90 取排序后下标 floor(0.9*(n-1))。空集时除 count、total 外均为 null
func computeStats(durations []time.Duration) vo.Stats {
	sorted := make([]time.Duration, 0, len(durations))
	for _, d := range durations {
		if d >= 0 {
			sorted = append(sorted, d)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	if n == 0 {
		return vo.Stats{Count: 0, TotalHours: 0}
	}

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	mean := total.Hours() / float64(n)
	median := sorted[(n-1)/2].Hours()
	p90 := sorted[int(math.Floor(0.9*float64(n-1)))].Hours()

	return vo.Stats{
		Count:       n,
		TotalHours:  total.Hours(),
		MinHours:    hoursPtr(sorted[0].Hours()),
		MaxHours:    hoursPtr(sorted[n-1].Hours()),
		MeanHours:   hoursPtr(mean),
		MedianHours: hoursPtr(median),
		P90Hours:    hoursPtr(p90),
	}
}

func hoursPtr(h float64) *float64 {
	return &h
}

// toHealthStats 以 count_closed 口径输出同一组统计
func toHealthStats(closed []time.Duration, openCount int) vo.HealthStats {
	s := computeStats(closed)
	return vo.HealthStats{
		CountClosed: s.Count,
		TotalHours:  s.TotalHours,
		MinHours:    s.MinHours,
		MaxHours:    s.MaxHours,
		MeanHours:   s.MeanHours,
		MedianHours: s.MedianHours,
		P90Hours:    s.P90Hours,
		CountOpen:   openCount,
	}
}
