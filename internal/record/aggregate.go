package record

import "strconv"

// ── 派生聚合 ──
//
// 聚合值从不持久化，每次读取都基于当前记录重新计算。

// TotalCost 费用行金额求和
// 无法解析的金额按 0 计入，单条脏数据不应清空整个合计
func TotalCost(rec *CanonicalRecord) float64 {
	if rec == nil {
		return 0
	}
	var total float64
	for _, line := range rec.Costs {
		amount, err := strconv.ParseFloat(line.Amount, 64)
		if err != nil {
			continue
		}
		total += amount
	}
	return total
}

// DocumentCountsByType 按文档类型分组计数
// 展示为无序徽章，顺序无意义
func DocumentCountsByType(rec *CanonicalRecord) map[string]int {
	counts := make(map[string]int)
	if rec == nil {
		return counts
	}
	for _, doc := range rec.Documents {
		counts[doc.DocumentType]++
	}
	return counts
}
