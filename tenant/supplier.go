// Package tenant 解析请求路径对应的供应商与分销商身份。
// 所有解析都不会失败：匹配不到时返回默认身份。
package tenant

import (
	"net/url"
	"strings"
)

// Supplier 供应商（租户）：通过 URL 前缀 Suffix 访问的商城实例
type Supplier struct {
	Code        string       `json:"code"`
	Suffix      string       `json:"suffix"`
	MallName    string       `json:"mall_name"`
	Distributor *Distributor `json:"distributor"`
}

// DefaultSupplier 无前缀时的默认商城
var DefaultSupplier = Supplier{
	Code:     "default",
	Suffix:   "",
	MallName: "烟花商城",
}

func normalizeSegment(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func pathSegments(u *url.URL) []string {
	if u == nil {
		return nil
	}
	parts := strings.Split(u.Path, "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// ResolveSupplier 取路径第一段与供应商 Suffix 匹配（大小写不敏感），
// 目录为空或无匹配时返回默认供应商
func ResolveSupplier(u *url.URL, suppliers []Supplier) Supplier {
	segments := pathSegments(u)
	if len(segments) == 0 {
		return DefaultSupplier
	}
	first := normalizeSegment(segments[0])
	for _, supplier := range suppliers {
		if supplier.Suffix == "" {
			continue
		}
		if normalizeSegment(supplier.Suffix) == first {
			return supplier
		}
	}
	return DefaultSupplier
}

// BuildPath 生成带租户前缀的路径。默认供应商原样返回，
// 根路径 "/" 折叠为 "/<suffix>"，不产生多余斜杠
func BuildPath(supplier Supplier, logical string) string {
	if !strings.HasPrefix(logical, "/") {
		logical = "/" + logical
	}
	if supplier.Suffix == "" {
		return logical
	}
	if logical == "/" {
		return "/" + supplier.Suffix
	}
	return "/" + supplier.Suffix + logical
}
