package tenant

import "net/url"

// Distributor 分销商（提货点）
type Distributor struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	PickupAddress string `json:"pickup_address"`
	Theme         string `json:"theme"`
}

// DefaultDistributor 无法定位分销商时的兜底身份
var DefaultDistributor = Distributor{
	Code:          "default",
	Name:          "默认分销商",
	PickupAddress: "请联系客户经理确认提货地址",
	Theme:         "#ff5d5d",
}

// Directory 分销商目录，按 code 精确查找，保留配置顺序
type Directory struct {
	byCode map[string]Distributor
	codes  []string
}

func NewDirectory(distributors []Distributor) *Directory {
	dir := &Directory{byCode: make(map[string]Distributor, len(distributors))}
	for _, d := range distributors {
		code := normalizeSegment(d.Code)
		if code == "" {
			continue
		}
		if _, exists := dir.byCode[code]; exists {
			continue
		}
		dir.byCode[code] = d
		dir.codes = append(dir.codes, code)
	}
	return dir
}

func (d *Directory) Lookup(code string) (Distributor, bool) {
	dist, ok := d.byCode[normalizeSegment(code)]
	return dist, ok
}

// Get 查找分销商，未知 code 返回默认分销商
func (d *Directory) Get(code string) Distributor {
	if dist, ok := d.Lookup(code); ok {
		return dist
	}
	return DefaultDistributor
}

// Codes 按配置顺序返回全部 code
func (d *Directory) Codes() []string {
	out := make([]string, len(d.codes))
	copy(out, d.codes)
	return out
}

// Index 返回 code 在目录中的位置，未知 code 返回 0
func (d *Directory) Index(code string) int {
	normalized := normalizeSegment(code)
	for i, c := range d.codes {
		if c == normalized {
			return i
		}
	}
	return 0
}

// ResolveDistributorCode 按优先级定位分销商 code：
// query 参数 dist/d，其次 /d/<code> 路径后缀，最后末段路径。
// 每一级只接受目录中存在的 code，全部落空返回默认 code
func ResolveDistributorCode(u *url.URL, dir *Directory) string {
	if u != nil {
		query := u.Query()
		for _, key := range []string{"dist", "d"} {
			code := normalizeSegment(query.Get(key))
			if code == "" {
				continue
			}
			if _, ok := dir.Lookup(code); ok {
				return code
			}
		}
	}

	segments := pathSegments(u)
	if len(segments) >= 2 {
		prefix := segments[len(segments)-2]
		code := normalizeSegment(segments[len(segments)-1])
		if prefix == "d" {
			if _, ok := dir.Lookup(code); ok {
				return code
			}
		}
	}

	if len(segments) > 0 {
		code := normalizeSegment(segments[len(segments)-1])
		if _, ok := dir.Lookup(code); ok {
			return code
		}
	}

	return DefaultDistributor.Code
}

// ResolveDistributor 独立解析路径对应的分销商
func ResolveDistributor(u *url.URL, dir *Directory) Distributor {
	return dir.Get(ResolveDistributorCode(u, dir))
}

// DistributorFor 供应商内嵌分销商时直接采用内嵌身份（主题取默认值），
// 否则走独立解析
func DistributorFor(supplier Supplier, u *url.URL, dir *Directory) Distributor {
	embedded := supplier.Distributor
	if embedded != nil && embedded.Code != "" {
		dist := Distributor{
			Code:          embedded.Code,
			Name:          embedded.Name,
			PickupAddress: embedded.PickupAddress,
			Theme:         DefaultDistributor.Theme,
		}
		if dist.Name == "" {
			dist.Name = DefaultDistributor.Name
		}
		if dist.PickupAddress == "" {
			dist.PickupAddress = DefaultDistributor.PickupAddress
		}
		return dist
	}
	return ResolveDistributor(u, dir)
}
