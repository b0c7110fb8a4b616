package config

// Mall 商城多租户配置：供应商目录、分销商目录与种子账号
type Mall struct {
	Suppliers    []*Supplier    `json:"suppliers" yaml:"suppliers"`
	Distributors []*Distributor `json:"distributors" yaml:"distributors"`
	Accounts     []*Account     `json:"accounts" yaml:"accounts"`
}

// Supplier 供应商（租户）配置，Suffix 作为 URL 前缀
type Supplier struct {
	Code        string       `json:"code" yaml:"code"`
	Suffix      string       `json:"suffix" yaml:"suffix"`
	MallName    string       `json:"mall_name" yaml:"mall_name"`
	Distributor *Distributor `json:"distributor" yaml:"distributor"`
}

// Distributor 分销商（提货点）配置
type Distributor struct {
	Code          string `json:"code" yaml:"code"`
	Name          string `json:"name" yaml:"name"`
	PickupAddress string `json:"pickup_address" yaml:"pickup_address"`
	Theme         string `json:"theme" yaml:"theme"`
}

// Account 种子账号，启动时写入数据库
type Account struct {
	Username      string `json:"username" yaml:"username"`
	Password      string `json:"password" yaml:"password"`
	Role          string `json:"role" yaml:"role"`
	Name          string `json:"name" yaml:"name"`
	Phone         string `json:"phone" yaml:"phone"`
	PickupAddress string `json:"pickup_address" yaml:"pickup_address"`
	Distributor   string `json:"distributor" yaml:"distributor"` // 关联的分销商 code，可空
}

// Inventory 库存策略配置，strategy 取值 pseudo / cached / roster
type Inventory struct {
	Strategy string   `json:"strategy" yaml:"strategy"`
	Roster   []string `json:"roster" yaml:"roster"`
}
