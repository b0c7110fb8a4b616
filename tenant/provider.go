package tenant

import "github.com/ggasam0/shopmall/config"

// NewSuppliers 由配置构建供应商目录
func NewSuppliers(conf *config.Config) []Supplier {
	if conf.Mall == nil {
		return nil
	}
	suppliers := make([]Supplier, 0, len(conf.Mall.Suppliers))
	for _, s := range conf.Mall.Suppliers {
		supplier := Supplier{
			Code:     s.Code,
			Suffix:   s.Suffix,
			MallName: s.MallName,
		}
		if s.Distributor != nil {
			supplier.Distributor = &Distributor{
				Code:          s.Distributor.Code,
				Name:          s.Distributor.Name,
				PickupAddress: s.Distributor.PickupAddress,
				Theme:         s.Distributor.Theme,
			}
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers
}

// NewDistributorDirectory 由配置构建分销商目录
func NewDistributorDirectory(conf *config.Config) *Directory {
	if conf.Mall == nil {
		return NewDirectory(nil)
	}
	distributors := make([]Distributor, 0, len(conf.Mall.Distributors))
	for _, d := range conf.Mall.Distributors {
		distributors = append(distributors, Distributor{
			Code:          d.Code,
			Name:          d.Name,
			PickupAddress: d.PickupAddress,
			Theme:         d.Theme,
		})
	}
	return NewDirectory(distributors)
}
