package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	Expire int    `json:"expire" yaml:"expire"` // 单位：秒
}
