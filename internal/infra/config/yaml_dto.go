package config

// yamlConfig is the on-disk shape of tracko.yaml.
type yamlConfig struct {
	Tracko struct {
		DataFile string `yaml:"data_file"`
		Debug    *bool  `yaml:"debug"`
	} `yaml:"tracko"`
}
